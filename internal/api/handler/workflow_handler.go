package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alnoor-academy/institute-api/internal/api/metrics"
	"github.com/alnoor-academy/institute-api/internal/core/ports"
)

// WorkflowHandler serves the public submission endpoints and the admin
// review surface (lists, status changes, deletes, dashboard stats).
type WorkflowHandler struct {
	workflow ports.WorkflowService
}

func NewWorkflowHandler(workflow ports.WorkflowService) *WorkflowHandler {
	return &WorkflowHandler{workflow: workflow}
}

// --- Public submissions ---

// SubmitContact accepts a contact form message.
//
// @Summary      Submit a contact message
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Message"
// @Success      201   {object}  domain.ContactMessage
// @Failure      400   {object}  map[string]string
// @Router       /api/contact [post]
func (h *WorkflowHandler) SubmitContact(c echo.Context) error {
	req, err := bindAndValidate[contactRequest](c)
	if err != nil {
		return err
	}
	msg, err := h.workflow.SubmitContact(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	metrics.SubmissionsTotal.WithLabelValues("contact").Inc()
	return c.JSON(http.StatusCreated, msg)
}

// SubmitStudentApplication accepts a course enrollment application; it is
// persisted pending regardless of client input.
func (h *WorkflowHandler) SubmitStudentApplication(c echo.Context) error {
	req, err := bindAndValidate[studentApplicationRequest](c)
	if err != nil {
		return err
	}
	app, err := h.workflow.SubmitStudentApplication(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	metrics.SubmissionsTotal.WithLabelValues("student_application").Inc()
	return c.JSON(http.StatusCreated, app)
}

// SubmitCareerApplication accepts a job application; it is persisted
// pending regardless of client input.
func (h *WorkflowHandler) SubmitCareerApplication(c echo.Context) error {
	req, err := bindAndValidate[careerApplicationRequest](c)
	if err != nil {
		return err
	}
	app, err := h.workflow.SubmitCareerApplication(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	metrics.SubmissionsTotal.WithLabelValues("career_application").Inc()
	return c.JSON(http.StatusCreated, app)
}

// --- Admin reads ---

// ListStudentApplications supports ?status= and ?courseId= filters.
func (h *WorkflowHandler) ListStudentApplications(c echo.Context) error {
	apps, err := h.workflow.StudentApplications(c.Request().Context(), applicationFilter(c, "courseId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apps)
}

// ListCareerApplications supports ?status= and ?jobId= filters.
func (h *WorkflowHandler) ListCareerApplications(c echo.Context) error {
	apps, err := h.workflow.CareerApplications(c.Request().Context(), applicationFilter(c, "jobId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apps)
}

func (h *WorkflowHandler) ListContactMessages(c echo.Context) error {
	msgs, err := h.workflow.ContactMessages(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msgs)
}

// Stats returns the admin dashboard counters.
func (h *WorkflowHandler) Stats(c echo.Context) error {
	stats, err := h.workflow.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// --- Admin mutations ---

// SetStudentApplicationStatus moves an application to any status in the
// closed set; bogus values 400 before the id is even looked up.
func (h *WorkflowHandler) SetStudentApplicationStatus(c echo.Context) error {
	req, err := bindAndValidate[setStatusRequest](c)
	if err != nil {
		return err
	}
	app, err := h.workflow.SetStudentApplicationStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	metrics.StatusTransitionsTotal.WithLabelValues("student_application", string(app.Status)).Inc()
	return c.JSON(http.StatusOK, app)
}

func (h *WorkflowHandler) SetCareerApplicationStatus(c echo.Context) error {
	req, err := bindAndValidate[setStatusRequest](c)
	if err != nil {
		return err
	}
	app, err := h.workflow.SetCareerApplicationStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	metrics.StatusTransitionsTotal.WithLabelValues("career_application", string(app.Status)).Inc()
	return c.JSON(http.StatusOK, app)
}

// MarkMessageRead flags a contact message as read; re-marking is a no-op
// success.
func (h *WorkflowHandler) MarkMessageRead(c echo.Context) error {
	msg, err := h.workflow.MarkMessageRead(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msg)
}

func (h *WorkflowHandler) DeleteStudentApplication(c echo.Context) error {
	ok, err := h.workflow.DeleteStudentApplication(c.Request().Context(), c.Param("id"))
	return deleted(c, ok, err)
}

func (h *WorkflowHandler) DeleteCareerApplication(c echo.Context) error {
	ok, err := h.workflow.DeleteCareerApplication(c.Request().Context(), c.Param("id"))
	return deleted(c, ok, err)
}

func (h *WorkflowHandler) DeleteContactMessage(c echo.Context) error {
	ok, err := h.workflow.DeleteContactMessage(c.Request().Context(), c.Param("id"))
	return deleted(c, ok, err)
}
