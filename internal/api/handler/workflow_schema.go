package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/alnoor-academy/institute-api/internal/core/domain"
)

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

func (r *contactRequest) toDomain() *domain.ContactMessage {
	return &domain.ContactMessage{
		Name:    r.Name,
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
	}
}

type studentApplicationRequest struct {
	CourseID string `json:"courseId"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
}

func (r *studentApplicationRequest) toDomain() *domain.StudentApplication {
	return &domain.StudentApplication{
		CourseID: r.CourseID,
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Message:  r.Message,
	}
}

type careerApplicationRequest struct {
	JobID       string `json:"jobId"`
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone"`
	CoverLetter string `json:"coverLetter"`
	ResumeURL   string `json:"resumeUrl"`
}

func (r *careerApplicationRequest) toDomain() *domain.CareerApplication {
	return &domain.CareerApplication{
		JobID:       r.JobID,
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		CoverLetter: r.CoverLetter,
		ResumeURL:   r.ResumeURL,
	}
}

// setStatusRequest carries no enum tag: the service validates
// the value against the closed set so the error enumerates the legal ones.
type setStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// applicationFilter parses the admin list query parameters. "all" and the
// empty string both mean unconstrained, matching the admin UI's default
// filter option.
func applicationFilter(c echo.Context, subjectParam string) domain.ApplicationFilter {
	var f domain.ApplicationFilter
	if status := c.QueryParam("status"); status != "" && status != "all" {
		f.Status = domain.ApplicationStatus(status)
	}
	if subject := c.QueryParam(subjectParam); subject != "" && subject != "all" {
		f.SubjectID = subject
	}
	return f
}
