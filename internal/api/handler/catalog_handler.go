package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alnoor-academy/institute-api/internal/core/domain"
	"github.com/alnoor-academy/institute-api/internal/core/ports"
)

// CatalogHandler serves the public catalog reads and the admin CRUD for
// the five curated content kinds.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// deleted renders a delete outcome: 204 on success, 404 when the id did
// not exist.
func deleted(c echo.Context, ok bool, err error) error {
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Public reads ---

// ListCategories returns the active categories.
//
// @Summary      List active categories
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.Category
// @Router       /api/categories [get]
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalog.PublicCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// ListCourses returns the active courses.
//
// @Summary      List active courses
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.Course
// @Router       /api/courses [get]
func (h *CatalogHandler) ListCourses(c echo.Context) error {
	courses, err := h.catalog.PublicCourses(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, courses)
}

// ListFeaturedCourses returns courses that are both featured and active.
func (h *CatalogHandler) ListFeaturedCourses(c echo.Context) error {
	courses, err := h.catalog.FeaturedCourses(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, courses)
}

// GetCourse returns one active course; inactive and unknown ids both 404.
func (h *CatalogHandler) GetCourse(c echo.Context) error {
	course, err := h.catalog.PublicCourseByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, course)
}

// ListCoursesByCategory returns the active courses in a category.
func (h *CatalogHandler) ListCoursesByCategory(c echo.Context) error {
	courses, err := h.catalog.PublicCoursesByCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, courses)
}

// ListTestimonials returns the visible testimonials.
func (h *CatalogHandler) ListTestimonials(c echo.Context) error {
	testimonials, err := h.catalog.PublicTestimonials(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, testimonials)
}

// ListTeam returns the visible team members.
func (h *CatalogHandler) ListTeam(c echo.Context) error {
	team, err := h.catalog.PublicTeam(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, team)
}

// ListJobs returns the active job openings.
func (h *CatalogHandler) ListJobs(c echo.Context) error {
	jobs, err := h.catalog.PublicJobs(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobs)
}

// GetJob returns one active job opening; inactive and unknown ids both 404.
func (h *CatalogHandler) GetJob(c echo.Context) error {
	job, err := h.catalog.PublicJobByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

// --- Admin reads (unfiltered) ---

func (h *CatalogHandler) AdminListCategories(c echo.Context) error {
	categories, err := h.catalog.AdminCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *CatalogHandler) AdminListCourses(c echo.Context) error {
	courses, err := h.catalog.AdminCourses(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, courses)
}

func (h *CatalogHandler) AdminListTestimonials(c echo.Context) error {
	testimonials, err := h.catalog.AdminTestimonials(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, testimonials)
}

func (h *CatalogHandler) AdminListTeam(c echo.Context) error {
	team, err := h.catalog.AdminTeam(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, team)
}

func (h *CatalogHandler) AdminListJobs(c echo.Context) error {
	jobs, err := h.catalog.AdminJobs(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobs)
}

// --- Admin mutations ---

func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	req, err := bindAndValidate[createCategoryRequest](c)
	if err != nil {
		return err
	}
	category, err := h.catalog.CreateCategory(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, category)
}

func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	req, err := bindAndValidate[updateCategoryRequest](c)
	if err != nil {
		return err
	}
	category, err := h.catalog.UpdateCategory(c.Request().Context(), c.Param("id"), req.toUpdate())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	ok, err := h.catalog.DeleteCategory(c.Request().Context(), c.Param("id"))
	return deleted(c, ok, err)
}

func (h *CatalogHandler) CreateCourse(c echo.Context) error {
	req, err := bindAndValidate[createCourseRequest](c)
	if err != nil {
		return err
	}
	course, err := h.catalog.CreateCourse(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, course)
}

func (h *CatalogHandler) UpdateCourse(c echo.Context) error {
	req, err := bindAndValidate[updateCourseRequest](c)
	if err != nil {
		return err
	}
	course, err := h.catalog.UpdateCourse(c.Request().Context(), c.Param("id"), req.toUpdate())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, course)
}

func (h *CatalogHandler) DeleteCourse(c echo.Context) error {
	ok, err := h.catalog.DeleteCourse(c.Request().Context(), c.Param("id"))
	return deleted(c, ok, err)
}

func (h *CatalogHandler) CreateTestimonial(c echo.Context) error {
	req, err := bindAndValidate[createTestimonialRequest](c)
	if err != nil {
		return err
	}
	testimonial, err := h.catalog.CreateTestimonial(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, testimonial)
}

func (h *CatalogHandler) UpdateTestimonial(c echo.Context) error {
	req, err := bindAndValidate[updateTestimonialRequest](c)
	if err != nil {
		return err
	}
	testimonial, err := h.catalog.UpdateTestimonial(c.Request().Context(), c.Param("id"), req.toUpdate())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, testimonial)
}

func (h *CatalogHandler) DeleteTestimonial(c echo.Context) error {
	ok, err := h.catalog.DeleteTestimonial(c.Request().Context(), c.Param("id"))
	return deleted(c, ok, err)
}

func (h *CatalogHandler) CreateTeamMember(c echo.Context) error {
	req, err := bindAndValidate[createTeamMemberRequest](c)
	if err != nil {
		return err
	}
	member, err := h.catalog.CreateTeamMember(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, member)
}

func (h *CatalogHandler) UpdateTeamMember(c echo.Context) error {
	req, err := bindAndValidate[updateTeamMemberRequest](c)
	if err != nil {
		return err
	}
	member, err := h.catalog.UpdateTeamMember(c.Request().Context(), c.Param("id"), req.toUpdate())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, member)
}

func (h *CatalogHandler) DeleteTeamMember(c echo.Context) error {
	ok, err := h.catalog.DeleteTeamMember(c.Request().Context(), c.Param("id"))
	return deleted(c, ok, err)
}

func (h *CatalogHandler) CreateJob(c echo.Context) error {
	req, err := bindAndValidate[createJobRequest](c)
	if err != nil {
		return err
	}
	job, err := h.catalog.CreateJob(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, job)
}

func (h *CatalogHandler) UpdateJob(c echo.Context) error {
	req, err := bindAndValidate[updateJobRequest](c)
	if err != nil {
		return err
	}
	job, err := h.catalog.UpdateJob(c.Request().Context(), c.Param("id"), req.toUpdate())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

func (h *CatalogHandler) DeleteJob(c echo.Context) error {
	ok, err := h.catalog.DeleteJob(c.Request().Context(), c.Param("id"))
	return deleted(c, ok, err)
}
