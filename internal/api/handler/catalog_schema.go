package handler

import "github.com/alnoor-academy/institute-api/internal/core/domain"

// Request schemas for the catalog CRUD endpoints. Create payloads default
// the visibility flags to true when omitted, matching how admin tooling
// publishes new content. Update payloads are all-optional; nil fields are
// left untouched.

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

// --- Categories ---

type createCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Active      *bool  `json:"active"`
}

func (r *createCategoryRequest) toDomain() *domain.Category {
	return &domain.Category{
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Active:      boolOr(r.Active, true),
	}
}

type updateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Active      *bool   `json:"active"`
}

func (r *updateCategoryRequest) toUpdate() domain.CategoryUpdate {
	return domain.CategoryUpdate{
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Active:      r.Active,
	}
}

// --- Courses ---

type createCourseRequest struct {
	Title           string `json:"title" validate:"required"`
	Description     string `json:"description" validate:"required"`
	Image           string `json:"image"`
	Duration        string `json:"duration"`
	Price           string `json:"price"`
	Featured        *bool  `json:"featured"`
	CategoryID      string `json:"categoryId"`
	InstructorName  string `json:"instructorName"`
	InstructorTitle string `json:"instructorTitle"`
	InstructorImage string `json:"instructorImage"`
	Rating          string `json:"rating"`
	ReviewCount     *int   `json:"reviewCount" validate:"omitempty,min=0"`
	Active          *bool  `json:"active"`
}

func (r *createCourseRequest) toDomain() *domain.Course {
	return &domain.Course{
		Title:           r.Title,
		Description:     r.Description,
		Image:           r.Image,
		Duration:        r.Duration,
		Price:           r.Price,
		Featured:        boolOr(r.Featured, false),
		CategoryID:      r.CategoryID,
		InstructorName:  r.InstructorName,
		InstructorTitle: r.InstructorTitle,
		InstructorImage: r.InstructorImage,
		Rating:          r.Rating,
		ReviewCount:     intOr(r.ReviewCount, 0),
		Active:          boolOr(r.Active, true),
	}
}

type updateCourseRequest struct {
	Title           *string `json:"title" validate:"omitempty,min=1"`
	Description     *string `json:"description"`
	Image           *string `json:"image"`
	Duration        *string `json:"duration"`
	Price           *string `json:"price"`
	Featured        *bool   `json:"featured"`
	CategoryID      *string `json:"categoryId"`
	InstructorName  *string `json:"instructorName"`
	InstructorTitle *string `json:"instructorTitle"`
	InstructorImage *string `json:"instructorImage"`
	Rating          *string `json:"rating"`
	ReviewCount     *int    `json:"reviewCount" validate:"omitempty,min=0"`
	Active          *bool   `json:"active"`
}

func (r *updateCourseRequest) toUpdate() domain.CourseUpdate {
	return domain.CourseUpdate{
		Title:           r.Title,
		Description:     r.Description,
		Image:           r.Image,
		Duration:        r.Duration,
		Price:           r.Price,
		Featured:        r.Featured,
		CategoryID:      r.CategoryID,
		InstructorName:  r.InstructorName,
		InstructorTitle: r.InstructorTitle,
		InstructorImage: r.InstructorImage,
		Rating:          r.Rating,
		ReviewCount:     r.ReviewCount,
		Active:          r.Active,
	}
}

// --- Testimonials ---

type createTestimonialRequest struct {
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role"`
	Content  string `json:"content" validate:"required"`
	Rating   *int   `json:"rating" validate:"omitempty,min=1,max=5"`
	ImageURL string `json:"imageUrl"`
	Visible  *bool  `json:"visible"`
}

func (r *createTestimonialRequest) toDomain() *domain.Testimonial {
	return &domain.Testimonial{
		Name:     r.Name,
		Role:     r.Role,
		Content:  r.Content,
		Rating:   intOr(r.Rating, 5),
		ImageURL: r.ImageURL,
		Visible:  boolOr(r.Visible, true),
	}
}

type updateTestimonialRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Role     *string `json:"role"`
	Content  *string `json:"content" validate:"omitempty,min=1"`
	Rating   *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	ImageURL *string `json:"imageUrl"`
	Visible  *bool   `json:"visible"`
}

func (r *updateTestimonialRequest) toUpdate() domain.TestimonialUpdate {
	return domain.TestimonialUpdate{
		Name:     r.Name,
		Role:     r.Role,
		Content:  r.Content,
		Rating:   r.Rating,
		ImageURL: r.ImageURL,
		Visible:  r.Visible,
	}
}

// --- Team members ---

type createTeamMemberRequest struct {
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required"`
	Bio      string `json:"bio"`
	ImageURL string `json:"imageUrl"`
	Visible  *bool  `json:"visible"`
}

func (r *createTeamMemberRequest) toDomain() *domain.TeamMember {
	return &domain.TeamMember{
		Name:     r.Name,
		Role:     r.Role,
		Bio:      r.Bio,
		ImageURL: r.ImageURL,
		Visible:  boolOr(r.Visible, true),
	}
}

type updateTeamMemberRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Role     *string `json:"role" validate:"omitempty,min=1"`
	Bio      *string `json:"bio"`
	ImageURL *string `json:"imageUrl"`
	Visible  *bool   `json:"visible"`
}

func (r *updateTeamMemberRequest) toUpdate() domain.TeamMemberUpdate {
	return domain.TeamMemberUpdate{
		Name:     r.Name,
		Role:     r.Role,
		Bio:      r.Bio,
		ImageURL: r.ImageURL,
		Visible:  r.Visible,
	}
}

// --- Jobs ---

type createJobRequest struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Requirements string `json:"requirements" validate:"required"`
	Location     string `json:"location"`
	Type         string `json:"type"`
	Active       *bool  `json:"active"`
}

func (r *createJobRequest) toDomain() *domain.Job {
	return &domain.Job{
		Title:        r.Title,
		Description:  r.Description,
		Requirements: r.Requirements,
		Location:     r.Location,
		Type:         r.Type,
		Active:       boolOr(r.Active, true),
	}
}

type updateJobRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=1"`
	Description  *string `json:"description"`
	Requirements *string `json:"requirements"`
	Location     *string `json:"location"`
	Type         *string `json:"type"`
	Active       *bool   `json:"active"`
}

func (r *updateJobRequest) toUpdate() domain.JobUpdate {
	return domain.JobUpdate{
		Title:        r.Title,
		Description:  r.Description,
		Requirements: r.Requirements,
		Location:     r.Location,
		Type:         r.Type,
		Active:       r.Active,
	}
}
