package ports

import (
	"context"

	"github.com/alnoor-academy/institute-api/internal/core/domain"
)

// CatalogService owns the visibility policy for admin-curated content:
// public reads are filtered to active/visible rows, admin reads are not.
type CatalogService interface {
	// Public reads (filtered).
	PublicCategories(ctx context.Context) ([]domain.Category, error)
	PublicCourses(ctx context.Context) ([]domain.Course, error)
	FeaturedCourses(ctx context.Context) ([]domain.Course, error)
	PublicCourseByID(ctx context.Context, id string) (*domain.Course, error)
	PublicCoursesByCategory(ctx context.Context, categoryID string) ([]domain.Course, error)
	PublicTestimonials(ctx context.Context) ([]domain.Testimonial, error)
	PublicTeam(ctx context.Context) ([]domain.TeamMember, error)
	PublicJobs(ctx context.Context) ([]domain.Job, error)
	PublicJobByID(ctx context.Context, id string) (*domain.Job, error)

	// Admin reads (unfiltered).
	AdminCategories(ctx context.Context) ([]domain.Category, error)
	AdminCourses(ctx context.Context) ([]domain.Course, error)
	AdminTestimonials(ctx context.Context) ([]domain.Testimonial, error)
	AdminTeam(ctx context.Context) ([]domain.TeamMember, error)
	AdminJobs(ctx context.Context) ([]domain.Job, error)

	// Admin mutations.
	CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id string, upd domain.CategoryUpdate) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) (bool, error)

	CreateCourse(ctx context.Context, c *domain.Course) (*domain.Course, error)
	UpdateCourse(ctx context.Context, id string, upd domain.CourseUpdate) (*domain.Course, error)
	DeleteCourse(ctx context.Context, id string) (bool, error)

	CreateTestimonial(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id string, upd domain.TestimonialUpdate) (*domain.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id string) (bool, error)

	CreateTeamMember(ctx context.Context, m *domain.TeamMember) (*domain.TeamMember, error)
	UpdateTeamMember(ctx context.Context, id string, upd domain.TeamMemberUpdate) (*domain.TeamMember, error)
	DeleteTeamMember(ctx context.Context, id string) (bool, error)

	CreateJob(ctx context.Context, j *domain.Job) (*domain.Job, error)
	UpdateJob(ctx context.Context, id string, upd domain.JobUpdate) (*domain.Job, error)
	DeleteJob(ctx context.Context, id string) (bool, error)
}
