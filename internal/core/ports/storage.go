package ports

import (
	"context"

	"github.com/alnoor-academy/institute-api/internal/core/domain"
)

// Storage is the uniform persistence contract both backends implement.
// Application code depends only on this interface; whether rows live in a
// relational table or a document collection is an infrastructure choice
// made once at startup.
//
// Conventions shared by every method set:
//   - Identifiers are opaque strings, whatever the backend uses internally.
//   - Create and Update stamp CreatedAt/UpdatedAt server-side; callers
//     never supply them.
//   - Lookups and updates of missing ids return a sentinel
//     (domain.ErrNotFound / domain.ErrUserNotFound), never a panic.
//     Genuine I/O failures are returned as ordinary wrapped errors.
//   - Delete reports (false, nil) when the id did not exist, so callers
//     can distinguish "nothing to delete" from a storage failure.
type Storage interface {
	UserStore
	CategoryStore
	CourseStore
	TestimonialStore
	TeamMemberStore
	JobStore
	StudentApplicationStore
	CareerApplicationStore
	ContactMessageStore

	// Stats aggregates the admin dashboard counters in one call.
	Stats(ctx context.Context) (*domain.DashboardStats, error)

	// Ping verifies backend connectivity for the readiness probe.
	Ping(ctx context.Context) error
}

type UserStore interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
}

type CategoryStore interface {
	// ListCategories returns active categories only when onlyActive is set;
	// admin callers pass false to see every row.
	ListCategories(ctx context.Context, onlyActive bool) ([]domain.Category, error)
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
	CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id string, upd domain.CategoryUpdate) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) (bool, error)
}

type CourseStore interface {
	ListCourses(ctx context.Context, onlyActive bool) ([]domain.Course, error)
	// ListFeaturedCourses filters on both featured and active, matching the
	// public landing-page query.
	ListFeaturedCourses(ctx context.Context) ([]domain.Course, error)
	// ListCoursesByCategory returns active courses in the category.
	ListCoursesByCategory(ctx context.Context, categoryID string) ([]domain.Course, error)
	GetCourse(ctx context.Context, id string) (*domain.Course, error)
	CreateCourse(ctx context.Context, c *domain.Course) (*domain.Course, error)
	UpdateCourse(ctx context.Context, id string, upd domain.CourseUpdate) (*domain.Course, error)
	DeleteCourse(ctx context.Context, id string) (bool, error)
}

type TestimonialStore interface {
	ListTestimonials(ctx context.Context, onlyVisible bool) ([]domain.Testimonial, error)
	GetTestimonial(ctx context.Context, id string) (*domain.Testimonial, error)
	CreateTestimonial(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id string, upd domain.TestimonialUpdate) (*domain.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id string) (bool, error)
}

type TeamMemberStore interface {
	ListTeamMembers(ctx context.Context, onlyVisible bool) ([]domain.TeamMember, error)
	GetTeamMember(ctx context.Context, id string) (*domain.TeamMember, error)
	CreateTeamMember(ctx context.Context, m *domain.TeamMember) (*domain.TeamMember, error)
	UpdateTeamMember(ctx context.Context, id string, upd domain.TeamMemberUpdate) (*domain.TeamMember, error)
	DeleteTeamMember(ctx context.Context, id string) (bool, error)
}

type JobStore interface {
	ListJobs(ctx context.Context, onlyActive bool) ([]domain.Job, error)
	GetJob(ctx context.Context, id string) (*domain.Job, error)
	CreateJob(ctx context.Context, j *domain.Job) (*domain.Job, error)
	UpdateJob(ctx context.Context, id string, upd domain.JobUpdate) (*domain.Job, error)
	DeleteJob(ctx context.Context, id string) (bool, error)
}

type StudentApplicationStore interface {
	// ListStudentApplications returns rows newest-first. Filter fields are
	// AND-composed; zero values are unconstrained.
	ListStudentApplications(ctx context.Context, f domain.ApplicationFilter) ([]domain.StudentApplication, error)
	GetStudentApplication(ctx context.Context, id string) (*domain.StudentApplication, error)
	CreateStudentApplication(ctx context.Context, a *domain.StudentApplication) (*domain.StudentApplication, error)
	UpdateStudentApplicationStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.StudentApplication, error)
	DeleteStudentApplication(ctx context.Context, id string) (bool, error)
}

type CareerApplicationStore interface {
	ListCareerApplications(ctx context.Context, f domain.ApplicationFilter) ([]domain.CareerApplication, error)
	GetCareerApplication(ctx context.Context, id string) (*domain.CareerApplication, error)
	CreateCareerApplication(ctx context.Context, a *domain.CareerApplication) (*domain.CareerApplication, error)
	UpdateCareerApplicationStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.CareerApplication, error)
	DeleteCareerApplication(ctx context.Context, id string) (bool, error)
}

type ContactMessageStore interface {
	ListContactMessages(ctx context.Context) ([]domain.ContactMessage, error)
	GetContactMessage(ctx context.Context, id string) (*domain.ContactMessage, error)
	CreateContactMessage(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error)
	// MarkContactMessageRead is idempotent: re-marking a read message is a
	// no-op success.
	MarkContactMessageRead(ctx context.Context, id string) (*domain.ContactMessage, error)
	DeleteContactMessage(ctx context.Context, id string) (bool, error)
}
