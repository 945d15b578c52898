package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/alnoor-academy/institute-api/internal/core/domain"
	"github.com/alnoor-academy/institute-api/internal/core/ports"
)

// CatalogService applies the public-visibility policy on top of storage:
// public reads see only active/visible rows, admin reads see everything.
// Mutations pass through with logging; the store stamps timestamps.
type CatalogService struct {
	storage ports.Storage
	log     zerolog.Logger
}

func NewCatalogService(storage ports.Storage, log zerolog.Logger) *CatalogService {
	return &CatalogService{storage: storage, log: log}
}

// --- Public reads ---

func (s *CatalogService) PublicCategories(ctx context.Context) ([]domain.Category, error) {
	return s.storage.ListCategories(ctx, true)
}

func (s *CatalogService) PublicCourses(ctx context.Context) ([]domain.Course, error) {
	return s.storage.ListCourses(ctx, true)
}

func (s *CatalogService) FeaturedCourses(ctx context.Context) ([]domain.Course, error) {
	return s.storage.ListFeaturedCourses(ctx)
}

// PublicCourseByID hides inactive courses from the public site: an inactive
// id resolves the same as a missing one.
func (s *CatalogService) PublicCourseByID(ctx context.Context, id string) (*domain.Course, error) {
	course, err := s.storage.GetCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	if !course.Active {
		return nil, domain.ErrNotFound
	}
	return course, nil
}

func (s *CatalogService) PublicCoursesByCategory(ctx context.Context, categoryID string) ([]domain.Course, error) {
	return s.storage.ListCoursesByCategory(ctx, categoryID)
}

func (s *CatalogService) PublicTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	return s.storage.ListTestimonials(ctx, true)
}

func (s *CatalogService) PublicTeam(ctx context.Context) ([]domain.TeamMember, error) {
	return s.storage.ListTeamMembers(ctx, true)
}

func (s *CatalogService) PublicJobs(ctx context.Context) ([]domain.Job, error) {
	return s.storage.ListJobs(ctx, true)
}

func (s *CatalogService) PublicJobByID(ctx context.Context, id string) (*domain.Job, error) {
	job, err := s.storage.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}
	if !job.Active {
		return nil, domain.ErrNotFound
	}
	return job, nil
}

// --- Admin reads ---

func (s *CatalogService) AdminCategories(ctx context.Context) ([]domain.Category, error) {
	return s.storage.ListCategories(ctx, false)
}

func (s *CatalogService) AdminCourses(ctx context.Context) ([]domain.Course, error) {
	return s.storage.ListCourses(ctx, false)
}

func (s *CatalogService) AdminTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	return s.storage.ListTestimonials(ctx, false)
}

func (s *CatalogService) AdminTeam(ctx context.Context) ([]domain.TeamMember, error) {
	return s.storage.ListTeamMembers(ctx, false)
}

func (s *CatalogService) AdminJobs(ctx context.Context) ([]domain.Job, error) {
	return s.storage.ListJobs(ctx, false)
}

// --- Admin mutations ---

func (s *CatalogService) CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	created, err := s.storage.CreateCategory(ctx, c)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("id", created.ID).Str("name", created.Name).Msg("category created")
	return created, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id string, upd domain.CategoryUpdate) (*domain.Category, error) {
	return s.storage.UpdateCategory(ctx, id, upd)
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id string) (bool, error) {
	return s.deleteLogged(ctx, "category", id, s.storage.DeleteCategory)
}

func (s *CatalogService) CreateCourse(ctx context.Context, c *domain.Course) (*domain.Course, error) {
	created, err := s.storage.CreateCourse(ctx, c)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("id", created.ID).Str("title", created.Title).Msg("course created")
	return created, nil
}

func (s *CatalogService) UpdateCourse(ctx context.Context, id string, upd domain.CourseUpdate) (*domain.Course, error) {
	return s.storage.UpdateCourse(ctx, id, upd)
}

func (s *CatalogService) DeleteCourse(ctx context.Context, id string) (bool, error) {
	return s.deleteLogged(ctx, "course", id, s.storage.DeleteCourse)
}

func (s *CatalogService) CreateTestimonial(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error) {
	return s.storage.CreateTestimonial(ctx, t)
}

func (s *CatalogService) UpdateTestimonial(ctx context.Context, id string, upd domain.TestimonialUpdate) (*domain.Testimonial, error) {
	return s.storage.UpdateTestimonial(ctx, id, upd)
}

func (s *CatalogService) DeleteTestimonial(ctx context.Context, id string) (bool, error) {
	return s.deleteLogged(ctx, "testimonial", id, s.storage.DeleteTestimonial)
}

func (s *CatalogService) CreateTeamMember(ctx context.Context, m *domain.TeamMember) (*domain.TeamMember, error) {
	return s.storage.CreateTeamMember(ctx, m)
}

func (s *CatalogService) UpdateTeamMember(ctx context.Context, id string, upd domain.TeamMemberUpdate) (*domain.TeamMember, error) {
	return s.storage.UpdateTeamMember(ctx, id, upd)
}

func (s *CatalogService) DeleteTeamMember(ctx context.Context, id string) (bool, error) {
	return s.deleteLogged(ctx, "team member", id, s.storage.DeleteTeamMember)
}

func (s *CatalogService) CreateJob(ctx context.Context, j *domain.Job) (*domain.Job, error) {
	created, err := s.storage.CreateJob(ctx, j)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("id", created.ID).Str("title", created.Title).Msg("job created")
	return created, nil
}

func (s *CatalogService) UpdateJob(ctx context.Context, id string, upd domain.JobUpdate) (*domain.Job, error) {
	return s.storage.UpdateJob(ctx, id, upd)
}

func (s *CatalogService) DeleteJob(ctx context.Context, id string) (bool, error) {
	return s.deleteLogged(ctx, "job", id, s.storage.DeleteJob)
}

func (s *CatalogService) deleteLogged(ctx context.Context, kind, id string, del func(context.Context, string) (bool, error)) (bool, error) {
	deleted, err := del(ctx, id)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			s.log.Error().Err(err).Str("kind", kind).Str("id", id).Msg("delete failed")
		}
		return false, err
	}
	if deleted {
		s.log.Info().Str("kind", kind).Str("id", id).Msg("deleted")
	}
	return deleted, nil
}
