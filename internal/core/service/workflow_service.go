package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/alnoor-academy/institute-api/internal/core/domain"
	"github.com/alnoor-academy/institute-api/internal/core/ports"
)

// WorkflowService governs submitted entities through their review lifecycle.
// Submissions always persist in the initial state regardless of what a
// caller supplies; status changes validate against the closed enumeration
// before any lookup and never inspect the current status: every status is
// reachable from every other one.
type WorkflowService struct {
	storage ports.Storage
	log     zerolog.Logger
}

func NewWorkflowService(storage ports.Storage, log zerolog.Logger) *WorkflowService {
	return &WorkflowService{storage: storage, log: log}
}

// --- Public submissions ---

func (s *WorkflowService) SubmitContact(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error) {
	m.IsRead = false
	created, err := s.storage.CreateContactMessage(ctx, m)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("id", created.ID).Msg("contact message received")
	return created, nil
}

func (s *WorkflowService) SubmitStudentApplication(ctx context.Context, a *domain.StudentApplication) (*domain.StudentApplication, error) {
	a.Status = domain.StatusPending
	created, err := s.storage.CreateStudentApplication(ctx, a)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("id", created.ID).Str("course_id", created.CourseID).Msg("student application received")
	return created, nil
}

func (s *WorkflowService) SubmitCareerApplication(ctx context.Context, a *domain.CareerApplication) (*domain.CareerApplication, error) {
	a.Status = domain.StatusPending
	created, err := s.storage.CreateCareerApplication(ctx, a)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("id", created.ID).Str("job_id", created.JobID).Msg("career application received")
	return created, nil
}

// --- Admin reads ---

func (s *WorkflowService) StudentApplications(ctx context.Context, f domain.ApplicationFilter) ([]domain.StudentApplication, error) {
	return s.storage.ListStudentApplications(ctx, f)
}

func (s *WorkflowService) CareerApplications(ctx context.Context, f domain.ApplicationFilter) ([]domain.CareerApplication, error) {
	return s.storage.ListCareerApplications(ctx, f)
}

func (s *WorkflowService) ContactMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.storage.ListContactMessages(ctx)
}

func (s *WorkflowService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	return s.storage.Stats(ctx)
}

// --- Admin mutations ---

func (s *WorkflowService) SetStudentApplicationStatus(ctx context.Context, id, status string) (*domain.StudentApplication, error) {
	parsed, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	updated, err := s.storage.UpdateStudentApplicationStatus(ctx, id, parsed)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("id", id).Str("status", status).Msg("student application status updated")
	return updated, nil
}

func (s *WorkflowService) SetCareerApplicationStatus(ctx context.Context, id, status string) (*domain.CareerApplication, error) {
	parsed, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	updated, err := s.storage.UpdateCareerApplicationStatus(ctx, id, parsed)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("id", id).Str("status", status).Msg("career application status updated")
	return updated, nil
}

func (s *WorkflowService) MarkMessageRead(ctx context.Context, id string) (*domain.ContactMessage, error) {
	return s.storage.MarkContactMessageRead(ctx, id)
}

func (s *WorkflowService) DeleteStudentApplication(ctx context.Context, id string) (bool, error) {
	return s.storage.DeleteStudentApplication(ctx, id)
}

func (s *WorkflowService) DeleteCareerApplication(ctx context.Context, id string) (bool, error) {
	return s.storage.DeleteCareerApplication(ctx, id)
}

func (s *WorkflowService) DeleteContactMessage(ctx context.Context, id string) (bool, error) {
	return s.storage.DeleteContactMessage(ctx, id)
}
