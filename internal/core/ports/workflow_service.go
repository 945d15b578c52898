package ports

import (
	"context"

	"github.com/alnoor-academy/institute-api/internal/core/domain"
)

// WorkflowService accepts public submissions and drives their review
// lifecycle. Status changes validate the enum before touching storage and
// never reject a transition based on the current status: the review state
// machine is a free graph, not a pipeline.
type WorkflowService interface {
	// Public submissions; each persists with its initial state.
	SubmitContact(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error)
	SubmitStudentApplication(ctx context.Context, a *domain.StudentApplication) (*domain.StudentApplication, error)
	SubmitCareerApplication(ctx context.Context, a *domain.CareerApplication) (*domain.CareerApplication, error)

	// Admin reads.
	StudentApplications(ctx context.Context, f domain.ApplicationFilter) ([]domain.StudentApplication, error)
	CareerApplications(ctx context.Context, f domain.ApplicationFilter) ([]domain.CareerApplication, error)
	ContactMessages(ctx context.Context) ([]domain.ContactMessage, error)
	Stats(ctx context.Context) (*domain.DashboardStats, error)

	// Admin mutations. SetStatus rejects values outside the closed
	// enumeration with domain.ErrInvalidStatus before any lookup.
	SetStudentApplicationStatus(ctx context.Context, id, status string) (*domain.StudentApplication, error)
	SetCareerApplicationStatus(ctx context.Context, id, status string) (*domain.CareerApplication, error)
	MarkMessageRead(ctx context.Context, id string) (*domain.ContactMessage, error)

	DeleteStudentApplication(ctx context.Context, id string) (bool, error)
	DeleteCareerApplication(ctx context.Context, id string) (bool, error)
	DeleteContactMessage(ctx context.Context, id string) (bool, error)
}
