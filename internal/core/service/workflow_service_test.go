package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/alnoor-academy/institute-api/internal/core/domain"
	"github.com/alnoor-academy/institute-api/internal/infrastructure/memstore"
)

func newTestWorkflowService() (*WorkflowService, *memstore.Store) {
	store := memstore.New()
	return NewWorkflowService(store, zerolog.Nop()), store
}

func TestWorkflowService_SubmitForcesInitialState(t *testing.T) {
	svc, _ := newTestWorkflowService()
	ctx := context.Background()

	app, err := svc.SubmitStudentApplication(ctx, &domain.StudentApplication{
		Name:   "Student",
		Email:  "s@example.com",
		Status: domain.StatusAccepted, // client-supplied, must be ignored
	})
	if err != nil {
		t.Fatalf("SubmitStudentApplication returned error: %v", err)
	}
	if app.Status != domain.StatusPending {
		t.Fatalf("expected pending, got %s", app.Status)
	}

	career, err := svc.SubmitCareerApplication(ctx, &domain.CareerApplication{
		Name:   "Applicant",
		Email:  "a@example.com",
		Status: domain.StatusRejected,
	})
	if err != nil {
		t.Fatalf("SubmitCareerApplication returned error: %v", err)
	}
	if career.Status != domain.StatusPending {
		t.Fatalf("expected pending, got %s", career.Status)
	}

	msg, err := svc.SubmitContact(ctx, &domain.ContactMessage{
		Name:    "Visitor",
		Email:   "v@example.com",
		Message: "hello",
		IsRead:  true,
	})
	if err != nil {
		t.Fatalf("SubmitContact returned error: %v", err)
	}
	if msg.IsRead {
		t.Fatalf("new message must be unread")
	}
}

func TestWorkflowService_SetStatus_RejectsUnknownValue(t *testing.T) {
	svc, _ := newTestWorkflowService()
	ctx := context.Background()

	app, err := svc.SubmitStudentApplication(ctx, &domain.StudentApplication{Name: "S", Email: "s@example.com"})
	if err != nil {
		t.Fatalf("submit returned error: %v", err)
	}

	_, err = svc.SetStudentApplicationStatus(ctx, app.ID, "approved")
	if !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if !strings.Contains(err.Error(), "pending, reviewed, accepted, rejected") {
		t.Fatalf("error does not enumerate legal values: %v", err)
	}

	// Enum check happens before the lookup: bogus values on missing ids
	// still fail as validation errors, not not-found.
	if _, err := svc.SetStudentApplicationStatus(ctx, "999", "approved"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus for missing id, got %v", err)
	}

	got, err := svc.StudentApplications(ctx, domain.ApplicationFilter{})
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if got[0].Status != domain.StatusPending {
		t.Fatalf("rejected transition mutated the record: %s", got[0].Status)
	}
}

func TestWorkflowService_FreeTransitionGraph(t *testing.T) {
	svc, _ := newTestWorkflowService()
	ctx := context.Background()

	app, err := svc.SubmitCareerApplication(ctx, &domain.CareerApplication{Name: "A", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("submit returned error: %v", err)
	}

	// Every ordered pair of distinct statuses must be accepted, including
	// backward moves like accepted back to pending.
	for _, from := range domain.Statuses {
		for _, to := range domain.Statuses {
			if from == to {
				continue
			}
			if _, err := svc.SetCareerApplicationStatus(ctx, app.ID, string(from)); err != nil {
				t.Fatalf("move to %s: %v", from, err)
			}
			updated, err := svc.SetCareerApplicationStatus(ctx, app.ID, string(to))
			if err != nil {
				t.Fatalf("transition %s to %s rejected: %v", from, to, err)
			}
			if updated.Status != to {
				t.Fatalf("transition %s to %s left status %s", from, to, updated.Status)
			}
		}
	}
}

func TestWorkflowService_SetStatus_SameValue(t *testing.T) {
	svc, _ := newTestWorkflowService()
	ctx := context.Background()

	app, err := svc.SubmitStudentApplication(ctx, &domain.StudentApplication{Name: "S", Email: "s@example.com"})
	if err != nil {
		t.Fatalf("submit returned error: %v", err)
	}

	updated, err := svc.SetStudentApplicationStatus(ctx, app.ID, "pending")
	if err != nil {
		t.Fatalf("self-transition rejected: %v", err)
	}
	if updated.Status != domain.StatusPending {
		t.Fatalf("unexpected status %s", updated.Status)
	}
}

func TestWorkflowService_MarkMessageRead_Idempotent(t *testing.T) {
	svc, _ := newTestWorkflowService()
	ctx := context.Background()

	msg, err := svc.SubmitContact(ctx, &domain.ContactMessage{Name: "V", Email: "v@example.com", Message: "hi"})
	if err != nil {
		t.Fatalf("submit returned error: %v", err)
	}

	first, err := svc.MarkMessageRead(ctx, msg.ID)
	if err != nil {
		t.Fatalf("first MarkMessageRead returned error: %v", err)
	}
	if !first.IsRead {
		t.Fatalf("message not marked read")
	}

	second, err := svc.MarkMessageRead(ctx, msg.ID)
	if err != nil {
		t.Fatalf("second MarkMessageRead returned error: %v", err)
	}
	if !second.IsRead {
		t.Fatalf("idempotent re-mark lost the read flag")
	}

	if _, err := svc.MarkMessageRead(ctx, "999"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing message, got %v", err)
	}
}

func TestWorkflowService_Delete_FalseOnMissing(t *testing.T) {
	svc, _ := newTestWorkflowService()
	ctx := context.Background()

	app, err := svc.SubmitStudentApplication(ctx, &domain.StudentApplication{Name: "S", Email: "s@example.com"})
	if err != nil {
		t.Fatalf("submit returned error: %v", err)
	}

	ok, err := svc.DeleteStudentApplication(ctx, app.ID)
	if err != nil || !ok {
		t.Fatalf("delete of existing row: ok=%v err=%v", ok, err)
	}
	ok, err = svc.DeleteStudentApplication(ctx, app.ID)
	if err != nil {
		t.Fatalf("repeat delete returned error: %v", err)
	}
	if ok {
		t.Fatalf("repeat delete reported true")
	}
}

func TestWorkflowService_ListFilters(t *testing.T) {
	svc, _ := newTestWorkflowService()
	ctx := context.Background()

	a1, _ := svc.SubmitStudentApplication(ctx, &domain.StudentApplication{CourseID: "c1", Name: "A", Email: "a@example.com"})
	a2, _ := svc.SubmitStudentApplication(ctx, &domain.StudentApplication{CourseID: "c2", Name: "B", Email: "b@example.com"})
	if _, err := svc.SetStudentApplicationStatus(ctx, a2.ID, "reviewed"); err != nil {
		t.Fatalf("set status returned error: %v", err)
	}

	byStatus, err := svc.StudentApplications(ctx, domain.ApplicationFilter{Status: domain.StatusReviewed})
	if err != nil {
		t.Fatalf("list by status returned error: %v", err)
	}
	if len(byStatus) != 1 || byStatus[0].ID != a2.ID {
		t.Fatalf("status filter returned %+v", byStatus)
	}

	byCourse, err := svc.StudentApplications(ctx, domain.ApplicationFilter{SubjectID: "c1"})
	if err != nil {
		t.Fatalf("list by course returned error: %v", err)
	}
	if len(byCourse) != 1 || byCourse[0].ID != a1.ID {
		t.Fatalf("course filter returned %+v", byCourse)
	}

	both, err := svc.StudentApplications(ctx, domain.ApplicationFilter{Status: domain.StatusReviewed, SubjectID: "c1"})
	if err != nil {
		t.Fatalf("combined filter returned error: %v", err)
	}
	if len(both) != 0 {
		t.Fatalf("AND-composed filter returned %+v", both)
	}
}

func TestWorkflowService_Stats(t *testing.T) {
	svc, store := newTestWorkflowService()
	ctx := context.Background()

	if _, err := store.CreateCourse(ctx, &domain.Course{Title: "Active", Active: true}); err != nil {
		t.Fatalf("create course: %v", err)
	}
	if _, err := store.CreateCourse(ctx, &domain.Course{Title: "Hidden", Active: false}); err != nil {
		t.Fatalf("create course: %v", err)
	}

	if _, err := svc.SubmitStudentApplication(ctx, &domain.StudentApplication{Name: "S", Email: "s@example.com"}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := svc.SubmitCareerApplication(ctx, &domain.CareerApplication{Name: "C", Email: "c@example.com"}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	read, err := svc.SubmitContact(ctx, &domain.ContactMessage{Name: "R", Email: "r@example.com", Message: "m"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := svc.SubmitContact(ctx, &domain.ContactMessage{Name: "U", Email: "u@example.com", Message: "m"}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := svc.MarkMessageRead(ctx, read.ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.StudentCount != 1 || stats.ApplicationCount != 1 {
		t.Fatalf("application counters wrong: %+v", stats)
	}
	if stats.CourseCount != 1 {
		t.Fatalf("CourseCount must count active courses only, got %d", stats.CourseCount)
	}
	if stats.UnreadMessageCount != 1 {
		t.Fatalf("UnreadMessageCount wrong: %d", stats.UnreadMessageCount)
	}
}
