package memstore

import (
	"context"
	"testing"

	"github.com/alnoor-academy/institute-api/internal/core/domain"
)

func TestStore_CourseOrdering(t *testing.T) {
	s := New()
	ctx := context.Background()

	for _, title := range []string{"Quran", "Arabic", "Fiqh"} {
		if _, err := s.CreateCourse(ctx, &domain.Course{Title: title, Active: true}); err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
	}

	courses, err := s.ListCourses(ctx, true)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	want := []string{"Arabic", "Fiqh", "Quran"}
	for i, title := range want {
		if courses[i].Title != title {
			t.Fatalf("courses out of order: got %v at %d, want %v", courses[i].Title, i, title)
		}
	}
}

func TestStore_WorkflowNewestFirst(t *testing.T) {
	s := New()
	ctx := context.Background()

	first, err := s.CreateStudentApplication(ctx, &domain.StudentApplication{Name: "First", Email: "f@example.com", Status: domain.StatusPending})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := s.CreateStudentApplication(ctx, &domain.StudentApplication{Name: "Second", Email: "s@example.com", Status: domain.StatusPending})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	apps, err := s.ListStudentApplications(ctx, domain.ApplicationFilter{})
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(apps) != 2 || apps[0].ID != second.ID || apps[1].ID != first.ID {
		t.Fatalf("expected newest first, got %+v", apps)
	}
}

func TestStore_UpdateDoesNotTouchCreatedAt(t *testing.T) {
	s := New()
	ctx := context.Background()

	job, err := s.CreateJob(ctx, &domain.Job{Title: "Imam", Description: "Lead", Requirements: "Ijazah", Active: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	title := "Senior Imam"
	updated, err := s.UpdateJob(ctx, job.ID, domain.JobUpdate{Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.CreatedAt.Equal(job.CreatedAt) {
		t.Fatalf("update moved CreatedAt: %v to %v", job.CreatedAt, updated.CreatedAt)
	}
	if updated.UpdatedAt.Before(job.UpdatedAt) {
		t.Fatalf("UpdatedAt went backwards")
	}
}

func TestStore_CloneOnRead(t *testing.T) {
	s := New()
	ctx := context.Background()

	created, err := s.CreateCategory(ctx, &domain.Category{Name: "Original", Active: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.GetCategory(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got.Name = "Mutated"

	again, err := s.GetCategory(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if again.Name != "Original" {
		t.Fatalf("store leaked internal state: %+v", again)
	}
}
