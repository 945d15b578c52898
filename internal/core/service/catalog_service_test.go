package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/alnoor-academy/institute-api/internal/core/domain"
	"github.com/alnoor-academy/institute-api/internal/infrastructure/memstore"
)

func newTestCatalogService() *CatalogService {
	return NewCatalogService(memstore.New(), zerolog.Nop())
}

func TestCatalogService_PublicFiltersInactive(t *testing.T) {
	svc := newTestCatalogService()
	ctx := context.Background()

	visible, err := svc.CreateCourse(ctx, &domain.Course{Title: "Visible", Active: true})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if _, err := svc.CreateCourse(ctx, &domain.Course{Title: "Hidden", Active: false}); err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	public, err := svc.PublicCourses(ctx)
	if err != nil {
		t.Fatalf("PublicCourses returned error: %v", err)
	}
	if len(public) != 1 || public[0].ID != visible.ID {
		t.Fatalf("public list: %+v", public)
	}

	all, err := svc.AdminCourses(ctx)
	if err != nil {
		t.Fatalf("AdminCourses returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("admin list must be unfiltered, got %d rows", len(all))
	}
}

func TestCatalogService_VisibilityToggle(t *testing.T) {
	svc := newTestCatalogService()
	ctx := context.Background()

	course, err := svc.CreateCourse(ctx, &domain.Course{Title: "Course", Active: true})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	off := false
	if _, err := svc.UpdateCourse(ctx, course.ID, domain.CourseUpdate{Active: &off}); err != nil {
		t.Fatalf("deactivate returned error: %v", err)
	}
	if public, _ := svc.PublicCourses(ctx); len(public) != 0 {
		t.Fatalf("deactivated course still publicly listed")
	}

	on := true
	if _, err := svc.UpdateCourse(ctx, course.ID, domain.CourseUpdate{Active: &on}); err != nil {
		t.Fatalf("reactivate returned error: %v", err)
	}
	if public, _ := svc.PublicCourses(ctx); len(public) != 1 {
		t.Fatalf("reactivated course missing from public list")
	}
}

func TestCatalogService_PublicCourseByID_HidesInactive(t *testing.T) {
	svc := newTestCatalogService()
	ctx := context.Background()

	hidden, err := svc.CreateCourse(ctx, &domain.Course{Title: "Hidden", Active: false})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	if _, err := svc.PublicCourseByID(ctx, hidden.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for inactive course, got %v", err)
	}
	if _, err := svc.PublicCourseByID(ctx, "999"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing course, got %v", err)
	}
}

func TestCatalogService_FeaturedRequiresActive(t *testing.T) {
	svc := newTestCatalogService()
	ctx := context.Background()

	featured, err := svc.CreateCourse(ctx, &domain.Course{Title: "Promoted", Featured: true, Active: true})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	// Featured does not imply active: this row is representable but must
	// never surface in the featured list.
	if _, err := svc.CreateCourse(ctx, &domain.Course{Title: "Retired", Featured: true, Active: false}); err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if _, err := svc.CreateCourse(ctx, &domain.Course{Title: "Plain", Active: true}); err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	got, err := svc.FeaturedCourses(ctx)
	if err != nil {
		t.Fatalf("FeaturedCourses returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != featured.ID {
		t.Fatalf("featured list: %+v", got)
	}
}

func TestCatalogService_PartialUpdate(t *testing.T) {
	svc := newTestCatalogService()
	ctx := context.Background()

	job, err := svc.CreateJob(ctx, &domain.Job{Title: "Teacher", Description: "Teach", Requirements: "Degree", Active: true})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	location := "Remote"
	updated, err := svc.UpdateJob(ctx, job.ID, domain.JobUpdate{Location: &location})
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if updated.Location != "Remote" {
		t.Fatalf("location not updated: %+v", updated)
	}
	if updated.Title != "Teacher" || updated.Description != "Teach" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}

	if _, err := svc.UpdateJob(ctx, "999", domain.JobUpdate{Location: &location}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing job, got %v", err)
	}
}

func TestCatalogService_DeleteFalseOnMissing(t *testing.T) {
	svc := newTestCatalogService()
	ctx := context.Background()

	category, err := svc.CreateCategory(ctx, &domain.Category{Name: "Arabic", Active: true})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	ok, err := svc.DeleteCategory(ctx, category.ID)
	if err != nil || !ok {
		t.Fatalf("delete existing: ok=%v err=%v", ok, err)
	}
	ok, err = svc.DeleteCategory(ctx, category.ID)
	if err != nil {
		t.Fatalf("repeat delete returned error: %v", err)
	}
	if ok {
		t.Fatalf("repeat delete reported true")
	}
}
