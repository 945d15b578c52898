package sqlite

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/alnoor-academy/institute-api/internal/core/domain"
)

func newMockStorage(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewStorage(sqlx.NewDb(db, "sqlmock")), mock
}

func expectations(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStorage_GetCourse_NotFound(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery("SELECT (.+) FROM courses WHERE id = ?").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := s.GetCourse(context.Background(), "42"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	expectations(t, mock)
}

func TestStorage_GetCourse_MalformedID(t *testing.T) {
	s, mock := newMockStorage(t)

	// A non-numeric id never reaches the database.
	if _, err := s.GetCourse(context.Background(), "not-a-number"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	expectations(t, mock)
}

func TestStorage_DeleteJob(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM jobs WHERE id = ?")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	ok, err := s.DeleteJob(context.Background(), "7")
	if err != nil || !ok {
		t.Fatalf("delete existing: ok=%v err=%v", ok, err)
	}

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM jobs WHERE id = ?")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	ok, err = s.DeleteJob(context.Background(), "7")
	if err != nil {
		t.Fatalf("delete missing returned error: %v", err)
	}
	if ok {
		t.Fatalf("delete of missing row reported true")
	}

	// Malformed id: nothing to delete, no query issued.
	ok, err = s.DeleteJob(context.Background(), "zzz")
	if err != nil || ok {
		t.Fatalf("malformed id: ok=%v err=%v", ok, err)
	}
	expectations(t, mock)
}

func TestStorage_UpdateCategory_OnlySetFields(t *testing.T) {
	s, mock := newMockStorage(t)
	now := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE categories SET name = ?, updated_at = ? WHERE id = ?")).
		WithArgs("Renamed", sqlmock.AnyArg(), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM categories WHERE id = ?").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "image_url", "active", "created_at", "updated_at"}).
			AddRow(int64(3), "Renamed", "", "", true, now, now))

	name := "Renamed"
	got, err := s.UpdateCategory(context.Background(), "3", domain.CategoryUpdate{Name: &name})
	if err != nil {
		t.Fatalf("UpdateCategory returned error: %v", err)
	}
	if got.Name != "Renamed" || got.ID != "3" {
		t.Fatalf("unexpected category: %+v", got)
	}
	expectations(t, mock)
}

func TestStorage_UpdateCategory_Missing(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE categories SET active = ?, updated_at = ? WHERE id = ?")).
		WithArgs(false, sqlmock.AnyArg(), int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	off := false
	if _, err := s.UpdateCategory(context.Background(), "9", domain.CategoryUpdate{Active: &off}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	expectations(t, mock)
}

func TestStorage_CreateUser_Duplicate(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("constraint failed: UNIQUE constraint failed: users.username (2067)"))

	_, err := s.CreateUser(context.Background(), &domain.User{Username: "taken", Password: "enc"})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	expectations(t, mock)
}

func TestStorage_Stats(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM student_applications")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(4)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM courses WHERE active = 1")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(2)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM career_applications")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM contact_messages WHERE is_read = 0")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

	stats, err := s.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	want := domain.DashboardStats{StudentCount: 4, CourseCount: 2, ApplicationCount: 3, UnreadMessageCount: 1}
	if *stats != want {
		t.Fatalf("stats = %+v, want %+v", *stats, want)
	}
	expectations(t, mock)
}

func TestStorage_ListStudentApplications_FilterComposition(t *testing.T) {
	s, mock := newMockStorage(t)
	now := time.Now().UTC()

	cols := []string{"id", "course_id", "name", "email", "phone", "message", "status", "created_at", "updated_at"}
	mock.ExpectQuery("SELECT (.+) FROM student_applications WHERE status = \\? AND course_id = \\?").
		WithArgs("pending", "c1").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(2), "c1", "B", "b@example.com", "", "", "pending", now, now).
			AddRow(int64(1), "c1", "A", "a@example.com", "", "", "pending", now.Add(-time.Hour), now))

	apps, err := s.ListStudentApplications(context.Background(), domain.ApplicationFilter{
		Status:    domain.StatusPending,
		SubjectID: "c1",
	})
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(apps) != 2 || apps[0].ID != "2" {
		t.Fatalf("unexpected rows: %+v", apps)
	}
	expectations(t, mock)
}
