package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/alnoor-academy/institute-api/internal/core/domain"
)

// Storage implements ports.Storage against a *sqlx.DB opened by Open.
type Storage struct {
	db *sqlx.DB
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{db: db}
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// parseID resolves an opaque id to a row key. Malformed ids behave like
// missing rows.
func parseID(id string) (int64, bool) {
	key, err := strconv.ParseInt(id, 10, 64)
	if err != nil || key <= 0 {
		return 0, false
	}
	return key, true
}

func formatID(key int64) string {
	return strconv.FormatInt(key, 10)
}

func selectAll[R any](ctx context.Context, db *sqlx.DB, query string, args ...any) ([]R, error) {
	var rows []R
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// getByID fetches one row, mapping sql.ErrNoRows (and malformed ids) to
// domain.ErrNotFound.
func getByID[R any](ctx context.Context, db *sqlx.DB, query, id string) (*R, error) {
	key, ok := parseID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}

	var row R
	if err := db.GetContext(ctx, &row, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func deleteByID(ctx context.Context, db *sqlx.DB, table, id string) (bool, error) {
	key, ok := parseID(id)
	if !ok {
		return false, nil
	}

	res, err := db.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = ?", key)
	if err != nil {
		return false, fmt.Errorf("delete from %s: %w", table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// assignments accumulates SET clauses for partial updates; only non-nil
// update fields land here.
type assignments struct {
	cols []string
	args []any
}

func (a *assignments) add(col string, v any) {
	a.cols = append(a.cols, col+" = ?")
	a.args = append(a.args, v)
}

func setIf[T any](a *assignments, col string, v *T) {
	if v != nil {
		a.add(col, *v)
	}
}

// applyUpdate runs the accumulated assignments against one row and reports
// whether the row existed.
func applyUpdate(ctx context.Context, db *sqlx.DB, table string, key int64, a assignments) error {
	query := "UPDATE " + table + " SET "
	for i, col := range a.cols {
		if i > 0 {
			query += ", "
		}
		query += col
	}
	query += " WHERE id = ?"

	res, err := db.ExecContext(ctx, query, append(a.args, key)...)
	if err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Storage) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}
	counts := []struct {
		query string
		dst   *int64
	}{
		{"SELECT COUNT(*) FROM student_applications", &stats.StudentCount},
		{"SELECT COUNT(*) FROM courses WHERE active = 1", &stats.CourseCount},
		{"SELECT COUNT(*) FROM career_applications", &stats.ApplicationCount},
		{"SELECT COUNT(*) FROM contact_messages WHERE is_read = 0", &stats.UnreadMessageCount},
	}
	for _, c := range counts {
		if err := s.db.GetContext(ctx, c.dst, c.query); err != nil {
			return nil, fmt.Errorf("dashboard stats: %w", err)
		}
	}
	return stats, nil
}
