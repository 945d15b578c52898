package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alnoor-academy/institute-api/internal/core/domain"
)

type userRow struct {
	ID              int64     `db:"id"`
	Username        string    `db:"username"`
	Password        string    `db:"password"`
	Email           string    `db:"email"`
	FirstName       string    `db:"first_name"`
	LastName        string    `db:"last_name"`
	ProfileImageURL string    `db:"profile_image_url"`
	IsAdmin         bool      `db:"is_admin"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (r *userRow) toDomain() *domain.User {
	return &domain.User{
		ID:              formatID(r.ID),
		Username:        r.Username,
		Password:        r.Password,
		Email:           r.Email,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		ProfileImageURL: r.ProfileImageURL,
		IsAdmin:         r.IsAdmin,
		CreatedAt:       r.CreatedAt.UTC(),
		UpdatedAt:       r.UpdatedAt.UTC(),
	}
}

const userColumns = `id, username, password, email, first_name, last_name, profile_image_url, is_admin, created_at, updated_at`

func (s *Storage) GetUser(ctx context.Context, id string) (*domain.User, error) {
	key, ok := parseID(id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	var row userRow
	err := s.db.GetContext(ctx, &row, "SELECT "+userColumns+" FROM users WHERE id = ?", key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	return row.toDomain(), nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var row userRow
	err := s.db.GetContext(ctx, &row, "SELECT "+userColumns+" FROM users WHERE username = ?", username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	return row.toDomain(), nil
}

func (s *Storage) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, password, email, first_name, last_name, profile_image_url, is_admin, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.Username, user.Password, user.Email, user.FirstName, user.LastName,
		user.ProfileImageURL, user.IsAdmin, now, now)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	key, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	out := *user
	out.ID = formatID(key)
	out.CreatedAt = now
	out.UpdatedAt = now
	return &out, nil
}
