package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/alnoor-academy/institute-api/internal/core/domain"
)

// --- Student applications ---

type studentApplicationRow struct {
	ID        int64     `db:"id"`
	CourseID  string    `db:"course_id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	Message   string    `db:"message"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r *studentApplicationRow) toDomain() domain.StudentApplication {
	return domain.StudentApplication{
		ID:        formatID(r.ID),
		CourseID:  r.CourseID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Message:   r.Message,
		Status:    domain.ApplicationStatus(r.Status),
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}
}

const studentApplicationColumns = `id, course_id, name, email, phone, message, status, created_at, updated_at`

// applicationWhere turns an ApplicationFilter into a WHERE fragment; the
// subject column differs per table.
func applicationWhere(f domain.ApplicationFilter, subjectCol string) (string, []any) {
	where := ""
	var args []any
	if f.Status != "" {
		where = " WHERE status = ?"
		args = append(args, string(f.Status))
	}
	if f.SubjectID != "" {
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += subjectCol + " = ?"
		args = append(args, f.SubjectID)
	}
	return where, args
}

func (s *Storage) ListStudentApplications(ctx context.Context, f domain.ApplicationFilter) ([]domain.StudentApplication, error) {
	where, args := applicationWhere(f, "course_id")
	query := "SELECT " + studentApplicationColumns + " FROM student_applications" + where +
		" ORDER BY created_at DESC, id DESC"

	rows, err := selectAll[studentApplicationRow](ctx, s.db, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select student applications: %w", err)
	}
	out := make([]domain.StudentApplication, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

func (s *Storage) GetStudentApplication(ctx context.Context, id string) (*domain.StudentApplication, error) {
	row, err := getByID[studentApplicationRow](ctx, s.db,
		"SELECT "+studentApplicationColumns+" FROM student_applications WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	a := row.toDomain()
	return &a, nil
}

func (s *Storage) CreateStudentApplication(ctx context.Context, a *domain.StudentApplication) (*domain.StudentApplication, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO student_applications (course_id, name, email, phone, message, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.CourseID, a.Name, a.Email, a.Phone, a.Message, string(a.Status), now, now)
	if err != nil {
		return nil, fmt.Errorf("insert student application: %w", err)
	}
	key, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	out := *a
	out.ID = formatID(key)
	out.CreatedAt = now
	out.UpdatedAt = now
	return &out, nil
}

func (s *Storage) UpdateStudentApplicationStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.StudentApplication, error) {
	key, ok := parseID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}

	var a assignments
	a.add("status", string(status))
	a.add("updated_at", time.Now().UTC())
	if err := applyUpdate(ctx, s.db, "student_applications", key, a); err != nil {
		return nil, err
	}
	return s.GetStudentApplication(ctx, id)
}

func (s *Storage) DeleteStudentApplication(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, s.db, "student_applications", id)
}

// --- Career applications ---

type careerApplicationRow struct {
	ID          int64     `db:"id"`
	JobID       string    `db:"job_id"`
	Name        string    `db:"name"`
	Email       string    `db:"email"`
	Phone       string    `db:"phone"`
	CoverLetter string    `db:"cover_letter"`
	ResumeURL   string    `db:"resume_url"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r *careerApplicationRow) toDomain() domain.CareerApplication {
	return domain.CareerApplication{
		ID:          formatID(r.ID),
		JobID:       r.JobID,
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		CoverLetter: r.CoverLetter,
		ResumeURL:   r.ResumeURL,
		Status:      domain.ApplicationStatus(r.Status),
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}
}

const careerApplicationColumns = `id, job_id, name, email, phone, cover_letter, resume_url, status, created_at, updated_at`

func (s *Storage) ListCareerApplications(ctx context.Context, f domain.ApplicationFilter) ([]domain.CareerApplication, error) {
	where, args := applicationWhere(f, "job_id")
	query := "SELECT " + careerApplicationColumns + " FROM career_applications" + where +
		" ORDER BY created_at DESC, id DESC"

	rows, err := selectAll[careerApplicationRow](ctx, s.db, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select career applications: %w", err)
	}
	out := make([]domain.CareerApplication, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

func (s *Storage) GetCareerApplication(ctx context.Context, id string) (*domain.CareerApplication, error) {
	row, err := getByID[careerApplicationRow](ctx, s.db,
		"SELECT "+careerApplicationColumns+" FROM career_applications WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	a := row.toDomain()
	return &a, nil
}

func (s *Storage) CreateCareerApplication(ctx context.Context, a *domain.CareerApplication) (*domain.CareerApplication, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO career_applications (job_id, name, email, phone, cover_letter, resume_url, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.JobID, a.Name, a.Email, a.Phone, a.CoverLetter, a.ResumeURL, string(a.Status), now, now)
	if err != nil {
		return nil, fmt.Errorf("insert career application: %w", err)
	}
	key, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	out := *a
	out.ID = formatID(key)
	out.CreatedAt = now
	out.UpdatedAt = now
	return &out, nil
}

func (s *Storage) UpdateCareerApplicationStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.CareerApplication, error) {
	key, ok := parseID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}

	var a assignments
	a.add("status", string(status))
	a.add("updated_at", time.Now().UTC())
	if err := applyUpdate(ctx, s.db, "career_applications", key, a); err != nil {
		return nil, err
	}
	return s.GetCareerApplication(ctx, id)
}

func (s *Storage) DeleteCareerApplication(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, s.db, "career_applications", id)
}

// --- Contact messages ---

type contactMessageRow struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Subject   string    `db:"subject"`
	Message   string    `db:"message"`
	IsRead    bool      `db:"is_read"`
	CreatedAt time.Time `db:"created_at"`
}

func (r *contactMessageRow) toDomain() domain.ContactMessage {
	return domain.ContactMessage{
		ID:        formatID(r.ID),
		Name:      r.Name,
		Email:     r.Email,
		Subject:   r.Subject,
		Message:   r.Message,
		IsRead:    r.IsRead,
		CreatedAt: r.CreatedAt.UTC(),
	}
}

const contactMessageColumns = `id, name, email, subject, message, is_read, created_at`

func (s *Storage) ListContactMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	query := "SELECT " + contactMessageColumns + " FROM contact_messages ORDER BY created_at DESC, id DESC"
	rows, err := selectAll[contactMessageRow](ctx, s.db, query)
	if err != nil {
		return nil, fmt.Errorf("select contact messages: %w", err)
	}
	out := make([]domain.ContactMessage, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

func (s *Storage) GetContactMessage(ctx context.Context, id string) (*domain.ContactMessage, error) {
	row, err := getByID[contactMessageRow](ctx, s.db,
		"SELECT "+contactMessageColumns+" FROM contact_messages WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	m := row.toDomain()
	return &m, nil
}

func (s *Storage) CreateContactMessage(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO contact_messages (name, email, subject, message, is_read, created_at)
		 VALUES (?, ?, ?, ?, 0, ?)`,
		m.Name, m.Email, m.Subject, m.Message, now)
	if err != nil {
		return nil, fmt.Errorf("insert contact message: %w", err)
	}
	key, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	out := *m
	out.ID = formatID(key)
	out.IsRead = false
	out.CreatedAt = now
	return &out, nil
}

func (s *Storage) MarkContactMessageRead(ctx context.Context, id string) (*domain.ContactMessage, error) {
	key, ok := parseID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}

	var a assignments
	a.add("is_read", true)
	if err := applyUpdate(ctx, s.db, "contact_messages", key, a); err != nil {
		return nil, err
	}
	return s.GetContactMessage(ctx, id)
}

func (s *Storage) DeleteContactMessage(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, s.db, "contact_messages", id)
}
