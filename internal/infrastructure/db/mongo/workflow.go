package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/alnoor-academy/institute-api/internal/core/domain"
)

// --- Student applications ---

type studentApplicationDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	CourseID  string             `bson:"course_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Phone     string             `bson:"phone,omitempty"`
	Message   string             `bson:"message,omitempty"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d *studentApplicationDoc) toDomain() domain.StudentApplication {
	return domain.StudentApplication{
		ID:        d.ID.Hex(),
		CourseID:  d.CourseID,
		Name:      d.Name,
		Email:     d.Email,
		Phone:     d.Phone,
		Message:   d.Message,
		Status:    domain.ApplicationStatus(d.Status),
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

func (s *Storage) ListStudentApplications(ctx context.Context, f domain.ApplicationFilter) ([]domain.StudentApplication, error) {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = string(f.Status)
	}
	if f.SubjectID != "" {
		filter["course_id"] = f.SubjectID
	}
	docs, err := findAll[studentApplicationDoc](ctx, s.db.Collection(collStudentApps), filter, bson.D{{Key: "created_at", Value: -1}})
	if err != nil {
		return nil, err
	}
	out := make([]domain.StudentApplication, len(docs))
	for i := range docs {
		out[i] = docs[i].toDomain()
	}
	return out, nil
}

func (s *Storage) GetStudentApplication(ctx context.Context, id string) (*domain.StudentApplication, error) {
	doc, err := findByID[studentApplicationDoc](ctx, s.db.Collection(collStudentApps), id)
	if err != nil {
		return nil, err
	}
	a := doc.toDomain()
	return &a, nil
}

func (s *Storage) CreateStudentApplication(ctx context.Context, a *domain.StudentApplication) (*domain.StudentApplication, error) {
	now := time.Now().UTC()
	doc := studentApplicationDoc{
		CourseID:  a.CourseID,
		Name:      a.Name,
		Email:     a.Email,
		Phone:     a.Phone,
		Message:   a.Message,
		Status:    string(a.Status),
		CreatedAt: now,
		UpdatedAt: now,
	}
	oid, err := insertOne(ctx, s.db.Collection(collStudentApps), doc)
	if err != nil {
		return nil, err
	}
	doc.ID = oid
	out := doc.toDomain()
	return &out, nil
}

func (s *Storage) UpdateStudentApplicationStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.StudentApplication, error) {
	set := bson.M{"status": string(status), "updated_at": time.Now().UTC()}
	doc, err := updateByID[studentApplicationDoc](ctx, s.db.Collection(collStudentApps), id, set)
	if err != nil {
		return nil, err
	}
	a := doc.toDomain()
	return &a, nil
}

func (s *Storage) DeleteStudentApplication(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, s.db.Collection(collStudentApps), id)
}

// --- Career applications ---

type careerApplicationDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	JobID       string             `bson:"job_id,omitempty"`
	Name        string             `bson:"name"`
	Email       string             `bson:"email"`
	Phone       string             `bson:"phone,omitempty"`
	CoverLetter string             `bson:"cover_letter,omitempty"`
	ResumeURL   string             `bson:"resume_url,omitempty"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d *careerApplicationDoc) toDomain() domain.CareerApplication {
	return domain.CareerApplication{
		ID:          d.ID.Hex(),
		JobID:       d.JobID,
		Name:        d.Name,
		Email:       d.Email,
		Phone:       d.Phone,
		CoverLetter: d.CoverLetter,
		ResumeURL:   d.ResumeURL,
		Status:      domain.ApplicationStatus(d.Status),
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

func (s *Storage) ListCareerApplications(ctx context.Context, f domain.ApplicationFilter) ([]domain.CareerApplication, error) {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = string(f.Status)
	}
	if f.SubjectID != "" {
		filter["job_id"] = f.SubjectID
	}
	docs, err := findAll[careerApplicationDoc](ctx, s.db.Collection(collCareerApps), filter, bson.D{{Key: "created_at", Value: -1}})
	if err != nil {
		return nil, err
	}
	out := make([]domain.CareerApplication, len(docs))
	for i := range docs {
		out[i] = docs[i].toDomain()
	}
	return out, nil
}

func (s *Storage) GetCareerApplication(ctx context.Context, id string) (*domain.CareerApplication, error) {
	doc, err := findByID[careerApplicationDoc](ctx, s.db.Collection(collCareerApps), id)
	if err != nil {
		return nil, err
	}
	a := doc.toDomain()
	return &a, nil
}

func (s *Storage) CreateCareerApplication(ctx context.Context, a *domain.CareerApplication) (*domain.CareerApplication, error) {
	now := time.Now().UTC()
	doc := careerApplicationDoc{
		JobID:       a.JobID,
		Name:        a.Name,
		Email:       a.Email,
		Phone:       a.Phone,
		CoverLetter: a.CoverLetter,
		ResumeURL:   a.ResumeURL,
		Status:      string(a.Status),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	oid, err := insertOne(ctx, s.db.Collection(collCareerApps), doc)
	if err != nil {
		return nil, err
	}
	doc.ID = oid
	out := doc.toDomain()
	return &out, nil
}

func (s *Storage) UpdateCareerApplicationStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.CareerApplication, error) {
	set := bson.M{"status": string(status), "updated_at": time.Now().UTC()}
	doc, err := updateByID[careerApplicationDoc](ctx, s.db.Collection(collCareerApps), id, set)
	if err != nil {
		return nil, err
	}
	a := doc.toDomain()
	return &a, nil
}

func (s *Storage) DeleteCareerApplication(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, s.db.Collection(collCareerApps), id)
}

// --- Contact messages ---

type contactMessageDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Subject   string             `bson:"subject,omitempty"`
	Message   string             `bson:"message"`
	IsRead    bool               `bson:"is_read"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d *contactMessageDoc) toDomain() domain.ContactMessage {
	return domain.ContactMessage{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Email:     d.Email,
		Subject:   d.Subject,
		Message:   d.Message,
		IsRead:    d.IsRead,
		CreatedAt: d.CreatedAt.UTC(),
	}
}

func (s *Storage) ListContactMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	docs, err := findAll[contactMessageDoc](ctx, s.db.Collection(collMessages), bson.M{}, bson.D{{Key: "created_at", Value: -1}})
	if err != nil {
		return nil, err
	}
	out := make([]domain.ContactMessage, len(docs))
	for i := range docs {
		out[i] = docs[i].toDomain()
	}
	return out, nil
}

func (s *Storage) GetContactMessage(ctx context.Context, id string) (*domain.ContactMessage, error) {
	doc, err := findByID[contactMessageDoc](ctx, s.db.Collection(collMessages), id)
	if err != nil {
		return nil, err
	}
	m := doc.toDomain()
	return &m, nil
}

func (s *Storage) CreateContactMessage(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error) {
	doc := contactMessageDoc{
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		IsRead:    false,
		CreatedAt: time.Now().UTC(),
	}
	oid, err := insertOne(ctx, s.db.Collection(collMessages), doc)
	if err != nil {
		return nil, err
	}
	doc.ID = oid
	out := doc.toDomain()
	return &out, nil
}

func (s *Storage) MarkContactMessageRead(ctx context.Context, id string) (*domain.ContactMessage, error) {
	doc, err := updateByID[contactMessageDoc](ctx, s.db.Collection(collMessages), id, bson.M{"is_read": true})
	if err != nil {
		return nil, err
	}
	m := doc.toDomain()
	return &m, nil
}

func (s *Storage) DeleteContactMessage(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, s.db.Collection(collMessages), id)
}

// --- Dashboard stats ---

func (s *Storage) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	students, err := s.db.Collection(collStudentApps).CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("count student applications: %w", err)
	}
	courses, err := s.db.Collection(collCourses).CountDocuments(ctx, bson.M{"active": true})
	if err != nil {
		return nil, fmt.Errorf("count courses: %w", err)
	}
	careers, err := s.db.Collection(collCareerApps).CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("count career applications: %w", err)
	}
	unread, err := s.db.Collection(collMessages).CountDocuments(ctx, bson.M{"is_read": false})
	if err != nil {
		return nil, fmt.Errorf("count unread messages: %w", err)
	}

	return &domain.DashboardStats{
		StudentCount:       students,
		CourseCount:        courses,
		ApplicationCount:   careers,
		UnreadMessageCount: unread,
	}, nil
}
