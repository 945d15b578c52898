package domain

import "time"

// Workflow entities are visitor-submitted records awaiting admin review.
// They are created through the public submission endpoints with an initial
// state (pending / unread) and mutated only through admin endpoints.

type StudentApplication struct {
	ID        string            `json:"id"`
	CourseID  string            `json:"courseId,omitempty"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone,omitempty"`
	Message   string            `json:"message,omitempty"`
	Status    ApplicationStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

type CareerApplication struct {
	ID          string            `json:"id"`
	JobID       string            `json:"jobId,omitempty"`
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone,omitempty"`
	CoverLetter string            `json:"coverLetter,omitempty"`
	ResumeURL   string            `json:"resumeUrl,omitempty"`
	Status      ApplicationStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// ApplicationFilter narrows admin application lists. Zero values mean no
// constraint on that dimension; set fields compose with AND. SubjectID
// matches CourseID for student applications and JobID for career ones.
type ApplicationFilter struct {
	Status    ApplicationStatus
	SubjectID string
}

// DashboardStats are the admin dashboard counters. CourseCount covers only
// active courses; the application counters cover every row regardless of
// status, matching the original dashboard.
type DashboardStats struct {
	StudentCount       int64 `json:"studentCount"`
	CourseCount        int64 `json:"courseCount"`
	ApplicationCount   int64 `json:"applicationCount"`
	UnreadMessageCount int64 `json:"unreadMessageCount"`
}
