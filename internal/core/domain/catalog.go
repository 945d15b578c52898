package domain

import "time"

// Catalog entities are admin-curated content gating what the public site
// renders. Public reads filter on Active/Visible; admin reads see all rows.

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Course carries a secondary Featured promotion flag orthogonal to Active.
// The pair is not enforced together: a featured-but-inactive course is
// representable, and the featured query filters on both flags explicitly.
type Course struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Image           string    `json:"image,omitempty"`
	Duration        string    `json:"duration,omitempty"`
	Price           string    `json:"price"`
	Featured        bool      `json:"featured"`
	CategoryID      string    `json:"categoryId,omitempty"`
	InstructorName  string    `json:"instructorName,omitempty"`
	InstructorTitle string    `json:"instructorTitle,omitempty"`
	InstructorImage string    `json:"instructorImage,omitempty"`
	Rating          string    `json:"rating,omitempty"`
	ReviewCount     int       `json:"reviewCount"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type Testimonial struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role,omitempty"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Visible   bool      `json:"visible"`
	CreatedAt time.Time `json:"createdAt"`
}

type TeamMember struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Bio       string    `json:"bio,omitempty"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Visible   bool      `json:"visible"`
	CreatedAt time.Time `json:"createdAt"`
}

type Job struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	Location     string    `json:"location,omitempty"`
	Type         string    `json:"type,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Partial-update carriers. A nil field means "leave unchanged"; stores apply
// only the non-nil fields and stamp UpdatedAt themselves.

type CategoryUpdate struct {
	Name        *string
	Description *string
	ImageURL    *string
	Active      *bool
}

type CourseUpdate struct {
	Title           *string
	Description     *string
	Image           *string
	Duration        *string
	Price           *string
	Featured        *bool
	CategoryID      *string
	InstructorName  *string
	InstructorTitle *string
	InstructorImage *string
	Rating          *string
	ReviewCount     *int
	Active          *bool
}

type TestimonialUpdate struct {
	Name     *string
	Role     *string
	Content  *string
	Rating   *int
	ImageURL *string
	Visible  *bool
}

type TeamMemberUpdate struct {
	Name     *string
	Role     *string
	Bio      *string
	ImageURL *string
	Visible  *bool
}

type JobUpdate struct {
	Title        *string
	Description  *string
	Requirements *string
	Location     *string
	Type         *string
	Active       *bool
}
