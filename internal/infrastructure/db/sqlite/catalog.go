package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/alnoor-academy/institute-api/internal/core/domain"
)

// --- Categories ---

type categoryRow struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	ImageURL    string    `db:"image_url"`
	Active      bool      `db:"active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r *categoryRow) toDomain() domain.Category {
	return domain.Category{
		ID:          formatID(r.ID),
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Active:      r.Active,
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}
}

const categoryColumns = `id, name, description, image_url, active, created_at, updated_at`

func (s *Storage) ListCategories(ctx context.Context, onlyActive bool) ([]domain.Category, error) {
	query := "SELECT " + categoryColumns + " FROM categories"
	if onlyActive {
		query += " WHERE active = 1"
	}
	query += " ORDER BY name ASC"

	rows, err := selectAll[categoryRow](ctx, s.db, query)
	if err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	out := make([]domain.Category, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

func (s *Storage) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	row, err := getByID[categoryRow](ctx, s.db, "SELECT "+categoryColumns+" FROM categories WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	c := row.toDomain()
	return &c, nil
}

func (s *Storage) CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (name, description, image_url, active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		c.Name, c.Description, c.ImageURL, c.Active, now, now)
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	key, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	out := *c
	out.ID = formatID(key)
	out.CreatedAt = now
	out.UpdatedAt = now
	return &out, nil
}

func (s *Storage) UpdateCategory(ctx context.Context, id string, upd domain.CategoryUpdate) (*domain.Category, error) {
	key, ok := parseID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}

	var a assignments
	setIf(&a, "name", upd.Name)
	setIf(&a, "description", upd.Description)
	setIf(&a, "image_url", upd.ImageURL)
	setIf(&a, "active", upd.Active)
	a.add("updated_at", time.Now().UTC())

	if err := applyUpdate(ctx, s.db, "categories", key, a); err != nil {
		return nil, err
	}
	return s.GetCategory(ctx, id)
}

func (s *Storage) DeleteCategory(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, s.db, "categories", id)
}

// --- Courses ---

type courseRow struct {
	ID              int64     `db:"id"`
	Title           string    `db:"title"`
	Description     string    `db:"description"`
	Image           string    `db:"image"`
	Duration        string    `db:"duration"`
	Price           string    `db:"price"`
	Featured        bool      `db:"featured"`
	CategoryID      string    `db:"category_id"`
	InstructorName  string    `db:"instructor_name"`
	InstructorTitle string    `db:"instructor_title"`
	InstructorImage string    `db:"instructor_image"`
	Rating          string    `db:"rating"`
	ReviewCount     int       `db:"review_count"`
	Active          bool      `db:"active"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (r *courseRow) toDomain() domain.Course {
	return domain.Course{
		ID:              formatID(r.ID),
		Title:           r.Title,
		Description:     r.Description,
		Image:           r.Image,
		Duration:        r.Duration,
		Price:           r.Price,
		Featured:        r.Featured,
		CategoryID:      r.CategoryID,
		InstructorName:  r.InstructorName,
		InstructorTitle: r.InstructorTitle,
		InstructorImage: r.InstructorImage,
		Rating:          r.Rating,
		ReviewCount:     r.ReviewCount,
		Active:          r.Active,
		CreatedAt:       r.CreatedAt.UTC(),
		UpdatedAt:       r.UpdatedAt.UTC(),
	}
}

const courseColumns = `id, title, description, image, duration, price, featured, category_id,
	instructor_name, instructor_title, instructor_image, rating, review_count, active, created_at, updated_at`

func (s *Storage) listCourses(ctx context.Context, where string, args ...any) ([]domain.Course, error) {
	query := "SELECT " + courseColumns + " FROM courses"
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY title ASC"

	rows, err := selectAll[courseRow](ctx, s.db, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select courses: %w", err)
	}
	out := make([]domain.Course, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

func (s *Storage) ListCourses(ctx context.Context, onlyActive bool) ([]domain.Course, error) {
	if onlyActive {
		return s.listCourses(ctx, "active = 1")
	}
	return s.listCourses(ctx, "")
}

func (s *Storage) ListFeaturedCourses(ctx context.Context) ([]domain.Course, error) {
	return s.listCourses(ctx, "featured = 1 AND active = 1")
}

func (s *Storage) ListCoursesByCategory(ctx context.Context, categoryID string) ([]domain.Course, error) {
	return s.listCourses(ctx, "category_id = ? AND active = 1", categoryID)
}

func (s *Storage) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	row, err := getByID[courseRow](ctx, s.db, "SELECT "+courseColumns+" FROM courses WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	c := row.toDomain()
	return &c, nil
}

func (s *Storage) CreateCourse(ctx context.Context, c *domain.Course) (*domain.Course, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO courses (title, description, image, duration, price, featured, category_id,
			instructor_name, instructor_title, instructor_image, rating, review_count, active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Title, c.Description, c.Image, c.Duration, c.Price, c.Featured, c.CategoryID,
		c.InstructorName, c.InstructorTitle, c.InstructorImage, c.Rating, c.ReviewCount,
		c.Active, now, now)
	if err != nil {
		return nil, fmt.Errorf("insert course: %w", err)
	}
	key, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	out := *c
	out.ID = formatID(key)
	out.CreatedAt = now
	out.UpdatedAt = now
	return &out, nil
}

func (s *Storage) UpdateCourse(ctx context.Context, id string, upd domain.CourseUpdate) (*domain.Course, error) {
	key, ok := parseID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}

	var a assignments
	setIf(&a, "title", upd.Title)
	setIf(&a, "description", upd.Description)
	setIf(&a, "image", upd.Image)
	setIf(&a, "duration", upd.Duration)
	setIf(&a, "price", upd.Price)
	setIf(&a, "featured", upd.Featured)
	setIf(&a, "category_id", upd.CategoryID)
	setIf(&a, "instructor_name", upd.InstructorName)
	setIf(&a, "instructor_title", upd.InstructorTitle)
	setIf(&a, "instructor_image", upd.InstructorImage)
	setIf(&a, "rating", upd.Rating)
	setIf(&a, "review_count", upd.ReviewCount)
	setIf(&a, "active", upd.Active)
	a.add("updated_at", time.Now().UTC())

	if err := applyUpdate(ctx, s.db, "courses", key, a); err != nil {
		return nil, err
	}
	return s.GetCourse(ctx, id)
}

func (s *Storage) DeleteCourse(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, s.db, "courses", id)
}

// --- Testimonials ---

type testimonialRow struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Role      string    `db:"role"`
	Content   string    `db:"content"`
	Rating    int       `db:"rating"`
	ImageURL  string    `db:"image_url"`
	Visible   bool      `db:"visible"`
	CreatedAt time.Time `db:"created_at"`
}

func (r *testimonialRow) toDomain() domain.Testimonial {
	return domain.Testimonial{
		ID:        formatID(r.ID),
		Name:      r.Name,
		Role:      r.Role,
		Content:   r.Content,
		Rating:    r.Rating,
		ImageURL:  r.ImageURL,
		Visible:   r.Visible,
		CreatedAt: r.CreatedAt.UTC(),
	}
}

const testimonialColumns = `id, name, role, content, rating, image_url, visible, created_at`

func (s *Storage) ListTestimonials(ctx context.Context, onlyVisible bool) ([]domain.Testimonial, error) {
	query := "SELECT " + testimonialColumns + " FROM testimonials"
	if onlyVisible {
		query += " WHERE visible = 1"
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := selectAll[testimonialRow](ctx, s.db, query)
	if err != nil {
		return nil, fmt.Errorf("select testimonials: %w", err)
	}
	out := make([]domain.Testimonial, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

func (s *Storage) GetTestimonial(ctx context.Context, id string) (*domain.Testimonial, error) {
	row, err := getByID[testimonialRow](ctx, s.db, "SELECT "+testimonialColumns+" FROM testimonials WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	t := row.toDomain()
	return &t, nil
}

func (s *Storage) CreateTestimonial(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO testimonials (name, role, content, rating, image_url, visible, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.Name, t.Role, t.Content, t.Rating, t.ImageURL, t.Visible, now)
	if err != nil {
		return nil, fmt.Errorf("insert testimonial: %w", err)
	}
	key, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	out := *t
	out.ID = formatID(key)
	out.CreatedAt = now
	return &out, nil
}

func (s *Storage) UpdateTestimonial(ctx context.Context, id string, upd domain.TestimonialUpdate) (*domain.Testimonial, error) {
	key, ok := parseID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}

	var a assignments
	setIf(&a, "name", upd.Name)
	setIf(&a, "role", upd.Role)
	setIf(&a, "content", upd.Content)
	setIf(&a, "rating", upd.Rating)
	setIf(&a, "image_url", upd.ImageURL)
	setIf(&a, "visible", upd.Visible)
	if len(a.cols) == 0 {
		return s.GetTestimonial(ctx, id)
	}

	if err := applyUpdate(ctx, s.db, "testimonials", key, a); err != nil {
		return nil, err
	}
	return s.GetTestimonial(ctx, id)
}

func (s *Storage) DeleteTestimonial(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, s.db, "testimonials", id)
}

// --- Team members ---

type teamMemberRow struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Role      string    `db:"role"`
	Bio       string    `db:"bio"`
	ImageURL  string    `db:"image_url"`
	Visible   bool      `db:"visible"`
	CreatedAt time.Time `db:"created_at"`
}

func (r *teamMemberRow) toDomain() domain.TeamMember {
	return domain.TeamMember{
		ID:        formatID(r.ID),
		Name:      r.Name,
		Role:      r.Role,
		Bio:       r.Bio,
		ImageURL:  r.ImageURL,
		Visible:   r.Visible,
		CreatedAt: r.CreatedAt.UTC(),
	}
}

const teamMemberColumns = `id, name, role, bio, image_url, visible, created_at`

func (s *Storage) ListTeamMembers(ctx context.Context, onlyVisible bool) ([]domain.TeamMember, error) {
	query := "SELECT " + teamMemberColumns + " FROM team_members"
	if onlyVisible {
		query += " WHERE visible = 1"
	}
	query += " ORDER BY name ASC"

	rows, err := selectAll[teamMemberRow](ctx, s.db, query)
	if err != nil {
		return nil, fmt.Errorf("select team members: %w", err)
	}
	out := make([]domain.TeamMember, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

func (s *Storage) GetTeamMember(ctx context.Context, id string) (*domain.TeamMember, error) {
	row, err := getByID[teamMemberRow](ctx, s.db, "SELECT "+teamMemberColumns+" FROM team_members WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	m := row.toDomain()
	return &m, nil
}

func (s *Storage) CreateTeamMember(ctx context.Context, m *domain.TeamMember) (*domain.TeamMember, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO team_members (name, role, bio, image_url, visible, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		m.Name, m.Role, m.Bio, m.ImageURL, m.Visible, now)
	if err != nil {
		return nil, fmt.Errorf("insert team member: %w", err)
	}
	key, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	out := *m
	out.ID = formatID(key)
	out.CreatedAt = now
	return &out, nil
}

func (s *Storage) UpdateTeamMember(ctx context.Context, id string, upd domain.TeamMemberUpdate) (*domain.TeamMember, error) {
	key, ok := parseID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}

	var a assignments
	setIf(&a, "name", upd.Name)
	setIf(&a, "role", upd.Role)
	setIf(&a, "bio", upd.Bio)
	setIf(&a, "image_url", upd.ImageURL)
	setIf(&a, "visible", upd.Visible)
	if len(a.cols) == 0 {
		return s.GetTeamMember(ctx, id)
	}

	if err := applyUpdate(ctx, s.db, "team_members", key, a); err != nil {
		return nil, err
	}
	return s.GetTeamMember(ctx, id)
}

func (s *Storage) DeleteTeamMember(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, s.db, "team_members", id)
}

// --- Jobs ---

type jobRow struct {
	ID           int64     `db:"id"`
	Title        string    `db:"title"`
	Description  string    `db:"description"`
	Requirements string    `db:"requirements"`
	Location     string    `db:"location"`
	Type         string    `db:"type"`
	Active       bool      `db:"active"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r *jobRow) toDomain() domain.Job {
	return domain.Job{
		ID:           formatID(r.ID),
		Title:        r.Title,
		Description:  r.Description,
		Requirements: r.Requirements,
		Location:     r.Location,
		Type:         r.Type,
		Active:       r.Active,
		CreatedAt:    r.CreatedAt.UTC(),
		UpdatedAt:    r.UpdatedAt.UTC(),
	}
}

const jobColumns = `id, title, description, requirements, location, type, active, created_at, updated_at`

func (s *Storage) ListJobs(ctx context.Context, onlyActive bool) ([]domain.Job, error) {
	query := "SELECT " + jobColumns + " FROM jobs"
	if onlyActive {
		query += " WHERE active = 1"
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := selectAll[jobRow](ctx, s.db, query)
	if err != nil {
		return nil, fmt.Errorf("select jobs: %w", err)
	}
	out := make([]domain.Job, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

func (s *Storage) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	row, err := getByID[jobRow](ctx, s.db, "SELECT "+jobColumns+" FROM jobs WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	j := row.toDomain()
	return &j, nil
}

func (s *Storage) CreateJob(ctx context.Context, j *domain.Job) (*domain.Job, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO jobs (title, description, requirements, location, type, active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		j.Title, j.Description, j.Requirements, j.Location, j.Type, j.Active, now, now)
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}
	key, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	out := *j
	out.ID = formatID(key)
	out.CreatedAt = now
	out.UpdatedAt = now
	return &out, nil
}

func (s *Storage) UpdateJob(ctx context.Context, id string, upd domain.JobUpdate) (*domain.Job, error) {
	key, ok := parseID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}

	var a assignments
	setIf(&a, "title", upd.Title)
	setIf(&a, "description", upd.Description)
	setIf(&a, "requirements", upd.Requirements)
	setIf(&a, "location", upd.Location)
	setIf(&a, "type", upd.Type)
	setIf(&a, "active", upd.Active)
	a.add("updated_at", time.Now().UTC())

	if err := applyUpdate(ctx, s.db, "jobs", key, a); err != nil {
		return nil, err
	}
	return s.GetJob(ctx, id)
}

func (s *Storage) DeleteJob(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, s.db, "jobs", id)
}
