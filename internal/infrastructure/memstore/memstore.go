// Package memstore provides an in-memory Storage implementation. It backs
// service and handler tests and the zero-dependency development mode; the
// mongo and sqlite backends are the deployment options.
package memstore

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/alnoor-academy/institute-api/internal/core/domain"
)

// Store holds every entity kind in process memory behind one mutex.
// Identifiers are decimal strings from a shared monotonic counter, keeping
// them opaque-but-comparable like the real backends' ids.
type Store struct {
	mu     sync.Mutex
	nextID int

	users        map[string]*domain.User
	categories   map[string]*domain.Category
	courses      map[string]*domain.Course
	testimonials map[string]*domain.Testimonial
	team         map[string]*domain.TeamMember
	jobs         map[string]*domain.Job
	studentApps  map[string]*domain.StudentApplication
	careerApps   map[string]*domain.CareerApplication
	messages     map[string]*domain.ContactMessage
}

func New() *Store {
	return &Store{
		nextID:       1,
		users:        make(map[string]*domain.User),
		categories:   make(map[string]*domain.Category),
		courses:      make(map[string]*domain.Course),
		testimonials: make(map[string]*domain.Testimonial),
		team:         make(map[string]*domain.TeamMember),
		jobs:         make(map[string]*domain.Job),
		studentApps:  make(map[string]*domain.StudentApplication),
		careerApps:   make(map[string]*domain.CareerApplication),
		messages:     make(map[string]*domain.ContactMessage),
	}
}

func (s *Store) Ping(_ context.Context) error { return nil }

func (s *Store) allocID() string {
	id := strconv.Itoa(s.nextID)
	s.nextID++
	return id
}

// newerFirst orders ids numerically descending as a tiebreaker for rows
// created within the same clock tick.
func newerFirst(a, b string) bool {
	ai, _ := strconv.Atoi(a)
	bi, _ := strconv.Atoi(b)
	return ai > bi
}

// --- Users ---

func (s *Store) GetUser(_ context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *Store) CreateUser(_ context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	clone := *user
	clone.ID = s.allocID()
	now := time.Now().UTC()
	clone.CreatedAt = now
	clone.UpdatedAt = now
	s.users[clone.ID] = &clone
	out := clone
	return &out, nil
}

// --- Categories ---

func (s *Store) ListCategories(_ context.Context, onlyActive bool) ([]domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Category
	for _, c := range s.categories {
		if onlyActive && !c.Active {
			continue
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) GetCategory(_ context.Context, id string) (*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (s *Store) CreateCategory(_ context.Context, c *domain.Category) (*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *c
	clone.ID = s.allocID()
	now := time.Now().UTC()
	clone.CreatedAt = now
	clone.UpdatedAt = now
	s.categories[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (s *Store) UpdateCategory(_ context.Context, id string, upd domain.CategoryUpdate) (*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Description != nil {
		c.Description = *upd.Description
	}
	if upd.ImageURL != nil {
		c.ImageURL = *upd.ImageURL
	}
	if upd.Active != nil {
		c.Active = *upd.Active
	}
	c.UpdatedAt = time.Now().UTC()
	clone := *c
	return &clone, nil
}

func (s *Store) DeleteCategory(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[id]; !ok {
		return false, nil
	}
	delete(s.categories, id)
	return true, nil
}

// --- Courses ---

func (s *Store) ListCourses(_ context.Context, onlyActive bool) ([]domain.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Course
	for _, c := range s.courses {
		if onlyActive && !c.Active {
			continue
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (s *Store) ListFeaturedCourses(_ context.Context) ([]domain.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Course
	for _, c := range s.courses {
		if c.Active && c.Featured {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (s *Store) ListCoursesByCategory(_ context.Context, categoryID string) ([]domain.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Course
	for _, c := range s.courses {
		if c.Active && c.CategoryID == categoryID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (s *Store) GetCourse(_ context.Context, id string) (*domain.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.courses[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (s *Store) CreateCourse(_ context.Context, c *domain.Course) (*domain.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *c
	clone.ID = s.allocID()
	now := time.Now().UTC()
	clone.CreatedAt = now
	clone.UpdatedAt = now
	s.courses[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (s *Store) UpdateCourse(_ context.Context, id string, upd domain.CourseUpdate) (*domain.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.courses[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Title != nil {
		c.Title = *upd.Title
	}
	if upd.Description != nil {
		c.Description = *upd.Description
	}
	if upd.Image != nil {
		c.Image = *upd.Image
	}
	if upd.Duration != nil {
		c.Duration = *upd.Duration
	}
	if upd.Price != nil {
		c.Price = *upd.Price
	}
	if upd.Featured != nil {
		c.Featured = *upd.Featured
	}
	if upd.CategoryID != nil {
		c.CategoryID = *upd.CategoryID
	}
	if upd.InstructorName != nil {
		c.InstructorName = *upd.InstructorName
	}
	if upd.InstructorTitle != nil {
		c.InstructorTitle = *upd.InstructorTitle
	}
	if upd.InstructorImage != nil {
		c.InstructorImage = *upd.InstructorImage
	}
	if upd.Rating != nil {
		c.Rating = *upd.Rating
	}
	if upd.ReviewCount != nil {
		c.ReviewCount = *upd.ReviewCount
	}
	if upd.Active != nil {
		c.Active = *upd.Active
	}
	c.UpdatedAt = time.Now().UTC()
	clone := *c
	return &clone, nil
}

func (s *Store) DeleteCourse(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.courses[id]; !ok {
		return false, nil
	}
	delete(s.courses, id)
	return true, nil
}

// --- Testimonials ---

func (s *Store) ListTestimonials(_ context.Context, onlyVisible bool) ([]domain.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Testimonial
	for _, t := range s.testimonials {
		if onlyVisible && !t.Visible {
			continue
		}
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return newerFirst(out[i].ID, out[j].ID)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) GetTestimonial(_ context.Context, id string) (*domain.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.testimonials[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *t
	return &clone, nil
}

func (s *Store) CreateTestimonial(_ context.Context, t *domain.Testimonial) (*domain.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *t
	clone.ID = s.allocID()
	clone.CreatedAt = time.Now().UTC()
	s.testimonials[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (s *Store) UpdateTestimonial(_ context.Context, id string, upd domain.TestimonialUpdate) (*domain.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.testimonials[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Name != nil {
		t.Name = *upd.Name
	}
	if upd.Role != nil {
		t.Role = *upd.Role
	}
	if upd.Content != nil {
		t.Content = *upd.Content
	}
	if upd.Rating != nil {
		t.Rating = *upd.Rating
	}
	if upd.ImageURL != nil {
		t.ImageURL = *upd.ImageURL
	}
	if upd.Visible != nil {
		t.Visible = *upd.Visible
	}
	clone := *t
	return &clone, nil
}

func (s *Store) DeleteTestimonial(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.testimonials[id]; !ok {
		return false, nil
	}
	delete(s.testimonials, id)
	return true, nil
}

// --- Team members ---

func (s *Store) ListTeamMembers(_ context.Context, onlyVisible bool) ([]domain.TeamMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.TeamMember
	for _, m := range s.team {
		if onlyVisible && !m.Visible {
			continue
		}
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) GetTeamMember(_ context.Context, id string) (*domain.TeamMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.team[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *m
	return &clone, nil
}

func (s *Store) CreateTeamMember(_ context.Context, m *domain.TeamMember) (*domain.TeamMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *m
	clone.ID = s.allocID()
	clone.CreatedAt = time.Now().UTC()
	s.team[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (s *Store) UpdateTeamMember(_ context.Context, id string, upd domain.TeamMemberUpdate) (*domain.TeamMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.team[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Name != nil {
		m.Name = *upd.Name
	}
	if upd.Role != nil {
		m.Role = *upd.Role
	}
	if upd.Bio != nil {
		m.Bio = *upd.Bio
	}
	if upd.ImageURL != nil {
		m.ImageURL = *upd.ImageURL
	}
	if upd.Visible != nil {
		m.Visible = *upd.Visible
	}
	clone := *m
	return &clone, nil
}

func (s *Store) DeleteTeamMember(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.team[id]; !ok {
		return false, nil
	}
	delete(s.team, id)
	return true, nil
}

// --- Jobs ---

func (s *Store) ListJobs(_ context.Context, onlyActive bool) ([]domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Job
	for _, j := range s.jobs {
		if onlyActive && !j.Active {
			continue
		}
		out = append(out, *j)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return newerFirst(out[i].ID, out[j].ID)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) GetJob(_ context.Context, id string) (*domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *j
	return &clone, nil
}

func (s *Store) CreateJob(_ context.Context, j *domain.Job) (*domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *j
	clone.ID = s.allocID()
	now := time.Now().UTC()
	clone.CreatedAt = now
	clone.UpdatedAt = now
	s.jobs[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (s *Store) UpdateJob(_ context.Context, id string, upd domain.JobUpdate) (*domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Title != nil {
		j.Title = *upd.Title
	}
	if upd.Description != nil {
		j.Description = *upd.Description
	}
	if upd.Requirements != nil {
		j.Requirements = *upd.Requirements
	}
	if upd.Location != nil {
		j.Location = *upd.Location
	}
	if upd.Type != nil {
		j.Type = *upd.Type
	}
	if upd.Active != nil {
		j.Active = *upd.Active
	}
	j.UpdatedAt = time.Now().UTC()
	clone := *j
	return &clone, nil
}

func (s *Store) DeleteJob(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.jobs[id]; !ok {
		return false, nil
	}
	delete(s.jobs, id)
	return true, nil
}
