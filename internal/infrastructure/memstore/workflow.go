package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/alnoor-academy/institute-api/internal/core/domain"
)

// --- Student applications ---

func (s *Store) ListStudentApplications(_ context.Context, f domain.ApplicationFilter) ([]domain.StudentApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.StudentApplication
	for _, a := range s.studentApps {
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		if f.SubjectID != "" && a.CourseID != f.SubjectID {
			continue
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return newerFirst(out[i].ID, out[j].ID)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) GetStudentApplication(_ context.Context, id string) (*domain.StudentApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.studentApps[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *a
	return &clone, nil
}

func (s *Store) CreateStudentApplication(_ context.Context, a *domain.StudentApplication) (*domain.StudentApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *a
	clone.ID = s.allocID()
	now := time.Now().UTC()
	clone.CreatedAt = now
	clone.UpdatedAt = now
	s.studentApps[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (s *Store) UpdateStudentApplicationStatus(_ context.Context, id string, status domain.ApplicationStatus) (*domain.StudentApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.studentApps[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	a.Status = status
	a.UpdatedAt = time.Now().UTC()
	clone := *a
	return &clone, nil
}

func (s *Store) DeleteStudentApplication(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.studentApps[id]; !ok {
		return false, nil
	}
	delete(s.studentApps, id)
	return true, nil
}

// --- Career applications ---

func (s *Store) ListCareerApplications(_ context.Context, f domain.ApplicationFilter) ([]domain.CareerApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.CareerApplication
	for _, a := range s.careerApps {
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		if f.SubjectID != "" && a.JobID != f.SubjectID {
			continue
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return newerFirst(out[i].ID, out[j].ID)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) GetCareerApplication(_ context.Context, id string) (*domain.CareerApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.careerApps[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *a
	return &clone, nil
}

func (s *Store) CreateCareerApplication(_ context.Context, a *domain.CareerApplication) (*domain.CareerApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *a
	clone.ID = s.allocID()
	now := time.Now().UTC()
	clone.CreatedAt = now
	clone.UpdatedAt = now
	s.careerApps[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (s *Store) UpdateCareerApplicationStatus(_ context.Context, id string, status domain.ApplicationStatus) (*domain.CareerApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.careerApps[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	a.Status = status
	a.UpdatedAt = time.Now().UTC()
	clone := *a
	return &clone, nil
}

func (s *Store) DeleteCareerApplication(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.careerApps[id]; !ok {
		return false, nil
	}
	delete(s.careerApps, id)
	return true, nil
}

// --- Contact messages ---

func (s *Store) ListContactMessages(_ context.Context) ([]domain.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.ContactMessage
	for _, m := range s.messages {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return newerFirst(out[i].ID, out[j].ID)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) GetContactMessage(_ context.Context, id string) (*domain.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.messages[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *m
	return &clone, nil
}

func (s *Store) CreateContactMessage(_ context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *m
	clone.ID = s.allocID()
	clone.CreatedAt = time.Now().UTC()
	s.messages[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (s *Store) MarkContactMessageRead(_ context.Context, id string) (*domain.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.messages[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	m.IsRead = true
	clone := *m
	return &clone, nil
}

func (s *Store) DeleteContactMessage(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.messages[id]; !ok {
		return false, nil
	}
	delete(s.messages, id)
	return true, nil
}

// --- Dashboard stats ---

func (s *Store) Stats(_ context.Context) (*domain.DashboardStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := &domain.DashboardStats{
		StudentCount:     int64(len(s.studentApps)),
		ApplicationCount: int64(len(s.careerApps)),
	}
	for _, c := range s.courses {
		if c.Active {
			stats.CourseCount++
		}
	}
	for _, m := range s.messages {
		if !m.IsRead {
			stats.UnreadMessageCount++
		}
	}
	return stats, nil
}
