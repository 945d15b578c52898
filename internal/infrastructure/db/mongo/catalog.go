package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/alnoor-academy/institute-api/internal/core/domain"
)

// --- Categories ---

type categoryDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	ImageURL    string             `bson:"image_url,omitempty"`
	Active      bool               `bson:"active"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d *categoryDoc) toDomain() domain.Category {
	return domain.Category{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		Active:      d.Active,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

func (s *Storage) ListCategories(ctx context.Context, onlyActive bool) ([]domain.Category, error) {
	filter := bson.M{}
	if onlyActive {
		filter["active"] = true
	}
	docs, err := findAll[categoryDoc](ctx, s.db.Collection(collCategories), filter, bson.D{{Key: "name", Value: 1}})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Category, len(docs))
	for i := range docs {
		out[i] = docs[i].toDomain()
	}
	return out, nil
}

func (s *Storage) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	doc, err := findByID[categoryDoc](ctx, s.db.Collection(collCategories), id)
	if err != nil {
		return nil, err
	}
	c := doc.toDomain()
	return &c, nil
}

func (s *Storage) CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	now := time.Now().UTC()
	doc := categoryDoc{
		Name:        c.Name,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		Active:      c.Active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	oid, err := insertOne(ctx, s.db.Collection(collCategories), doc)
	if err != nil {
		return nil, err
	}
	doc.ID = oid
	out := doc.toDomain()
	return &out, nil
}

func (s *Storage) UpdateCategory(ctx context.Context, id string, upd domain.CategoryUpdate) (*domain.Category, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	setIf(set, "name", upd.Name)
	setIf(set, "description", upd.Description)
	setIf(set, "image_url", upd.ImageURL)
	setIf(set, "active", upd.Active)

	doc, err := updateByID[categoryDoc](ctx, s.db.Collection(collCategories), id, set)
	if err != nil {
		return nil, err
	}
	c := doc.toDomain()
	return &c, nil
}

func (s *Storage) DeleteCategory(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, s.db.Collection(collCategories), id)
}

// --- Courses ---

type courseDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Title           string             `bson:"title"`
	Description     string             `bson:"description"`
	Image           string             `bson:"image,omitempty"`
	Duration        string             `bson:"duration,omitempty"`
	Price           string             `bson:"price"`
	Featured        bool               `bson:"featured"`
	CategoryID      string             `bson:"category_id,omitempty"`
	InstructorName  string             `bson:"instructor_name,omitempty"`
	InstructorTitle string             `bson:"instructor_title,omitempty"`
	InstructorImage string             `bson:"instructor_image,omitempty"`
	Rating          string             `bson:"rating,omitempty"`
	ReviewCount     int                `bson:"review_count"`
	Active          bool               `bson:"active"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

func (d *courseDoc) toDomain() domain.Course {
	return domain.Course{
		ID:              d.ID.Hex(),
		Title:           d.Title,
		Description:     d.Description,
		Image:           d.Image,
		Duration:        d.Duration,
		Price:           d.Price,
		Featured:        d.Featured,
		CategoryID:      d.CategoryID,
		InstructorName:  d.InstructorName,
		InstructorTitle: d.InstructorTitle,
		InstructorImage: d.InstructorImage,
		Rating:          d.Rating,
		ReviewCount:     d.ReviewCount,
		Active:          d.Active,
		CreatedAt:       d.CreatedAt.UTC(),
		UpdatedAt:       d.UpdatedAt.UTC(),
	}
}

func (s *Storage) listCourses(ctx context.Context, filter bson.M) ([]domain.Course, error) {
	docs, err := findAll[courseDoc](ctx, s.db.Collection(collCourses), filter, bson.D{{Key: "title", Value: 1}})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Course, len(docs))
	for i := range docs {
		out[i] = docs[i].toDomain()
	}
	return out, nil
}

func (s *Storage) ListCourses(ctx context.Context, onlyActive bool) ([]domain.Course, error) {
	filter := bson.M{}
	if onlyActive {
		filter["active"] = true
	}
	return s.listCourses(ctx, filter)
}

func (s *Storage) ListFeaturedCourses(ctx context.Context) ([]domain.Course, error) {
	return s.listCourses(ctx, bson.M{"active": true, "featured": true})
}

func (s *Storage) ListCoursesByCategory(ctx context.Context, categoryID string) ([]domain.Course, error) {
	return s.listCourses(ctx, bson.M{"active": true, "category_id": categoryID})
}

func (s *Storage) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	doc, err := findByID[courseDoc](ctx, s.db.Collection(collCourses), id)
	if err != nil {
		return nil, err
	}
	c := doc.toDomain()
	return &c, nil
}

func (s *Storage) CreateCourse(ctx context.Context, c *domain.Course) (*domain.Course, error) {
	now := time.Now().UTC()
	doc := courseDoc{
		Title:           c.Title,
		Description:     c.Description,
		Image:           c.Image,
		Duration:        c.Duration,
		Price:           c.Price,
		Featured:        c.Featured,
		CategoryID:      c.CategoryID,
		InstructorName:  c.InstructorName,
		InstructorTitle: c.InstructorTitle,
		InstructorImage: c.InstructorImage,
		Rating:          c.Rating,
		ReviewCount:     c.ReviewCount,
		Active:          c.Active,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	oid, err := insertOne(ctx, s.db.Collection(collCourses), doc)
	if err != nil {
		return nil, err
	}
	doc.ID = oid
	out := doc.toDomain()
	return &out, nil
}

func (s *Storage) UpdateCourse(ctx context.Context, id string, upd domain.CourseUpdate) (*domain.Course, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	setIf(set, "title", upd.Title)
	setIf(set, "description", upd.Description)
	setIf(set, "image", upd.Image)
	setIf(set, "duration", upd.Duration)
	setIf(set, "price", upd.Price)
	setIf(set, "featured", upd.Featured)
	setIf(set, "category_id", upd.CategoryID)
	setIf(set, "instructor_name", upd.InstructorName)
	setIf(set, "instructor_title", upd.InstructorTitle)
	setIf(set, "instructor_image", upd.InstructorImage)
	setIf(set, "rating", upd.Rating)
	setIf(set, "review_count", upd.ReviewCount)
	setIf(set, "active", upd.Active)

	doc, err := updateByID[courseDoc](ctx, s.db.Collection(collCourses), id, set)
	if err != nil {
		return nil, err
	}
	c := doc.toDomain()
	return &c, nil
}

func (s *Storage) DeleteCourse(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, s.db.Collection(collCourses), id)
}

// --- Testimonials ---

type testimonialDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Role      string             `bson:"role,omitempty"`
	Content   string             `bson:"content"`
	Rating    int                `bson:"rating"`
	ImageURL  string             `bson:"image_url,omitempty"`
	Visible   bool               `bson:"visible"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d *testimonialDoc) toDomain() domain.Testimonial {
	return domain.Testimonial{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Role:      d.Role,
		Content:   d.Content,
		Rating:    d.Rating,
		ImageURL:  d.ImageURL,
		Visible:   d.Visible,
		CreatedAt: d.CreatedAt.UTC(),
	}
}

func (s *Storage) ListTestimonials(ctx context.Context, onlyVisible bool) ([]domain.Testimonial, error) {
	filter := bson.M{}
	if onlyVisible {
		filter["visible"] = true
	}
	docs, err := findAll[testimonialDoc](ctx, s.db.Collection(collTestimonials), filter, bson.D{{Key: "created_at", Value: -1}})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Testimonial, len(docs))
	for i := range docs {
		out[i] = docs[i].toDomain()
	}
	return out, nil
}

func (s *Storage) GetTestimonial(ctx context.Context, id string) (*domain.Testimonial, error) {
	doc, err := findByID[testimonialDoc](ctx, s.db.Collection(collTestimonials), id)
	if err != nil {
		return nil, err
	}
	t := doc.toDomain()
	return &t, nil
}

func (s *Storage) CreateTestimonial(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error) {
	doc := testimonialDoc{
		Name:      t.Name,
		Role:      t.Role,
		Content:   t.Content,
		Rating:    t.Rating,
		ImageURL:  t.ImageURL,
		Visible:   t.Visible,
		CreatedAt: time.Now().UTC(),
	}
	oid, err := insertOne(ctx, s.db.Collection(collTestimonials), doc)
	if err != nil {
		return nil, err
	}
	doc.ID = oid
	out := doc.toDomain()
	return &out, nil
}

func (s *Storage) UpdateTestimonial(ctx context.Context, id string, upd domain.TestimonialUpdate) (*domain.Testimonial, error) {
	set := bson.M{}
	setIf(set, "name", upd.Name)
	setIf(set, "role", upd.Role)
	setIf(set, "content", upd.Content)
	setIf(set, "rating", upd.Rating)
	setIf(set, "image_url", upd.ImageURL)
	setIf(set, "visible", upd.Visible)

	doc, err := updateByID[testimonialDoc](ctx, s.db.Collection(collTestimonials), id, set)
	if err != nil {
		return nil, err
	}
	t := doc.toDomain()
	return &t, nil
}

func (s *Storage) DeleteTestimonial(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, s.db.Collection(collTestimonials), id)
}

// --- Team members ---

type teamMemberDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Role      string             `bson:"role"`
	Bio       string             `bson:"bio,omitempty"`
	ImageURL  string             `bson:"image_url,omitempty"`
	Visible   bool               `bson:"visible"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d *teamMemberDoc) toDomain() domain.TeamMember {
	return domain.TeamMember{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Role:      d.Role,
		Bio:       d.Bio,
		ImageURL:  d.ImageURL,
		Visible:   d.Visible,
		CreatedAt: d.CreatedAt.UTC(),
	}
}

func (s *Storage) ListTeamMembers(ctx context.Context, onlyVisible bool) ([]domain.TeamMember, error) {
	filter := bson.M{}
	if onlyVisible {
		filter["visible"] = true
	}
	docs, err := findAll[teamMemberDoc](ctx, s.db.Collection(collTeamMembers), filter, bson.D{{Key: "name", Value: 1}})
	if err != nil {
		return nil, err
	}
	out := make([]domain.TeamMember, len(docs))
	for i := range docs {
		out[i] = docs[i].toDomain()
	}
	return out, nil
}

func (s *Storage) GetTeamMember(ctx context.Context, id string) (*domain.TeamMember, error) {
	doc, err := findByID[teamMemberDoc](ctx, s.db.Collection(collTeamMembers), id)
	if err != nil {
		return nil, err
	}
	m := doc.toDomain()
	return &m, nil
}

func (s *Storage) CreateTeamMember(ctx context.Context, m *domain.TeamMember) (*domain.TeamMember, error) {
	doc := teamMemberDoc{
		Name:      m.Name,
		Role:      m.Role,
		Bio:       m.Bio,
		ImageURL:  m.ImageURL,
		Visible:   m.Visible,
		CreatedAt: time.Now().UTC(),
	}
	oid, err := insertOne(ctx, s.db.Collection(collTeamMembers), doc)
	if err != nil {
		return nil, err
	}
	doc.ID = oid
	out := doc.toDomain()
	return &out, nil
}

func (s *Storage) UpdateTeamMember(ctx context.Context, id string, upd domain.TeamMemberUpdate) (*domain.TeamMember, error) {
	set := bson.M{}
	setIf(set, "name", upd.Name)
	setIf(set, "role", upd.Role)
	setIf(set, "bio", upd.Bio)
	setIf(set, "image_url", upd.ImageURL)
	setIf(set, "visible", upd.Visible)

	doc, err := updateByID[teamMemberDoc](ctx, s.db.Collection(collTeamMembers), id, set)
	if err != nil {
		return nil, err
	}
	m := doc.toDomain()
	return &m, nil
}

func (s *Storage) DeleteTeamMember(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, s.db.Collection(collTeamMembers), id)
}

// --- Jobs ---

type jobDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description"`
	Requirements string             `bson:"requirements"`
	Location     string             `bson:"location,omitempty"`
	Type         string             `bson:"type,omitempty"`
	Active       bool               `bson:"active"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (d *jobDoc) toDomain() domain.Job {
	return domain.Job{
		ID:           d.ID.Hex(),
		Title:        d.Title,
		Description:  d.Description,
		Requirements: d.Requirements,
		Location:     d.Location,
		Type:         d.Type,
		Active:       d.Active,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

func (s *Storage) ListJobs(ctx context.Context, onlyActive bool) ([]domain.Job, error) {
	filter := bson.M{}
	if onlyActive {
		filter["active"] = true
	}
	docs, err := findAll[jobDoc](ctx, s.db.Collection(collJobs), filter, bson.D{{Key: "created_at", Value: -1}})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Job, len(docs))
	for i := range docs {
		out[i] = docs[i].toDomain()
	}
	return out, nil
}

func (s *Storage) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	doc, err := findByID[jobDoc](ctx, s.db.Collection(collJobs), id)
	if err != nil {
		return nil, err
	}
	j := doc.toDomain()
	return &j, nil
}

func (s *Storage) CreateJob(ctx context.Context, j *domain.Job) (*domain.Job, error) {
	now := time.Now().UTC()
	doc := jobDoc{
		Title:        j.Title,
		Description:  j.Description,
		Requirements: j.Requirements,
		Location:     j.Location,
		Type:         j.Type,
		Active:       j.Active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	oid, err := insertOne(ctx, s.db.Collection(collJobs), doc)
	if err != nil {
		return nil, err
	}
	doc.ID = oid
	out := doc.toDomain()
	return &out, nil
}

func (s *Storage) UpdateJob(ctx context.Context, id string, upd domain.JobUpdate) (*domain.Job, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	setIf(set, "title", upd.Title)
	setIf(set, "description", upd.Description)
	setIf(set, "requirements", upd.Requirements)
	setIf(set, "location", upd.Location)
	setIf(set, "type", upd.Type)
	setIf(set, "active", upd.Active)

	doc, err := updateByID[jobDoc](ctx, s.db.Collection(collJobs), id, set)
	if err != nil {
		return nil, err
	}
	j := doc.toDomain()
	return &j, nil
}

func (s *Storage) DeleteJob(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, s.db.Collection(collJobs), id)
}

// setIf adds field to the $set document when the pointer is non-nil.
func setIf[T any](set bson.M, field string, v *T) {
	if v != nil {
		set[field] = *v
	}
}
