// Package mongo implements the Storage port over MongoDB collections.
// Collection names mirror the entity kinds; identifiers surface as ObjectID
// hex strings, opaque to everything above this package.
package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/alnoor-academy/institute-api/internal/core/domain"
)

const (
	collUsers        = "users"
	collCategories   = "categories"
	collCourses      = "courses"
	collTestimonials = "testimonials"
	collTeamMembers  = "teamMembers"
	collJobs         = "jobs"
	collStudentApps  = "studentApplications"
	collCareerApps   = "careerApplications"
	collMessages     = "contactMessages"
)

// Storage implements ports.Storage against a *mongo.Database.
type Storage struct {
	db *mongo.Database
}

func NewStorage(db *mongo.Database) *Storage {
	return &Storage{db: db}
}

func (s *Storage) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return s.db.Client().Ping(ctx, nil)
}

// EnsureIndexes creates the indexes the queries below depend on. The unique
// username index is what makes duplicate registration race-safe.
func (s *Storage) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := s.db.Collection(collUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	secondary := map[string]string{
		collCourses:     "category_id",
		collStudentApps: "course_id",
		collCareerApps:  "job_id",
	}
	for coll, field := range secondary {
		if _, err := s.db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: field, Value: 1}},
		}); err != nil {
			return err
		}
	}
	return nil
}

// objectID parses an opaque id into an ObjectID. Malformed ids resolve the
// same as missing documents: callers treat both as not found.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrNotFound
	}
	return oid, nil
}
