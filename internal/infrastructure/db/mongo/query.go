package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/alnoor-academy/institute-api/internal/core/domain"
)

// Query helpers shared by every collection. D is the bson document type;
// callers convert to domain types afterwards.

func findAll[D any](ctx context.Context, coll *mongo.Collection, filter bson.M, sort bson.D) ([]D, error) {
	opts := options.Find()
	if len(sort) > 0 {
		opts.SetSort(sort)
	}

	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", coll.Name(), err)
	}
	defer cur.Close(ctx)

	var docs []D
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return docs, nil
}

func findByID[D any](ctx context.Context, coll *mongo.Collection, id string) (*D, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var doc D
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find %s: %w", coll.Name(), err)
	}
	return &doc, nil
}

func insertOne[D any](ctx context.Context, coll *mongo.Collection, doc D) (primitive.ObjectID, error) {
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert %s: %w", coll.Name(), err)
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// updateByID applies a $set and returns the post-update document, or
// domain.ErrNotFound when the id does not resolve.
func updateByID[D any](ctx context.Context, coll *mongo.Collection, id string, set bson.M) (*D, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var doc D
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update %s: %w", coll.Name(), err)
	}
	return &doc, nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id string) (bool, error) {
	oid, err := objectID(id)
	if err != nil {
		// Malformed id: nothing to delete.
		return false, nil
	}

	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", coll.Name(), err)
	}
	return res.DeletedCount > 0, nil
}
