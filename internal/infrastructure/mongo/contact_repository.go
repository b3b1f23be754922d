package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rushnrelax/storefront-api/internal/contact"
)

// ContactRepository stores contact form submissions in MongoDB.
type ContactRepository struct {
	collection *mongo.Collection
}

// NewContactRepository creates a Mongo-backed contact repository.
func NewContactRepository(db *mongo.Database, collectionName string) *ContactRepository {
	return &ContactRepository{collection: db.Collection(collectionName)}
}

// Insert stores one submission and returns it with the generated ID.
func (r *ContactRepository) Insert(ctx context.Context, sub contact.Submission) (contact.Submission, error) {
	doc := ContactSubmissionDocument{
		ID:          primitive.NewObjectID(),
		Name:        sub.Name,
		Email:       sub.Email,
		Phone:       sub.Phone,
		Message:     sub.Message,
		SubmittedAt: sub.SubmittedAt,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return contact.Submission{}, err
	}
	sub.ID = doc.ID.Hex()
	return sub, nil
}

// List returns stored submissions newest first, capped at limit.
func (r *ContactRepository) List(ctx context.Context, limit int) ([]contact.Submission, error) {
	if limit <= 0 {
		limit = 50
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "submittedAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	subs := make([]contact.Submission, 0)
	for cursor.Next(ctx) {
		var doc ContactSubmissionDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		subs = append(subs, contact.Submission{
			ID:          doc.ID.Hex(),
			Name:        doc.Name,
			Email:       doc.Email,
			Phone:       doc.Phone,
			Message:     doc.Message,
			SubmittedAt: doc.SubmittedAt,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return subs, nil
}
