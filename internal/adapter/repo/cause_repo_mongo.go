package repo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"causes/internal/domain"
)

const (
	CausesCollection        = "causes"
	ContributionsCollection = "contributions"
)

type causeDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	ImageURL    string             `bson:"imageURL"`
}

func (d causeDocument) toDomain() domain.Cause {
	return domain.Cause{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		ImageURL:    d.ImageURL,
	}
}

// CauseRepositoryMongo implements CauseRepository on a MongoDB collection.
type CauseRepositoryMongo struct {
	coll *mongo.Collection
}

// NewCauseRepositoryMongo creates a cause repo over coll.
func NewCauseRepositoryMongo(coll *mongo.Collection) *CauseRepositoryMongo {
	return &CauseRepositoryMongo{coll: coll}
}

// List returns every cause in natural order.
func (r *CauseRepositoryMongo) List(ctx context.Context) ([]domain.Cause, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find causes: %w", err)
	}
	var docs []causeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode causes: %w", err)
	}

	items := make([]domain.Cause, 0, len(docs))
	for _, doc := range docs {
		items = append(items, doc.toDomain())
	}
	return items, nil
}

// Create inserts a new cause with a freshly generated ObjectID.
func (r *CauseRepositoryMongo) Create(ctx context.Context, in domain.CauseInput) (domain.InsertResult, error) {
	doc := causeDocument{
		ID:          primitive.NewObjectID(),
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return domain.InsertResult{}, fmt.Errorf("insert cause: %w", err)
	}
	return domain.InsertResult{Acknowledged: true, InsertedID: doc.ID.Hex()}, nil
}

// GetByID returns domain.ErrNotFound when no cause has the given id.
func (r *CauseRepositoryMongo) GetByID(ctx context.Context, id string) (*domain.Cause, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	var doc causeDocument
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find cause: %w", err)
	}
	cause := doc.toDomain()
	return &cause, nil
}

// Replace overwrites title, description and imageURL of one cause.
func (r *CauseRepositoryMongo) Replace(ctx context.Context, id string, in domain.CauseInput) (domain.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.UpdateResult{}, domain.ErrInvalidID
	}

	update := bson.M{"$set": bson.M{
		"title":       in.Title,
		"description": in.Description,
		"imageURL":    in.ImageURL,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("update cause: %w", err)
	}
	return domain.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}, nil
}

// Delete removes one cause. Contributions referencing it are kept.
func (r *CauseRepositoryMongo) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.DeleteResult{}, domain.ErrInvalidID
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return domain.DeleteResult{}, fmt.Errorf("delete cause: %w", err)
	}
	return domain.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

var _ domain.CauseRepository = (*CauseRepositoryMongo)(nil)
