package repo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"causes/internal/domain"
)

type contributionDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	CauseID        primitive.ObjectID `bson:"causeId"`
	CauseDonatedTo string             `bson:"causeDonatedTo"`
	Name           string             `bson:"name"`
	Email          string             `bson:"email"`
	Amount         int64              `bson:"amount"`
	CreatedAt      time.Time          `bson:"createdAt"`
}

// ContributionRepositoryMongo implements ContributionRepository on a MongoDB collection.
type ContributionRepositoryMongo struct {
	coll *mongo.Collection
}

// NewContributionRepositoryMongo creates a contribution repo over coll.
func NewContributionRepositoryMongo(coll *mongo.Collection) *ContributionRepositoryMongo {
	return &ContributionRepositoryMongo{coll: coll}
}

// EnsureIndexes creates the causeId index used by ListByCause.
func (r *ContributionRepositoryMongo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "causeId", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create contributions index: %w", err)
	}
	return nil
}

// Create inserts a contribution. ID and CreatedAt are filled in when empty.
func (r *ContributionRepositoryMongo) Create(ctx context.Context, c *domain.Contribution) (domain.InsertResult, error) {
	causeID, err := primitive.ObjectIDFromHex(c.CauseID)
	if err != nil {
		return domain.InsertResult{}, domain.ErrInvalidID
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	doc := contributionDocument{
		ID:             primitive.NewObjectID(),
		CauseID:        causeID,
		CauseDonatedTo: c.CauseDonatedTo,
		Name:           c.Name,
		Email:          c.Email,
		Amount:         c.Amount,
		CreatedAt:      c.CreatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return domain.InsertResult{}, fmt.Errorf("insert contribution: %w", err)
	}
	c.ID = doc.ID.Hex()
	return domain.InsertResult{Acknowledged: true, InsertedID: c.ID}, nil
}

// ListByCause returns the contributions of one cause, oldest first.
func (r *ContributionRepositoryMongo) ListByCause(ctx context.Context, causeID string) ([]domain.Contribution, error) {
	oid, err := primitive.ObjectIDFromHex(causeID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"causeId": oid}, opts)
	if err != nil {
		return nil, fmt.Errorf("find contributions: %w", err)
	}
	var docs []contributionDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode contributions: %w", err)
	}

	items := make([]domain.Contribution, 0, len(docs))
	for _, d := range docs {
		items = append(items, domain.Contribution{
			ID:             d.ID.Hex(),
			CauseID:        d.CauseID.Hex(),
			CauseDonatedTo: d.CauseDonatedTo,
			Name:           d.Name,
			Email:          d.Email,
			Amount:         d.Amount,
			CreatedAt:      d.CreatedAt,
		})
	}
	return items, nil
}

var _ domain.ContributionRepository = (*ContributionRepositoryMongo)(nil)
