package repo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"causes/internal/domain"
)

func namespace(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func TestCauseRepositoryMongo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create returns generated id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewCauseRepositoryMongo(mt.Coll)

		res, err := repo.Create(ctx, domain.CauseInput{Title: "Water", Description: "Wells", ImageURL: "https://x.io/a.png"})
		require.NoError(mt, err)
		assert.True(mt, res.Acknowledged)
		assert.Len(mt, res.InsertedID, 24)
	})

	mt.Run("create surfaces write errors", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}))
		repo := NewCauseRepositoryMongo(mt.Coll)

		_, err := repo.Create(ctx, domain.CauseInput{Title: "Water", Description: "Wells", ImageURL: "https://x.io/a.png"})
		require.Error(mt, err)
	})

	mt.Run("list decodes documents", func(mt *mtest.T) {
		first, second := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: first}, {Key: "title", Value: "A"}, {Key: "description", Value: "a"}, {Key: "imageURL", Value: "http://a"}},
			bson.D{{Key: "_id", Value: second}, {Key: "title", Value: "B"}, {Key: "description", Value: "b"}, {Key: "imageURL", Value: "http://b"}},
		))
		repo := NewCauseRepositoryMongo(mt.Coll)

		items, err := repo.List(ctx)
		require.NoError(mt, err)
		require.Len(mt, items, 2)
		assert.Equal(mt, first.Hex(), items[0].ID)
		assert.Equal(mt, "B", items[1].Title)
		assert.Equal(mt, "http://b", items[1].ImageURL)
	})

	mt.Run("list of empty collection is not nil", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))
		repo := NewCauseRepositoryMongo(mt.Coll)

		items, err := repo.List(ctx)
		require.NoError(mt, err)
		assert.NotNil(mt, items)
		assert.Empty(mt, items)
	})

	mt.Run("get by id", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id}, {Key: "title", Value: "Water"}, {Key: "description", Value: "Wells"}, {Key: "imageURL", Value: "https://x.io/a.png"}},
		))
		repo := NewCauseRepositoryMongo(mt.Coll)

		cause, err := repo.GetByID(ctx, id.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, domain.Cause{ID: id.Hex(), Title: "Water", Description: "Wells", ImageURL: "https://x.io/a.png"}, *cause)
	})

	mt.Run("get by id not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))
		repo := NewCauseRepositoryMongo(mt.Coll)

		_, err := repo.GetByID(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, domain.ErrNotFound)
	})

	mt.Run("get by malformed id", func(mt *mtest.T) {
		repo := NewCauseRepositoryMongo(mt.Coll)

		_, err := repo.GetByID(ctx, "not-an-id")
		assert.ErrorIs(mt, err, domain.ErrInvalidID)
	})

	mt.Run("replace reports counts", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))
		repo := NewCauseRepositoryMongo(mt.Coll)

		res, err := repo.Replace(ctx, primitive.NewObjectID().Hex(), domain.CauseInput{Title: "T", Description: "D", ImageURL: "http://i"})
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), res.MatchedCount)
		assert.Equal(mt, int64(1), res.ModifiedCount)
		assert.Nil(mt, res.UpsertedID)
	})

	mt.Run("replace without match", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))
		repo := NewCauseRepositoryMongo(mt.Coll)

		res, err := repo.Replace(ctx, primitive.NewObjectID().Hex(), domain.CauseInput{Title: "T", Description: "D", ImageURL: "http://i"})
		require.NoError(mt, err)
		assert.Zero(mt, res.MatchedCount)
	})

	mt.Run("delete reports count", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		repo := NewCauseRepositoryMongo(mt.Coll)

		res, err := repo.Delete(ctx, primitive.NewObjectID().Hex())
		require.NoError(mt, err)
		assert.Equal(mt, domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, res)
	})

	mt.Run("delete surfaces command errors", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Name: "BadValue", Message: "boom"}))
		repo := NewCauseRepositoryMongo(mt.Coll)

		_, err := repo.Delete(ctx, primitive.NewObjectID().Hex())
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "boom")
	})
}

func TestContributionRepositoryMongo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create fills id and timestamp", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewContributionRepositoryMongo(mt.Coll)

		c := &domain.Contribution{
			CauseID:        primitive.NewObjectID().Hex(),
			CauseDonatedTo: "Water",
			Name:           "Ada",
			Email:          "ada@example.com",
			Amount:         50,
		}
		res, err := repo.Create(ctx, c)
		require.NoError(mt, err)
		assert.Equal(mt, c.ID, res.InsertedID)
		assert.Len(mt, c.ID, 24)
		assert.False(mt, c.CreatedAt.IsZero())
	})

	mt.Run("create rejects malformed cause id", func(mt *mtest.T) {
		repo := NewContributionRepositoryMongo(mt.Coll)

		_, err := repo.Create(ctx, &domain.Contribution{CauseID: "xyz"})
		assert.ErrorIs(mt, err, domain.ErrInvalidID)
	})

	mt.Run("list by cause", func(mt *mtest.T) {
		causeID := primitive.NewObjectID()
		created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "causeId", Value: causeID},
				{Key: "causeDonatedTo", Value: "Water"},
				{Key: "name", Value: "Ada"},
				{Key: "email", Value: "ada@example.com"},
				{Key: "amount", Value: int64(50)},
				{Key: "createdAt", Value: created},
			},
		))
		repo := NewContributionRepositoryMongo(mt.Coll)

		items, err := repo.ListByCause(ctx, causeID.Hex())
		require.NoError(mt, err)
		require.Len(mt, items, 1)
		assert.Equal(mt, causeID.Hex(), items[0].CauseID)
		assert.Equal(mt, "Water", items[0].CauseDonatedTo)
		assert.Equal(mt, int64(50), items[0].Amount)
		assert.True(mt, created.Equal(items[0].CreatedAt))
	})

	mt.Run("ensure indexes", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewContributionRepositoryMongo(mt.Coll)

		require.NoError(mt, repo.EnsureIndexes(ctx))
	})
}
