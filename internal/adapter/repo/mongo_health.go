package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoHealth pings the primary of a MongoDB deployment.
type MongoHealth struct {
	Client *mongo.Client
}

func (h MongoHealth) Ping(ctx context.Context) error {
	return h.Client.Ping(ctx, readpref.Primary())
}
