package util

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// MongoCleanup drops dbName. Only meant for tests.
func MongoCleanup(mongodbClient *mongo.Client, dbName string) error {
	return mongodbClient.Database(dbName).Drop(context.Background())
}
