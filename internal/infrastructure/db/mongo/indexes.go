package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique indexes the repositories rely on.
// Uniqueness of user emails and product SKUs is enforced here rather than
// by check-then-create in application code: a duplicate insert fails with a
// duplicate key error, which the repositories map to domain conflicts. Run
// once at startup, before serving traffic.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	indexes := []struct {
		collection string
		keys       bson.D
	}{
		{usersCollection, bson.D{{Key: "email", Value: 1}}},
		{productsCollection, bson.D{{Key: "sku", Value: 1}}},
		{ordersCollection, bson.D{{Key: "order_number", Value: 1}}},
	}

	for _, idx := range indexes {
		_, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    idx.keys,
			Options: unique,
		})
		if err != nil {
			return fmt.Errorf("ensure index on %s: %w", idx.collection, err)
		}
	}
	return nil
}
