// File: database/repository/invoice/counter.go
package invoiceRepo

import (
	"fmt"
	"time"

	"github.com/awalle000/Fadila-sales-system/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCounterRepo implements CounterRepository over a single-document
// atomic counter per key. FindOneAndUpdate with $inc is one atomic
// read-modify-write on the server, so concurrent mints for the same key
// never observe the same sequence value.
type MongoCounterRepo struct {
	coll *mongo.Collection
}

// NewMongoCounterRepo creates a CounterRepository backed by the
// "counters" collection.
func NewMongoCounterRepo() CounterRepository {
	return &MongoCounterRepo{coll: database.DB().Collection("counters")}
}

type counterDoc struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

// Next atomically increments and returns the counter for the given key,
// creating it with an initial value of 1 on first use.
func (r *MongoCounterRepo) Next(key string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc counterDoc
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": key},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("failed to increment counter %s: %w", key, err)
	}
	return doc.Seq, nil
}
