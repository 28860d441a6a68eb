package saleRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/awalle000/Fadila-sales-system/database"
	"github.com/awalle000/Fadila-sales-system/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Filter narrows sale listings. Zero values mean "no constraint".
type Filter struct {
	StartDate time.Time
	EndDate   time.Time
	SoldBy    string
}

// SaleRepository defines data access for point-of-sale records.
type SaleRepository interface {
	Create(s *models.Sale) error
	Find(filter Filter) ([]models.Sale, error)
	// FindByDateRange retrieves sales with saleDate in [start, end].
	FindByDateRange(start, end time.Time) ([]models.Sale, error)
}

// MongoSaleRepo implements SaleRepository using MongoDB.
type MongoSaleRepo struct {
	coll *mongo.Collection
}

// NewMongoSaleRepo creates a new instance of SaleRepository using MongoDB.
func NewMongoSaleRepo() SaleRepository {
	coll := database.DB().Collection("sales")
	repo := &MongoSaleRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create sale indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoSaleRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "saleDate", Value: -1}}},
		{Keys: bson.D{{Key: "soldBy", Value: 1}}},
		{Keys: bson.D{{Key: "productId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new sale document.
func (r *MongoSaleRepo) Create(s *models.Sale) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, s)
	if err != nil {
		return fmt.Errorf("failed to create sale: %w", err)
	}
	return nil
}

// Find retrieves sales matching the filter, newest first.
func (r *MongoSaleRepo) Find(filter Filter) ([]models.Sale, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if !filter.StartDate.IsZero() && !filter.EndDate.IsZero() {
		query["saleDate"] = bson.M{"$gte": filter.StartDate, "$lte": filter.EndDate}
	}
	if filter.SoldBy != "" {
		query["soldBy"] = filter.SoldBy
	}

	opts := options.Find().SetSort(bson.D{{Key: "saleDate", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve sales: %w", err)
	}
	defer cursor.Close(ctx)

	var sales []models.Sale
	for cursor.Next(ctx) {
		var s models.Sale
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode sale: %w", err)
		}
		sales = append(sales, s)
	}
	return sales, nil
}

// FindByDateRange retrieves sales with saleDate in [start, end].
func (r *MongoSaleRepo) FindByDateRange(start, end time.Time) ([]models.Sale, error) {
	return r.Find(Filter{StartDate: start, EndDate: end})
}
