package productRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/awalle000/Fadila-sales-system/database"
	"github.com/awalle000/Fadila-sales-system/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a product id does not resolve.
var ErrNotFound = errors.New("product not found")

// ErrInsufficientStock is returned when a stock decrement would drive
// quantityInStock negative.
var ErrInsufficientStock = errors.New("insufficient stock")

// ProductRepository defines methods for catalog data access.
type ProductRepository interface {
	Create(p *models.Product) error
	GetByID(id string) (*models.Product, error)
	GetAll(includeInactive bool) ([]models.Product, error)
	Update(id string, fields map[string]any) error
	Delete(id string) error
	// DecrementStock atomically subtracts qty from quantityInStock,
	// guarded so stock never goes negative.
	DecrementStock(id string, qty int) error
	FindLowStock() ([]models.Product, error)
}

// MongoProductRepo implements ProductRepository using MongoDB.
type MongoProductRepo struct {
	coll *mongo.Collection
}

// NewMongoProductRepo creates a new instance of ProductRepository using MongoDB.
func NewMongoProductRepo() ProductRepository {
	coll := database.DB().Collection("products")
	repo := &MongoProductRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create product indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoProductRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}, {Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "isActive", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new product document.
func (r *MongoProductRepo) Create(p *models.Product) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// GetByID retrieves a product by its unique ID, or nil if absent.
func (r *MongoProductRepo) GetByID(id string) (*models.Product, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.Product
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch product with id %s: %w", id, err)
	}
	return &p, nil
}

// GetAll retrieves products, newest first. Inactive products are
// excluded unless requested.
func (r *MongoProductRepo) GetAll(includeInactive bool) ([]models.Product, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if !includeInactive {
		query["isActive"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	for cursor.Next(ctx) {
		var p models.Product
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode product: %w", err)
		}
		products = append(products, p)
	}
	return products, nil
}

// Update applies a partial $set update to a product document.
func (r *MongoProductRepo) Update(id string, fields map[string]any) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		updateDoc[k] = v
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update product with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a product document by its ID.
func (r *MongoProductRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete product with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DecrementStock atomically subtracts qty from quantityInStock. The
// filter requires enough stock, so the write either applies fully or
// not at all; concurrent sales can never oversell.
func (r *MongoProductRepo) DecrementStock(id string, qty int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "quantityInStock": bson.M{"$gte": qty}}
	update := bson.M{
		"$inc": bson.M{"quantityInStock": -qty},
		"$set": bson.M{"updatedAt": time.Now()},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to decrement stock for product %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		// Either the product is gone or there is not enough stock.
		var p models.Product
		if lookupErr := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p); lookupErr == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		return ErrInsufficientStock
	}
	return nil
}

// FindLowStock lists active products at or below their low-stock threshold.
func (r *MongoProductRepo) FindLowStock() ([]models.Product, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{
		"isActive": true,
		"$expr":    bson.M{"$lte": bson.A{"$quantityInStock", "$lowStockThreshold"}},
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve low-stock products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	for cursor.Next(ctx) {
		var p models.Product
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode product: %w", err)
		}
		products = append(products, p)
	}
	return products, nil
}
