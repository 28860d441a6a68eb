package activityRepo

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

// ActivityRepository is a mostly write-only audit sink with simple
// reads for the audit screens.
type ActivityRepository interface {
	CreateActivity(entry *models.ActivityLog) error
	CreateLogin(entry *models.LoginLog) error
	GetActivities(limit int64) ([]models.ActivityLog, error)
	GetLogins(limit int64) ([]models.LoginLog, error)
}

// MongoActivityRepo implements ActivityRepository using MongoDB.
type MongoActivityRepo struct {
	activityColl *mongo.Collection
	loginColl    *mongo.Collection
}

// NewMongoActivityRepo creates a new instance of ActivityRepository using MongoDB.
func NewMongoActivityRepo() ActivityRepository {
	repo := &MongoActivityRepo{
		activityColl: database.DB().Collection("activity_logs"),
		loginColl:    database.DB().Collection("login_logs"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create activity indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoActivityRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.activityColl.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create activity indexes: %w", err)
	}

	if _, err := r.loginColl.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "loginTime", Value: -1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create login indexes: %w", err)
	}
	return nil
}

// CreateActivity inserts a new activity log document.
func (r *MongoActivityRepo) CreateActivity(entry *models.ActivityLog) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	entry.CreatedAt = time.Now()
	if _, err := r.activityColl.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to create activity log: %w", err)
	}
	return nil
}

// CreateLogin inserts a new login log document.
func (r *MongoActivityRepo) CreateLogin(entry *models.LoginLog) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	entry.CreatedAt = time.Now()
	if _, err := r.loginColl.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to create login log: %w", err)
	}
	return nil
}

// GetActivities retrieves the most recent activity entries.
func (r *MongoActivityRepo) GetActivities(limit int64) ([]models.ActivityLog, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	cursor, err := r.activityColl.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve activity logs: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.ActivityLog
	for cursor.Next(ctx) {
		var e models.ActivityLog
		if err := cursor.Decode(&e); err != nil {
			return nil, fmt.Errorf("failed to decode activity log: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// GetLogins retrieves the most recent login entries.
func (r *MongoActivityRepo) GetLogins(limit int64) ([]models.LoginLog, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "loginTime", Value: -1}}).SetLimit(limit)
	cursor, err := r.loginColl.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve login logs: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.LoginLog
	for cursor.Next(ctx) {
		var e models.LoginLog
		if err := cursor.Decode(&e); err != nil {
			return nil, fmt.Errorf("failed to decode login log: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
