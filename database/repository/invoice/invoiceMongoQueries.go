// File: database/repository/invoice/invoiceMongoQueries.go
package invoiceRepo

import (
	"fmt"
	"regexp"
	"time"

	"github.com/awalle000/Fadila-sales-system/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID retrieves an invoice by its unique ID, or nil if absent.
func (r *MongoInvoiceRepo) GetByID(id string) (*models.Invoice, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var inv models.Invoice
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&inv); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch invoice with id %s: %w", id, err)
	}
	return &inv, nil
}

// buildFindQuery translates a Filter into a Mongo query document.
func buildFindQuery(filter Filter) bson.M {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.CustomerName != "" {
		// Quote the input so names like "A & B (Ltd)" match literally
		// instead of being parsed as regex metacharacters.
		query["customerName"] = bson.M{"$regex": primitive.Regex{
			Pattern: regexp.QuoteMeta(filter.CustomerName),
			Options: "i",
		}}
	}
	if !filter.StartDate.IsZero() && !filter.EndDate.IsZero() {
		query["saleDate"] = bson.M{"$gte": filter.StartDate, "$lte": filter.EndDate}
	}
	return query
}

// Find retrieves invoices matching the filter, sorted by saleDate descending.
func (r *MongoInvoiceRepo) Find(filter Filter) ([]models.Invoice, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := buildFindQuery(filter)

	opts := options.Find().SetSort(bson.D{{Key: "saleDate", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve invoices: %w", err)
	}
	defer cursor.Close(ctx)

	var invoices []models.Invoice
	for cursor.Next(ctx) {
		var inv models.Invoice
		if err := cursor.Decode(&inv); err != nil {
			return nil, fmt.Errorf("failed to decode invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

// FindOverdue lists credit invoices past their due date with an
// outstanding balance, soonest due first.
func (r *MongoInvoiceRepo) FindOverdue(now time.Time) ([]models.Invoice, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{
		"paymentType":      models.PaymentTypeCredit,
		"dueDate":          bson.M{"$lt": now},
		"remainingBalance": bson.M{"$gt": 0},
	}

	opts := options.Find().SetSort(bson.D{{Key: "dueDate", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve overdue invoices: %w", err)
	}
	defer cursor.Close(ctx)

	var invoices []models.Invoice
	for cursor.Next(ctx) {
		var inv models.Invoice
		if err := cursor.Decode(&inv); err != nil {
			return nil, fmt.Errorf("failed to decode invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}
