// File: database/repository/invoice/invoiceMongoCrud.go
package invoiceRepo

import (
	"fmt"
	"time"

	"github.com/awalle000/Fadila-sales-system/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new invoice document.
func (r *MongoInvoiceRepo) Create(inv *models.Invoice) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	inv.CreatedAt = now
	inv.UpdatedAt = now
	if inv.Payments == nil {
		inv.Payments = []models.InvoicePayment{}
	}

	_, err := r.coll.InsertOne(ctx, inv)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateReceipt
		}
		return fmt.Errorf("failed to create invoice: %w", err)
	}
	return nil
}

// UpdateMetadata applies a partial $set of mutable metadata fields.
func (r *MongoInvoiceRepo) UpdateMetadata(id string, fields map[string]any) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		updateDoc[k] = v
	}

	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update invoice with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ApplyPayment atomically records a payment with a single
// aggregation-pipeline update: the ledger entry amount is capped at the
// remaining balance *as stored*, the balance is decremented with a floor
// of zero, and status is re-derived. Two concurrent payments on the same
// invoice therefore can never jointly exceed the amount owed.
func (r *MongoInvoiceRepo) ApplyPayment(id string, payment models.InvoicePayment) (*models.Invoice, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	entry := bson.D{
		{Key: "id", Value: payment.ID},
		{Key: "amount", Value: bson.D{{Key: "$round", Value: bson.A{
			bson.D{{Key: "$min", Value: bson.A{payment.Amount, "$remainingBalance"}}}, 2,
		}}}},
		{Key: "date", Value: payment.Date},
		{Key: "recordedBy", Value: payment.RecordedBy},
		{Key: "recordedByName", Value: payment.RecordedByName},
		{Key: "note", Value: payment.Note},
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "payments", Value: bson.D{{Key: "$concatArrays", Value: bson.A{
				bson.D{{Key: "$ifNull", Value: bson.A{"$payments", bson.A{}}}},
				bson.A{entry},
			}}}},
			{Key: "remainingBalance", Value: bson.D{{Key: "$round", Value: bson.A{
				bson.D{{Key: "$max", Value: bson.A{0,
					bson.D{{Key: "$subtract", Value: bson.A{"$remainingBalance", payment.Amount}}},
				}}}, 2,
			}}}},
			{Key: "updatedAt", Value: payment.Date},
		}}},
		// Second stage so status reads the balance written above.
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "status", Value: bson.D{{Key: "$cond", Value: bson.A{
				bson.D{{Key: "$eq", Value: bson.A{"$remainingBalance", 0}}},
				models.InvoiceStatusPaid,
				models.InvoiceStatusPending,
			}}}},
		}}},
	}

	// Only an unsettled invoice matches; a settled or missing one falls
	// through to ErrNoDocuments and is disambiguated below.
	filter := bson.M{"id": id, "remainingBalance": bson.M{"$gt": 0}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Invoice
	err := r.coll.FindOneAndUpdate(ctx, filter, pipeline, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		var existing models.Invoice
		if lookupErr := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&existing); lookupErr == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		} else if lookupErr != nil {
			return nil, fmt.Errorf("failed to fetch invoice with id %s: %w", id, lookupErr)
		}
		return nil, ErrSettled
	}
	if err != nil {
		return nil, fmt.Errorf("failed to apply payment to invoice %s: %w", id, err)
	}
	return &updated, nil
}

// Delete removes an invoice document by its ID.
func (r *MongoInvoiceRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete invoice with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
