package invoiceRepo

import (
	"errors"
	"time"

	"github.com/awalle000/Fadila-sales-system/models"
)

// ErrNotFound is returned when an invoice id does not resolve.
var ErrNotFound = errors.New("invoice not found")

// ErrSettled is returned when a payment is applied to an invoice whose
// remaining balance is already zero.
var ErrSettled = errors.New("invoice already fully paid")

// Filter narrows invoice listings. Zero values mean "no constraint".
type Filter struct {
	// Status matches the derived invoice status exactly.
	Status string
	// CustomerName matches as a case-insensitive substring.
	CustomerName string
	// StartDate/EndDate bound saleDate inclusively; both must be set for
	// the range to apply.
	StartDate time.Time
	EndDate   time.Time
}

// InvoiceRepository defines data access for invoices.
type InvoiceRepository interface {
	// Create inserts a new invoice record. A duplicate receipt number
	// surfaces as ErrDuplicateReceipt.
	Create(inv *models.Invoice) error
	// GetByID retrieves an invoice by id, or nil if absent.
	GetByID(id string) (*models.Invoice, error)
	// Find retrieves invoices matching the filter, sorted by saleDate
	// descending.
	Find(filter Filter) ([]models.Invoice, error)
	// UpdateMetadata applies a partial update of the mutable metadata
	// fields only.
	UpdateMetadata(id string, fields map[string]any) error
	// ApplyPayment atomically appends a ledger entry capped at the stored
	// remaining balance, decrements the balance and re-derives status,
	// returning the updated invoice. Returns ErrNotFound or ErrSettled.
	ApplyPayment(id string, payment models.InvoicePayment) (*models.Invoice, error)
	// Delete removes an invoice. Returns ErrNotFound if absent.
	Delete(id string) error
	// FindOverdue lists credit invoices with a due date before the given
	// time and an outstanding balance, soonest due first.
	FindOverdue(now time.Time) ([]models.Invoice, error)
}

// CounterRepository mints monotonically increasing sequence values. The
// increment must be a single atomic read-modify-write at the storage
// layer; two concurrent calls for the same key never observe the same
// value.
type CounterRepository interface {
	Next(key string) (int64, error)
}

// ErrDuplicateReceipt signals a unique-index violation on receiptNumber.
var ErrDuplicateReceipt = errors.New("duplicate receipt number")
