package invoice

import (
	"time"

	invoiceRepo "github.com/awalle000/Fadila-sales-system/database/repository/invoice"
	"github.com/awalle000/Fadila-sales-system/models"
	"github.com/awalle000/Fadila-sales-system/services/activity"
)

// CreateRequest is a validated creation request for an invoice.
type CreateRequest struct {
	Items        []ItemInput `json:"items"`
	SaleDate     *time.Time  `json:"saleDate,omitempty"`
	CustomerName string      `json:"customerName"`
	PaymentType  string      `json:"paymentType"`
	DueDate      *time.Time  `json:"dueDate,omitempty"`
	Notes        string      `json:"notes"`
}

// MetadataUpdate carries the only post-creation mutable fields. Nil
// pointers mean "leave unchanged"; ClearDueDate removes the due date.
type MetadataUpdate struct {
	DueDate      *time.Time
	ClearDueDate bool
	Notes        *string
	CustomerName *string
}

// InvoiceService orchestrates the invoice lifecycle: creation with an
// atomically minted receipt number, metadata updates, append-only
// payment recording with balance capping, and hard deletion.
type InvoiceService interface {
	Create(req CreateRequest, actor models.Actor, ip string) (*models.Invoice, error)
	GetByID(id string) (*models.Invoice, error)
	List(filter invoiceRepo.Filter) ([]models.Invoice, error)
	UpdateMetadata(id string, update MetadataUpdate, actor models.Actor, ip string) (*models.Invoice, error)
	RecordPayment(id string, amount float64, note string, actor models.Actor, ip string) (*models.Invoice, error)
	Delete(id string, actor models.Actor, ip string) error
}

// DefaultInvoiceService implements InvoiceService.
type DefaultInvoiceService struct {
	Repo    invoiceRepo.InvoiceRepository
	Counter invoiceRepo.CounterRepository
	Audit   activity.ActivityService
}
