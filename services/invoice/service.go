package invoice

import (
	"errors"
	"fmt"
	"math"
	"time"

	invoiceRepo "github.com/awalle000/Fadila-sales-system/database/repository/invoice"
	"github.com/awalle000/Fadila-sales-system/models"
	"github.com/awalle000/Fadila-sales-system/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create validates the request, mints a receipt number through the
// atomic counter and persists the invoice. Cash invoices settle at
// creation; credit invoices open with the full amount outstanding. A
// receipt number is never accepted from the caller and there is no
// ad-hoc fallback: if the counter is unavailable the whole operation
// fails.
func (s *DefaultInvoiceService) Create(req CreateRequest, actor models.Actor, ip string) (*models.Invoice, error) {
	logger := utils.GetLogger()

	paymentType := req.PaymentType
	if paymentType == "" {
		paymentType = models.PaymentTypeCredit
	}
	if paymentType != models.PaymentTypeCash && paymentType != models.PaymentTypeCredit {
		return nil, NewValidationError("Payment type must be cash or credit")
	}

	items, totals, err := ComputeTotals(req.Items)
	if err != nil {
		return nil, err
	}

	saleDate := time.Now()
	if req.SaleDate != nil && !req.SaleDate.IsZero() {
		saleDate = *req.SaleDate
	}

	customerName := req.CustomerName
	if customerName == "" {
		customerName = "Walk-in"
	}

	remainingBalance := totals.FinalAmount
	if paymentType == models.PaymentTypeCash {
		remainingBalance = 0
	}
	status := models.InvoiceStatusPending
	if remainingBalance == 0 {
		status = models.InvoiceStatusPaid
	}

	inv := &models.Invoice{
		ID:               uuid.NewString(),
		Items:            items,
		Totals:           totals,
		SaleDate:         saleDate,
		SoldBy:           actor.ID,
		SellerName:       actor.Name,
		CustomerName:     customerName,
		PaymentType:      paymentType,
		Status:           status,
		RemainingBalance: remainingBalance,
		Payments:         []models.InvoicePayment{},
		DueDate:          req.DueDate,
		Notes:            req.Notes,
	}

	// One internal retry with a freshly minted number: a duplicate can
	// only mean the counter and the unique index disagree, which a
	// second mint resolves unless the counter itself is broken.
	for attempt := 0; attempt < 2; attempt++ {
		number, err := s.mintReceiptNumber()
		if err != nil {
			return nil, err
		}
		inv.ReceiptNumber = number

		err = s.Repo.Create(inv)
		if err == nil {
			s.Audit.Record(actor, models.ActionInvoiceCreated,
				fmt.Sprintf("Created invoice %s - Total: %s", inv.ReceiptNumber, utils.FormatCedis(totals.FinalAmount)), ip)
			return inv, nil
		}
		if !errors.Is(err, invoiceRepo.ErrDuplicateReceipt) {
			return nil, fmt.Errorf("failed to persist invoice: %w", err)
		}
		logger.Warn("Duplicate receipt number on insert, re-minting",
			zap.String("receiptNumber", inv.ReceiptNumber))
	}

	logger.Error("Duplicate receipt number survived re-mint; counter atomicity is suspect",
		zap.String("receiptNumber", inv.ReceiptNumber))
	return nil, &ConflictError{Message: "Could not allocate a unique receipt number"}
}

func (s *DefaultInvoiceService) mintReceiptNumber() (string, error) {
	year := time.Now().Year()
	seq, err := s.Counter.Next(CounterKey(year))
	if err != nil {
		return "", fmt.Errorf("failed to mint receipt number: %w", err)
	}
	return FormatReceiptNumber(year, seq), nil
}

// GetByID retrieves a single invoice.
func (s *DefaultInvoiceService) GetByID(id string) (*models.Invoice, error) {
	inv, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, &NotFoundError{Message: "Invoice not found"}
	}
	return inv, nil
}

// List retrieves invoices matching the filter, newest sale first.
func (s *DefaultInvoiceService) List(filter invoiceRepo.Filter) ([]models.Invoice, error) {
	return s.Repo.Find(filter)
}

// UpdateMetadata applies a partial update of dueDate, notes and
// customerName. Items, totals, payments and the receipt number are not
// reachable through this path. Applying the same update twice yields
// the same persisted state.
func (s *DefaultInvoiceService) UpdateMetadata(id string, update MetadataUpdate, actor models.Actor, ip string) (*models.Invoice, error) {
	fields := map[string]any{}
	if update.ClearDueDate {
		fields["dueDate"] = nil
	} else if update.DueDate != nil {
		fields["dueDate"] = *update.DueDate
	}
	if update.Notes != nil {
		fields["notes"] = *update.Notes
	}
	if update.CustomerName != nil {
		fields["customerName"] = *update.CustomerName
	}
	if len(fields) == 0 {
		return nil, NewValidationError("No updatable fields provided")
	}

	if err := s.Repo.UpdateMetadata(id, fields); err != nil {
		if errors.Is(err, invoiceRepo.ErrNotFound) {
			return nil, &NotFoundError{Message: "Invoice not found"}
		}
		return nil, err
	}

	inv, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, &NotFoundError{Message: "Invoice not found"}
	}

	s.Audit.Record(actor, models.ActionInvoiceUpdated,
		fmt.Sprintf("Updated invoice %s", inv.ReceiptNumber), ip)
	return inv, nil
}

// RecordPayment appends a payment to the ledger. The effective amount is
// capped at the remaining balance by an atomic conditional update in the
// repository, so the ledger never records more than what was owed and
// concurrent payments cannot jointly overshoot. Payments against an
// already settled invoice are rejected.
func (s *DefaultInvoiceService) RecordPayment(id string, amount float64, note string, actor models.Actor, ip string) (*models.Invoice, error) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, NewValidationError("Invalid payment amount")
	}

	payment := models.InvoicePayment{
		ID:             uuid.NewString(),
		Amount:         utils.Round2(amount),
		Date:           time.Now(),
		RecordedBy:     actor.ID,
		RecordedByName: actor.Name,
		Note:           note,
	}

	updated, err := s.Repo.ApplyPayment(id, payment)
	if err != nil {
		if errors.Is(err, invoiceRepo.ErrNotFound) {
			return nil, &NotFoundError{Message: "Invoice not found"}
		}
		if errors.Is(err, invoiceRepo.ErrSettled) {
			return nil, NewValidationError("Invoice is already fully paid")
		}
		return nil, err
	}

	recorded := updated.Payments[len(updated.Payments)-1]
	s.Audit.Record(actor, models.ActionInvoicePayment,
		fmt.Sprintf("Recorded payment of %s on invoice %s", utils.FormatCedis(recorded.Amount), updated.ReceiptNumber), ip)
	return updated, nil
}

// Delete hard-deletes an invoice. Deletion does not restock products or
// reverse profit accounting, and recorded payments go with it; the audit
// entry carries the paid-to-date amount so the trail survives the
// document.
func (s *DefaultInvoiceService) Delete(id string, actor models.Actor, ip string) error {
	inv, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if inv == nil {
		return &NotFoundError{Message: "Invoice not found"}
	}

	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, invoiceRepo.ErrNotFound) {
			return &NotFoundError{Message: "Invoice not found"}
		}
		return err
	}

	var paid float64
	for _, p := range inv.Payments {
		paid = utils.Round2(paid + p.Amount)
	}
	s.Audit.Record(actor, models.ActionInvoiceDeleted,
		fmt.Sprintf("Deleted invoice %s - Paid to date: %s", inv.ReceiptNumber, utils.FormatCedis(paid)), ip)
	return nil
}
