package handlers

import (
	"errors"
	"net/http"
	"time"

	invoiceRepo "github.com/awalle000/Fadila-sales-system/database/repository/invoice"
	"github.com/awalle000/Fadila-sales-system/middleware"
	"github.com/awalle000/Fadila-sales-system/services/invoice"
	"github.com/awalle000/Fadila-sales-system/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InvoiceHandler exposes the invoice lifecycle over HTTP.
type InvoiceHandler struct {
	Service invoice.InvoiceService
}

// NewInvoiceHandler creates an InvoiceHandler.
func NewInvoiceHandler(svc invoice.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{Service: svc}
}

// respondInvoiceError translates typed service errors to status codes.
// Unknown errors become a generic 500; storage detail never leaks.
func respondInvoiceError(c *gin.Context, err error) {
	var (
		validationErr *invoice.ValidationError
		notFoundErr   *invoice.NotFoundError
		conflictErr   *invoice.ConflictError
	)
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"message": validationErr.Message})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundErr.Message})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusInternalServerError, gin.H{"message": conflictErr.Message})
	default:
		utils.GetLogger().Error("Invoice operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while processing invoice"})
	}
}

// parseDateParam accepts RFC 3339 or a bare calendar date.
func parseDateParam(value string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// CreateInvoiceHandler handles POST /api/invoices.
func (h *InvoiceHandler) CreateInvoiceHandler(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	var req invoice.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid invoice payload"})
		return
	}

	inv, err := h.Service.Create(req, actor, middleware.ClientIP(c))
	if err != nil {
		respondInvoiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, inv)
}

// ListInvoicesHandler handles GET /api/invoices with optional status,
// customerName and date range filters.
func (h *InvoiceHandler) ListInvoicesHandler(c *gin.Context) {
	filter := invoiceRepo.Filter{
		Status:       c.Query("status"),
		CustomerName: c.Query("customerName"),
	}

	startRaw, endRaw := c.Query("startDate"), c.Query("endDate")
	if startRaw != "" && endRaw != "" {
		start, okStart := parseDateParam(startRaw)
		end, okEnd := parseDateParam(endRaw)
		if !okStart || !okEnd {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date range"})
			return
		}
		// A bare end date means the whole of that day.
		if end.Hour() == 0 && end.Minute() == 0 && end.Second() == 0 {
			end = end.Add(24*time.Hour - time.Nanosecond)
		}
		filter.StartDate, filter.EndDate = start, end
	}

	invoices, err := h.Service.List(filter)
	if err != nil {
		respondInvoiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// GetInvoiceByIDHandler handles GET /api/invoices/:id.
func (h *InvoiceHandler) GetInvoiceByIDHandler(c *gin.Context) {
	inv, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		respondInvoiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// UpdateInvoiceHandler handles PUT /api/invoices/:id. Only dueDate,
// notes and customerName are mutable; an empty dueDate string clears it.
func (h *InvoiceHandler) UpdateInvoiceHandler(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	var req struct {
		DueDate      *string `json:"dueDate"`
		Notes        *string `json:"notes"`
		CustomerName *string `json:"customerName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid update payload"})
		return
	}

	update := invoice.MetadataUpdate{
		Notes:        req.Notes,
		CustomerName: req.CustomerName,
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			update.ClearDueDate = true
		} else {
			due, ok := parseDateParam(*req.DueDate)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid due date"})
				return
			}
			update.DueDate = &due
		}
	}

	inv, err := h.Service.UpdateMetadata(c.Param("id"), update, actor, middleware.ClientIP(c))
	if err != nil {
		respondInvoiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// RecordPaymentHandler handles POST /api/invoices/:id/payments.
func (h *InvoiceHandler) RecordPaymentHandler(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	var req struct {
		Amount float64 `json:"amount"`
		Note   string  `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payment amount"})
		return
	}

	inv, err := h.Service.RecordPayment(c.Param("id"), req.Amount, req.Note, actor, middleware.ClientIP(c))
	if err != nil {
		respondInvoiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// DeleteInvoiceHandler handles DELETE /api/invoices/:id.
func (h *InvoiceHandler) DeleteInvoiceHandler(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	if err := h.Service.Delete(c.Param("id"), actor, middleware.ClientIP(c)); err != nil {
		respondInvoiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted successfully"})
}
