package sales

import (
	"errors"
	"fmt"
	"time"

	productRepo "github.com/awalle000/Fadila-sales-system/database/repository/product"
	saleRepo "github.com/awalle000/Fadila-sales-system/database/repository/sale"
	"github.com/awalle000/Fadila-sales-system/models"
	"github.com/awalle000/Fadila-sales-system/services/activity"
	"github.com/awalle000/Fadila-sales-system/utils"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when the sold product does not resolve.
var ErrProductNotFound = errors.New("product not found")

// ErrValidation wraps sale input validation failures.
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Message
}

// RecordRequest is a point-of-sale event for a single product.
type RecordRequest struct {
	ProductID    string `json:"productId"`
	QuantitySold int    `json:"quantitySold"`
	Notes        string `json:"notes"`
}

// SalesService records settled point-of-sale events and lists them.
type SalesService interface {
	Record(req RecordRequest, actor models.Actor, ip string) (*models.Sale, error)
	List(filter saleRepo.Filter) ([]models.Sale, error)
	ListDaily(date time.Time) ([]models.Sale, error)
	ListMonthly(year int, month time.Month) ([]models.Sale, error)
}

// DefaultSalesService implements SalesService.
type DefaultSalesService struct {
	Repo     saleRepo.SaleRepository
	Products productRepo.ProductRepository
	Audit    activity.ActivityService
}

// Record validates stock, snapshots catalog prices, decrements stock
// atomically and persists the sale. The stock decrement is guarded at
// the storage layer, so concurrent sales cannot oversell.
func (s *DefaultSalesService) Record(req RecordRequest, actor models.Actor, ip string) (*models.Sale, error) {
	if req.ProductID == "" || req.QuantitySold <= 0 {
		return nil, &ErrValidation{Message: "Please provide valid product ID and quantity"}
	}

	product, err := s.Products.GetByID(req.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if err := s.Products.DecrementStock(product.ID, req.QuantitySold); err != nil {
		if errors.Is(err, productRepo.ErrInsufficientStock) {
			return nil, &ErrValidation{Message: fmt.Sprintf(
				"Insufficient stock. Available: %d %s", product.QuantityInStock, product.Unit)}
		}
		if errors.Is(err, productRepo.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	totalAmount := utils.MulRound2(product.SellingPrice, req.QuantitySold)
	profit := utils.SubRound2(totalAmount, utils.MulRound2(product.CostPrice, req.QuantitySold))

	sale := &models.Sale{
		ID:           uuid.NewString(),
		ProductID:    product.ID,
		ProductName:  product.Name,
		QuantitySold: req.QuantitySold,
		UnitPrice:    product.SellingPrice,
		TotalAmount:  totalAmount,
		CostPrice:    product.CostPrice,
		Profit:       profit,
		SoldBy:       actor.ID,
		SellerName:   actor.Name,
		SaleDate:     time.Now(),
		Notes:        req.Notes,
	}

	if err := s.Repo.Create(sale); err != nil {
		return nil, err
	}

	s.Audit.Record(actor, models.ActionSaleRecorded,
		fmt.Sprintf("Sold %d %s of %s - Total: %s",
			req.QuantitySold, product.Unit, product.Name, utils.FormatCedis(totalAmount)), ip)
	return sale, nil
}

// List retrieves sales matching the filter, newest first.
func (s *DefaultSalesService) List(filter saleRepo.Filter) ([]models.Sale, error) {
	return s.Repo.Find(filter)
}

// ListDaily retrieves the sales of one calendar day.
func (s *DefaultSalesService) ListDaily(date time.Time) ([]models.Sale, error) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)
	return s.Repo.FindByDateRange(start, end)
}

// ListMonthly retrieves the sales of one calendar month.
func (s *DefaultSalesService) ListMonthly(year int, month time.Month) ([]models.Sale, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return s.Repo.FindByDateRange(start, end)
}
