package product

import (
	"errors"
	"fmt"

	productRepo "github.com/awalle000/Fadila-sales-system/database/repository/product"
	"github.com/awalle000/Fadila-sales-system/models"
	"github.com/awalle000/Fadila-sales-system/services/activity"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a product id does not resolve.
var ErrNotFound = errors.New("product not found")

// ErrValidation wraps catalog input validation failures.
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Message
}

// CreateRequest carries the fields for a new catalog entry.
type CreateRequest struct {
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	CostPrice         float64 `json:"costPrice"`
	SellingPrice      float64 `json:"sellingPrice"`
	QuantityInStock   int     `json:"quantityInStock"`
	LowStockThreshold *int    `json:"lowStockThreshold,omitempty"`
	Unit              string  `json:"unit"`
	Description       string  `json:"description"`
}

// UpdateRequest carries a partial catalog update. Nil means unchanged.
type UpdateRequest struct {
	Name              *string  `json:"name,omitempty"`
	Category          *string  `json:"category,omitempty"`
	CostPrice         *float64 `json:"costPrice,omitempty"`
	SellingPrice      *float64 `json:"sellingPrice,omitempty"`
	QuantityInStock   *int     `json:"quantityInStock,omitempty"`
	LowStockThreshold *int     `json:"lowStockThreshold,omitempty"`
	Unit              *string  `json:"unit,omitempty"`
	Description       *string  `json:"description,omitempty"`
	IsActive          *bool    `json:"isActive,omitempty"`
}

// ProductService manages the catalog.
type ProductService interface {
	Create(req CreateRequest, actor models.Actor, ip string) (*models.Product, error)
	GetByID(id string) (*models.Product, error)
	List(includeInactive bool) ([]models.Product, error)
	ListLowStock() ([]models.Product, error)
	Update(id string, req UpdateRequest, actor models.Actor, ip string) (*models.Product, error)
	Delete(id string, actor models.Actor, ip string) error
}

// DefaultProductService implements ProductService.
type DefaultProductService struct {
	Repo  productRepo.ProductRepository
	Audit activity.ActivityService
}

// Create validates and inserts a new catalog entry.
func (s *DefaultProductService) Create(req CreateRequest, actor models.Actor, ip string) (*models.Product, error) {
	if req.Name == "" {
		return nil, &ErrValidation{Message: "Product name is required"}
	}
	if req.Category == "" {
		return nil, &ErrValidation{Message: "Category is required"}
	}
	if req.CostPrice < 0 || req.SellingPrice < 0 {
		return nil, &ErrValidation{Message: "Prices cannot be negative"}
	}
	if req.QuantityInStock < 0 {
		return nil, &ErrValidation{Message: "Quantity cannot be negative"}
	}

	threshold := 10
	if req.LowStockThreshold != nil {
		if *req.LowStockThreshold < 0 {
			return nil, &ErrValidation{Message: "Threshold cannot be negative"}
		}
		threshold = *req.LowStockThreshold
	}
	unit := req.Unit
	if unit == "" {
		unit = "pcs"
	}

	p := &models.Product{
		ID:                uuid.NewString(),
		Name:              req.Name,
		Category:          req.Category,
		CostPrice:         req.CostPrice,
		SellingPrice:      req.SellingPrice,
		QuantityInStock:   req.QuantityInStock,
		LowStockThreshold: threshold,
		Unit:              unit,
		Description:       req.Description,
		IsActive:          true,
	}

	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}

	s.Audit.Record(actor, models.ActionProductCreated,
		fmt.Sprintf("Created product %s (%s)", p.Name, p.Category), ip)
	return p, nil
}

// GetByID retrieves a single product.
func (s *DefaultProductService) GetByID(id string) (*models.Product, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// List retrieves the catalog.
func (s *DefaultProductService) List(includeInactive bool) ([]models.Product, error) {
	return s.Repo.GetAll(includeInactive)
}

// ListLowStock retrieves active products at or below their threshold.
func (s *DefaultProductService) ListLowStock() ([]models.Product, error) {
	return s.Repo.FindLowStock()
}

// Update applies a partial catalog update.
func (s *DefaultProductService) Update(id string, req UpdateRequest, actor models.Actor, ip string) (*models.Product, error) {
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.CostPrice != nil {
		if *req.CostPrice < 0 {
			return nil, &ErrValidation{Message: "Cost price cannot be negative"}
		}
		fields["costPrice"] = *req.CostPrice
	}
	if req.SellingPrice != nil {
		if *req.SellingPrice < 0 {
			return nil, &ErrValidation{Message: "Selling price cannot be negative"}
		}
		fields["sellingPrice"] = *req.SellingPrice
	}
	if req.QuantityInStock != nil {
		if *req.QuantityInStock < 0 {
			return nil, &ErrValidation{Message: "Quantity cannot be negative"}
		}
		fields["quantityInStock"] = *req.QuantityInStock
	}
	if req.LowStockThreshold != nil {
		if *req.LowStockThreshold < 0 {
			return nil, &ErrValidation{Message: "Threshold cannot be negative"}
		}
		fields["lowStockThreshold"] = *req.LowStockThreshold
	}
	if req.Unit != nil {
		fields["unit"] = *req.Unit
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.IsActive != nil {
		fields["isActive"] = *req.IsActive
	}
	if len(fields) == 0 {
		return nil, &ErrValidation{Message: "No updatable fields provided"}
	}

	if err := s.Repo.Update(id, fields); err != nil {
		if errors.Is(err, productRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	p, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}

	s.Audit.Record(actor, models.ActionProductUpdated,
		fmt.Sprintf("Updated product %s", p.Name), ip)
	return p, nil
}

// Delete removes a catalog entry.
func (s *DefaultProductService) Delete(id string, actor models.Actor, ip string) error {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrNotFound
	}

	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, productRepo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	s.Audit.Record(actor, models.ActionProductDeleted,
		fmt.Sprintf("Deleted product %s", p.Name), ip)
	return nil
}
