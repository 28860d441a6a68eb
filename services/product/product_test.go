package product

import (
	"sync"
	"testing"

	productRepo "github.com/awalle000/Fadila-sales-system/database/repository/product"
	"github.com/awalle000/Fadila-sales-system/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductRepo struct {
	mu   sync.Mutex
	byID map[string]*models.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: map[string]*models.Product{}}
}

func (r *fakeProductRepo) Create(p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetAll(includeInactive bool) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Product
	for _, p := range r.byID {
		if !includeInactive && !p.IsActive {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(id string, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return productRepo.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			p.Name = v.(string)
		case "sellingPrice":
			p.SellingPrice = v.(float64)
		case "quantityInStock":
			p.QuantityInStock = v.(int)
		case "isActive":
			p.IsActive = v.(bool)
		}
	}
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return productRepo.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeProductRepo) DecrementStock(id string, qty int) error { return nil }

func (r *fakeProductRepo) FindLowStock() ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Product
	for _, p := range r.byID {
		if p.IsActive && p.QuantityInStock <= p.LowStockThreshold {
			out = append(out, *p)
		}
	}
	return out, nil
}

type nopAudit struct{}

func (nopAudit) Record(actor models.Actor, action, details, ip string) {}
func (nopAudit) RecordLogin(user *models.User, ip, userAgent string)   {}
func (nopAudit) Activities(limit int64) ([]models.ActivityLog, error)  { return nil, nil }
func (nopAudit) Logins(limit int64) ([]models.LoginLog, error)         { return nil, nil }

var storekeeper = models.Actor{ID: "u-1", Name: "Ama", Role: models.RoleCEO}

func newTestProductService() (*DefaultProductService, *fakeProductRepo) {
	repo := newFakeProductRepo()
	return &DefaultProductService{Repo: repo, Audit: nopAudit{}}, repo
}

func TestCreateProductDefaults(t *testing.T) {
	svc, _ := newTestProductService()

	p, err := svc.Create(CreateRequest{
		Name:            "Cement 50kg",
		Category:        "Building",
		CostPrice:       45,
		SellingPrice:    55,
		QuantityInStock: 100,
	}, storekeeper, "")
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, 10, p.LowStockThreshold)
	assert.Equal(t, "pcs", p.Unit)
	assert.True(t, p.IsActive)
}

func TestCreateProductValidation(t *testing.T) {
	svc, _ := newTestProductService()

	tests := []struct {
		name    string
		req     CreateRequest
		message string
	}{
		{"missing name", CreateRequest{Category: "Building"}, "Product name is required"},
		{"missing category", CreateRequest{Name: "Cement"}, "Category is required"},
		{"negative price", CreateRequest{Name: "Cement", Category: "Building", SellingPrice: -1}, "Prices cannot be negative"},
		{"negative stock", CreateRequest{Name: "Cement", Category: "Building", QuantityInStock: -1}, "Quantity cannot be negative"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(tc.req, storekeeper, "")
			var validationErr *ErrValidation
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.message, validationErr.Message)
		})
	}
}

func TestUpdateProductPartial(t *testing.T) {
	svc, _ := newTestProductService()
	p, err := svc.Create(CreateRequest{Name: "Cement 50kg", Category: "Building", SellingPrice: 55}, storekeeper, "")
	require.NoError(t, err)

	newPrice := 60.0
	updated, err := svc.Update(p.ID, UpdateRequest{SellingPrice: &newPrice}, storekeeper, "")
	require.NoError(t, err)
	assert.Equal(t, 60.0, updated.SellingPrice)
	// Untouched fields survive.
	assert.Equal(t, "Cement 50kg", updated.Name)

	_, err = svc.Update(p.ID, UpdateRequest{}, storekeeper, "")
	var validationErr *ErrValidation
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "No updatable fields provided", validationErr.Message)

	_, err = svc.Update("ghost", UpdateRequest{SellingPrice: &newPrice}, storekeeper, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListLowStock(t *testing.T) {
	svc, _ := newTestProductService()
	threshold := 5
	low, err := svc.Create(CreateRequest{
		Name: "Nails 1kg", Category: "Hardware", QuantityInStock: 3, LowStockThreshold: &threshold,
	}, storekeeper, "")
	require.NoError(t, err)
	_, err = svc.Create(CreateRequest{
		Name: "Cement 50kg", Category: "Building", QuantityInStock: 100, LowStockThreshold: &threshold,
	}, storekeeper, "")
	require.NoError(t, err)

	got, err := svc.ListLowStock()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, low.ID, got[0].ID)

	// Deactivated products drop out of the alert list.
	inactive := false
	_, err = svc.Update(low.ID, UpdateRequest{IsActive: &inactive}, storekeeper, "")
	require.NoError(t, err)
	got, err = svc.ListLowStock()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDeleteProduct(t *testing.T) {
	svc, repo := newTestProductService()
	p, err := svc.Create(CreateRequest{Name: "Cement 50kg", Category: "Building"}, storekeeper, "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(p.ID, storekeeper, ""))
	assert.Empty(t, repo.byID)
	assert.ErrorIs(t, svc.Delete(p.ID, storekeeper, ""), ErrNotFound)
}
