package sales

import (
	"sync"
	"testing"
	"time"

	productRepo "github.com/awalle000/Fadila-sales-system/database/repository/product"
	saleRepo "github.com/awalle000/Fadila-sales-system/database/repository/sale"
	"github.com/awalle000/Fadila-sales-system/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProductRepo keeps catalog state in memory with the same guarded
// decrement semantics as the Mongo implementation.
type fakeProductRepo struct {
	mu   sync.Mutex
	byID map[string]*models.Product
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

func (r *fakeProductRepo) GetAll(includeInactive bool) ([]models.Product, error) { return nil, nil }

func (r *fakeProductRepo) Update(id string, fields map[string]any) error { return nil }

func (r *fakeProductRepo) Delete(id string) error { return nil }

func (r *fakeProductRepo) DecrementStock(id string, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return productRepo.ErrNotFound
	}
	if p.QuantityInStock < qty {
		return productRepo.ErrInsufficientStock
	}
	p.QuantityInStock -= qty
	return nil
}

func (r *fakeProductRepo) FindLowStock() ([]models.Product, error) { return nil, nil }

type fakeSaleRepo struct {
	mu    sync.Mutex
	sales []models.Sale
}

func (r *fakeSaleRepo) Create(s *models.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sales = append(r.sales, *s)
	return nil
}

func (r *fakeSaleRepo) Find(filter saleRepo.Filter) ([]models.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Sale(nil), r.sales...), nil
}

func (r *fakeSaleRepo) FindByDateRange(start, end time.Time) ([]models.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Sale
	for _, s := range r.sales {
		if !s.SaleDate.Before(start) && !s.SaleDate.After(end) {
			out = append(out, s)
		}
	}
	return out, nil
}

type nopAudit struct{}

func (nopAudit) Record(actor models.Actor, action, details, ip string) {}
func (nopAudit) RecordLogin(user *models.User, ip, userAgent string)   {}
func (nopAudit) Activities(limit int64) ([]models.ActivityLog, error)  { return nil, nil }
func (nopAudit) Logins(limit int64) ([]models.LoginLog, error)         { return nil, nil }

func newTestSalesService() (*DefaultSalesService, *fakeProductRepo, *fakeSaleRepo) {
	products := &fakeProductRepo{byID: map[string]*models.Product{
		"p-1": {
			ID: "p-1", Name: "Cement 50kg", CostPrice: 45, SellingPrice: 55,
			QuantityInStock: 10, Unit: "bag", IsActive: true,
		},
	}}
	salesStore := &fakeSaleRepo{}
	svc := &DefaultSalesService{Repo: salesStore, Products: products, Audit: nopAudit{}}
	return svc, products, salesStore
}

var seller = models.Actor{ID: "u-1", Name: "Ama", Role: models.RoleManager}

func TestRecordSaleSnapshotsAndDecrementsStock(t *testing.T) {
	svc, products, store := newTestSalesService()

	sale, err := svc.Record(RecordRequest{ProductID: "p-1", QuantitySold: 3}, seller, "")
	require.NoError(t, err)

	assert.Equal(t, "Cement 50kg", sale.ProductName)
	assert.Equal(t, 55.0, sale.UnitPrice)
	assert.Equal(t, 165.0, sale.TotalAmount)
	assert.Equal(t, 45.0, sale.CostPrice)
	assert.Equal(t, 30.0, sale.Profit)
	assert.Equal(t, "u-1", sale.SoldBy)

	p, _ := products.GetByID("p-1")
	assert.Equal(t, 7, p.QuantityInStock)
	assert.Len(t, store.sales, 1)
}

func TestRecordSaleInsufficientStock(t *testing.T) {
	svc, products, store := newTestSalesService()

	_, err := svc.Record(RecordRequest{ProductID: "p-1", QuantitySold: 11}, seller, "")
	var validationErr *ErrValidation
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Insufficient stock. Available: 10 bag", validationErr.Message)

	// Stock untouched, nothing recorded.
	p, _ := products.GetByID("p-1")
	assert.Equal(t, 10, p.QuantityInStock)
	assert.Empty(t, store.sales)
}

func TestRecordSaleUnknownProduct(t *testing.T) {
	svc, _, _ := newTestSalesService()

	_, err := svc.Record(RecordRequest{ProductID: "ghost", QuantitySold: 1}, seller, "")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestRecordSaleValidation(t *testing.T) {
	svc, _, _ := newTestSalesService()

	for _, req := range []RecordRequest{
		{ProductID: "", QuantitySold: 1},
		{ProductID: "p-1", QuantitySold: 0},
		{ProductID: "p-1", QuantitySold: -2},
	} {
		_, err := svc.Record(req, seller, "")
		var validationErr *ErrValidation
		require.ErrorAs(t, err, &validationErr)
	}
}

func TestConcurrentSalesNeverOversell(t *testing.T) {
	svc, products, store := newTestSalesService()

	const attempts = 25 // stock is 10, one unit each
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.Record(RecordRequest{ProductID: "p-1", QuantitySold: 1}, seller, "")
		}()
	}
	wg.Wait()

	p, _ := products.GetByID("p-1")
	assert.Equal(t, 0, p.QuantityInStock)
	assert.Len(t, store.sales, 10)
}

func TestListDailyBounds(t *testing.T) {
	svc, _, store := newTestSalesService()
	day := time.Date(2026, 5, 20, 0, 0, 0, 0, time.Local)
	store.sales = []models.Sale{
		{ID: "s-1", SaleDate: day.Add(10 * time.Hour)},
		{ID: "s-2", SaleDate: day.Add(-time.Second)},
		{ID: "s-3", SaleDate: day.Add(24 * time.Hour)},
	}

	got, err := svc.ListDaily(day.Add(15 * time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "s-1", got[0].ID)
}
