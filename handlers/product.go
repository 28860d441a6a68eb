package handlers

import (
	"errors"
	"net/http"

	"github.com/awalle000/Fadila-sales-system/middleware"
	"github.com/awalle000/Fadila-sales-system/services/product"
	"github.com/awalle000/Fadila-sales-system/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProductHandler exposes catalog management over HTTP.
type ProductHandler struct {
	Service product.ProductService
}

// NewProductHandler creates a ProductHandler.
func NewProductHandler(svc product.ProductService) *ProductHandler {
	return &ProductHandler{Service: svc}
}

func respondProductError(c *gin.Context, err error) {
	var validationErr *product.ErrValidation
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"message": validationErr.Message})
	case errors.Is(err, product.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
	default:
		utils.GetLogger().Error("Product operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while processing product"})
	}
}

// CreateProductHandler handles POST /api/products.
func (h *ProductHandler) CreateProductHandler(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	var req product.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product payload"})
		return
	}

	p, err := h.Service.Create(req, actor, middleware.ClientIP(c))
	if err != nil {
		respondProductError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// ListProductsHandler handles GET /api/products.
func (h *ProductHandler) ListProductsHandler(c *gin.Context) {
	includeInactive := c.Query("includeInactive") == "true"
	products, err := h.Service.List(includeInactive)
	if err != nil {
		respondProductError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// ListLowStockHandler handles GET /api/products/low-stock.
func (h *ProductHandler) ListLowStockHandler(c *gin.Context) {
	products, err := h.Service.ListLowStock()
	if err != nil {
		respondProductError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProductByIDHandler handles GET /api/products/:id.
func (h *ProductHandler) GetProductByIDHandler(c *gin.Context) {
	p, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		respondProductError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateProductHandler handles PUT /api/products/:id.
func (h *ProductHandler) UpdateProductHandler(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	var req product.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product payload"})
		return
	}

	p, err := h.Service.Update(c.Param("id"), req, actor, middleware.ClientIP(c))
	if err != nil {
		respondProductError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteProductHandler handles DELETE /api/products/:id.
func (h *ProductHandler) DeleteProductHandler(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	if err := h.Service.Delete(c.Param("id"), actor, middleware.ClientIP(c)); err != nil {
		respondProductError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
