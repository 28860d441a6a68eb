package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	saleRepo "github.com/awalle000/Fadila-sales-system/database/repository/sale"
	"github.com/awalle000/Fadila-sales-system/middleware"
	"github.com/awalle000/Fadila-sales-system/services/sales"
	"github.com/awalle000/Fadila-sales-system/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SalesHandler exposes point-of-sale recording over HTTP.
type SalesHandler struct {
	Service sales.SalesService
}

// NewSalesHandler creates a SalesHandler.
func NewSalesHandler(svc sales.SalesService) *SalesHandler {
	return &SalesHandler{Service: svc}
}

func respondSalesError(c *gin.Context, err error) {
	var validationErr *sales.ErrValidation
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"message": validationErr.Message})
	case errors.Is(err, sales.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
	default:
		utils.GetLogger().Error("Sale operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while processing sale"})
	}
}

// RecordSaleHandler handles POST /api/sales.
func (h *SalesHandler) RecordSaleHandler(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	var req sales.RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide valid product ID and quantity"})
		return
	}

	sale, err := h.Service.Record(req, actor, middleware.ClientIP(c))
	if err != nil {
		respondSalesError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sale)
}

// ListSalesHandler handles GET /api/sales with optional date range and
// seller filters.
func (h *SalesHandler) ListSalesHandler(c *gin.Context) {
	filter := saleRepo.Filter{SoldBy: c.Query("userId")}

	startRaw, endRaw := c.Query("startDate"), c.Query("endDate")
	if startRaw != "" && endRaw != "" {
		start, okStart := parseDateParam(startRaw)
		end, okEnd := parseDateParam(endRaw)
		if !okStart || !okEnd {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date range"})
			return
		}
		if end.Hour() == 0 && end.Minute() == 0 && end.Second() == 0 {
			end = end.Add(24*time.Hour - time.Nanosecond)
		}
		filter.StartDate, filter.EndDate = start, end
	}

	result, err := h.Service.List(filter)
	if err != nil {
		respondSalesError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DailySalesHandler handles GET /api/sales/daily/:date.
func (h *SalesHandler) DailySalesHandler(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	result, err := h.Service.ListDaily(date)
	if err != nil {
		respondSalesError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// MonthlySalesHandler handles GET /api/sales/monthly/:year/:month.
func (h *SalesHandler) MonthlySalesHandler(c *gin.Context) {
	year, errYear := strconv.Atoi(c.Param("year"))
	month, errMonth := strconv.Atoi(c.Param("month"))
	if errYear != nil || errMonth != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid year or month"})
		return
	}

	result, err := h.Service.ListMonthly(year, time.Month(month))
	if err != nil {
		respondSalesError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
