package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/awalle000/Fadila-sales-system/services/report"
	"github.com/awalle000/Fadila-sales-system/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReportHandler exposes the read-only financial reports.
type ReportHandler struct {
	Service report.ReportService
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc report.ReportService) *ReportHandler {
	return &ReportHandler{Service: svc}
}

func respondReportError(c *gin.Context, err error) {
	utils.GetLogger().Error("Report generation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error generating report"})
}

// DailyReportHandler handles GET /api/reports/daily/:date.
func (h *ReportHandler) DailyReportHandler(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	r, err := h.Service.Daily(date)
	if err != nil {
		respondReportError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": c.Param("date"), "report": r})
}

// MonthlyReportHandler handles GET /api/reports/monthly/:year/:month.
func (h *ReportHandler) MonthlyReportHandler(c *gin.Context) {
	year, errYear := strconv.Atoi(c.Param("year"))
	month, errMonth := strconv.Atoi(c.Param("month"))
	if errYear != nil || errMonth != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid year or month"})
		return
	}

	r, err := h.Service.Monthly(year, time.Month(month))
	if err != nil {
		respondReportError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"year": year, "month": month, "report": r})
}

// ProfitLossHandler handles GET /api/reports/profit-loss with optional
// startDate/endDate (defaults to the current month) and expenses.
func (h *ReportHandler) ProfitLossHandler(c *gin.Context) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	if raw := c.Query("startDate"); raw != "" {
		parsed, ok := parseDateParam(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid start date"})
			return
		}
		start = parsed
	}
	if raw := c.Query("endDate"); raw != "" {
		parsed, ok := parseDateParam(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid end date"})
			return
		}
		if parsed.Hour() == 0 && parsed.Minute() == 0 && parsed.Second() == 0 {
			parsed = parsed.Add(24*time.Hour - time.Nanosecond)
		}
		end = parsed
	}

	expenses := 0.0
	if raw := c.Query("expenses"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid expenses value"})
			return
		}
		expenses = parsed
	}

	stmt, err := h.Service.ProfitLoss(start, end, expenses)
	if err != nil {
		respondReportError(c, err)
		return
	}
	c.JSON(http.StatusOK, stmt)
}
