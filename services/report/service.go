package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/awalle000/Fadila-sales-system/config"
	saleRepo "github.com/awalle000/Fadila-sales-system/database/repository/sale"
	"github.com/awalle000/Fadila-sales-system/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ReportService produces read-only aggregations over persisted sales.
type ReportService interface {
	Daily(date time.Time) (*DailyReport, error)
	Monthly(year int, month time.Month) (*MonthlyReport, error)
	ProfitLoss(start, end time.Time, expenses float64) (*ProfitLossStatement, error)
}

// DefaultReportService implements ReportService with a short-TTL redis
// cache in front of the aggregation. A nil Cache disables caching.
type DefaultReportService struct {
	Sales saleRepo.SaleRepository
	Cache *redis.Client
}

func (s *DefaultReportService) cacheTTL() time.Duration {
	ttl := config.AppConfig.ReportCacheTTLSec
	if ttl <= 0 {
		ttl = 300
	}
	return time.Duration(ttl) * time.Second
}

// cached runs fill on a cache miss and stores the JSON-encoded result.
// The cache is best-effort; redis failures fall through to the source.
func cached[T any](s *DefaultReportService, key string, out *T, fill func() (*T, error)) (*T, error) {
	logger := utils.GetLogger()

	if s.Cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if raw, err := s.Cache.Get(ctx, key).Result(); err == nil {
			if err := json.Unmarshal([]byte(raw), out); err == nil {
				return out, nil
			}
			logger.Warn("Discarding undecodable cached report", zap.String("key", key))
		}
	}

	result, err := fill()
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(result); err == nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := s.Cache.Set(ctx, key, raw, s.cacheTTL()).Err(); err != nil {
				logger.Warn("Failed to cache report", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return result, nil
}

// Daily aggregates one calendar day of sales.
func (s *DefaultReportService) Daily(date time.Time) (*DailyReport, error) {
	key := "report:daily:" + date.Format("2006-01-02")
	var out DailyReport
	return cached(s, key, &out, func() (*DailyReport, error) {
		start, end := dayRange(date)
		sales, err := s.Sales.FindByDateRange(start, end)
		if err != nil {
			return nil, err
		}
		r := BuildDailyReport(sales)
		return &r, nil
	})
}

// Monthly aggregates one calendar month of sales.
func (s *DefaultReportService) Monthly(year int, month time.Month) (*MonthlyReport, error) {
	key := fmt.Sprintf("report:monthly:%d-%02d", year, int(month))
	var out MonthlyReport
	return cached(s, key, &out, func() (*MonthlyReport, error) {
		start, end := monthRange(year, month)
		sales, err := s.Sales.FindByDateRange(start, end)
		if err != nil {
			return nil, err
		}
		r := BuildMonthlyReport(sales)
		return &r, nil
	})
}

// ProfitLoss builds the profit-and-loss statement for a period. Not
// cached: the expenses input varies per request.
func (s *DefaultReportService) ProfitLoss(start, end time.Time, expenses float64) (*ProfitLossStatement, error) {
	sales, err := s.Sales.FindByDateRange(start, end)
	if err != nil {
		return nil, err
	}
	stmt := BuildProfitLossStatement(sales, expenses)
	return &stmt, nil
}
