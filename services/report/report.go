package report

import (
	"sort"
	"time"

	"github.com/awalle000/Fadila-sales-system/models"
	"github.com/awalle000/Fadila-sales-system/utils"
)

// Summary aggregates one batch of sales for display.
type Summary struct {
	TotalTransactions int    `json:"totalTransactions"`
	TotalItemsSold    int    `json:"totalItemsSold"`
	TotalRevenue      string `json:"totalRevenue"`
	TotalCost         string `json:"totalCost"`
	TotalProfit       string `json:"totalProfit"`
	ProfitMargin      string `json:"profitMargin"`
	IsProfitable      bool   `json:"isProfitable"`
}

// RawTotals carries the unformatted figures for further computation.
type RawTotals struct {
	TotalRevenue float64 `json:"totalRevenue"`
	TotalCost    float64 `json:"totalCost"`
	TotalProfit  float64 `json:"totalProfit"`
}

// ProductBreakdown aggregates one product's share of a report.
type ProductBreakdown struct {
	ProductName  string `json:"productName"`
	QuantitySold int    `json:"quantitySold"`
	Revenue      string `json:"revenue"`
	Profit       string `json:"profit"`
}

// DayBreakdown aggregates one day's share of a monthly report.
type DayBreakdown struct {
	Date         string `json:"date"`
	Transactions int    `json:"transactions"`
	Revenue      string `json:"revenue"`
	Profit       string `json:"profit"`
}

// DailyReport is the aggregation for one calendar day.
type DailyReport struct {
	Summary          Summary            `json:"summary"`
	ProductBreakdown []ProductBreakdown `json:"productBreakdown"`
	RawData          RawTotals          `json:"rawData"`
}

// MonthlyReport extends the daily aggregation with a per-day breakdown.
type MonthlyReport struct {
	DailyReport
	DailyBreakdown []DayBreakdown `json:"dailyBreakdown"`
}

// ProfitLossStatement is the gross/net statement over a period.
type ProfitLossStatement struct {
	Revenue struct {
		TotalSales string  `json:"totalSales"`
		RawValue   float64 `json:"rawValue"`
	} `json:"revenue"`
	Costs struct {
		CostOfGoodsSold   string  `json:"costOfGoodsSold"`
		OperatingExpenses string  `json:"operatingExpenses"`
		TotalCosts        string  `json:"totalCosts"`
		RawValue          float64 `json:"rawValue"`
	} `json:"costs"`
	Profit struct {
		GrossProfit  string  `json:"grossProfit"`
		NetProfit    string  `json:"netProfit"`
		ProfitMargin string  `json:"profitMargin"`
		IsProfitable bool    `json:"isProfitable"`
		Status       string  `json:"status"`
		RawValue     float64 `json:"rawValue"`
	} `json:"profit"`
}

func percent(part, whole float64) string {
	if whole <= 0 {
		return "0%"
	}
	return utils.Round2String(part/whole*100) + "%"
}

// BuildDailyReport aggregates a batch of sales. Pure, no I/O.
func BuildDailyReport(sales []models.Sale) DailyReport {
	var (
		revenue, cost, profit float64
		itemsSold             int
	)
	byProduct := map[string]*ProductBreakdown{}
	rawByProduct := map[string]*struct{ revenue, profit float64 }{}

	for _, sale := range sales {
		revenue = utils.Round2(revenue + sale.TotalAmount)
		profit = utils.Round2(profit + sale.Profit)
		cost = utils.Round2(cost + utils.MulRound2(sale.CostPrice, sale.QuantitySold))
		itemsSold += sale.QuantitySold

		pb, ok := byProduct[sale.ProductID]
		if !ok {
			pb = &ProductBreakdown{ProductName: sale.ProductName}
			byProduct[sale.ProductID] = pb
			rawByProduct[sale.ProductID] = &struct{ revenue, profit float64 }{}
		}
		pb.QuantitySold += sale.QuantitySold
		raw := rawByProduct[sale.ProductID]
		raw.revenue = utils.Round2(raw.revenue + sale.TotalAmount)
		raw.profit = utils.Round2(raw.profit + sale.Profit)
	}

	var breakdown []ProductBreakdown
	for id, pb := range byProduct {
		raw := rawByProduct[id]
		pb.Revenue = utils.FormatCedis(raw.revenue)
		pb.Profit = utils.FormatCedis(raw.profit)
		breakdown = append(breakdown, *pb)
	}
	sort.Slice(breakdown, func(i, j int) bool {
		return breakdown[i].ProductName < breakdown[j].ProductName
	})

	return DailyReport{
		Summary: Summary{
			TotalTransactions: len(sales),
			TotalItemsSold:    itemsSold,
			TotalRevenue:      utils.FormatCedis(revenue),
			TotalCost:         utils.FormatCedis(cost),
			TotalProfit:       utils.FormatCedis(profit),
			ProfitMargin:      percent(profit, revenue),
			IsProfitable:      profit > 0,
		},
		ProductBreakdown: breakdown,
		RawData:          RawTotals{TotalRevenue: revenue, TotalCost: cost, TotalProfit: profit},
	}
}

// BuildMonthlyReport aggregates a month of sales with a per-day
// breakdown. Pure, no I/O.
func BuildMonthlyReport(sales []models.Sale) MonthlyReport {
	daily := BuildDailyReport(sales)

	byDay := map[string]*struct {
		transactions    int
		revenue, profit float64
	}{}
	for _, sale := range sales {
		day := sale.SaleDate.Format("2006-01-02")
		d, ok := byDay[day]
		if !ok {
			d = &struct {
				transactions    int
				revenue, profit float64
			}{}
			byDay[day] = d
		}
		d.transactions++
		d.revenue = utils.Round2(d.revenue + sale.TotalAmount)
		d.profit = utils.Round2(d.profit + sale.Profit)
	}

	var days []DayBreakdown
	for day, d := range byDay {
		days = append(days, DayBreakdown{
			Date:         day,
			Transactions: d.transactions,
			Revenue:      utils.FormatCedis(d.revenue),
			Profit:       utils.FormatCedis(d.profit),
		})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	return MonthlyReport{DailyReport: daily, DailyBreakdown: days}
}

// BuildProfitLossStatement computes gross and net profit over a batch of
// sales with the given operating expenses. Pure, no I/O.
func BuildProfitLossStatement(sales []models.Sale, expenses float64) ProfitLossStatement {
	var revenue, cost float64
	for _, sale := range sales {
		revenue = utils.Round2(revenue + sale.TotalAmount)
		cost = utils.Round2(cost + utils.MulRound2(sale.CostPrice, sale.QuantitySold))
	}
	gross := utils.SubRound2(revenue, cost)
	net := utils.SubRound2(gross, expenses)

	var stmt ProfitLossStatement
	stmt.Revenue.TotalSales = utils.FormatCedis(revenue)
	stmt.Revenue.RawValue = revenue
	stmt.Costs.CostOfGoodsSold = utils.FormatCedis(cost)
	stmt.Costs.OperatingExpenses = utils.FormatCedis(expenses)
	stmt.Costs.TotalCosts = utils.FormatCedis(utils.Round2(cost + expenses))
	stmt.Costs.RawValue = utils.Round2(cost + expenses)
	stmt.Profit.GrossProfit = utils.FormatCedis(gross)
	stmt.Profit.NetProfit = utils.FormatCedis(net)
	stmt.Profit.ProfitMargin = percent(net, revenue)
	stmt.Profit.IsProfitable = net > 0
	stmt.Profit.RawValue = net
	switch {
	case net > 0:
		stmt.Profit.Status = "PROFIT"
	case net < 0:
		stmt.Profit.Status = "LOSS"
	default:
		stmt.Profit.Status = "BREAK-EVEN"
	}
	return stmt
}

// dayRange returns the inclusive bounds of one calendar day.
func dayRange(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.Add(24*time.Hour - time.Nanosecond)
}

// monthRange returns the inclusive bounds of one calendar month.
func monthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 1, 0).Add(-time.Nanosecond)
}
