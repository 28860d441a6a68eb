package invoice

import (
	"fmt"

	"github.com/awalle000/Fadila-sales-system/models"
	"github.com/awalle000/Fadila-sales-system/utils"
)

// ItemInput is one line of a creation request. Product name, prices and
// unit are catalog snapshots supplied by the caller at request time.
type ItemInput struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	CostPrice   float64 `json:"costPrice"`
	Discount    float64 `json:"discount"`
	Unit        string  `json:"unit"`
}

// ComputeTotals validates the item inputs and computes per-item and
// aggregate monetary figures. Pure, no I/O. Every intermediate amount is
// rounded to 2dp as it is computed.
func ComputeTotals(items []ItemInput) ([]models.InvoiceItem, models.InvoiceTotals, error) {
	if len(items) == 0 {
		return nil, models.InvoiceTotals{}, NewValidationError("Invoice must include at least one item")
	}

	var (
		lineItems []models.InvoiceItem
		totals    models.InvoiceTotals
	)

	for i, item := range items {
		if item.Quantity < 1 {
			return nil, models.InvoiceTotals{}, NewValidationError(
				fmt.Sprintf("Item %d: quantity must be at least 1", i+1))
		}
		if item.UnitPrice < 0 {
			return nil, models.InvoiceTotals{}, NewValidationError(
				fmt.Sprintf("Item %d: unit price cannot be negative", i+1))
		}
		if item.Discount < 0 {
			return nil, models.InvoiceTotals{}, NewValidationError(
				fmt.Sprintf("Item %d: discount cannot be negative", i+1))
		}
		if item.CostPrice < 0 {
			return nil, models.InvoiceTotals{}, NewValidationError(
				fmt.Sprintf("Item %d: cost price cannot be negative", i+1))
		}

		gross := utils.MulRound2(item.UnitPrice, item.Quantity)
		if item.Discount > gross {
			return nil, models.InvoiceTotals{}, NewValidationError(
				fmt.Sprintf("Item %d: discount cannot exceed the line total", i+1))
		}

		final := utils.SubRound2(gross, item.Discount)
		cost := utils.MulRound2(item.CostPrice, item.Quantity)

		lineItems = append(lineItems, models.InvoiceItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			CostPrice:   item.CostPrice,
			Discount:    utils.Round2(item.Discount),
			FinalAmount: final,
			Unit:        item.Unit,
		})

		totals.TotalAmount = utils.Round2(totals.TotalAmount + gross)
		totals.TotalDiscount = utils.Round2(totals.TotalDiscount + item.Discount)
		totals.FinalAmount = utils.Round2(totals.FinalAmount + final)
		totals.TotalProfit = utils.Round2(totals.TotalProfit + utils.SubRound2(final, cost))
		totals.TotalItems += item.Quantity
	}

	return lineItems, totals, nil
}
