package models

import "time"

// Product is a catalog entry. Cost and selling prices are snapshotted
// onto sales and invoice line items at recording time; later price edits
// never rewrite history.
type Product struct {
	ID                string    `bson:"id" json:"id"`
	Name              string    `bson:"name" json:"name"`
	Category          string    `bson:"category" json:"category"`
	CostPrice         float64   `bson:"costPrice" json:"costPrice"`
	SellingPrice      float64   `bson:"sellingPrice" json:"sellingPrice"`
	QuantityInStock   int       `bson:"quantityInStock" json:"quantityInStock"`
	LowStockThreshold int       `bson:"lowStockThreshold" json:"lowStockThreshold"`
	Unit              string    `bson:"unit" json:"unit"`
	Description       string    `bson:"description,omitempty" json:"description,omitempty"`
	IsActive          bool      `bson:"isActive" json:"isActive"`
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time `bson:"updatedAt" json:"updatedAt"`
}
