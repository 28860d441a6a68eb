package models

import "time"

// Sale is a settled point-of-sale event for a single product.
type Sale struct {
	ID           string    `bson:"id" json:"id"`
	ProductID    string    `bson:"productId" json:"productId"`
	ProductName  string    `bson:"productName" json:"productName"`
	QuantitySold int       `bson:"quantitySold" json:"quantitySold"`
	UnitPrice    float64   `bson:"unitPrice" json:"unitPrice"`
	TotalAmount  float64   `bson:"totalAmount" json:"totalAmount"`
	CostPrice    float64   `bson:"costPrice" json:"costPrice"`
	Profit       float64   `bson:"profit" json:"profit"`
	SoldBy       string    `bson:"soldBy" json:"soldBy"`
	SellerName   string    `bson:"sellerName" json:"sellerName"`
	SaleDate     time.Time `bson:"saleDate" json:"saleDate"`
	Notes        string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
