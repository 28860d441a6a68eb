package models

import "time"

// Payment types.
const (
	PaymentTypeCash   = "cash"
	PaymentTypeCredit = "credit"
)

// Invoice statuses. Status is derived: paid iff remainingBalance == 0.
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

// InvoiceItem is one product line on an invoice. Product name, prices and
// unit are snapshots of the catalog at creation time. Items are immutable
// after creation.
type InvoiceItem struct {
	ProductID   string  `bson:"productId,omitempty" json:"productId,omitempty"`
	ProductName string  `bson:"productName" json:"productName"`
	Quantity    int     `bson:"quantity" json:"quantity"`
	UnitPrice   float64 `bson:"unitPrice" json:"unitPrice"`
	CostPrice   float64 `bson:"costPrice" json:"costPrice"`
	Discount    float64 `bson:"discount" json:"discount"`
	FinalAmount float64 `bson:"finalAmount" json:"finalAmount"`
	Unit        string  `bson:"unit,omitempty" json:"unit,omitempty"`
}

// InvoiceTotals holds the aggregate monetary figures, computed once from
// the items at creation and never re-derived afterwards.
type InvoiceTotals struct {
	TotalAmount   float64 `bson:"totalAmount" json:"totalAmount"`
	TotalDiscount float64 `bson:"totalDiscount" json:"totalDiscount"`
	FinalAmount   float64 `bson:"finalAmount" json:"finalAmount"`
	TotalProfit   float64 `bson:"totalProfit" json:"totalProfit"`
	TotalItems    int     `bson:"totalItems" json:"totalItems"`
}

// InvoicePayment is one entry in the append-only payment ledger. Amount
// is the effective (capped) payment, never more than what was owed at
// the moment it was recorded.
type InvoicePayment struct {
	ID             string    `bson:"id" json:"id"`
	Amount         float64   `bson:"amount" json:"amount"`
	Date           time.Time `bson:"date" json:"date"`
	RecordedBy     string    `bson:"recordedBy" json:"recordedBy"`
	RecordedByName string    `bson:"recordedByName" json:"recordedByName"`
	Note           string    `bson:"note,omitempty" json:"note,omitempty"`
}

// Invoice is the aggregate root for a credit or cash sale with a
// human-readable receipt number and a payment ledger.
type Invoice struct {
	ID               string           `bson:"id" json:"id"`
	ReceiptNumber    string           `bson:"receiptNumber" json:"receiptNumber"`
	Items            []InvoiceItem    `bson:"items" json:"items"`
	Totals           InvoiceTotals    `bson:"totals" json:"totals"`
	SaleDate         time.Time        `bson:"saleDate" json:"saleDate"`
	SoldBy           string           `bson:"soldBy" json:"soldBy"`
	SellerName       string           `bson:"sellerName" json:"sellerName"`
	CustomerName     string           `bson:"customerName" json:"customerName"`
	PaymentType      string           `bson:"paymentType" json:"paymentType"`
	Status           string           `bson:"status" json:"status"`
	RemainingBalance float64          `bson:"remainingBalance" json:"remainingBalance"`
	Payments         []InvoicePayment `bson:"payments" json:"payments"`
	DueDate          *time.Time       `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	Notes            string           `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt        time.Time        `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time        `bson:"updatedAt" json:"updatedAt"`
}
