package models

import "time"

// Audit actions recorded in the activity log.
const (
	ActionLogin          = "LOGIN"
	ActionSaleRecorded   = "SALE_RECORDED"
	ActionProductCreated = "PRODUCT_CREATED"
	ActionProductUpdated = "PRODUCT_UPDATED"
	ActionProductDeleted = "PRODUCT_DELETED"
	ActionInvoiceCreated = "INVOICE_CREATED"
	ActionInvoiceUpdated = "INVOICE_UPDATED"
	ActionInvoicePayment = "INVOICE_PAYMENT"
	ActionInvoiceDeleted = "INVOICE_DELETED"
	ActionOverdueAlert   = "OVERDUE_ALERT"
)

// ActivityLog is a write-only audit record. Failures to persist one never
// fail the operation being audited.
type ActivityLog struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	UserName  string    `bson:"userName" json:"userName"`
	Action    string    `bson:"action" json:"action"`
	Details   string    `bson:"details,omitempty" json:"details,omitempty"`
	IPAddress string    `bson:"ipAddress,omitempty" json:"ipAddress,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// LoginLog records a sign-in event.
type LoginLog struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	UserName  string    `bson:"userName" json:"userName"`
	LoginTime time.Time `bson:"loginTime" json:"loginTime"`
	IPAddress string    `bson:"ipAddress,omitempty" json:"ipAddress,omitempty"`
	UserAgent string    `bson:"userAgent,omitempty" json:"userAgent,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
