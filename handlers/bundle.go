package handlers

import (
	userRepo "github.com/awalle000/Fadila-sales-system/database/repository/user"
)

// HandlerBundle groups the assembled handlers for route registration.
type HandlerBundle struct {
	// UserRepo backs the auth middleware's token-to-account lookup.
	UserRepo userRepo.UserRepository

	Auth     *AuthHandler
	Products *ProductHandler
	Sales    *SalesHandler
	Invoices *InvoiceHandler
	Reports  *ReportHandler
	Activity *ActivityHandler
}
