// routes/routes.go
package routes

import (
	"github.com/gorilla/mux"

	"github.com/ledgerbeam/zbserver/internal/auth"
	"github.com/ledgerbeam/zbserver/internal/contact"
	"github.com/ledgerbeam/zbserver/internal/expense"
	"github.com/ledgerbeam/zbserver/internal/invoice"
	"github.com/ledgerbeam/zbserver/internal/organization"
	"github.com/ledgerbeam/zbserver/internal/report"
)

// SetupRoutes configures all API routes
func SetupRoutes(
	router *mux.Router,
	authHandler *auth.Handler,
	authService *auth.Service,
	organizationResolver auth.OrganizationResolver,
	invoiceHandler *invoice.Handler,
	contactHandler *contact.Handler,
	expenseHandler *expense.Handler,
	reportHandler *report.Handler,
	organizationHandler *organization.Handler,
) {
	router.Use(auth.RequestIDMiddleware)

	// Register auth routes
	RegisterAuthRoutes(router, authHandler)

	// API routes - protected with Zoho auth
	apiRouter := router.PathPrefix("/api").Subrouter()
	apiRouter.Use(auth.UserMiddleware)
	apiRouter.Use(auth.ZohoAuthMiddleware(authService, organizationResolver))

	// Register domain-specific routes
	RegisterInvoiceRoutes(apiRouter, invoiceHandler)
	RegisterContactRoutes(apiRouter, contactHandler)
	RegisterExpenseRoutes(apiRouter, expenseHandler)
	RegisterReportRoutes(apiRouter, reportHandler)
	apiRouter.HandleFunc("/organization", organizationHandler.GetHandler).Methods("GET")
}
