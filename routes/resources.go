// routes/resources.go
package routes

import (
	"github.com/gorilla/mux"

	"github.com/ledgerbeam/zbserver/internal/contact"
	"github.com/ledgerbeam/zbserver/internal/expense"
	"github.com/ledgerbeam/zbserver/internal/invoice"
	"github.com/ledgerbeam/zbserver/internal/report"
)

// RegisterInvoiceRoutes registers invoice CRUD routes
func RegisterInvoiceRoutes(router *mux.Router, handler *invoice.Handler) {
	router.HandleFunc("/invoices", handler.ListHandler).Methods("GET")
	router.HandleFunc("/invoices", handler.CreateHandler).Methods("POST")
	router.HandleFunc("/invoices/{id}", handler.GetHandler).Methods("GET")
	router.HandleFunc("/invoices/{id}", handler.UpdateHandler).Methods("PUT")
	router.HandleFunc("/invoices/{id}", handler.DeleteHandler).Methods("DELETE")
}

// RegisterContactRoutes registers customer and vendor routes
func RegisterContactRoutes(router *mux.Router, handler *contact.Handler) {
	router.HandleFunc("/customers", handler.ListCustomersHandler).Methods("GET")
	router.HandleFunc("/customers", handler.CreateCustomerHandler).Methods("POST")
	router.HandleFunc("/vendors", handler.ListVendorsHandler).Methods("GET")
	router.HandleFunc("/vendors", handler.CreateVendorHandler).Methods("POST")
	router.HandleFunc("/contacts/{id}", handler.GetHandler).Methods("GET")
	router.HandleFunc("/contacts/{id}", handler.UpdateHandler).Methods("PUT")
	router.HandleFunc("/contacts/{id}", handler.DeleteHandler).Methods("DELETE")
}

// RegisterExpenseRoutes registers expense and chart-of-accounts routes
func RegisterExpenseRoutes(router *mux.Router, handler *expense.Handler) {
	router.HandleFunc("/expenses", handler.ListHandler).Methods("GET")
	router.HandleFunc("/expenses", handler.CreateHandler).Methods("POST")
	router.HandleFunc("/expenses/{id}", handler.GetHandler).Methods("GET")
	router.HandleFunc("/expenses/{id}", handler.UpdateHandler).Methods("PUT")
	router.HandleFunc("/expenses/{id}", handler.DeleteHandler).Methods("DELETE")
	router.HandleFunc("/chartofaccounts", handler.ListAccountsHandler).Methods("GET")
}

// RegisterReportRoutes registers report routes
func RegisterReportRoutes(router *mux.Router, handler *report.Handler) {
	router.HandleFunc("/reports/profitandloss", handler.ProfitAndLossHandler).Methods("GET")
	router.HandleFunc("/reports/balancesheet", handler.BalanceSheetHandler).Methods("GET")
	router.HandleFunc("/reports/cashflow", handler.CashFlowHandler).Methods("GET")
	router.HandleFunc("/reports/expenses", handler.ExpensesHandler).Methods("GET")
}
