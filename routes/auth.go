// routes/auth.go
package routes

import (
	"github.com/gorilla/mux"

	"github.com/ledgerbeam/zbserver/internal/auth"
)

// RegisterAuthRoutes registers all authentication-related routes
func RegisterAuthRoutes(router *mux.Router, authHandler *auth.Handler) {
	// OAuth flow routes - require user authentication
	authRouter := router.PathPrefix("/auth").Subrouter()
	authRouter.Use(auth.UserMiddleware)
	authRouter.HandleFunc("/connect", authHandler.ConnectHandler).Methods("GET")
	authRouter.HandleFunc("/callback", authHandler.CallbackHandler).Methods("GET")
	authRouter.HandleFunc("/disconnect", authHandler.DisconnectHandler).Methods("POST")
	authRouter.HandleFunc("/status", authHandler.StatusHandler).Methods("GET")
}
