// infrastructure/container.go
package infrastructure

import (
	"context"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/ledgerbeam/zbserver/config"
	redisinfra "github.com/ledgerbeam/zbserver/infrastructure/redis"
	"github.com/ledgerbeam/zbserver/internal/auth"
	"github.com/ledgerbeam/zbserver/internal/contact"
	"github.com/ledgerbeam/zbserver/internal/expense"
	"github.com/ledgerbeam/zbserver/internal/functions"
	"github.com/ledgerbeam/zbserver/internal/integration"
	"github.com/ledgerbeam/zbserver/internal/invoice"
	"github.com/ledgerbeam/zbserver/internal/organization"
	"github.com/ledgerbeam/zbserver/internal/report"
	"github.com/ledgerbeam/zbserver/pkg/zbclient"
)

// Container provides application dependencies
type Container struct {
	// Services
	AuthService         *auth.Service
	InvoiceService      *invoice.Service
	ContactService      *contact.Service
	ExpenseService      *expense.Service
	ReportService       *report.Service
	OrganizationService *organization.Service

	// Handlers
	AuthHandler         *auth.Handler
	InvoiceHandler      *invoice.Handler
	ContactHandler      *contact.Handler
	ExpenseHandler      *expense.Handler
	ReportHandler       *report.Handler
	OrganizationHandler *organization.Handler

	// Infrastructure
	Logger          *zap.Logger
	RedisClient     goredis.UniversalClient
	RedisHealth     *redisinfra.HealthChecker
	RecordStore     integration.Store
	FunctionsClient *functions.Client
	ZBClient        *zbclient.Client
}

// NewContainer creates and initializes the dependency container
func NewContainer(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Container, error) {
	container := &Container{Logger: logger}

	// Initialize Redis and the record store
	container.RedisClient = redisinfra.NewClient(cfg.Redis)
	container.RedisHealth = redisinfra.NewHealthChecker(container.RedisClient, 30*time.Second)

	fallbackStore := integration.NewFallbackStore(
		container.RedisClient,
		cfg.Redis.KeyPrefix,
		container.RedisHealth.IsHealthy,
		logger,
	)
	fallbackStore.StartReplicationRoutine(ctx)
	container.RecordStore = fallbackStore

	// Remote function boundary
	container.FunctionsClient = functions.NewClient(cfg.Functions.BaseURL, cfg.Functions.ServiceKey)

	// Initialize services
	container.AuthService = auth.NewService(auth.OAuthConfig{
		ClientID:    cfg.Zoho.ClientID,
		RedirectURI: cfg.Zoho.RedirectURI,
		Scopes:      cfg.Zoho.Scopes,
		AuthURL:     cfg.Zoho.AccountsURL,
	}, container.RecordStore, container.FunctionsClient, logger)

	// Initialize Zoho Books client
	container.ZBClient = zbclient.NewClient(
		container.FunctionsClient,
		container.AuthService,
		logger,
	)

	// Initialize domain services
	container.InvoiceService = invoice.NewService(container.ZBClient)
	container.ContactService = contact.NewService(container.ZBClient)
	container.ExpenseService = expense.NewService(container.ZBClient)
	container.ReportService = report.NewService(container.ZBClient)
	container.OrganizationService = organization.NewService(container.ZBClient)

	// Initialize handlers
	container.AuthHandler = auth.NewHandler(container.AuthService, logger)
	container.InvoiceHandler = invoice.NewHandler(container.InvoiceService, logger)
	container.ContactHandler = contact.NewHandler(container.ContactService, logger)
	container.ExpenseHandler = expense.NewHandler(container.ExpenseService, logger)
	container.ReportHandler = report.NewHandler(container.ReportService, logger)
	container.OrganizationHandler = organization.NewHandler(container.OrganizationService, logger)

	return container, nil
}

// Shutdown gracefully closes connections
func (c *Container) Shutdown() {
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			c.Logger.Warn("error closing redis connection", zap.Error(err))
		}
	}
}
