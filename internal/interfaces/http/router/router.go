package router

import (
	"time"

	"github.com/erp/ledgercore/internal/infrastructure/logger"
	"github.com/erp/ledgercore/internal/infrastructure/telemetry"
	"github.com/erp/ledgercore/internal/interfaces/http/handler"
	"github.com/erp/ledgercore/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// RouteRegistrar defines the interface for registering routes
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router manages HTTP route registration
type Router struct {
	engine     *gin.Engine
	apiVersion string
	registrars []RouteRegistrar
	middleware []gin.HandlerFunc
}

// RouterOption is a functional option for Router configuration
type RouterOption func(*Router)

// WithAPIVersion sets the API version prefix (e.g., "v1", "v2")
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) {
		r.apiVersion = version
	}
}

// WithAPIMiddleware adds middleware that runs on the versioned API group only
func WithAPIMiddleware(mw ...gin.HandlerFunc) RouterOption {
	return func(r *Router) {
		r.middleware = append(r.middleware, mw...)
	}
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{
		engine:     engine,
		apiVersion: "v1",
		registrars: make([]RouteRegistrar, 0),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register adds a RouteRegistrar to be registered later
func (r *Router) Register(registrar RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrar)
	return r
}

// Setup registers all routes with the engine
func (r *Router) Setup() {
	api := r.engine.Group("/api/" + r.apiVersion)
	if len(r.middleware) > 0 {
		api.Use(r.middleware...)
	}

	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(api)
	}
}

// DomainGroup creates a route group for a specific domain
type DomainGroup struct {
	name       string
	prefix     string
	routes     []routeDefinition
	middleware []gin.HandlerFunc
}

type routeDefinition struct {
	method   string
	path     string
	handlers []gin.HandlerFunc
}

// NewDomainGroup creates a new domain-specific route group
func NewDomainGroup(name, prefix string) *DomainGroup {
	return &DomainGroup{
		name:   name,
		prefix: prefix,
	}
}

// Use adds middleware to this group
func (dg *DomainGroup) Use(middleware ...gin.HandlerFunc) *DomainGroup {
	dg.middleware = append(dg.middleware, middleware...)
	return dg
}

// GET registers a GET route
func (dg *DomainGroup) GET(path string, handlers ...gin.HandlerFunc) *DomainGroup {
	dg.routes = append(dg.routes, routeDefinition{method: "GET", path: path, handlers: handlers})
	return dg
}

// POST registers a POST route
func (dg *DomainGroup) POST(path string, handlers ...gin.HandlerFunc) *DomainGroup {
	dg.routes = append(dg.routes, routeDefinition{method: "POST", path: path, handlers: handlers})
	return dg
}

// RegisterRoutes implements RouteRegistrar interface
func (dg *DomainGroup) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group(dg.prefix)
	if len(dg.middleware) > 0 {
		group.Use(dg.middleware...)
	}

	for _, route := range dg.routes {
		switch route.method {
		case "GET":
			group.GET(route.path, route.handlers...)
		case "POST":
			group.POST(route.path, route.handlers...)
		}
	}
}

// Name returns the group name
func (dg *DomainGroup) Name() string {
	return dg.name
}

// Prefix returns the group prefix
func (dg *DomainGroup) Prefix() string {
	return dg.prefix
}

// Handlers are the HTTP handlers served by the API
type Handlers struct {
	Journal      *handler.JournalHandler
	Accounts     *handler.AccountHandler
	TrialBalance *handler.TrialBalanceHandler
	Payroll      *handler.PayrollHandler
	Remittances  *handler.RemittanceHandler
	System       *handler.SystemHandler
}

// EngineConfig configures the middleware stack
type EngineConfig struct {
	Logger         *zap.Logger
	ServiceName    string
	TracingEnabled bool
	MeterProvider  *telemetry.MeterProvider
	CORS           middleware.CORSConfig
	MaxBodySize    int64
	RequestTimeout time.Duration
	TrustedProxies []string
	// Idempotency guards the posting endpoints; nil disables it
	Idempotency *middleware.IdempotencyConfig
	// Swagger serves the OpenAPI UI at /swagger/index.html
	Swagger bool
}

// New builds the gin engine with the middleware stack and every route.
//
// Middleware order:
//  1. RequestID, Recovery and the request logger
//  2. Tracing and HTTP metrics
//  3. Secure headers, CORS and the body limit
//  4. CompanyScope and span attributes
//
// The API group adds the request timeout; posting routes add Idempotency.
func New(cfg EngineConfig, h Handlers) *gin.Engine {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	engine := gin.New()
	if len(cfg.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName: cfg.ServiceName,
		Enabled:     cfg.TracingEnabled,
	}))
	engine.Use(middleware.HTTPMetrics(middleware.HTTPMetricsConfig{
		MeterProvider: cfg.MeterProvider,
		Enabled:       cfg.MeterProvider != nil,
		Logger:        log,
	}))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(cfg.CORS))
	engine.Use(middleware.BodyLimit(cfg.MaxBodySize))
	engine.Use(middleware.CompanyScope())
	engine.Use(middleware.SpanAttributes())

	engine.GET("/health", h.System.Health)
	engine.GET("/ready", h.System.Ready)
	if cfg.Swagger {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r := NewRouter(engine, WithAPIMiddleware(middleware.Timeout(cfg.RequestTimeout)))
	for _, g := range Routes(h, idempotency(cfg.Idempotency)) {
		r.Register(g)
	}
	r.Setup()

	return engine
}

func idempotency(cfg *middleware.IdempotencyConfig) gin.HandlerFunc {
	if cfg == nil || cfg.Store == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return middleware.Idempotency(*cfg)
}

// Routes returns the API's domain groups. idem runs in front of every
// handler that posts to the ledger.
func Routes(h Handlers, idem gin.HandlerFunc) []*DomainGroup {
	journal := NewDomainGroup("journal", "/journal-entries").
		POST("", idem, h.Journal.Post).
		POST("/:id/reverse", idem, h.Journal.Reverse)

	events := NewDomainGroup("events", "/events").
		POST("/invoice-created", idem, h.Journal.InvoiceCreated).
		POST("/invoice-cancelled", idem, h.Journal.InvoiceCancelled).
		POST("/payment-received", idem, h.Journal.PaymentReceived).
		POST("/expense-recorded", idem, h.Journal.ExpenseRecorded).
		POST("/pos-order-completed", idem, h.Journal.POSOrderCompleted).
		POST("/pos-return-completed", idem, h.Journal.POSReturnCompleted)

	accounts := NewDomainGroup("accounts", "/accounts").
		GET("", h.Accounts.List).
		POST("", h.Accounts.Create)

	trialBalance := NewDomainGroup("trial-balance", "/trial-balance").
		GET("", h.TrialBalance.Get)

	runs := NewDomainGroup("payroll-runs", "/payroll-runs").
		POST("", h.Payroll.CreateRun).
		GET("/:id", h.Payroll.GetRun).
		POST("/:id/approve", idem, h.Payroll.ApproveRun).
		POST("/:id/pay", idem, h.Payroll.PayRun)

	payroll := NewDomainGroup("payroll", "/payroll").
		POST("/back-pay", h.Payroll.BackPay)

	remittances := NewDomainGroup("remittances", "/remittances").
		GET("", h.Remittances.List).
		POST("/generate", h.Remittances.Generate).
		POST("/mark-overdue", h.Remittances.MarkOverdue).
		POST("/:id/pay", idem, h.Remittances.Pay)

	system := NewDomainGroup("system", "/system").
		GET("/info", h.System.GetSystemInfo)

	return []*DomainGroup{journal, events, accounts, trialBalance, runs, payroll, remittances, system}
}
