package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/dulcet/patisserie/internal"
	"github.com/dulcet/patisserie/internal/cartstore"
	"github.com/dulcet/patisserie/internal/catalog"
	"github.com/dulcet/patisserie/internal/handler"
	"github.com/dulcet/patisserie/internal/handler/storefront"
	"github.com/dulcet/patisserie/internal/middleware"
	"github.com/dulcet/patisserie/internal/pricing"
	"github.com/dulcet/patisserie/internal/profile"
	"github.com/dulcet/patisserie/internal/router"
	"github.com/dulcet/patisserie/internal/routes"
	"github.com/dulcet/patisserie/internal/service"
	"github.com/dulcet/patisserie/internal/telemetry"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Run migrations when carts live in PostgreSQL
	if cfg.Cart.Provider == "postgres" {
		logger.Info("Connecting to database...")
		sqlDB, err := sql.Open("pgx", cfg.Cart.DatabaseUrl)
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		defer sqlDB.Close()

		if err := sqlDB.Ping(); err != nil {
			return fmt.Errorf("database ping failed: %w", err)
		}

		logger.Info("Running database migrations...")
		if err := internal.RunMigrations(sqlDB); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		logger.Info("Database migrations completed successfully")
	}

	// Initialize cart store
	store, err := cartstore.NewStore(ctx, cartstore.Config{
		Provider:       cfg.Cart.Provider,
		RedisURL:       cfg.Cart.RedisURL,
		RedisNamespace: cfg.Cart.RedisNamespace,
		DatabaseUrl:    cfg.Cart.DatabaseUrl,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize cart store: %w", err)
	}
	logger.Info("Cart store initialized", "provider", cfg.Cart.Provider)

	// Initialize stock source
	stock, err := newStockSource(cfg, logger)
	if err != nil {
		return err
	}

	// Initialize profile source
	profiles, err := newProfileSource(cfg)
	if err != nil {
		return err
	}

	// Initialize discount calculator
	rules := pricing.DefaultRules()
	if cfg.Discount.SeniorAge > 0 {
		rules.SeniorAge = cfg.Discount.SeniorAge
	}
	if cfg.Discount.SeniorRate > 0 {
		rules.SeniorRate = cfg.Discount.SeniorRate
	}
	if cfg.Discount.PromoRate > 0 {
		rules.PromoRate = cfg.Discount.PromoRate
	}
	if len(cfg.Discount.PromoCodes) > 0 {
		rules.PromoCodes = cfg.Discount.PromoCodes
	}
	if len(cfg.Discount.CakePrefixes) > 0 {
		rules.CakePrefixes = cfg.Discount.CakePrefixes
	}
	if len(cfg.Discount.InstitutionalDomains) > 0 {
		rules.InstitutionalDomains = cfg.Discount.InstitutionalDomains
	}
	calculator := pricing.NewRuleCalculator(rules)

	// Initialize business metrics
	businessMetrics := telemetry.NewBusinessMetrics("patisserie")

	// Initialize cart service
	cartService, err := service.NewCartService(store, stock, profiles, calculator, businessMetrics)
	if err != nil {
		return fmt.Errorf("failed to initialize cart service: %w", err)
	}
	logger.Info("Cart service initialized")

	// Build route dependencies
	storefrontDeps := routes.StorefrontDeps{
		CartHandler: storefront.NewCartHandler(cartService),
	}

	// Initialize Prometheus metrics
	metrics := middleware.NewMetrics("patisserie")

	// Create router and register routes
	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		metrics.Middleware,
		middleware.MaxBodySize(middleware.DefaultMaxBodySize),
		middleware.Timeout(middleware.DefaultTimeout),
		router.Logger(logger),
		middleware.WithRequestLogger(logger),
	)

	// Metrics endpoint (no auth required, but should be protected in production via firewall)
	r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
		metrics.Handler().ServeHTTP(w, req)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	routes.RegisterStorefrontRoutes(r, storefrontDeps)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		handler.NotFoundResponse(w, req)
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting storefront server", "address", addr)

	if err := http.ListenAndServe(addr, r); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// newStockSource builds the configured catalog backend. The REST backend is
// wrapped in a snapshot cache so a slow or flapping catalog service does not
// sit on the cart's hot path.
func newStockSource(cfg *internal.Config, logger *slog.Logger) (catalog.Source, error) {
	switch cfg.Catalog.Backend {
	case "static", "":
		logger.Warn("Using static catalog fixtures; set CATALOG_BACKEND=rest for production")
		return catalog.NewStaticSource(devCatalog()), nil
	case "rest":
		rest, err := catalog.NewRESTSource(cfg.Catalog.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize catalog source: %w", err)
		}
		return catalog.NewSnapshotSource(rest, cfg.Catalog.SnapshotTTL), nil
	default:
		return nil, fmt.Errorf("unknown catalog backend: %s", cfg.Catalog.Backend)
	}
}

// newProfileSource builds the configured profile backend.
func newProfileSource(cfg *internal.Config) (profile.Source, error) {
	switch cfg.Profile.Backend {
	case "static", "":
		return profile.NewStaticSource(devProfiles()), nil
	case "rest":
		return profile.NewRESTSource(cfg.Profile.BaseURL)
	default:
		return nil, fmt.Errorf("unknown profile backend: %s", cfg.Profile.Backend)
	}
}

// devCatalog is the development fixture set served by the static backend.
func devCatalog() []catalog.StockFact {
	return []catalog.StockFact{
		{ProductCode: "GTO-CHOC", AvailableStock: 12, IsActive: true},
		{ProductCode: "GTO-OPERA", AvailableStock: 4, IsActive: true},
		{ProductCode: "CAKE-RED", AvailableStock: 6, IsActive: true},
		{ProductCode: "ECL-VAN", AvailableStock: 40, IsActive: true},
		{ProductCode: "ECL-CAFE", AvailableStock: 0, IsActive: true},
		{ProductCode: "TRT-LEMON", AvailableStock: 9, IsActive: false},
	}
}

// devProfiles is the development fixture set for discount profiles.
func devProfiles() map[string]profile.DiscountProfile {
	senior := time.Date(1960, time.March, 12, 0, 0, 0, 0, time.UTC)
	student := time.Date(2004, time.September, 1, 0, 0, 0, 0, time.UTC)

	return map[string]profile.DiscountProfile{
		"senior-demo":  {BirthDate: &senior},
		"student-demo": {BirthDate: &student, EmailDomain: "student.edu", PromoCode: "GATEAU10"},
	}
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
