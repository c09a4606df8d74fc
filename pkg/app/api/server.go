// Package api implements app.Runner for the arka API server process.
package api

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	apphttp "github.com/etherspot/arka-sub001/pkg/app/http"
	"github.com/etherspot/arka-sub001/pkg/auth"
	"github.com/etherspot/arka-sub001/pkg/config"
	"github.com/etherspot/arka-sub001/pkg/contractcall"
	"github.com/etherspot/arka-sub001/pkg/engine"
	"github.com/etherspot/arka-sub001/pkg/ledger"
	"github.com/etherspot/arka-sub001/pkg/pgutil"
	"github.com/etherspot/arka-sub001/pkg/policy"
	"github.com/etherspot/arka-sub001/pkg/pricecache"
	"github.com/etherspot/arka-sub001/pkg/sponsorstore"
	"github.com/etherspot/arka-sub001/pkg/whitelist"
)

const defaultRequestTimeout = 60

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.Config
}

type services struct {
	decisions engine.Service
	policies  policy.Service
	whitelist whitelist.Service
	contracts contractcall.Service
	prices    *pricecache.Cache
	refresher *pricecache.Refresher
}

// NewServer initializes new api server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting arka API server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.String("ledger", cfg.Database.Ledger),
	)

	db, err := pgutil.ConnectDB(ctx, &cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	svc := s.buildServices(db, logger)

	svc.refresher.Start(ctx, cfg.Pricing.RefreshInterval)
	// Stopped explicitly after ServeAndWait returns; the defer covers early exits.
	defer svc.refresher.Stop()

	router := s.setupRouter(db, svc, logger)

	err = apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)

	svc.refresher.Stop()

	return err
}

func (s *Server) buildServices(db *bun.DB, logger *zap.Logger) *services {
	store := sponsorstore.NewStore(db)

	var usage ledger.UsageStore
	if s.cfg.Database.Ledger == "memory" {
		logger.Warn("Using in-memory limit ledger; counters are lost on restart and not shared between instances")
		usage = ledger.NewMemoryStore()
	} else {
		usage = ledger.NewPGStore(db)
	}
	limits := ledger.New(usage, logger)

	prices := pricecache.New(pricecache.WithDefaultTTL(s.cfg.Pricing.DefaultTTL))
	refresher := pricecache.NewRefresher(store, prices, logger)

	decisions := engine.New(engine.Deps{
		Accounts:  store,
		Resolver:  policy.NewResolver(store),
		Whitelist: whitelist.NewGuard(store, logger),
		Contracts: contractcall.NewGuard(store, logger),
		Prices:    prices,
		Ledger:    limits,
	}, logger, engine.WithAllowStalePrices(s.cfg.Pricing.AllowStale))

	return &services{
		decisions: engine.NewLog(decisions, logger),
		policies:  policy.NewService(store, limits, logger),
		whitelist: whitelist.NewService(store, logger),
		contracts: contractcall.NewService(store, logger),
		prices:    prices,
		refresher: refresher,
	}
}

func (s *Server) setupRouter(db *bun.DB, svc *services, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(time.Second * defaultRequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		MaxAge:         s.cfg.CORS.MaxAge,
	}))

	r.Get("/health", apphttp.Health)
	r.Get("/health/ready", apphttp.Ready(db, logger))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		engine.RegisterRoutes(r, svc.decisions, logger)

		validator := auth.NewJWTValidator(s.cfg.Admin.JWKSURL, s.cfg.Admin.Issuer, s.cfg.Admin.Audience)
		if !validator.IsConfigured() {
			logger.Warn("Admin API disabled: admin.jwks_url is not set")
			return
		}

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.RequireAdmin(validator, logger))

			policy.RegisterRoutes(r, svc.policies, logger)
			whitelist.RegisterRoutes(r, svc.whitelist, logger)
			contractcall.RegisterRoutes(r, svc.contracts, logger)
			pricecache.RegisterRoutes(r, svc.prices, svc.refresher, logger)
		})
		logger.Info("Admin API enabled", zap.String("path", "/v1/admin"))
	})

	return r
}
