package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TemirB/storefront/internal/analytics"
	"github.com/TemirB/storefront/internal/auth"
	"github.com/TemirB/storefront/internal/cart"
	"github.com/TemirB/storefront/internal/catalog"
	"github.com/TemirB/storefront/internal/commerce"
	"github.com/TemirB/storefront/internal/database"
	"github.com/TemirB/storefront/internal/httpapi"
	"github.com/TemirB/storefront/internal/observability"
	"github.com/TemirB/storefront/internal/orders"
	"github.com/TemirB/storefront/internal/ratelimit"
	"github.com/TemirB/storefront/internal/recaptcha"
	"github.com/TemirB/storefront/internal/search"
	"github.com/TemirB/storefront/internal/session"
)

var (
	_ httpapi.CartService     = (*cart.Service)(nil)
	_ httpapi.AuthService     = (*auth.Service)(nil)
	_ httpapi.OrderService    = (*orders.Service)(nil)
	_ httpapi.CatalogService  = (*catalog.Service)(nil)
	_ httpapi.SearchService   = (*search.Service)(nil)
	_ httpapi.CaptchaVerifier = (*recaptcha.Verifier)(nil)
	_ auth.CartTransferer     = (*cart.Service)(nil)
	_ auth.OrderClaimer       = (*orders.Service)(nil)
)

const (
	metricsWindow = 500
	sweepInterval = 15 * time.Minute
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func serve(ctx context.Context) error {
	shutdownTracing, err := observability.SetupTracing(ctx, cfg.OTLPAddr, "storefront", logger)
	if err != nil {
		logger.Warn("tracing disabled", zap.Error(err))
	} else {
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdownTracing(sctx)
		}()
	}

	metrics := observability.NewInmem(metricsWindow)

	store, closeStore, err := openSessionStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	provider := commerce.NewProvider(commerce.Options{
		Medusa:  cfg.Medusa,
		Breaker: cfg.Breaker,
		Metrics: metrics,
		Logger:  logger,
	})
	storeClient := provider.Store()

	regions := catalog.NewRegionResolver(storeClient, cfg.Medusa.DefaultRegion, catalog.NewRegionCache(), logger)
	catalogSvc := catalog.New(storeClient, regions, cfg.CatalogTTL, metrics, logger)
	go catalogSvc.Warm(ctx)

	var publisher analytics.Publisher = analytics.Noop{}
	if len(cfg.Kafka.Brokers) > 0 {
		kp := analytics.NewKafkaPublisher(analytics.NewKafkaWriter(cfg.Kafka), cfg.Kafka.Workers, cfg.Retry, metrics, logger)
		defer func() {
			if err := kp.Close(); err != nil {
				logger.Warn("analytics writer close failed", zap.Error(err))
			}
		}()
		publisher = kp
		logger.Info("analytics enabled", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	}

	cartSvc := cart.New(storeClient, regions, publisher, logger)
	orderSvc := orders.New(provider.Admin(), storeClient, publisher, logger)
	authSvc := auth.New(storeClient, cartSvc, orderSvc, publisher, logger)

	srv := httpapi.New(httpapi.Deps{
		Cart:         cartSvc,
		Auth:         authSvc,
		Orders:       orderSvc,
		Catalog:      catalogSvc,
		Search:       search.New(cfg.Search, logger),
		Captcha:      recaptcha.New(cfg.Recaptcha, logger),
		Snapshot:     metrics,
		Sessions:     session.NewManager(store, cfg.Session.CookieName, cfg.Session.TTL, cfg.Secure(), logger),
		ClaimLimit:   ratelimit.NewFixedWindow(cfg.RateLimit.ClaimMax, cfg.RateLimit.ClaimWindow),
		SearchLimit:  ratelimit.NewPerKey(cfg.RateLimit.SearchRPS, cfg.RateLimit.SearchBurst, 10*time.Minute),
		Metrics:      metrics,
		Logger:       logger,
		BaseURL:      cfg.BaseURL,
		Secure:       cfg.Secure(),
		BackendReady: storeClient.Configured(),
		CORSOrigins:  cfg.CORSOrigins,
	})

	logger.Info("storefront listening",
		zap.String("addr", cfg.HTTPAddr),
		zap.String("base_url", cfg.BaseURL),
		zap.String("session_backend", cfg.Session.Backend),
		zap.Bool("backend_configured", storeClient.Configured()),
	)
	if err := srv.ListenAndServe(ctx, cfg.HTTPAddr); err != nil {
		return fmt.Errorf("http server: %w", err)
	}
	logger.Info("storefront stopped")
	return nil
}

// openSessionStore picks the session backend from config. The returned
// close func is always safe to call.
func openSessionStore(ctx context.Context) (session.Store, func(), error) {
	switch cfg.Session.Backend {
	case "redis":
		rdb, err := session.DialRedis(ctx, cfg.Session.RedisAddr)
		if err != nil {
			return nil, nil, fmt.Errorf("redis session store: %w", err)
		}
		return session.NewRedisStore(rdb), func() { _ = rdb.Close() }, nil

	case "postgres":
		pool, err := database.Connect(ctx, cfg.Session.PgDSN, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres session store: %w", err)
		}
		repo := database.NewSessionRepo(pool, database.DefaultSessionTable)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("session schema: %w", err)
		}
		go sweepLoop(ctx, repo)
		return repo, pool.Close, nil

	default:
		return session.NewMemoryStore(cfg.CacheCap*10, cfg.Session.TTL), func() {}, nil
	}
}

func sweepLoop(ctx context.Context, repo *database.SessionRepo) {
	t := time.NewTicker(sweepInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := repo.Sweep(ctx)
			if err != nil {
				logger.Warn("session sweep failed", zap.String("op", "session.sweep"), zap.Error(err))
				continue
			}
			if n > 0 {
				logger.Debug("expired sessions removed", zap.Int64("rows", n))
			}
		}
	}
}
