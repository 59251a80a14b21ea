package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/TemirB/storefront/internal/auth"
	"github.com/TemirB/storefront/internal/catalog"
	"github.com/TemirB/storefront/internal/commerce"
	"github.com/TemirB/storefront/internal/domain"
	"github.com/TemirB/storefront/internal/observability"
	"github.com/TemirB/storefront/internal/orders"
	"github.com/TemirB/storefront/internal/ratelimit"
	"github.com/TemirB/storefront/internal/recaptcha"
	"github.com/TemirB/storefront/internal/search"
	"github.com/TemirB/storefront/internal/session"
)

//go:generate mockgen -source=httpapi.go -destination=httpapi_mock_test.go -package=httpapi

type CartService interface {
	Get(ctx context.Context, sess *session.Session) (*domain.Cart, error)
	Ensure(ctx context.Context, sess *session.Session) (string, error)
	AddLine(ctx context.Context, sess *session.Session, variantID string, qty int) (*domain.Cart, error)
	UpdateLine(ctx context.Context, sess *session.Session, lineID string, qty int) (*domain.Cart, error)
	RemoveLine(ctx context.Context, sess *session.Session, lineID string) (*domain.Cart, error)
	Clear(ctx context.Context, sess *session.Session) (*domain.Cart, error)
	ApplyPromotions(ctx context.Context, sess *session.Session, codes []string) (*domain.Cart, error)
	RemovePromotions(ctx context.Context, sess *session.Session, codes []string) (*domain.Cart, error)
}

type AuthService interface {
	CurrentCustomer(ctx context.Context, sess *session.Session) *domain.Customer
	Login(ctx context.Context, sess *session.Session, email, password string, claimHints []string) *domain.Customer
	Register(ctx context.Context, sess *session.Session, in auth.RegisterInput) *domain.Customer
	Logout(ctx context.Context, sess *session.Session)
	RequestPasswordReset(ctx context.Context, sess *session.Session, email string) bool
	ResetPassword(ctx context.Context, sess *session.Session, email, password, token string) bool
	UpdateProfile(ctx context.Context, sess *session.Session, in auth.ProfileInput) *domain.Customer
	Addresses(ctx context.Context, sess *session.Session) ([]domain.Address, error)
	SaveAddress(ctx context.Context, sess *session.Session, id string, a domain.Address) (*domain.Customer, error)
	DeleteAddress(ctx context.Context, sess *session.Session, id string) error
	Status(ctx context.Context, sess *session.Session, backendReady bool) auth.Status
	StartOAuth(ctx context.Context, provider, callbackURL, state string) (string, error)
	CompleteOAuth(ctx context.Context, sess *session.Session, provider string, params url.Values) bool
}

type OrderService interface {
	Claim(ctx context.Context, req orders.ClaimRequest) (orders.ClaimResult, error)
	Cancel(ctx context.Context, req orders.CancelRequest) (*domain.Order, error)
	Lookup(ctx context.Context, req orders.LookupRequest) (*domain.Order, error)
	Summaries(ctx context.Context) ([]domain.Order, int, error)
}

type CatalogService interface {
	Regions(ctx context.Context) ([]domain.Region, error)
	CategoryTree(ctx context.Context) ([]*domain.CategoryNode, error)
	AllCollections(ctx context.Context) ([]domain.Collection, error)
	Products(ctx context.Context, f catalog.ProductFilter) (catalog.Listing, error)
	BasicProducts(ctx context.Context, limit, offset int) (commerce.ProductPage, error)
	ProductByHandle(ctx context.Context, handle string) (*catalog.ProductDetail, error)
	CategoryPage(ctx context.Context, handle string) (*catalog.CategoryPage, error)
	CollectionPage(ctx context.Context, handle string) (*catalog.CollectionPage, error)
	Sitemap(ctx context.Context, origin string, now time.Time) ([]byte, error)
}

type SearchService interface {
	Query(ctx context.Context, q string, limit int) search.Results
}

type CaptchaVerifier interface {
	Verify(ctx context.Context, token, action string) (recaptcha.Result, error)
}

// Snapshotter exposes in-process metrics on /metrics.
type Snapshotter interface {
	Snapshot() observability.Snapshot
}

// Deps is everything the HTTP layer talks to. Snapshot may be nil.
type Deps struct {
	Cart     CartService
	Auth     AuthService
	Orders   OrderService
	Catalog  CatalogService
	Search   SearchService
	Captcha  CaptchaVerifier
	Snapshot Snapshotter
	Sessions *session.Manager

	ClaimLimit  *ratelimit.FixedWindow
	SearchLimit *ratelimit.PerKey

	Metrics observability.Metrics
	Logger  *zap.Logger

	BaseURL      string
	Secure       bool
	BackendReady bool
	// CORSOrigins enables credentialed CORS for a frontend on another origin.
	CORSOrigins []string
}

type Server struct {
	d      Deps
	router chi.Router
	logger *zap.Logger
	now    func() time.Time
}

func New(d Deps) *Server {
	if d.Metrics == nil {
		d.Metrics = observability.Noop{}
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	s := &Server{
		d:      d,
		router: chi.NewRouter(),
		logger: d.Logger,
		now:    time.Now,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(ServerTimingApp(s.d.Metrics))
	r.Use(SecurityHeaders(s.d.Secure))
	if len(s.d.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.d.CORSOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders:   []string{"Server-Timing", "Retry-After"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Get("/healthz", s.health)
	r.Get("/metrics", s.metrics)
	r.Get("/sitemap.xml", s.sitemap)

	r.Group(func(r chi.Router) {
		if s.d.Sessions != nil {
			r.Use(s.d.Sessions.Middleware)
		}

		r.Get("/oauth/google/start", s.oauthStart)
		r.Get("/oauth/google/callback", s.oauthCallback)

		r.Route("/api", func(r chi.Router) {
			r.Get("/notifications", s.notifications)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", s.getCart)
				r.Post("/", s.ensureCart)
				r.Delete("/", s.clearCart)
				r.Get("/summary", s.cartSummary)
				r.Get("/quantity/{variantID}", s.cartQuantity)
				r.Post("/line-items", s.addLine)
				r.Post("/line-items/{lineID}", s.updateLine)
				r.Delete("/line-items/{lineID}", s.removeLine)
				r.Post("/promotions", s.promotions(true))
				r.Delete("/promotions", s.promotions(false))
			})

			r.Route("/auth", func(r chi.Router) {
				r.Get("/customer", s.currentCustomer)
				r.Post("/login", s.login)
				r.Post("/register", s.register)
				r.Post("/logout", s.logout)
				r.Post("/password-reset", s.requestPasswordReset)
				r.Post("/password-reset/complete", s.completePasswordReset)
				r.Get("/status", s.authStatus)
			})

			r.Route("/customer", func(r chi.Router) {
				r.Post("/profile", s.updateProfile)
				r.Get("/addresses", s.listAddresses)
				r.Post("/addresses", s.saveAddress)
				r.Post("/addresses/{addressID}", s.saveAddress)
				r.Delete("/addresses/{addressID}", s.deleteAddress)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", s.listOrders)
				r.Post("/claim", s.claimOrder)
				r.Post("/cancel", s.cancelOrder)
				r.Get("/lookup", s.lookupOrder)
			})

			r.Get("/products", s.listProducts)
			r.Get("/products/load-more", s.loadMoreProducts)
			r.Get("/products/{handle}", s.getProduct)
			r.Get("/categories", s.listCategories)
			r.Get("/categories/{handle}", s.getCategory)
			r.Get("/collections", s.listCollections)
			r.Get("/collections/{handle}", s.getCollection)
			r.Get("/regions", s.listRegions)
			r.Get("/search", s.search)
			r.Post("/verify-recaptcha", s.verifyRecaptcha)
		})
	})
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "backend": s.d.BackendReady})
}

func (s *Server) metrics(w http.ResponseWriter, _ *http.Request) {
	if s.d.Snapshot == nil {
		writeError(w, http.StatusNotFound, "metrics disabled")
		return
	}
	writeJSON(w, http.StatusOK, s.d.Snapshot.Snapshot())
}

func (s *Server) notifications(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"notifications": sess.DrainNotices()})
}

// backendStatus maps a commerce failure that has no sentinel of its own.
func backendStatus(err error) int {
	switch {
	case errors.Is(err, commerce.ErrNotConfigured), commerce.IsUnavailable(err):
		return http.StatusServiceUnavailable
	case commerce.IsNotFound(err), errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case commerce.IsUnauthorized(err):
		return http.StatusUnauthorized
	default:
		return http.StatusBadGateway
	}
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Handler() http.Handler { return s.router }
