package commerce

import (
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/TemirB/storefront/internal/config"
	"github.com/TemirB/storefront/internal/observability"
	"github.com/TemirB/storefront/internal/pkg/breaker"
)

type Options struct {
	Medusa  config.Medusa
	Breaker config.Breaker
	Metrics observability.Metrics
	Logger  *zap.Logger

	// HTTPClient overrides the default client, mostly for tests.
	HTTPClient *http.Client
}

// Provider builds each client scope once, on first use, and hands out the
// Unconfigured variant when the scope's configuration is incomplete.
type Provider struct {
	opts    Options
	breaker *breaker.Breaker

	storeOnce sync.Once
	store     Store
	adminOnce sync.Once
	admin     Admin
}

func NewProvider(opts Options) *Provider {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Metrics == nil {
		opts.Metrics = observability.NewNoop()
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Medusa.Timeout}
	}
	return &Provider{
		opts:    opts,
		breaker: breaker.New(opts.Breaker),
	}
}

func (p *Provider) newTransport(scope string, auth func(*http.Request)) *transport {
	return &transport{
		http:    p.opts.HTTPClient,
		baseURL: strings.TrimSuffix(strings.TrimSpace(p.opts.Medusa.BackendURL), "/"),
		scope:   scope,
		auth:    auth,
		breaker: p.breaker,
		metrics: p.opts.Metrics,
		tracer:  observability.Tracer(),
		logger:  p.opts.Logger.With(zap.String("scope", scope)),
	}
}

func (p *Provider) Store() Store {
	p.storeOnce.Do(func() {
		m := p.opts.Medusa
		if !config.ValidBaseURL(m.BackendURL) || m.PublishableKey == "" {
			p.opts.Logger.Warn("store client unconfigured, catalog and cart calls degrade to empty results")
			p.store = Unconfigured{}
			return
		}
		key := m.PublishableKey
		p.store = &storeClient{t: p.newTransport("store", func(r *http.Request) {
			r.Header.Set("x-publishable-api-key", key)
		})}
	})
	return p.store
}

func (p *Provider) Admin() Admin {
	p.adminOnce.Do(func() {
		m := p.opts.Medusa
		if !config.ValidBaseURL(m.BackendURL) || m.AdminAPIKey == "" {
			p.opts.Logger.Warn("admin client unconfigured, order claim and cancel are disabled")
			p.admin = Unconfigured{}
			return
		}
		key := m.AdminAPIKey
		p.admin = &adminClient{
			t: p.newTransport("admin", func(r *http.Request) {
				r.SetBasicAuth(key, "")
			}),
			storeID: m.StoreID,
		}
	})
	return p.admin
}
