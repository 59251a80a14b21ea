package config

import (
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Medusa struct {
	BackendURL     string
	PublishableKey string
	AdminAPIKey    string
	StoreID        string
	DefaultRegion  string
	Timeout        time.Duration
}

type Search struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

type Session struct {
	Backend    string
	TTL        time.Duration
	CookieName string
	RedisAddr  string
	PgDSN      string
}

type Kafka struct {
	Brokers []string
	Topic   string
	Workers int
}

type Breaker struct {
	Threshold   uint32
	OpenTimeout time.Duration
	MaxHalfOpen uint32
}

type Retry struct {
	Attempts     int
	Base         time.Duration
	Max          time.Duration
	JitterFactor float64
}

type RateLimit struct {
	ClaimMax    int
	ClaimWindow time.Duration
	SearchRPS   float64
	SearchBurst int
}

type Recaptcha struct {
	SecretKey string
	MinScore  float64
}

type Config struct {
	HTTPAddr    string
	BaseURL     string
	LogDev      bool
	CacheCap    int
	CatalogTTL  time.Duration
	OTLPAddr    string
	CORSOrigins []string

	Medusa    Medusa
	Search    Search
	Session   Session
	Kafka     Kafka
	Breaker   Breaker
	Retry     Retry
	RateLimit RateLimit
	Recaptcha Recaptcha
}

// Load fatals on error for simplicity in main().
func Load() Config {
	cfg, err := load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	return cfg
}

func load() (Config, error) {
	_ = godotenv.Load("env/.env")

	cfg := Config{
		HTTPAddr:    envDefault("HTTP_ADDR", ":8080"),
		BaseURL:     strings.TrimSuffix(envDefault("BASE_URL", "http://localhost:8080"), "/"),
		LogDev:      envBool("LOG_DEV", false),
		CacheCap:    envInt("CACHE_CAP", 1000),
		CatalogTTL:  envDurationMS("CATALOG_TTL", 2*time.Minute),
		OTLPAddr:    strings.TrimSpace(os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")),
		CORSOrigins: splitCSV(strings.TrimSpace(os.Getenv("CORS_ORIGINS"))),

		Medusa: Medusa{
			BackendURL:     strings.TrimSpace(os.Getenv("MEDUSA_BACKEND_URL")),
			PublishableKey: strings.TrimSpace(os.Getenv("MEDUSA_PUBLISHABLE_KEY")),
			AdminAPIKey:    strings.TrimSpace(os.Getenv("MEDUSA_ADMIN_API_KEY")),
			StoreID:        strings.TrimSpace(os.Getenv("MEDUSA_STORE_ID")),
			DefaultRegion:  strings.TrimSpace(os.Getenv("DEFAULT_REGION")),
			Timeout:        envDurationMS("MEDUSA_TIMEOUT", 15*time.Second),
		},

		Search: Search{
			URL:     strings.TrimSpace(os.Getenv("MEILISEARCH_URL")),
			APIKey:  strings.TrimSpace(os.Getenv("MEILISEARCH_API_KEY")),
			Timeout: envDurationMS("MEILISEARCH_TIMEOUT", 10*time.Second),
		},

		Session: Session{
			Backend:    strings.ToLower(envDefault("SESSION_BACKEND", "memory")),
			TTL:        envDurationMS("SESSION_TTL", 30*24*time.Hour),
			CookieName: envDefault("SESSION_COOKIE", "sf_session"),
			RedisAddr:  strings.TrimSpace(os.Getenv("REDIS_ADDR")),
			PgDSN:      strings.TrimSpace(os.Getenv("PG_DSN")),
		},

		Kafka: Kafka{
			Brokers: splitCSV(strings.TrimSpace(os.Getenv("KAFKA_BROKERS"))),
			Topic:   envDefault("KAFKA_TOPIC", "storefront-analytics"),
			Workers: envInt("ANALYTICS_WORKERS", 2),
		},

		Breaker: Breaker{
			Threshold:   envUint32("BREAKER_THRESHOLD", 5),
			OpenTimeout: envDurationMS("BREAKER_OPENTIMEOUT", 10*time.Second),
			MaxHalfOpen: envUint32("BREAKER_MAXHALFOPEN", 3),
		},

		Retry: Retry{
			Attempts:     envInt("RETRY_ATTEMPTS", 3),
			Base:         envDurationMS("RETRY_BASE", 100*time.Millisecond),
			Max:          envDurationMS("RETRY_MAX", 2*time.Second),
			JitterFactor: envFloat64("RETRY_JITTERFACTOR", 0.3),
		},

		RateLimit: RateLimit{
			ClaimMax:    envInt("CLAIM_RATE_MAX", 10),
			ClaimWindow: envDurationMS("CLAIM_RATE_WINDOW", time.Minute),
			SearchRPS:   envFloat64("SEARCH_RATE_RPS", 100.0/60.0),
			SearchBurst: envInt("SEARCH_RATE_BURST", 20),
		},

		Recaptcha: Recaptcha{
			SecretKey: strings.TrimSpace(os.Getenv("RECAPTCHA_SECRET_KEY")),
			MinScore:  envFloat64("RECAPTCHA_MIN_SCORE", 0.5),
		},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var missing []string
	req := map[string]string{
		"HTTP_ADDR": c.HTTPAddr,
		"BASE_URL":  c.BaseURL,
	}
	switch c.Session.Backend {
	case "redis":
		req["REDIS_ADDR"] = c.Session.RedisAddr
	case "postgres":
		req["PG_DSN"] = c.Session.PgDSN
	case "memory":
	default:
		log.Printf("SESSION_BACKEND %q is unknown, falling back to memory", c.Session.Backend)
		c.Session.Backend = "memory"
	}
	for k, v := range req {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return &missingEnvError{Keys: missing}
	}

	// Backends are optional: a storefront without them still serves empty pages.
	if !ValidBaseURL(c.Medusa.BackendURL) {
		log.Printf("MEDUSA_BACKEND_URL %q is not an http(s) URL, commerce backend disabled", c.Medusa.BackendURL)
	}
	if !ValidBaseURL(c.Search.URL) {
		log.Printf("MEILISEARCH_URL %q is not an http(s) URL, search disabled", c.Search.URL)
	}
	if c.CacheCap <= 0 {
		log.Printf("CACHE_CAP is %d, adjusting to 1", c.CacheCap)
		c.CacheCap = 1
	}
	if c.Kafka.Workers < 1 {
		log.Printf("ANALYTICS_WORKERS is %d, adjusting to 1", c.Kafka.Workers)
		c.Kafka.Workers = 1
	}
	if c.Retry.Max < c.Retry.Base {
		log.Printf("RETRY_MAX (%v) < RETRY_BASE (%v), adjusting max to base", c.Retry.Max, c.Retry.Base)
		c.Retry.Max = c.Retry.Base
	}
	if c.RateLimit.ClaimMax <= 0 {
		log.Printf("CLAIM_RATE_MAX is %d, adjusting to 10", c.RateLimit.ClaimMax)
		c.RateLimit.ClaimMax = 10
	}
	return nil
}

type missingEnvError struct{ Keys []string }

func (e *missingEnvError) Error() string {
	return "missing required envs: " + strings.Join(e.Keys, ", ")
}

// ValidBaseURL accepts only absolute http(s) URLs.
func ValidBaseURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Secure reports whether cookies should carry the Secure attribute.
func (c Config) Secure() bool {
	return strings.HasPrefix(c.BaseURL, "https://")
}

func envDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func envBool(k string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %t: %v", k, v, def, err)
		return def
	}
	return b
}

func envInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d: %v", k, v, def, err)
		return def
	}
	return n
}

func envUint32(k string, def uint32) uint32 {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	u, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d: %v", k, v, def, err)
		return def
	}
	return uint32(u)
}

func envFloat64(k string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using default %.3f: %v", k, v, def, err)
		return def
	}
	return f
}

// envDurationMS supports either plain integer milliseconds ("1500") or
// Go duration strings ("1.5s", "250ms", "2m").
func envDurationMS(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	if strings.IndexFunc(v, func(r rune) bool { return r < '0' || r > '9' }) != -1 {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
			return def
		}
		return d
	}
	ms, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
