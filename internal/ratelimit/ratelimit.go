package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const maxTrackedKeys = 10000

type Result struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

type window struct {
	count   int
	resetAt time.Time
}

// FixedWindow allows max hits per key per window. Idle keys age out of an
// expirable LRU so the table never grows past maxTrackedKeys.
type FixedWindow struct {
	mu     sync.Mutex
	max    int
	window time.Duration
	keys   *expirable.LRU[string, *window]
	now    func() time.Time
}

func NewFixedWindow(max int, win time.Duration) *FixedWindow {
	if max < 1 {
		max = 1
	}
	if win <= 0 {
		win = time.Minute
	}
	return &FixedWindow{
		max:    max,
		window: win,
		keys:   expirable.NewLRU[string, *window](maxTrackedKeys, nil, win),
		now:    time.Now,
	}
}

func (f *FixedWindow) Check(key string) Result {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.now()
	w, ok := f.keys.Get(key)
	if !ok || now.After(w.resetAt) {
		w = &window{count: 1, resetAt: now.Add(f.window)}
		f.keys.Add(key, w)
		return Result{Allowed: true, Remaining: f.max - 1, ResetAt: w.resetAt}
	}
	if w.count >= f.max {
		return Result{Allowed: false, Remaining: 0, ResetAt: w.resetAt}
	}
	w.count++
	return Result{Allowed: true, Remaining: f.max - w.count, ResetAt: w.resetAt}
}

// PerKey hands each key its own token bucket.
type PerKey struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	limiters *expirable.LRU[string, *rate.Limiter]
}

func NewPerKey(rps float64, burst int, idle time.Duration) *PerKey {
	if burst < 1 {
		burst = 1
	}
	if idle <= 0 {
		idle = 10 * time.Minute
	}
	return &PerKey{
		limit:    rate.Limit(rps),
		burst:    burst,
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedKeys, nil, idle),
	}
}

func (p *PerKey) Allow(key string) bool {
	p.mu.Lock()
	lim, ok := p.limiters.Get(key)
	if !ok {
		lim = rate.NewLimiter(p.limit, p.burst)
	}
	// Re-adding refreshes the idle TTL.
	p.limiters.Add(key, lim)
	p.mu.Unlock()
	return lim.Allow()
}

// ClientIP is the request's remote host. Behind a proxy it relies on
// RealIP-style middleware having rewritten RemoteAddr.
func ClientIP(r *http.Request) string {
	addr := strings.TrimSpace(r.RemoteAddr)
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	if addr == "" {
		return "unknown"
	}
	return addr
}
