package observability

type Metrics interface {
	ObserveHTTP(method, route string, status int, durMs float64)
	ObserveBackend(op string, durMs float64, ok bool)
	ObserveAnalytics(event string, ok bool)
	IncCacheHit(cache string)
	IncCacheMiss(cache string)
}

type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) ObserveHTTP(string, string, int, float64) {}
func (Noop) ObserveBackend(string, float64, bool)     {}
func (Noop) ObserveAnalytics(string, bool)            {}
func (Noop) IncCacheHit(string)                       {}
func (Noop) IncCacheMiss(string)                      {}
