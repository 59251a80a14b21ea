package observability

import "sync"

// Observation is one recorded measurement kept by Inmem.
type Observation struct {
	Kind   string  `json:"kind"`
	Name   string  `json:"name"`
	Status int     `json:"status,omitempty"`
	DurMs  float64 `json:"dur_ms,omitempty"`
	OK     bool    `json:"ok"`
}

// Snapshot is a point-in-time copy of Inmem state.
type Snapshot struct {
	Last        []Observation  `json:"last"`
	CacheHits   map[string]int `json:"cache_hits"`
	CacheMisses map[string]int `json:"cache_misses"`
}

// Inmem keeps the last max observations plus cache counters.
type Inmem struct {
	mu     sync.Mutex
	last   []Observation
	max    int
	hits   map[string]int
	misses map[string]int
}

func NewInmem(max int) *Inmem {
	if max < 1 {
		max = 1
	}
	return &Inmem{
		max:    max,
		hits:   make(map[string]int),
		misses: make(map[string]int),
	}
}

func (m *Inmem) push(o Observation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = append(m.last, o)
	if len(m.last) > m.max {
		m.last = m.last[1:]
	}
}

func (m *Inmem) ObserveHTTP(method, route string, status int, durMs float64) {
	m.push(Observation{Kind: "http", Name: method + " " + route, Status: status, DurMs: durMs, OK: status < 500})
}

func (m *Inmem) ObserveBackend(op string, durMs float64, ok bool) {
	m.push(Observation{Kind: "backend", Name: op, DurMs: durMs, OK: ok})
}

func (m *Inmem) ObserveAnalytics(event string, ok bool) {
	m.push(Observation{Kind: "analytics", Name: event, OK: ok})
}

func (m *Inmem) IncCacheHit(cache string) {
	m.mu.Lock()
	m.hits[cache]++
	m.mu.Unlock()
}

func (m *Inmem) IncCacheMiss(cache string) {
	m.mu.Lock()
	m.misses[cache]++
	m.mu.Unlock()
}

func (m *Inmem) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := Snapshot{
		Last:        append([]Observation(nil), m.last...),
		CacheHits:   make(map[string]int, len(m.hits)),
		CacheMisses: make(map[string]int, len(m.misses)),
	}
	for k, v := range m.hits {
		s.CacheHits[k] = v
	}
	for k, v := range m.misses {
		s.CacheMisses[k] = v
	}
	return s
}
