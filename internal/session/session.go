package session

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/TemirB/storefront/internal/domain"
)

// Keys under which the storefront keeps per-visitor state.
const (
	KeyCart     = "medusa_cart_id"
	KeyCustomer = "medusa_customer"
	KeyToken    = "medusa_auth_token"
	KeyNotices  = "toasts"
)

const maxNotices = 20

// Session is one visitor's server-side state. Values are kept as raw JSON so
// every Store backend persists the same bytes.
//
// Only keys written during a request are saved back, merged into whatever
// the store holds by then, so overlapping requests do not undo each other.
type Session struct {
	mu     sync.Mutex
	id     string
	values map[string]json.RawMessage
	dirty  map[string]struct{}
	fresh  bool
	mgr    *Manager
}

func newSession(mgr *Manager, id string, values map[string]json.RawMessage, fresh bool) *Session {
	if values == nil {
		values = make(map[string]json.RawMessage)
	}
	return &Session{id: id, values: values, dirty: make(map[string]struct{}), fresh: fresh, mgr: mgr}
}

// NewDetached returns an in-memory session that is never persisted.
func NewDetached(id string) *Session {
	return newSession(nil, id, nil, true)
}

func (s *Session) ID() string { return s.id }

func (s *Session) get(key string, out any) bool {
	s.mu.Lock()
	raw, ok := s.values[key]
	s.mu.Unlock()
	if !ok || len(raw) == 0 {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func (s *Session) set(key string, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty[key] = struct{}{}
	if v == nil {
		delete(s.values, key)
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		delete(s.values, key)
		return
	}
	s.values[key] = raw
}

func (s *Session) Cart() *domain.Cart {
	var c domain.Cart
	if !s.get(KeyCart, &c) || c.ID == "" {
		return nil
	}
	return &c
}

// SetCart replaces the cached cart; nil forgets it.
func (s *Session) SetCart(c *domain.Cart) {
	if c == nil {
		s.set(KeyCart, nil)
		return
	}
	s.set(KeyCart, c)
}

func (s *Session) Customer() *domain.Customer {
	var c domain.Customer
	if !s.get(KeyCustomer, &c) || c.ID == "" {
		return nil
	}
	return &c
}

func (s *Session) SetCustomer(c *domain.Customer) {
	if c == nil {
		s.set(KeyCustomer, nil)
		return
	}
	s.set(KeyCustomer, c)
}

func (s *Session) Token() string {
	var t string
	s.get(KeyToken, &t)
	return t
}

func (s *Session) SetToken(t string) {
	if t == "" {
		s.set(KeyToken, nil)
		return
	}
	s.set(KeyToken, t)
}

// PushNotice queues a user-facing message; the oldest are dropped past
// maxNotices.
func (s *Session) PushNotice(n domain.Notice) {
	var list []domain.Notice
	s.get(KeyNotices, &list)
	list = append(list, n)
	if len(list) > maxNotices {
		list = list[len(list)-maxNotices:]
	}
	s.set(KeyNotices, list)
}

func (s *Session) Notify(kind, msg string) {
	s.PushNotice(domain.Notice{Type: kind, Message: msg})
}

// DrainNotices returns and clears queued notices.
func (s *Session) DrainNotices() []domain.Notice {
	list := []domain.Notice{}
	if s.get(KeyNotices, &list) {
		s.set(KeyNotices, nil)
	}
	return list
}

// Logout drops identity state but keeps the cart and pending notices.
func (s *Session) Logout() {
	s.set(KeyCustomer, nil)
	s.set(KeyToken, nil)
}

// snapshot returns the keys written since the last snapshot. A nil value
// means the key was removed.
func (s *Session) snapshot() (map[string]json.RawMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.dirty) == 0 {
		return nil, false
	}
	out := make(map[string]json.RawMessage, len(s.dirty))
	for k := range s.dirty {
		out[k] = s.values[k]
	}
	s.dirty = make(map[string]struct{})
	return out, true
}

// Reload picks up keys other requests saved since s was loaded. Local writes
// that are not saved yet win. Detached sessions are left alone.
func (s *Session) Reload(ctx context.Context) {
	if s.mgr == nil {
		return
	}
	data, err := s.mgr.store.Load(ctx, s.id)
	if err != nil {
		s.mgr.logger.Warn("session reload failed", zap.String("op", "session.reload"), zap.Error(err))
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.values {
		if _, local := s.dirty[k]; local {
			continue
		}
		if _, ok := data[k]; !ok {
			delete(s.values, k)
		}
	}
	for k, v := range data {
		if _, local := s.dirty[k]; !local {
			s.values[k] = v
		}
	}
}

// Flush saves pending writes now instead of when the response starts.
func (s *Session) Flush(ctx context.Context) {
	if s.mgr != nil {
		s.mgr.Persist(ctx, s)
	}
}

type ctxKey struct{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext never returns nil; outside the middleware it yields a detached
// session so callers need no guard.
func FromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(ctxKey{}).(*Session); ok && s != nil {
		return s
	}
	return NewDetached("")
}
