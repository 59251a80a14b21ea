package session

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Manager struct {
	store      Store
	cookieName string
	ttl        time.Duration
	secure     bool
	logger     *zap.Logger
}

func NewManager(store Store, cookieName string, ttl time.Duration, secure bool, logger *zap.Logger) *Manager {
	if cookieName == "" {
		cookieName = "sf_session"
	}
	return &Manager{store: store, cookieName: cookieName, ttl: ttl, secure: secure, logger: logger}
}

// Load resolves the session for r, starting a new one when the cookie is
// missing, malformed or unknown to the store.
func (m *Manager) Load(r *http.Request) *Session {
	if c, err := r.Cookie(m.cookieName); err == nil {
		if _, perr := uuid.Parse(c.Value); perr == nil {
			data, err := m.store.Load(r.Context(), c.Value)
			if err != nil {
				m.logger.Warn("session load failed", zap.String("op", "session.load"), zap.Error(err))
			} else if data != nil {
				return newSession(m, c.Value, data, false)
			}
		}
	}
	return newSession(m, uuid.NewString(), nil, true)
}

// Persist merges the keys s changed since its last save into the store.
func (m *Manager) Persist(ctx context.Context, s *Session) {
	changes, dirty := s.snapshot()
	if !dirty {
		return
	}
	if err := m.store.Merge(ctx, s.ID(), changes, m.ttl); err != nil {
		m.logger.Error("session save failed", zap.String("op", "session.save"), zap.Error(err))
	}
}

func (m *Manager) cookie(id string) *http.Cookie {
	return &http.Cookie{
		Name:     m.cookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// Middleware attaches the session to the request context and saves it
// before the first byte of the response goes out.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := m.Load(r)
		if s.fresh {
			http.SetCookie(w, m.cookie(s.ID()))
		}

		sw := &savingWriter{ResponseWriter: w, save: func() { m.Persist(r.Context(), s) }}
		next.ServeHTTP(sw, r.WithContext(WithSession(r.Context(), s)))
		sw.flushSave()
	})
}

type savingWriter struct {
	http.ResponseWriter
	once sync.Once
	save func()
}

func (w *savingWriter) flushSave() { w.once.Do(w.save) }

func (w *savingWriter) WriteHeader(code int) {
	w.flushSave()
	w.ResponseWriter.WriteHeader(code)
}

func (w *savingWriter) Write(b []byte) (int, error) {
	w.flushSave()
	return w.ResponseWriter.Write(b)
}

func (w *savingWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
