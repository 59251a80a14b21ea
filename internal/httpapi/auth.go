package httpapi

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/TemirB/storefront/internal/auth"
	"github.com/TemirB/storefront/internal/domain"
	"github.com/TemirB/storefront/internal/ratelimit"
	"github.com/TemirB/storefront/internal/session"
)

const (
	stateCookie    = "oauth_state"
	returnToCookie = "oauth_return_to"
	stateTTL       = 10 * time.Minute
	returnToTTL    = 30 * time.Minute
)

type customerResponse struct {
	Customer *domain.Customer `json:"customer"`
}

type loginRequest struct {
	Email    string   `json:"email"`
	Password string   `json:"password"`
	ClaimIDs []string `json:"claim_order_ids,omitempty"`
}

func (s *Server) currentCustomer(w http.ResponseWriter, r *http.Request) {
	me := s.d.Auth.CurrentCustomer(r.Context(), session.FromContext(r.Context()))
	writeJSON(w, http.StatusOK, customerResponse{Customer: me})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, credentialsSchema, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	hints := s.allowedClaimHints(r, req.ClaimIDs)
	me := s.d.Auth.Login(r.Context(), session.FromContext(r.Context()), req.Email, req.Password, hints)
	if me == nil {
		writeError(w, http.StatusUnauthorized, "Failed to sign in")
		return
	}
	writeJSON(w, http.StatusOK, customerResponse{Customer: me})
}

// allowedClaimHints charges each hint to the client's claim limit, the same
// budget POST /api/orders/claim uses, and drops the rest at the first refusal.
func (s *Server) allowedClaimHints(r *http.Request, hints []string) []string {
	if len(hints) > auth.MaxClaimHints {
		hints = hints[:auth.MaxClaimHints]
	}
	if s.d.ClaimLimit == nil || len(hints) == 0 {
		return hints
	}
	ip := ratelimit.ClientIP(r)
	for i := range hints {
		if !s.d.ClaimLimit.Check(ip).Allowed {
			s.logger.Warn("claim hints rate limited", zap.String("op", "http.auth.login"), zap.Int("dropped", len(hints)-i))
			return hints[:i]
		}
	}
	return hints
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterInput
	if err := decodeJSON(r, credentialsSchema, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	me := s.d.Auth.Register(r.Context(), session.FromContext(r.Context()), req)
	if me == nil {
		writeError(w, http.StatusBadRequest, "Registration failed")
		return
	}
	writeJSON(w, http.StatusCreated, customerResponse{Customer: me})
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	s.d.Auth.Logout(r.Context(), session.FromContext(r.Context()))
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

type passwordResetRequest struct {
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Token    string `json:"token,omitempty"`
}

func (s *Server) requestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req passwordResetRequest
	if err := decodeJSON(r, nil, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !s.d.Auth.RequestPasswordReset(r.Context(), session.FromContext(r.Context()), req.Email) {
		writeError(w, http.StatusServiceUnavailable, "Unable to request password reset")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) completePasswordReset(w http.ResponseWriter, r *http.Request) {
	var req passwordResetRequest
	if err := decodeJSON(r, credentialsSchema, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Token == "" {
		writeError(w, http.StatusBadRequest, "token required")
		return
	}
	if !s.d.Auth.ResetPassword(r.Context(), session.FromContext(r.Context()), req.Email, req.Password, req.Token) {
		writeError(w, http.StatusBadRequest, "Failed to reset password")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) authStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.d.Auth.Status(r.Context(), session.FromContext(r.Context()), s.d.BackendReady))
}

func (s *Server) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req auth.ProfileInput
	if err := decodeJSON(r, nil, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sess := session.FromContext(r.Context())
	if sess.Token() == "" {
		writeError(w, http.StatusUnauthorized, auth.ErrNotAuthenticated.Error())
		return
	}
	me := s.d.Auth.UpdateProfile(r.Context(), sess, req)
	if me == nil {
		writeError(w, http.StatusBadGateway, "Failed to update profile")
		return
	}
	writeJSON(w, http.StatusOK, customerResponse{Customer: me})
}

func (s *Server) accountError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, auth.ErrNotAuthenticated) {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	status := backendStatus(err)
	s.logger.Warn("account request failed", zap.String("op", op), zap.Int("status", status), zap.Error(err))
	writeError(w, status, "account backend error")
}

func (s *Server) listAddresses(w http.ResponseWriter, r *http.Request) {
	list, err := s.d.Auth.Addresses(r.Context(), session.FromContext(r.Context()))
	if err != nil {
		s.accountError(w, "http.customer.addresses", err)
		return
	}
	if list == nil {
		list = []domain.Address{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"addresses": list})
}

func (s *Server) saveAddress(w http.ResponseWriter, r *http.Request) {
	var a domain.Address
	if err := decodeJSON(r, nil, &a); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	me, err := s.d.Auth.SaveAddress(r.Context(), session.FromContext(r.Context()), chi.URLParam(r, "addressID"), a)
	if err != nil {
		s.accountError(w, "http.customer.save_address", err)
		return
	}
	writeJSON(w, http.StatusOK, customerResponse{Customer: me})
}

func (s *Server) deleteAddress(w http.ResponseWriter, r *http.Request) {
	if err := s.d.Auth.DeleteAddress(r.Context(), session.FromContext(r.Context()), chi.URLParam(r, "addressID")); err != nil {
		s.accountError(w, "http.customer.delete_address", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) callbackURL() string {
	return s.d.BaseURL + "/oauth/google/callback"
}

func (s *Server) setShortCookie(w http.ResponseWriter, name, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.d.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.d.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// oauthStart remembers a CSRF state and the sanitized return path in
// short-lived cookies, then sends the browser to the provider.
func (s *Server) oauthStart(w http.ResponseWriter, r *http.Request) {
	state, err := auth.NewState()
	if err != nil {
		s.logger.Error("oauth state generation failed", zap.String("op", "http.oauth.start"), zap.Error(err))
		http.Redirect(w, r, "/login?auth=oauth_error", http.StatusFound)
		return
	}
	location, err := s.d.Auth.StartOAuth(r.Context(), auth.ProviderGoogle, s.callbackURL(), state)
	if err != nil {
		http.Redirect(w, r, "/login?auth=oauth_error&message="+url.QueryEscape("Could not start Google sign-in"), http.StatusFound)
		return
	}
	s.setShortCookie(w, stateCookie, state, stateTTL)
	s.setShortCookie(w, returnToCookie, auth.SanitizeReturnTo(r.URL.Query().Get("return_to")), returnToTTL)
	http.Redirect(w, r, location, http.StatusFound)
}

// oauthCallback checks the CSRF state before anything reaches the backend.
// The one-time cookies are cleared on every outcome.
func (s *Server) oauthCallback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	expected := ""
	if c, err := r.Cookie(stateCookie); err == nil {
		expected = c.Value
	}
	returnTo := auth.DefaultReturnTo
	if c, err := r.Cookie(returnToCookie); err == nil {
		if v := auth.SanitizeReturnTo(c.Value); v != "" {
			returnTo = v
		}
	}
	s.clearCookie(w, stateCookie)
	s.clearCookie(w, returnToCookie)

	if e := q.Get("error"); e != "" {
		msg := q.Get("error_description")
		if msg == "" {
			msg = e
		}
		http.Redirect(w, r, "/login?auth=oauth_error&message="+url.QueryEscape(msg), http.StatusFound)
		return
	}
	if expected == "" || q.Get("state") != expected {
		s.logger.Warn("oauth state mismatch", zap.String("op", "http.oauth.callback"))
		http.Redirect(w, r, "/login?auth=state_mismatch", http.StatusFound)
		return
	}

	if !s.d.Auth.CompleteOAuth(r.Context(), session.FromContext(r.Context()), auth.ProviderGoogle, q) {
		http.Redirect(w, r, "/login?auth=oauth_error", http.StatusFound)
		return
	}
	http.Redirect(w, r, auth.WithAuthHint(returnTo, auth.ProviderGoogle), http.StatusFound)
}
