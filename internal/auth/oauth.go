package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/TemirB/storefront/internal/commerce"
	"github.com/TemirB/storefront/internal/domain"
	"github.com/TemirB/storefront/internal/session"
)

const ProviderGoogle = "google"

// NewState returns 32 random bytes hex encoded, used as the OAuth CSRF state.
func NewState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// StartOAuth asks the backend for the provider's authorization URL.
func (s *Service) StartOAuth(ctx context.Context, provider, callbackURL, state string) (string, error) {
	res, err := s.backend.StartOAuth(ctx, provider, callbackURL, state)
	if err != nil {
		s.logger.Error("oauth start failed", zap.String("op", "auth.oauth.start"), zap.String("provider", provider), zap.Error(err))
		return "", err
	}
	if res.Location == "" {
		s.logger.Error("oauth start returned no location", zap.String("op", "auth.oauth.start"), zap.String("provider", provider))
		return "", ErrNoRedirectLocation
	}
	return res.Location, nil
}

// CompleteOAuth exchanges the provider callback for a session. The caller
// has already checked the CSRF state. A first-time identity gets a customer
// profile built from the provider profile, falling back to token claims.
func (s *Service) CompleteOAuth(ctx context.Context, sess *session.Session, provider string, params url.Values) bool {
	fail := func(msg string) bool {
		sess.Notify(domain.NoticeError, msg)
		return false
	}

	if e := params.Get("error"); e != "" {
		desc := params.Get("error_description")
		if desc == "" {
			desc = e
		}
		return fail("Authentication failed: " + desc)
	}
	if params.Get("code") == "" {
		return fail("Authentication failed: Missing authorization code.")
	}

	token, err := s.backend.OAuthCallback(ctx, provider, params)
	if err != nil {
		s.logger.Error("oauth code exchange failed", zap.String("op", "auth.oauth.callback"), zap.Error(err))
		return fail("Authentication failed while exchanging code.")
	}

	claims, err := DecodeUnverified(token)
	if err != nil {
		s.logger.Warn("oauth token not decodable", zap.String("op", "auth.oauth.callback"), zap.Error(err))
		claims = &TokenClaims{}
	}
	withToken := commerce.WithToken(ctx, token)

	if claims.ActorID == "" {
		var profile *commerce.OAuthProfile
		if claims.AuthIdentityID != "" {
			profile, err = s.backend.OAuthProfile(withToken, claims.AuthIdentityID)
			if err != nil {
				s.logger.Warn("oauth profile fetch failed, using token claims", zap.String("op", "auth.oauth.profile"), zap.Error(err))
			}
		}
		in := customerFromOAuth(profile, claims)
		if in.Email == "" {
			return fail("Authentication failed: Provider did not return an email.")
		}
		if _, err := s.backend.CreateCustomer(withToken, in); err != nil && !commerce.IsAlreadyExists(err) {
			s.logger.Error("oauth customer create failed", zap.String("op", "auth.oauth.create_customer"), zap.Error(err))
			return fail("Failed to create your account.")
		}
		// The token only names the customer after a refresh.
		refreshed, err := s.backend.RefreshToken(withToken)
		if err != nil {
			s.logger.Error("oauth token refresh failed", zap.String("op", "auth.oauth.refresh"), zap.Error(err))
			return fail("Failed to refresh authentication after account creation.")
		}
		if refreshed != "" {
			token = refreshed
		}
	}

	sess.SetToken(token)
	if s.CurrentCustomer(ctx, sess) == nil {
		return fail("An unexpected error occurred during sign-in.")
	}
	s.transferCart(ctx, sess)
	sess.Notify(domain.NoticeSuccess, "Signed in with Google")
	return true
}

// customerFromOAuth prefers the provider profile over token claims and
// splits a display name when given and family names are missing.
func customerFromOAuth(p *commerce.OAuthProfile, c *TokenClaims) commerce.CustomerInput {
	var md struct{ email, given, family, name string }
	if p != nil {
		md.email = p.UserMetadata.Email
		md.given = p.UserMetadata.GivenName
		md.family = p.UserMetadata.FamilyName
		md.name = p.UserMetadata.Name
	}

	email := strings.ToLower(strings.TrimSpace(md.email))
	if email == "" {
		email = strings.ToLower(strings.TrimSpace(c.Email))
	}

	first := firstNonEmpty(md.given, c.GivenName)
	last := firstNonEmpty(md.family, c.FamilyName)
	if md.name != "" {
		parts := strings.Fields(md.name)
		if first == "" && len(parts) > 0 {
			first = parts[0]
		}
		if last == "" && len(parts) > 1 {
			last = strings.Join(parts[1:], " ")
		}
	}
	return commerce.CustomerInput{Email: email, FirstName: first, LastName: last}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
