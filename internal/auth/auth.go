package auth

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/TemirB/storefront/internal/analytics"
	"github.com/TemirB/storefront/internal/commerce"
	"github.com/TemirB/storefront/internal/domain"
	"github.com/TemirB/storefront/internal/session"
)

//go:generate mockgen -source=auth.go -destination=auth_mock_test.go -package=auth

type Backend interface {
	RetrieveCustomer(ctx context.Context) (*domain.Customer, error)
	CreateCustomer(ctx context.Context, in commerce.CustomerInput) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, in commerce.CustomerInput) (*domain.Customer, error)
	ListAddresses(ctx context.Context) ([]domain.Address, error)
	CreateAddress(ctx context.Context, a domain.Address) (*domain.Customer, error)
	UpdateAddress(ctx context.Context, addressID string, a domain.Address) (*domain.Customer, error)
	DeleteAddress(ctx context.Context, addressID string) error

	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context) error
	RequestPasswordReset(ctx context.Context, identifier string) error
	UpdatePassword(ctx context.Context, email, password, resetToken string) error
	StartOAuth(ctx context.Context, provider, callbackURL, state string) (commerce.AuthResult, error)
	OAuthCallback(ctx context.Context, provider string, params url.Values) (string, error)
	RefreshToken(ctx context.Context) (string, error)
	OAuthProfile(ctx context.Context, authIdentityID string) (*commerce.OAuthProfile, error)
}

// CartTransferer attaches the session's cart to the signed-in customer.
type CartTransferer interface {
	TransferToCustomer(ctx context.Context, sess *session.Session) (*domain.Cart, error)
}

// OrderClaimer links a guest order to a customer after the email check.
type OrderClaimer interface {
	ClaimForCustomer(ctx context.Context, orderID, email, customerID string) error
}

var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrNoRedirectLocation = errors.New("provider did not return a redirect location")
)

type RegisterInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type Service struct {
	backend   Backend
	carts     CartTransferer
	claims    OrderClaimer
	publisher analytics.Publisher
	logger    *zap.Logger
}

func New(backend Backend, carts CartTransferer, claims OrderClaimer, publisher analytics.Publisher, logger *zap.Logger) *Service {
	if publisher == nil {
		publisher = analytics.Noop{}
	}
	return &Service{backend: backend, carts: carts, claims: claims, publisher: publisher, logger: logger}
}

func tokenCtx(ctx context.Context, sess *session.Session) context.Context {
	return commerce.WithToken(ctx, sess.Token())
}

// CurrentCustomer asks the backend who the session belongs to. A rejected
// token clears the cached identity silently.
func (s *Service) CurrentCustomer(ctx context.Context, sess *session.Session) *domain.Customer {
	if sess.Token() == "" {
		sess.SetCustomer(nil)
		return nil
	}
	me, err := s.backend.RetrieveCustomer(tokenCtx(ctx, sess))
	if err != nil {
		if commerce.IsUnauthorized(err) {
			sess.Logout()
			return nil
		}
		s.logger.Error("retrieve customer failed", zap.String("op", "auth.current_customer"), zap.Error(err))
		return nil
	}
	sess.SetCustomer(me)
	return me
}

// Login signs in with email and password. Explicit order ids in claimHints
// are attached to the account; the cart follows the customer.
func (s *Service) Login(ctx context.Context, sess *session.Session, email, password string, claimHints []string) *domain.Customer {
	token, err := s.backend.Login(ctx, strings.TrimSpace(email), password)
	if err != nil {
		s.logger.Warn("login failed", zap.String("op", "auth.login"), zap.Error(err))
		sess.Notify(domain.NoticeError, "Failed to sign in")
		return nil
	}
	sess.SetToken(token)

	me := s.CurrentCustomer(ctx, sess)
	if me == nil {
		sess.Notify(domain.NoticeError, "Failed to sign in")
		return nil
	}

	if n := s.claimHints(ctx, me, claimHints); n > 0 {
		suffix := ""
		if n > 1 {
			suffix = "s"
		}
		sess.Notify(domain.NoticeSuccess, fmt.Sprintf("Attached %d order%s to your account", n, suffix))
	}
	s.transferCart(ctx, sess)

	s.publisher.Publish(ctx, analytics.Event{Name: analytics.EventLogin, SessionID: sess.ID(), CustomerID: me.ID})
	sess.Notify(domain.NoticeSuccess, "Signed in successfully")
	return me
}

// MaxClaimHints bounds how many orders one sign-in may try to attach.
const MaxClaimHints = 10

// claimHints never guesses: only ids shaped like real order ids are tried,
// at most MaxClaimHints of them.
func (s *Service) claimHints(ctx context.Context, me *domain.Customer, hints []string) int {
	if s.claims == nil || me.Email == "" {
		return 0
	}
	if len(hints) > MaxClaimHints {
		s.logger.Warn("too many claim hints, keeping the first ones",
			zap.String("op", "auth.claim"), zap.Int("hints", len(hints)), zap.Int("max", MaxClaimHints))
		hints = hints[:MaxClaimHints]
	}
	claimed := 0
	for _, h := range hints {
		h = strings.TrimSpace(h)
		if !strings.HasPrefix(h, "order_") {
			s.logger.Warn("ignoring malformed claim hint", zap.String("op", "auth.claim"), zap.String("hint", h))
			continue
		}
		err := s.claims.ClaimForCustomer(ctx, h, me.Email, me.ID)
		if err == nil {
			claimed++
			continue
		}
		s.logger.Warn("claim hint failed", zap.String("op", "auth.claim"), zap.String("order_id", h), zap.Error(err))
	}
	return claimed
}

func (s *Service) transferCart(ctx context.Context, sess *session.Session) {
	if s.carts == nil {
		return
	}
	// Best effort: a cart that cannot follow the customer stays anonymous.
	_, _ = s.carts.TransferToCustomer(ctx, sess)
}

// Register creates an identity and a customer profile, then signs in. An
// email that already has an identity falls through to a plain login.
func (s *Service) Register(ctx context.Context, sess *session.Session, in RegisterInput) *domain.Customer {
	email := strings.TrimSpace(in.Email)
	token, err := s.backend.Register(ctx, email, in.Password)
	if err != nil {
		if commerce.IsAlreadyExists(err) {
			return s.Login(ctx, sess, email, in.Password, nil)
		}
		s.logger.Warn("register failed", zap.String("op", "auth.register"), zap.Error(err))
		sess.Notify(domain.NoticeError, "Registration failed")
		return nil
	}

	_, err = s.backend.CreateCustomer(commerce.WithToken(ctx, token), commerce.CustomerInput{
		Email:     email,
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Phone:     NormalizeUSPhone(in.Phone),
	})
	if err != nil {
		s.logger.Error("create customer failed", zap.String("op", "auth.register"), zap.Error(err))
		sess.Notify(domain.NoticeError, "Account creation failed")
		return nil
	}

	me := s.Login(ctx, sess, email, in.Password, nil)
	if me != nil {
		s.publisher.Publish(ctx, analytics.Event{Name: analytics.EventSignUp, SessionID: sess.ID(), CustomerID: me.ID})
	}
	return me
}

// Logout ends the backend session and always forgets the local identity.
func (s *Service) Logout(ctx context.Context, sess *session.Session) {
	if sess.Token() != "" {
		if err := s.backend.Logout(tokenCtx(ctx, sess)); err != nil {
			s.logger.Warn("backend logout failed", zap.String("op", "auth.logout"), zap.Error(err))
		}
	}
	sess.Logout()
	sess.Notify(domain.NoticeSuccess, "Signed out")
}

// RequestPasswordReset answers the same way whether or not the email is
// known. Only an unreachable backend is reported.
func (s *Service) RequestPasswordReset(ctx context.Context, sess *session.Session, email string) bool {
	err := s.backend.RequestPasswordReset(ctx, strings.TrimSpace(email))
	if err != nil {
		s.logger.Warn("password reset request failed", zap.String("op", "auth.reset_request"), zap.Error(err))
		if errors.Is(err, commerce.ErrNotConfigured) || commerce.IsUnavailable(err) {
			sess.Notify(domain.NoticeError, "Unable to request password reset")
			return false
		}
	}
	sess.Notify(domain.NoticeSuccess, "If the email exists, reset instructions were sent")
	return true
}

func (s *Service) ResetPassword(ctx context.Context, sess *session.Session, email, password, token string) bool {
	if err := s.backend.UpdatePassword(ctx, strings.TrimSpace(email), password, token); err != nil {
		s.logger.Warn("password reset failed", zap.String("op", "auth.reset"), zap.Error(err))
		sess.Notify(domain.NoticeError, "Failed to reset password")
		return false
	}
	sess.Notify(domain.NoticeSuccess, "Password has been reset")
	return true
}

type ProfileInput struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

func (s *Service) UpdateProfile(ctx context.Context, sess *session.Session, in ProfileInput) *domain.Customer {
	if sess.Token() == "" {
		sess.Notify(domain.NoticeError, "Please sign in first")
		return nil
	}
	me, err := s.backend.UpdateCustomer(tokenCtx(ctx, sess), commerce.CustomerInput{
		Email:     strings.TrimSpace(in.Email),
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Phone:     NormalizeUSPhone(in.Phone),
	})
	if err != nil {
		if commerce.IsUnauthorized(err) {
			sess.Logout()
		}
		s.logger.Warn("update profile failed", zap.String("op", "auth.update_profile"), zap.Error(err))
		sess.Notify(domain.NoticeError, "Failed to update profile")
		return nil
	}
	sess.SetCustomer(me)
	sess.Notify(domain.NoticeSuccess, "Profile updated")
	return me
}

func (s *Service) Addresses(ctx context.Context, sess *session.Session) ([]domain.Address, error) {
	if sess.Token() == "" {
		return nil, ErrNotAuthenticated
	}
	list, err := s.backend.ListAddresses(tokenCtx(ctx, sess))
	if err != nil {
		s.logger.Warn("list addresses failed", zap.String("op", "auth.addresses"), zap.Error(err))
		return nil, err
	}
	return list, nil
}

// SaveAddress creates the address when id is empty, updates it otherwise.
func (s *Service) SaveAddress(ctx context.Context, sess *session.Session, id string, a domain.Address) (*domain.Customer, error) {
	if sess.Token() == "" {
		return nil, ErrNotAuthenticated
	}
	a.Phone = NormalizeUSPhone(a.Phone)

	var (
		me  *domain.Customer
		err error
	)
	if id == "" {
		me, err = s.backend.CreateAddress(tokenCtx(ctx, sess), a)
	} else {
		me, err = s.backend.UpdateAddress(tokenCtx(ctx, sess), id, a)
	}
	if err != nil {
		s.logger.Warn("save address failed", zap.String("op", "auth.save_address"), zap.Error(err))
		sess.Notify(domain.NoticeError, "Failed to save address")
		return nil, err
	}
	sess.SetCustomer(me)
	sess.Notify(domain.NoticeSuccess, "Address saved")
	return me, nil
}

func (s *Service) DeleteAddress(ctx context.Context, sess *session.Session, id string) error {
	if sess.Token() == "" {
		return ErrNotAuthenticated
	}
	if err := s.backend.DeleteAddress(tokenCtx(ctx, sess), id); err != nil {
		s.logger.Warn("delete address failed", zap.String("op", "auth.delete_address"), zap.Error(err))
		sess.Notify(domain.NoticeError, "Failed to delete address")
		return err
	}
	s.CurrentCustomer(ctx, sess)
	sess.Notify(domain.NoticeSuccess, "Address removed")
	return nil
}

type Status struct {
	IsAuthenticated bool     `json:"is_authenticated"`
	CustomerEmail   string   `json:"customer_email,omitempty"`
	BackendReady    bool     `json:"sdk_available"`
	SessionValid    bool     `json:"session_valid"`
	Errors          []string `json:"errors,omitempty"`
}

// Status checks token health: refresh first, then resolve the customer.
func (s *Service) Status(ctx context.Context, sess *session.Session, backendReady bool) Status {
	st := Status{BackendReady: backendReady}
	if !backendReady {
		st.Errors = append(st.Errors, "commerce backend not configured")
		return st
	}
	if sess.Token() == "" {
		st.Errors = append(st.Errors, "no session token")
		return st
	}
	if tok, err := s.backend.RefreshToken(tokenCtx(ctx, sess)); err == nil && tok != "" {
		sess.SetToken(tok)
	}
	me, err := s.backend.RetrieveCustomer(tokenCtx(ctx, sess))
	switch {
	case err == nil && me != nil:
		st.IsAuthenticated = true
		st.SessionValid = true
		st.CustomerEmail = me.Email
	case commerce.IsUnauthorized(err):
		st.Errors = append(st.Errors, "Authentication token expired or invalid")
	case err != nil:
		st.Errors = append(st.Errors, "Customer retrieval failed: "+commerce.Message(err))
	}
	return st
}
