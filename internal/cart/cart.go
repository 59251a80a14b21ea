package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/TemirB/storefront/internal/analytics"
	"github.com/TemirB/storefront/internal/commerce"
	"github.com/TemirB/storefront/internal/domain"
	"github.com/TemirB/storefront/internal/session"
)

//go:generate mockgen -source=cart.go -destination=cart_mock_test.go -package=cart

type Backend interface {
	CreateCart(ctx context.Context, regionID string) (*domain.Cart, error)
	RetrieveCart(ctx context.Context, cartID string) (*domain.Cart, error)
	CreateLineItem(ctx context.Context, cartID, variantID string, quantity int) (*domain.Cart, error)
	UpdateLineItem(ctx context.Context, cartID, lineID string, quantity int) (*domain.Cart, error)
	DeleteLineItem(ctx context.Context, cartID, lineID string) (*domain.Cart, error)
	TransferCart(ctx context.Context, cartID string) (*domain.Cart, error)
	AddPromotions(ctx context.Context, cartID string, codes []string) (*domain.Cart, error)
	RemovePromotions(ctx context.Context, cartID string, codes []string) (*domain.Cart, error)
}

// RegionSource yields the storefront's region id, or "" when none matches.
type RegionSource interface {
	RegionID(ctx context.Context) string
}

var (
	ErrBusy            = errors.New("cart update already in progress")
	ErrNoCart          = errors.New("no cart in session")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// PromotionError carries the backend's reason for rejecting codes.
type PromotionError struct {
	Codes []string
	Err   error
}

func (e *PromotionError) Error() string {
	return fmt.Sprintf("promotion %s: %v", strings.Join(e.Codes, ","), e.Err)
}

func (e *PromotionError) Unwrap() error { return e.Err }

type Service struct {
	backend   Backend
	regions   RegionSource
	publisher analytics.Publisher
	logger    *zap.Logger

	busy sync.Map
}

func New(backend Backend, regions RegionSource, publisher analytics.Publisher, logger *zap.Logger) *Service {
	if publisher == nil {
		publisher = analytics.Noop{}
	}
	return &Service{backend: backend, regions: regions, publisher: publisher, logger: logger}
}

// acquire marks the session as mutating its cart. A second mutation for the
// same session fails with ErrBusy until release is called. The session is
// reloaded under the guard, since a mutation that just finished may have
// saved a newer cart, and release saves it before letting the next one in.
func (s *Service) acquire(ctx context.Context, sess *session.Session) (func(), error) {
	id := sess.ID()
	if id == "" {
		return func() {}, nil
	}
	if _, loaded := s.busy.LoadOrStore(id, struct{}{}); loaded {
		return nil, ErrBusy
	}
	sess.Reload(ctx)
	return func() {
		sess.Flush(ctx)
		s.busy.Delete(id)
	}, nil
}

func backendCtx(ctx context.Context, sess *session.Session) context.Context {
	return commerce.WithToken(ctx, sess.Token())
}

func (s *Service) regionID(ctx context.Context) string {
	if s.regions == nil {
		return ""
	}
	return s.regions.RegionID(ctx)
}

// Ensure returns the session's cart id, creating a cart when there is none.
func (s *Service) Ensure(ctx context.Context, sess *session.Session) (string, error) {
	if c := sess.Cart(); c != nil {
		return c.ID, nil
	}
	ctx = backendCtx(ctx, sess)
	c, err := s.backend.CreateCart(ctx, s.regionID(ctx))
	if err != nil {
		s.logger.Error("create cart failed", zap.String("op", "cart.ensure"), zap.Error(err))
		return "", err
	}
	sess.SetCart(c)
	return c.ID, nil
}

// Get refreshes the cached cart from the backend, replacing an empty cart
// that still carries checkout leftovers. A cart the backend no longer knows
// is forgotten and nil is returned.
func (s *Service) Get(ctx context.Context, sess *session.Session) (*domain.Cart, error) {
	cached := sess.Cart()
	if cached == nil {
		return nil, nil
	}
	ctx = backendCtx(ctx, sess)
	c, err := s.backend.RetrieveCart(ctx, cached.ID)
	if err != nil {
		if commerce.IsNotFound(err) {
			s.logger.Info("cached cart is gone, forgetting it", zap.String("op", "cart.get"), zap.String("cart_id", cached.ID))
			sess.SetCart(nil)
			return nil, nil
		}
		s.logger.Error("retrieve cart failed", zap.String("op", "cart.get"), zap.Error(err))
		return nil, err
	}
	c = s.heal(ctx, c)
	sess.SetCart(c)
	return c, nil
}

// heal swaps a zero-item cart with residual checkout state for a fresh cart
// in the same region. When the swap fails the original cart is kept.
func (s *Service) heal(ctx context.Context, c *domain.Cart) *domain.Cart {
	if c == nil || len(c.Items) > 0 || !c.HasResidualCheckoutState() {
		return c
	}
	fresh, err := s.backend.CreateCart(ctx, c.RegionID)
	if err != nil {
		s.logger.Warn("replacing stale empty cart failed", zap.String("op", "cart.heal"), zap.String("cart_id", c.ID), zap.Error(err))
		return c
	}
	s.logger.Info("replaced stale empty cart", zap.String("op", "cart.heal"), zap.String("old", c.ID), zap.String("new", fresh.ID))
	return fresh
}

// AddLine adds qty of a variant, merging into an existing line for it. The
// backend's cart is cached as returned.
func (s *Service) AddLine(ctx context.Context, sess *session.Session, variantID string, qty int) (*domain.Cart, error) {
	if qty < 1 {
		return nil, ErrInvalidQuantity
	}
	release, err := s.acquire(ctx, sess)
	if err != nil {
		return nil, err
	}
	defer release()

	cartID, err := s.Ensure(ctx, sess)
	if err != nil {
		return nil, err
	}
	ctx = backendCtx(ctx, sess)

	var c *domain.Cart
	if li, ok := sess.Cart().LineForVariant(variantID); ok {
		c, err = s.backend.UpdateLineItem(ctx, cartID, li.ID, li.Quantity+qty)
	} else {
		c, err = s.backend.CreateLineItem(ctx, cartID, variantID, qty)
	}
	if err != nil {
		s.logger.Error("add to cart failed", zap.String("op", "cart.add"), zap.String("variant_id", variantID), zap.Error(err))
		return nil, err
	}
	sess.SetCart(c)

	s.publisher.Publish(ctx, analytics.Event{
		Name:      analytics.EventAddToCart,
		SessionID: sess.ID(),
		CartID:    c.ID,
		VariantID: variantID,
		Quantity:  qty,
	})
	return c, nil
}

// UpdateLine sets a line's quantity. Zero removes the line.
func (s *Service) UpdateLine(ctx context.Context, sess *session.Session, lineID string, qty int) (*domain.Cart, error) {
	if qty < 0 {
		return nil, ErrInvalidQuantity
	}
	if qty == 0 {
		return s.RemoveLine(ctx, sess, lineID)
	}
	release, err := s.acquire(ctx, sess)
	if err != nil {
		return nil, err
	}
	defer release()

	cached := sess.Cart()
	if cached == nil {
		return nil, ErrNoCart
	}
	ctx = backendCtx(ctx, sess)
	c, err := s.backend.UpdateLineItem(ctx, cached.ID, lineID, qty)
	if err != nil {
		s.logger.Error("update line failed", zap.String("op", "cart.update"), zap.String("line_id", lineID), zap.Error(err))
		return nil, err
	}
	c = s.heal(ctx, c)
	sess.SetCart(c)
	return c, nil
}

// RemoveLine deletes a line and refreshes the cart.
func (s *Service) RemoveLine(ctx context.Context, sess *session.Session, lineID string) (*domain.Cart, error) {
	release, err := s.acquire(ctx, sess)
	if err != nil {
		return nil, err
	}
	defer release()

	cached := sess.Cart()
	if cached == nil {
		return nil, ErrNoCart
	}
	removed, _ := cached.Line(lineID)

	if _, err := s.backend.DeleteLineItem(backendCtx(ctx, sess), cached.ID, lineID); err != nil {
		s.logger.Error("remove line failed", zap.String("op", "cart.remove"), zap.String("line_id", lineID), zap.Error(err))
		return nil, err
	}
	c, err := s.Get(ctx, sess)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, analytics.Event{
		Name:      analytics.EventRemoveFromCart,
		SessionID: sess.ID(),
		CartID:    cached.ID,
		LineID:    lineID,
		VariantID: removed.VariantID,
		Quantity:  removed.Quantity,
	})
	return c, nil
}

// Clear empties the cart. A cart that already has payment sessions is
// abandoned for a new one instead of being emptied line by line; so is a
// cart whose line deletion fails midway.
func (s *Service) Clear(ctx context.Context, sess *session.Session) (*domain.Cart, error) {
	release, err := s.acquire(ctx, sess)
	if err != nil {
		return nil, err
	}
	defer release()

	cached := sess.Cart()
	if cached == nil {
		return nil, nil
	}
	bctx := backendCtx(ctx, sess)

	if cached.HasPaymentSessions() {
		return s.replace(bctx, sess, cached)
	}
	for _, li := range cached.Items {
		if _, err := s.backend.DeleteLineItem(bctx, cached.ID, li.ID); err != nil {
			s.logger.Warn("clear cart: line deletion failed, starting a new cart",
				zap.String("op", "cart.clear"), zap.String("line_id", li.ID), zap.Error(err))
			return s.replace(bctx, sess, cached)
		}
	}
	return s.Get(ctx, sess)
}

func (s *Service) replace(ctx context.Context, sess *session.Session, old *domain.Cart) (*domain.Cart, error) {
	c, err := s.backend.CreateCart(ctx, old.RegionID)
	if err != nil {
		s.logger.Error("create replacement cart failed", zap.String("op", "cart.clear"), zap.Error(err))
		return nil, err
	}
	sess.SetCart(c)
	return c, nil
}

// ApplyPromotions applies promotion codes in one backend call. On rejection
// the cart is left as it was, an error notice is queued and a
// *PromotionError is returned.
func (s *Service) ApplyPromotions(ctx context.Context, sess *session.Session, codes []string) (*domain.Cart, error) {
	return s.promotion(ctx, sess, codes, true)
}

func (s *Service) RemovePromotions(ctx context.Context, sess *session.Session, codes []string) (*domain.Cart, error) {
	return s.promotion(ctx, sess, codes, false)
}

// cleanCodes trims codes and drops blanks and repeats, keeping order.
func cleanCodes(codes []string) []string {
	out := make([]string, 0, len(codes))
	seen := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

func (s *Service) promotion(ctx context.Context, sess *session.Session, codes []string, apply bool) (*domain.Cart, error) {
	codes = cleanCodes(codes)
	if len(codes) == 0 {
		return s.Get(ctx, sess)
	}
	release, err := s.acquire(ctx, sess)
	if err != nil {
		return nil, err
	}
	defer release()

	cached := sess.Cart()
	if cached == nil {
		return nil, ErrNoCart
	}
	bctx := backendCtx(ctx, sess)
	if apply {
		_, err = s.backend.AddPromotions(bctx, cached.ID, codes)
	} else {
		_, err = s.backend.RemovePromotions(bctx, cached.ID, codes)
	}
	joined := strings.Join(codes, ", ")
	if err != nil {
		op := "cart.promotion.apply"
		msg := "Could not apply promo code"
		if !apply {
			op = "cart.promotion.remove"
			msg = "Could not remove promo code"
		}
		s.logger.Warn("promotion rejected", zap.String("op", op), zap.Strings("codes", codes), zap.Error(err))
		if m := commerce.Message(err); m != "" {
			msg = m
		}
		sess.Notify(domain.NoticeError, msg)
		return cached, &PromotionError{Codes: codes, Err: err}
	}

	c, err := s.Get(ctx, sess)
	if err != nil {
		return nil, err
	}
	if apply {
		sess.Notify(domain.NoticeSuccess, fmt.Sprintf("Promo code %s applied", joined))
	} else {
		sess.Notify(domain.NoticeSuccess, fmt.Sprintf("Promo code %s removed", joined))
	}
	return c, nil
}

// TransferToCustomer attaches the session's cart to the logged-in customer.
func (s *Service) TransferToCustomer(ctx context.Context, sess *session.Session) (*domain.Cart, error) {
	cached := sess.Cart()
	if cached == nil || sess.Token() == "" {
		return cached, nil
	}
	c, err := s.backend.TransferCart(backendCtx(ctx, sess), cached.ID)
	if err != nil {
		s.logger.Warn("cart transfer failed", zap.String("op", "cart.transfer"), zap.String("cart_id", cached.ID), zap.Error(err))
		return cached, err
	}
	sess.SetCart(c)
	return c, nil
}

// QuantityFor is the cached quantity of a variant, 0 when absent.
func QuantityFor(sess *session.Session, variantID string) int {
	li, _ := sess.Cart().LineForVariant(variantID)
	return li.Quantity
}

func Summary(sess *session.Session) domain.Summary {
	return sess.Cart().Summary()
}
