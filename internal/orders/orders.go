package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/TemirB/storefront/internal/analytics"
	"github.com/TemirB/storefront/internal/commerce"
	"github.com/TemirB/storefront/internal/domain"
)

//go:generate mockgen -source=orders.go -destination=orders_mock_test.go -package=orders

type Admin interface {
	Configured() bool
	RetrieveOrder(ctx context.Context, orderID, fields string) (*domain.Order, error)
	SearchOrders(ctx context.Context, q commerce.ListQuery) ([]domain.Order, error)
	SetOrderCustomer(ctx context.Context, orderID, customerID string) (*domain.Order, error)
	CancelOrder(ctx context.Context, orderID string) (*domain.Order, error)
}

type Store interface {
	RetrieveOrder(ctx context.Context, orderID, fields string) (*domain.Order, error)
	ListOrders(ctx context.Context, q commerce.ListQuery) ([]domain.Order, int, error)
}

var (
	ErrAdminUnavailable = errors.New("admin client not configured")
	ErrMissingReference = errors.New("order_id or display_id required")
	ErrInvalidEmail     = errors.New("valid email required")
	ErrMissingCustomer  = errors.New("customer_id required")
	ErrNotFound         = errors.New("order not found")
	ErrEmailMismatch    = errors.New("email does not match order")
	ErrOwnedByOther     = errors.New("order already belongs to another customer")
	ErrNotCancellable   = errors.New("order cannot be cancelled")
)

const (
	// ownershipFields is everything claim and cancel decide on.
	ownershipFields = "id,display_id,email,status,customer_id,payment_status,fulfillment_status,shipping_address.email,customer.email"

	lookupScanLimit = 50
	SummaryLimit    = 10
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidEmail(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

// Ref is an order reference that arrives as either a JSON string or number.
type Ref string

func (r *Ref) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*r = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = Ref(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("display_id: %w", err)
	}
	*r = Ref(n.String())
	return nil
}

type ClaimRequest struct {
	OrderID    string `json:"order_id,omitempty"`
	DisplayID  Ref    `json:"display_id,omitempty"`
	Email      string `json:"email"`
	CustomerID string `json:"customer_id"`
}

type CancelRequest struct {
	OrderID   string `json:"order_id,omitempty"`
	DisplayID Ref    `json:"display_id,omitempty"`
	Email     string `json:"email"`
}

type LookupRequest struct {
	Token     string
	DisplayID string
	Email     string
}

type Service struct {
	admin     Admin
	store     Store
	publisher analytics.Publisher
	logger    *zap.Logger
}

func New(admin Admin, store Store, publisher analytics.Publisher, logger *zap.Logger) *Service {
	if publisher == nil {
		publisher = analytics.Noop{}
	}
	return &Service{admin: admin, store: store, publisher: publisher, logger: logger}
}

// resolve finds an order by id, or by exact display id through the admin
// search. Nothing is ever enumerated: one of the two references is required.
func (s *Service) resolve(ctx context.Context, orderID string, displayID Ref) (*domain.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID != "" {
		o, err := s.admin.RetrieveOrder(ctx, orderID, ownershipFields)
		if err != nil {
			if commerce.IsNotFound(err) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("retrieve order %s: %w", orderID, err)
		}
		if o == nil || o.ID == "" {
			return nil, ErrNotFound
		}
		return o, nil
	}

	n, err := strconv.ParseInt(strings.TrimPrefix(string(displayID), "#"), 10, 64)
	if err != nil || n <= 0 {
		return nil, ErrNotFound
	}
	list, err := s.admin.SearchOrders(ctx, commerce.DisplayIDQuery(n))
	if err != nil {
		return nil, fmt.Errorf("search order #%d: %w", n, err)
	}
	for i := range list {
		if list[i].DisplayID == n {
			return &list[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *Service) validate(orderID string, displayID Ref, email string) error {
	if strings.TrimSpace(orderID) == "" && strings.TrimSpace(string(displayID)) == "" {
		return ErrMissingReference
	}
	if !ValidEmail(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ClaimResult reports whether the claim changed ownership; claiming an
// order the customer already owns is a no-op.
type ClaimResult struct {
	Order   *domain.Order `json:"order"`
	Changed bool          `json:"changed"`
}

// Claim attaches a guest order to a customer after checking the contact
// email on the order.
func (s *Service) Claim(ctx context.Context, req ClaimRequest) (ClaimResult, error) {
	if err := s.validate(req.OrderID, req.DisplayID, req.Email); err != nil {
		return ClaimResult{}, err
	}
	customerID := strings.TrimSpace(req.CustomerID)
	if customerID == "" {
		return ClaimResult{}, ErrMissingCustomer
	}
	if s.admin == nil || !s.admin.Configured() {
		return ClaimResult{}, ErrAdminUnavailable
	}

	o, err := s.resolve(ctx, req.OrderID, req.DisplayID)
	if err != nil {
		s.logFailure("orders.claim", err)
		return ClaimResult{}, err
	}
	if !o.MatchesEmail(req.Email) {
		return ClaimResult{}, ErrEmailMismatch
	}
	switch o.CustomerID {
	case customerID:
		return ClaimResult{Order: o}, nil
	case "":
	default:
		return ClaimResult{}, ErrOwnedByOther
	}

	updated, err := s.admin.SetOrderCustomer(ctx, o.ID, customerID)
	if err != nil {
		s.logger.Error("claim update failed", zap.String("op", "orders.claim"), zap.String("order_id", o.ID), zap.Error(err))
		return ClaimResult{}, fmt.Errorf("update order %s: %w", o.ID, err)
	}
	s.logger.Info("guest order claimed", zap.String("op", "orders.claim"), zap.String("order_id", o.ID), zap.String("customer_id", customerID))
	s.publisher.Publish(ctx, analytics.Event{Name: analytics.EventOrderClaimed, OrderID: o.ID, CustomerID: customerID})
	return ClaimResult{Order: updated, Changed: true}, nil
}

// ClaimForCustomer is Claim by order id, for the post-login sweep.
func (s *Service) ClaimForCustomer(ctx context.Context, orderID, email, customerID string) error {
	_, err := s.Claim(ctx, ClaimRequest{OrderID: orderID, Email: email, CustomerID: customerID})
	return err
}

// Cancel cancels an order whose contact email matches. Completed and already
// cancelled orders are refused.
func (s *Service) Cancel(ctx context.Context, req CancelRequest) (*domain.Order, error) {
	if err := s.validate(req.OrderID, req.DisplayID, req.Email); err != nil {
		return nil, err
	}
	if s.admin == nil || !s.admin.Configured() {
		return nil, ErrAdminUnavailable
	}

	o, err := s.resolve(ctx, req.OrderID, req.DisplayID)
	if err != nil {
		s.logFailure("orders.cancel", err)
		return nil, err
	}
	if !o.MatchesEmail(req.Email) {
		return nil, ErrEmailMismatch
	}
	if o.Status == domain.OrderStatusCancelled || o.Status == domain.OrderStatusCompleted {
		return nil, ErrNotCancellable
	}

	updated, err := s.admin.CancelOrder(ctx, o.ID)
	if err != nil {
		s.logger.Error("cancel failed", zap.String("op", "orders.cancel"), zap.String("order_id", o.ID), zap.Error(err))
		return nil, fmt.Errorf("cancel order %s: %w", o.ID, err)
	}
	return updated, nil
}

func looksLikeOrderID(s string) bool {
	return strings.HasPrefix(s, "order_")
}

// Lookup finds an order for the order status page: a direct id first, then
// the display id among the visible orders matched with the email, then the
// display id treated as an id.
func (s *Service) Lookup(ctx context.Context, req LookupRequest) (*domain.Order, error) {
	token := strings.TrimSpace(req.Token)
	displayID := strings.TrimPrefix(strings.TrimSpace(req.DisplayID), "#")
	email := strings.TrimSpace(req.Email)

	if looksLikeOrderID(token) {
		if o, err := s.store.RetrieveOrder(ctx, token, commerce.OrderDetailFields); err == nil && o != nil {
			return o, nil
		}
	}

	if displayID != "" && email != "" {
		list, _, err := s.store.ListOrders(ctx, commerce.ListQuery{Limit: lookupScanLimit, Fields: commerce.OrderListFields})
		if err != nil {
			s.logger.Warn("lookup list failed", zap.String("op", "orders.lookup"), zap.Error(err))
		}
		for i := range list {
			m := &list[i]
			if !m.MatchesDisplayID(displayID) || !strings.EqualFold(strings.TrimSpace(m.Email), email) {
				continue
			}
			if full, err := s.store.RetrieveOrder(ctx, m.ID, commerce.OrderDetailFields); err == nil && full != nil {
				return full, nil
			}
			return m, nil
		}
	}

	if looksLikeOrderID(displayID) {
		if o, err := s.store.RetrieveOrder(ctx, displayID, commerce.OrderDetailFields); err == nil && o != nil {
			return o, nil
		}
	}
	return nil, ErrNotFound
}

// Summaries lists the signed-in customer's orders and hydrates the first
// SummaryLimit of them with detail fields in parallel. An order whose
// detail fetch fails keeps its list form.
func (s *Service) Summaries(ctx context.Context) ([]domain.Order, int, error) {
	list, count, err := s.store.ListOrders(ctx, commerce.ListQuery{Limit: SummaryLimit, Fields: commerce.OrderListFields})
	if err != nil {
		return nil, 0, err
	}
	if len(list) > SummaryLimit {
		list = list[:SummaryLimit]
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range list {
		i := i
		g.Go(func() error {
			full, err := s.store.RetrieveOrder(gctx, list[i].ID, commerce.OrderDetailFields)
			if err != nil || full == nil {
				s.logger.Debug("order hydrate failed", zap.String("op", "orders.summaries"), zap.String("order_id", list[i].ID), zap.Error(err))
				return nil
			}
			list[i] = *full
			return nil
		})
	}
	_ = g.Wait()
	return list, count, nil
}

func (s *Service) logFailure(op string, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		s.logger.Info("order not found", zap.String("op", op))
	default:
		s.logger.Error("order resolve failed", zap.String("op", op), zap.Error(err))
	}
}
