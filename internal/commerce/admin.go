package commerce

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/TemirB/storefront/internal/domain"
)

// Admin is the secret-key scope, used only by the order claim and cancel
// flows and the store info lookup.
type Admin interface {
	Configured() bool

	RetrieveOrder(ctx context.Context, orderID, fields string) (*domain.Order, error)
	SearchOrders(ctx context.Context, q ListQuery) ([]domain.Order, error)
	SetOrderCustomer(ctx context.Context, orderID, customerID string) (*domain.Order, error)
	CancelOrder(ctx context.Context, orderID string) (*domain.Order, error)
	StoreInfo(ctx context.Context) (*domain.StoreInfo, error)
}

type adminClient struct {
	t       *transport
	storeID string
}

func (c *adminClient) Configured() bool { return true }

type orderEnvelope struct {
	Order *domain.Order `json:"order"`
}

func (c *adminClient) RetrieveOrder(ctx context.Context, orderID, fields string) (*domain.Order, error) {
	var q url.Values
	if fields != "" {
		q = url.Values{"fields": {fields}}
	}
	var out orderEnvelope
	if err := c.t.do(ctx, "order.retrieve", http.MethodGet, "/admin/orders/"+url.PathEscape(orderID), q, nil, &out); err != nil {
		return nil, err
	}
	return out.Order, nil
}

func (c *adminClient) SearchOrders(ctx context.Context, q ListQuery) ([]domain.Order, error) {
	var out struct {
		Orders []domain.Order `json:"orders"`
	}
	if err := c.t.do(ctx, "order.list", http.MethodGet, "/admin/orders", q.values(), nil, &out); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

func (c *adminClient) SetOrderCustomer(ctx context.Context, orderID, customerID string) (*domain.Order, error) {
	var out orderEnvelope
	body := map[string]string{"customer_id": customerID}
	if err := c.t.do(ctx, "order.update", http.MethodPost, "/admin/orders/"+url.PathEscape(orderID), nil, body, &out); err != nil {
		return nil, err
	}
	return out.Order, nil
}

func (c *adminClient) CancelOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	var out orderEnvelope
	if err := c.t.do(ctx, "order.cancel", http.MethodPost, "/admin/orders/"+url.PathEscape(orderID)+"/cancel", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Order, nil
}

func (c *adminClient) StoreInfo(ctx context.Context) (*domain.StoreInfo, error) {
	if c.storeID == "" {
		return nil, nil
	}
	var out struct {
		Store *domain.StoreInfo `json:"store"`
	}
	if err := c.t.do(ctx, "store.retrieve", http.MethodGet, "/admin/stores/"+url.PathEscape(c.storeID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Store, nil
}

// DisplayIDQuery lists at most one order whose searchable fields match the
// display id.
func DisplayIDQuery(displayID int64) ListQuery {
	return ListQuery{Q: strconv.FormatInt(displayID, 10), Limit: 1, Fields: OrderDetailFields}
}
