package commerce

import (
	"context"
	"net/url"

	"github.com/TemirB/storefront/internal/domain"
)

// Unconfigured stands in for a backend whose URL or key is missing. Reads
// return empty results without error; writes and identity calls return
// ErrNotConfigured because there is no honest empty answer for them.
type Unconfigured struct{}

var (
	_ Store = Unconfigured{}
	_ Admin = Unconfigured{}
)

func (Unconfigured) Configured() bool { return false }

func (Unconfigured) ListRegions(context.Context) ([]domain.Region, error) { return nil, nil }

func (Unconfigured) ListProducts(_ context.Context, q ProductQuery) (ProductPage, error) {
	return ProductPage{Limit: q.Limit, Offset: q.Offset}, nil
}

func (Unconfigured) ListCategories(context.Context, ListQuery) ([]domain.Category, int, error) {
	return nil, 0, nil
}

func (Unconfigured) ListCollections(context.Context, ListQuery) ([]domain.Collection, int, error) {
	return nil, 0, nil
}

func (Unconfigured) CreateCart(context.Context, string) (*domain.Cart, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) RetrieveCart(context.Context, string) (*domain.Cart, error) { return nil, nil }

func (Unconfigured) CreateLineItem(context.Context, string, string, int) (*domain.Cart, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) UpdateLineItem(context.Context, string, string, int) (*domain.Cart, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) DeleteLineItem(context.Context, string, string) (*domain.Cart, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) TransferCart(context.Context, string) (*domain.Cart, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) AddPromotions(context.Context, string, []string) (*domain.Cart, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) RemovePromotions(context.Context, string, []string) (*domain.Cart, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) RetrieveCustomer(context.Context) (*domain.Customer, error) { return nil, nil }

func (Unconfigured) CreateCustomer(context.Context, CustomerInput) (*domain.Customer, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) UpdateCustomer(context.Context, CustomerInput) (*domain.Customer, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) ListAddresses(context.Context) ([]domain.Address, error) { return nil, nil }

func (Unconfigured) CreateAddress(context.Context, domain.Address) (*domain.Customer, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) UpdateAddress(context.Context, string, domain.Address) (*domain.Customer, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) DeleteAddress(context.Context, string) error { return ErrNotConfigured }

func (Unconfigured) RetrieveOrder(context.Context, string, string) (*domain.Order, error) {
	return nil, nil
}

func (Unconfigured) ListOrders(context.Context, ListQuery) ([]domain.Order, int, error) {
	return nil, 0, nil
}

func (Unconfigured) SearchOrders(context.Context, ListQuery) ([]domain.Order, error) {
	return nil, nil
}

func (Unconfigured) Login(context.Context, string, string) (string, error) {
	return "", ErrNotConfigured
}

func (Unconfigured) Register(context.Context, string, string) (string, error) {
	return "", ErrNotConfigured
}

func (Unconfigured) Logout(context.Context) error { return nil }

func (Unconfigured) RequestPasswordReset(context.Context, string) error { return ErrNotConfigured }

func (Unconfigured) UpdatePassword(context.Context, string, string, string) error {
	return ErrNotConfigured
}

func (Unconfigured) StartOAuth(context.Context, string, string, string) (AuthResult, error) {
	return AuthResult{}, ErrNotConfigured
}

func (Unconfigured) OAuthCallback(context.Context, string, url.Values) (string, error) {
	return "", ErrNotConfigured
}

func (Unconfigured) RefreshToken(context.Context) (string, error) { return "", ErrNotConfigured }

func (Unconfigured) OAuthProfile(context.Context, string) (*OAuthProfile, error) { return nil, nil }

func (Unconfigured) SetOrderCustomer(context.Context, string, string) (*domain.Order, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) CancelOrder(context.Context, string) (*domain.Order, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) StoreInfo(context.Context) (*domain.StoreInfo, error) { return nil, nil }
