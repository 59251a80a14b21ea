package commerce

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/TemirB/storefront/internal/domain"
)

// Store is the publishable-key scope of the commerce backend. NewProvider
// hands out either the HTTP implementation or Unconfigured, so callers never
// nil-check.
type Store interface {
	Configured() bool

	ListRegions(ctx context.Context) ([]domain.Region, error)
	ListProducts(ctx context.Context, q ProductQuery) (ProductPage, error)
	ListCategories(ctx context.Context, q ListQuery) ([]domain.Category, int, error)
	ListCollections(ctx context.Context, q ListQuery) ([]domain.Collection, int, error)

	CreateCart(ctx context.Context, regionID string) (*domain.Cart, error)
	RetrieveCart(ctx context.Context, cartID string) (*domain.Cart, error)
	CreateLineItem(ctx context.Context, cartID, variantID string, quantity int) (*domain.Cart, error)
	UpdateLineItem(ctx context.Context, cartID, lineID string, quantity int) (*domain.Cart, error)
	DeleteLineItem(ctx context.Context, cartID, lineID string) (*domain.Cart, error)
	TransferCart(ctx context.Context, cartID string) (*domain.Cart, error)
	AddPromotions(ctx context.Context, cartID string, codes []string) (*domain.Cart, error)
	RemovePromotions(ctx context.Context, cartID string, codes []string) (*domain.Cart, error)

	RetrieveCustomer(ctx context.Context) (*domain.Customer, error)
	CreateCustomer(ctx context.Context, in CustomerInput) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, in CustomerInput) (*domain.Customer, error)
	ListAddresses(ctx context.Context) ([]domain.Address, error)
	CreateAddress(ctx context.Context, a domain.Address) (*domain.Customer, error)
	UpdateAddress(ctx context.Context, addressID string, a domain.Address) (*domain.Customer, error)
	DeleteAddress(ctx context.Context, addressID string) error

	RetrieveOrder(ctx context.Context, orderID, fields string) (*domain.Order, error)
	ListOrders(ctx context.Context, q ListQuery) ([]domain.Order, int, error)

	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context) error
	RequestPasswordReset(ctx context.Context, identifier string) error
	UpdatePassword(ctx context.Context, email, password, resetToken string) error
	StartOAuth(ctx context.Context, provider, callbackURL, state string) (AuthResult, error)
	OAuthCallback(ctx context.Context, provider string, params url.Values) (string, error)
	RefreshToken(ctx context.Context) (string, error)
	OAuthProfile(ctx context.Context, authIdentityID string) (*OAuthProfile, error)
}

// ListQuery is the common paging and filtering input of list endpoints.
type ListQuery struct {
	Limit  int
	Offset int
	Fields string
	Handle string
	Q      string
}

func (q ListQuery) values() url.Values {
	v := url.Values{}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		v.Set("offset", strconv.Itoa(q.Offset))
	}
	if q.Fields != "" {
		v.Set("fields", q.Fields)
	}
	if q.Handle != "" {
		v.Set("handle", q.Handle)
	}
	if q.Q != "" {
		v.Set("q", q.Q)
	}
	return v
}

type ProductQuery struct {
	ListQuery
	RegionID      string
	CategoryIDs   []string
	CollectionIDs []string
}

type ProductPage struct {
	Products []domain.Product `json:"products"`
	Count    int              `json:"count"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

type CustomerInput struct {
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// AuthResult is either a token (already authenticated) or a provider URL the
// browser must be sent to.
type AuthResult struct {
	Token    string `json:"token,omitempty"`
	Location string `json:"location,omitempty"`
}

type OAuthProfile struct {
	UserMetadata struct {
		Email      string `json:"email"`
		GivenName  string `json:"given_name"`
		FamilyName string `json:"family_name"`
		Name       string `json:"name"`
		Picture    string `json:"picture"`
	} `json:"user_metadata"`
}

type storeClient struct {
	t *transport
}

func (c *storeClient) Configured() bool { return true }

func (c *storeClient) ListRegions(ctx context.Context) ([]domain.Region, error) {
	var out struct {
		Regions []domain.Region `json:"regions"`
	}
	if err := c.t.do(ctx, "region.list", http.MethodGet, "/store/regions", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Regions, nil
}

func (c *storeClient) ListProducts(ctx context.Context, q ProductQuery) (ProductPage, error) {
	v := q.values()
	if q.RegionID != "" {
		v.Set("region_id", q.RegionID)
	}
	for _, id := range q.CategoryIDs {
		v.Add("category_id[]", id)
	}
	for _, id := range q.CollectionIDs {
		v.Add("collection_id[]", id)
	}

	var out ProductPage
	if err := c.t.do(ctx, "product.list", http.MethodGet, "/store/products", v, nil, &out); err != nil {
		return ProductPage{Limit: q.Limit, Offset: q.Offset}, err
	}
	if out.Count == 0 {
		out.Count = len(out.Products)
	}
	if out.Limit == 0 {
		out.Limit = q.Limit
	}
	if out.Offset == 0 {
		out.Offset = q.Offset
	}
	return out, nil
}

func (c *storeClient) ListCategories(ctx context.Context, q ListQuery) ([]domain.Category, int, error) {
	var out struct {
		Categories []domain.Category `json:"product_categories"`
		Count      int               `json:"count"`
	}
	if err := c.t.do(ctx, "category.list", http.MethodGet, "/store/product-categories", q.values(), nil, &out); err != nil {
		return nil, 0, err
	}
	return out.Categories, out.Count, nil
}

func (c *storeClient) ListCollections(ctx context.Context, q ListQuery) ([]domain.Collection, int, error) {
	var out struct {
		Collections []domain.Collection `json:"collections"`
		Count       int                 `json:"count"`
	}
	if err := c.t.do(ctx, "collection.list", http.MethodGet, "/store/collections", q.values(), nil, &out); err != nil {
		return nil, 0, err
	}
	return out.Collections, out.Count, nil
}

type cartEnvelope struct {
	Cart *domain.Cart `json:"cart"`
}

func (c *storeClient) cartCall(ctx context.Context, op, method, path string, body any) (*domain.Cart, error) {
	var out cartEnvelope
	if err := c.t.do(ctx, op, method, path, nil, body, &out); err != nil {
		return nil, err
	}
	return out.Cart, nil
}

func (c *storeClient) CreateCart(ctx context.Context, regionID string) (*domain.Cart, error) {
	body := map[string]string{}
	if regionID != "" {
		body["region_id"] = regionID
	}
	return c.cartCall(ctx, "cart.create", http.MethodPost, "/store/carts", body)
}

func (c *storeClient) RetrieveCart(ctx context.Context, cartID string) (*domain.Cart, error) {
	return c.cartCall(ctx, "cart.retrieve", http.MethodGet, "/store/carts/"+url.PathEscape(cartID), nil)
}

func (c *storeClient) CreateLineItem(ctx context.Context, cartID, variantID string, quantity int) (*domain.Cart, error) {
	body := map[string]any{"variant_id": variantID, "quantity": quantity}
	return c.cartCall(ctx, "cart.line.create", http.MethodPost, "/store/carts/"+url.PathEscape(cartID)+"/line-items", body)
}

func (c *storeClient) UpdateLineItem(ctx context.Context, cartID, lineID string, quantity int) (*domain.Cart, error) {
	body := map[string]any{"quantity": quantity}
	path := "/store/carts/" + url.PathEscape(cartID) + "/line-items/" + url.PathEscape(lineID)
	return c.cartCall(ctx, "cart.line.update", http.MethodPost, path, body)
}

func (c *storeClient) DeleteLineItem(ctx context.Context, cartID, lineID string) (*domain.Cart, error) {
	var out struct {
		Parent *domain.Cart `json:"parent"`
	}
	path := "/store/carts/" + url.PathEscape(cartID) + "/line-items/" + url.PathEscape(lineID)
	if err := c.t.do(ctx, "cart.line.delete", http.MethodDelete, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Parent, nil
}

func (c *storeClient) TransferCart(ctx context.Context, cartID string) (*domain.Cart, error) {
	return c.cartCall(ctx, "cart.transfer", http.MethodPost, "/store/carts/"+url.PathEscape(cartID)+"/customer", nil)
}

func (c *storeClient) AddPromotions(ctx context.Context, cartID string, codes []string) (*domain.Cart, error) {
	body := map[string][]string{"promo_codes": codes}
	return c.cartCall(ctx, "cart.promotions.add", http.MethodPost, "/store/carts/"+url.PathEscape(cartID)+"/promotions", body)
}

func (c *storeClient) RemovePromotions(ctx context.Context, cartID string, codes []string) (*domain.Cart, error) {
	body := map[string][]string{"promo_codes": codes}
	return c.cartCall(ctx, "cart.promotions.remove", http.MethodDelete, "/store/carts/"+url.PathEscape(cartID)+"/promotions", body)
}

type customerEnvelope struct {
	Customer *domain.Customer `json:"customer"`
}

func (c *storeClient) customerCall(ctx context.Context, op, method, path string, query url.Values, body any) (*domain.Customer, error) {
	var out customerEnvelope
	if err := c.t.do(ctx, op, method, path, query, body, &out); err != nil {
		return nil, err
	}
	return out.Customer, nil
}

func (c *storeClient) RetrieveCustomer(ctx context.Context) (*domain.Customer, error) {
	return c.customerCall(ctx, "customer.retrieve", http.MethodGet, "/store/customers/me", nil, nil)
}

func (c *storeClient) CreateCustomer(ctx context.Context, in CustomerInput) (*domain.Customer, error) {
	return c.customerCall(ctx, "customer.create", http.MethodPost, "/store/customers", nil, in)
}

func (c *storeClient) UpdateCustomer(ctx context.Context, in CustomerInput) (*domain.Customer, error) {
	return c.customerCall(ctx, "customer.update", http.MethodPost, "/store/customers/me", nil, in)
}

func (c *storeClient) ListAddresses(ctx context.Context) ([]domain.Address, error) {
	var out struct {
		Addresses []domain.Address `json:"addresses"`
	}
	q := url.Values{"fields": {AddressFields}}
	if err := c.t.do(ctx, "customer.address.list", http.MethodGet, "/store/customers/me/addresses", q, nil, &out); err != nil {
		return nil, err
	}
	return out.Addresses, nil
}

func (c *storeClient) CreateAddress(ctx context.Context, a domain.Address) (*domain.Customer, error) {
	a.ID = ""
	return c.customerCall(ctx, "customer.address.create", http.MethodPost, "/store/customers/me/addresses", nil, a)
}

func (c *storeClient) UpdateAddress(ctx context.Context, addressID string, a domain.Address) (*domain.Customer, error) {
	a.ID = ""
	path := "/store/customers/me/addresses/" + url.PathEscape(addressID)
	return c.customerCall(ctx, "customer.address.update", http.MethodPost, path, nil, a)
}

func (c *storeClient) DeleteAddress(ctx context.Context, addressID string) error {
	path := "/store/customers/me/addresses/" + url.PathEscape(addressID)
	return c.t.do(ctx, "customer.address.delete", http.MethodDelete, path, nil, nil, nil)
}

func (c *storeClient) RetrieveOrder(ctx context.Context, orderID, fields string) (*domain.Order, error) {
	var out struct {
		Order *domain.Order `json:"order"`
	}
	var q url.Values
	if fields != "" {
		q = url.Values{"fields": {fields}}
	}
	if err := c.t.do(ctx, "order.retrieve", http.MethodGet, "/store/orders/"+url.PathEscape(orderID), q, nil, &out); err != nil {
		return nil, err
	}
	return out.Order, nil
}

func (c *storeClient) ListOrders(ctx context.Context, q ListQuery) ([]domain.Order, int, error) {
	var out struct {
		Orders []domain.Order `json:"orders"`
		Count  int            `json:"count"`
	}
	if err := c.t.do(ctx, "order.list", http.MethodGet, "/store/orders", q.values(), nil, &out); err != nil {
		return nil, 0, err
	}
	return out.Orders, out.Count, nil
}

func (c *storeClient) authCall(ctx context.Context, op, path string, body any) (AuthResult, error) {
	var out AuthResult
	err := c.t.do(ctx, op, http.MethodPost, path, nil, body, &out)
	return out, err
}

func (c *storeClient) Login(ctx context.Context, email, password string) (string, error) {
	res, err := c.authCall(ctx, "auth.login", "/auth/customer/emailpass",
		map[string]string{"email": email, "password": password})
	if err != nil {
		return "", err
	}
	if res.Token == "" {
		return "", &APIError{Op: "store.auth.login", Status: http.StatusUnauthorized, Message: "login did not return a token"}
	}
	return res.Token, nil
}

func (c *storeClient) Register(ctx context.Context, email, password string) (string, error) {
	res, err := c.authCall(ctx, "auth.register", "/auth/customer/emailpass/register",
		map[string]string{"email": email, "password": password})
	if err != nil {
		return "", err
	}
	if res.Token == "" {
		return "", &APIError{Op: "store.auth.register", Status: http.StatusBadGateway, Message: "registration did not return a token"}
	}
	return res.Token, nil
}

func (c *storeClient) Logout(ctx context.Context) error {
	return c.t.do(ctx, "auth.logout", http.MethodDelete, "/auth/session", nil, nil, nil)
}

func (c *storeClient) RequestPasswordReset(ctx context.Context, identifier string) error {
	return c.t.do(ctx, "auth.reset", http.MethodPost, "/auth/customer/emailpass/reset-password", nil,
		map[string]string{"identifier": identifier}, nil)
}

func (c *storeClient) UpdatePassword(ctx context.Context, email, password, resetToken string) error {
	return c.t.do(WithToken(ctx, resetToken), "auth.update", http.MethodPost, "/auth/customer/emailpass/update", nil,
		map[string]string{"email": email, "password": password}, nil)
}

func (c *storeClient) StartOAuth(ctx context.Context, provider, callbackURL, state string) (AuthResult, error) {
	return c.authCall(ctx, "auth.oauth.start", "/auth/customer/"+url.PathEscape(provider),
		map[string]string{"callback_url": callbackURL, "state": state})
}

func (c *storeClient) OAuthCallback(ctx context.Context, provider string, params url.Values) (string, error) {
	var out AuthResult
	path := "/auth/customer/" + url.PathEscape(provider) + "/callback"
	if err := c.t.do(ctx, "auth.oauth.callback", http.MethodGet, path, params, nil, &out); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", &APIError{Op: "store.auth.oauth.callback", Status: http.StatusBadGateway, Message: "invalid token response"}
	}
	return out.Token, nil
}

func (c *storeClient) RefreshToken(ctx context.Context) (string, error) {
	res, err := c.authCall(ctx, "auth.refresh", "/auth/token/refresh", nil)
	if err != nil {
		return "", err
	}
	return res.Token, nil
}

func (c *storeClient) OAuthProfile(ctx context.Context, authIdentityID string) (*OAuthProfile, error) {
	var out OAuthProfile
	q := url.Values{"auth_identity_id": {authIdentityID}}
	if err := c.t.do(ctx, "oauth.profile", http.MethodGet, "/store/google/auth", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
