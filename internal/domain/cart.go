package domain

type Address struct {
	ID          string `json:"id,omitempty"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	Company     string `json:"company,omitempty"`
	Address1    string `json:"address_1,omitempty"`
	Address2    string `json:"address_2,omitempty"`
	City        string `json:"city,omitempty"`
	Province    string `json:"province,omitempty"`
	PostalCode  string `json:"postal_code,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	AddressName string `json:"address_name,omitempty"`

	IsDefaultShipping bool `json:"is_default_shipping,omitempty"`
	IsDefaultBilling  bool `json:"is_default_billing,omitempty"`

	Metadata map[string]any `json:"metadata,omitempty"`
}

type LineItem struct {
	ID           string         `json:"id"`
	VariantID    string         `json:"variant_id"`
	ProductID    string         `json:"product_id,omitempty"`
	Title        string         `json:"title,omitempty"`
	VariantTitle string         `json:"variant_title,omitempty"`
	Thumbnail    string         `json:"thumbnail,omitempty"`
	Quantity     int            `json:"quantity"`
	UnitPrice    float64        `json:"unit_price"`
	Subtotal     float64        `json:"subtotal,omitempty"`
	Total        float64        `json:"total,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

type ShippingMethod struct {
	ID     string  `json:"id"`
	Name   string  `json:"name,omitempty"`
	Amount float64 `json:"amount"`
}

type PaymentSession struct {
	ID         string `json:"id"`
	ProviderID string `json:"provider_id,omitempty"`
	Status     string `json:"status,omitempty"`
}

type PaymentCollection struct {
	ID              string           `json:"id"`
	PaymentSessions []PaymentSession `json:"payment_sessions,omitempty"`
}

type Promotion struct {
	ID   string `json:"id"`
	Code string `json:"code,omitempty"`
}

// Cart is the backend's snapshot of a shopping session. It is always replaced
// wholesale by whatever the backend returns.
type Cart struct {
	ID           string `json:"id"`
	RegionID     string `json:"region_id,omitempty"`
	CurrencyCode string `json:"currency_code,omitempty"`
	Email        string `json:"email,omitempty"`
	CustomerID   string `json:"customer_id,omitempty"`

	Items []LineItem `json:"items"`

	Subtotal         float64 `json:"subtotal"`
	TaxTotal         float64 `json:"tax_total"`
	ShippingTotal    float64 `json:"shipping_total"`
	ShippingTaxTotal float64 `json:"shipping_tax_total"`
	DiscountTotal    float64 `json:"discount_total"`
	Total            float64 `json:"total"`

	ShippingMethods   []ShippingMethod   `json:"shipping_methods,omitempty"`
	ShippingAddress   *Address           `json:"shipping_address,omitempty"`
	PaymentCollection *PaymentCollection `json:"payment_collection,omitempty"`
	Promotions        []Promotion        `json:"promotions,omitempty"`
}

// ItemCount is the sum of line quantities, not the number of lines.
func (c *Cart) ItemCount() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, li := range c.Items {
		n += li.Quantity
	}
	return n
}

func (c *Cart) HasPaymentSessions() bool {
	return c != nil && c.PaymentCollection != nil && len(c.PaymentCollection.PaymentSessions) > 0
}

// HasResidualCheckoutState reports leftovers of a checkout that a cart without
// items should never carry.
func (c *Cart) HasResidualCheckoutState() bool {
	if c == nil {
		return false
	}
	return c.ShippingTotal > 0 ||
		c.ShippingTaxTotal > 0 ||
		c.Total > 0 ||
		len(c.ShippingMethods) > 0 ||
		c.ShippingAddress != nil ||
		c.HasPaymentSessions()
}

func (c *Cart) LineForVariant(variantID string) (LineItem, bool) {
	if c == nil {
		return LineItem{}, false
	}
	for _, li := range c.Items {
		if li.VariantID == variantID {
			return li, true
		}
	}
	return LineItem{}, false
}

func (c *Cart) Line(lineID string) (LineItem, bool) {
	if c == nil {
		return LineItem{}, false
	}
	for _, li := range c.Items {
		if li.ID == lineID {
			return li, true
		}
	}
	return LineItem{}, false
}

// Summary is the condensed view used by cart badges and the mini cart.
type Summary struct {
	ItemCount     int     `json:"item_count"`
	LineCount     int     `json:"line_count"`
	Subtotal      float64 `json:"subtotal"`
	ShippingTotal float64 `json:"shipping_total"`
	TaxTotal      float64 `json:"tax_total"`
	DiscountTotal float64 `json:"discount_total"`
	Total         float64 `json:"total"`
	CurrencyCode  string  `json:"currency_code,omitempty"`
}

func (c *Cart) Summary() Summary {
	if c == nil {
		return Summary{}
	}
	return Summary{
		ItemCount:     c.ItemCount(),
		LineCount:     len(c.Items),
		Subtotal:      c.Subtotal,
		ShippingTotal: c.ShippingTotal,
		TaxTotal:      c.TaxTotal,
		DiscountTotal: c.DiscountTotal,
		Total:         c.Total,
		CurrencyCode:  c.CurrencyCode,
	}
}
