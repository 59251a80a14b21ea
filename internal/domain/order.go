package domain

import (
	"strconv"
	"strings"
	"time"
)

type Order struct {
	ID                string `json:"id"`
	DisplayID         int64  `json:"display_id,omitempty"`
	Email             string `json:"email,omitempty"`
	CustomerID        string `json:"customer_id,omitempty"`
	Status            string `json:"status,omitempty"`
	PaymentStatus     string `json:"payment_status,omitempty"`
	FulfillmentStatus string `json:"fulfillment_status,omitempty"`
	CurrencyCode      string `json:"currency_code,omitempty"`

	Total         float64 `json:"total"`
	Subtotal      float64 `json:"subtotal,omitempty"`
	TaxTotal      float64 `json:"tax_total,omitempty"`
	DiscountTotal float64 `json:"discount_total,omitempty"`
	ShippingTotal float64 `json:"shipping_total,omitempty"`
	RefundedTotal float64 `json:"refunded_total,omitempty"`

	Items           []LineItem `json:"items,omitempty"`
	ShippingAddress *Address   `json:"shipping_address,omitempty"`
	BillingAddress  *Address   `json:"billing_address,omitempty"`
	Customer        *Customer  `json:"customer,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

const (
	OrderStatusCancelled = "cancelled"
	OrderStatusCompleted = "completed"
)

// ContactEmail is the first non-empty of the order, shipping address and
// customer emails.
func (o *Order) ContactEmail() string {
	if o == nil {
		return ""
	}
	if o.Email != "" {
		return o.Email
	}
	if o.ShippingAddress != nil && o.ShippingAddress.Email != "" {
		return o.ShippingAddress.Email
	}
	if o.Customer != nil {
		return o.Customer.Email
	}
	return ""
}

func (o *Order) MatchesEmail(email string) bool {
	got := strings.TrimSpace(o.ContactEmail())
	return got != "" && strings.EqualFold(got, strings.TrimSpace(email))
}

func (o *Order) MatchesDisplayID(displayID string) bool {
	return o != nil && strconv.FormatInt(o.DisplayID, 10) == strings.TrimSpace(displayID)
}
