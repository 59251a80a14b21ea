package commerce

import "strings"

// Order field selections are explicit: wildcard expansions make the backend
// answer 500 on some relations.
var (
	orderRootScalars = []string{
		"id", "status", "payment_status", "fulfillment_status", "display_id",
		"email", "customer_id", "currency_code", "total", "subtotal", "tax_total",
		"discount_total", "shipping_total", "created_at", "updated_at", "refunded_total",
	}
	orderRelationsMin  = []string{"items"}
	orderRelationsFull = []string{
		"items", "shipping_address", "billing_address", "payments",
		"payment_collections", "promotions", "refunds",
	}
	addressDetailFields = []string{
		"first_name", "last_name", "address_1", "address_2", "city",
		"province", "postal_code", "country_code", "phone", "company",
	}
)

var (
	OrderBaseFields   = strings.Join(append(append([]string{}, orderRootScalars...), orderRelationsMin...), ",")
	OrderDetailFields = buildOrderDetailFields()
	// OrderListFields is what guest lookup matches on.
	OrderListFields = "id,display_id,email,status,payment_status,fulfillment_status,total,currency_code,created_at"
)

const (
	DefaultProductFields = "id,handle,title,subtitle,description,created_at,thumbnail,*images," +
		"*variants.calculated_price,*variants.options,+variants.inventory_quantity," +
		"+variants.metadata,+variants.sku,*options,*options.values,*collection,*categories,*tags,+metadata"
	BasicProductFields = "id,handle,title,created_at,thumbnail,*images,variants.id,*variants.calculated_price"
	AddressFields      = "id,first_name,last_name,address_1,address_2,city,province,postal_code," +
		"country_code,phone,metadata,address_name,company,is_default_shipping,is_default_billing"
)

func buildOrderDetailFields() string {
	out := append([]string{}, orderRootScalars...)
	out = append(out, orderRelationsFull...)
	for _, rel := range []string{"shipping_address", "billing_address"} {
		for _, f := range addressDetailFields {
			out = append(out, rel+"."+f)
		}
	}
	return strings.Join(out, ",")
}
