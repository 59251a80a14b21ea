package domain

import "time"

type Image struct {
	ID  string `json:"id,omitempty"`
	URL string `json:"url"`
}

type CalculatedPrice struct {
	CalculatedAmount float64 `json:"calculated_amount"`
	OriginalAmount   float64 `json:"original_amount,omitempty"`
	CurrencyCode     string  `json:"currency_code"`
}

type Variant struct {
	ID                string           `json:"id"`
	ProductID         string           `json:"product_id,omitempty"`
	Title             string           `json:"title,omitempty"`
	SKU               string           `json:"sku,omitempty"`
	InventoryQuantity int              `json:"inventory_quantity,omitempty"`
	CalculatedPrice   *CalculatedPrice `json:"calculated_price,omitempty"`
	Metadata          map[string]any   `json:"metadata,omitempty"`
}

type Product struct {
	ID          string         `json:"id"`
	Handle      string         `json:"handle"`
	Title       string         `json:"title"`
	Subtitle    string         `json:"subtitle,omitempty"`
	Description string         `json:"description,omitempty"`
	Thumbnail   string         `json:"thumbnail,omitempty"`
	Images      []Image        `json:"images,omitempty"`
	Variants    []Variant      `json:"variants,omitempty"`
	Collection  *Collection    `json:"collection,omitempty"`
	Categories  []Category     `json:"categories,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"created_at,omitempty"`
}

type Category struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Handle           string         `json:"handle"`
	Description      string         `json:"description,omitempty"`
	ParentCategoryID string         `json:"parent_category_id,omitempty"`
	Rank             int            `json:"rank"`
	Metadata         map[string]any `json:"metadata,omitempty"`
}

// CategoryNode is a category placed in the reconstructed hierarchy.
type CategoryNode struct {
	Category
	Children []*CategoryNode `json:"children"`
}

type Collection struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Handle   string         `json:"handle"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Emoji is stored by merchandisers in collection metadata.
func (c Collection) Emoji() string {
	if v, ok := c.Metadata["emoji"].(string); ok {
		return v
	}
	return ""
}

type StoreInfo struct {
	ID                    string `json:"id"`
	Name                  string `json:"name"`
	DefaultCurrencyCode   string `json:"default_currency_code,omitempty"`
	DefaultSalesChannelID string `json:"default_sales_channel_id,omitempty"`
}
