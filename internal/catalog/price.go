package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/TemirB/storefront/internal/domain"
)

var zeroDecimalCurrencies = map[string]struct{}{
	"BIF": {}, "CLP": {}, "DJF": {}, "GNF": {}, "JPY": {}, "KMF": {}, "KRW": {},
	"MGA": {}, "PYG": {}, "RWF": {}, "UGX": {}, "VND": {}, "VUV": {}, "XAF": {},
	"XOF": {}, "XPF": {}, "HUF": {}, "IDR": {}, "LAK": {}, "TWD": {},
}

var hundred = decimal.NewFromInt(100)

// ToMajorUnits converts an amount of unknown units to major units. Amounts
// with a fractional part are already major; integers of 100 and more are
// treated as minor units; smaller integers as major.
func ToMajorUnits(amount float64, currency string) decimal.Decimal {
	d := decimal.NewFromFloat(amount)
	code := strings.ToUpper(currency)
	if code == "" {
		code = "USD"
	}
	if _, ok := zeroDecimalCurrencies[code]; ok {
		return d
	}
	if !d.IsInteger() {
		return d
	}
	if d.GreaterThanOrEqual(hundred) {
		return d.Div(hundred)
	}
	return d
}

// MinPriceMajor is the cheapest calculated variant price in major units.
func MinPriceMajor(p domain.Product) (decimal.Decimal, bool) {
	var (
		min   decimal.Decimal
		found bool
	)
	for _, v := range p.Variants {
		if v.CalculatedPrice == nil {
			continue
		}
		m := ToMajorUnits(v.CalculatedPrice.CalculatedAmount, v.CalculatedPrice.CurrencyCode)
		if !found || m.LessThan(min) {
			min, found = m, true
		}
	}
	return min, found
}

// PriceRange is an inclusive filter in major units; nil bounds are open.
type PriceRange struct {
	Min *decimal.Decimal
	Max *decimal.Decimal
}

func (r PriceRange) Active() bool { return r.Min != nil || r.Max != nil }

// Filter keeps products whose cheapest price falls inside r. Products with
// no price are dropped when the range is active.
func (r PriceRange) Filter(products []domain.Product) []domain.Product {
	if !r.Active() {
		return products
	}
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		mp, ok := MinPriceMajor(p)
		if !ok {
			continue
		}
		if r.Min != nil && mp.LessThan(*r.Min) {
			continue
		}
		if r.Max != nil && mp.GreaterThan(*r.Max) {
			continue
		}
		out = append(out, p)
	}
	return out
}
