package pricing

import (
	"strings"

	"github.com/shopspring/decimal"

	"gamestoreBack/internal/models"
)

var hundred = decimal.NewFromInt(100)

// ParsePrice turns a raw admin-entered price string into a non-negative
// decimal. Non-numeric characters are stripped before parsing and anything
// unparseable degrades to 0, so "Free", "$59.99" and garbage all stay
// browsable instead of failing the query.
func ParsePrice(raw string) decimal.Decimal {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	d, err := decimal.NewFromString(b.String())
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Effective computes the charged unit price: the item's own discount applies
// to the base price first, then the promo percentage applies to the already
// discounted price. Rounding happens once, at the end.
func Effective(rawPrice string, itemDiscount, promoPercent int) decimal.Decimal {
	p := ParsePrice(rawPrice)
	if itemDiscount > 0 {
		p = p.Mul(hundred.Sub(decimal.NewFromInt(int64(itemDiscount)))).Div(hundred)
	}
	if promoPercent > 0 {
		p = p.Mul(hundred.Sub(decimal.NewFromInt(int64(promoPercent)))).Div(hundred)
	}
	if p.IsNegative() {
		return decimal.Zero
	}
	return p.Round(2)
}

// Line is the priced view of one checkout line. Unit is the price after the
// item's own discount only; Final additionally applies the promo.
type Line struct {
	ItemID string
	Title  string
	Unit   decimal.Decimal
	Final  decimal.Decimal
}

// Summary aggregates checkout lines. Subtotal is the sum of post-item-discount
// unit prices; DiscountAmount is the promo-only delta, kept separate so the
// order summary can show both layers.
type Summary struct {
	Lines          []Line
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	Total          decimal.Decimal
	PromoPercent   int
}

// Aggregate prices the given items under one promo percentage.
func Aggregate(items []models.CatalogItem, promoPercent int) Summary {
	s := Summary{
		Subtotal:     decimal.Zero,
		Total:        decimal.Zero,
		PromoPercent: promoPercent,
	}
	for _, it := range items {
		line := Line{
			ItemID: it.ID,
			Title:  it.Title,
			Unit:   Effective(it.Price, it.Discount, 0),
			Final:  Effective(it.Price, it.Discount, promoPercent),
		}
		s.Lines = append(s.Lines, line)
		s.Subtotal = s.Subtotal.Add(line.Unit)
		s.Total = s.Total.Add(line.Final)
	}
	s.DiscountAmount = s.Subtotal.Sub(s.Total)
	return s
}

// OrderSummary converts an aggregate into its transport shape.
func (s Summary) OrderSummary() models.OrderSummary {
	out := models.OrderSummary{
		Subtotal:       s.Subtotal.StringFixed(2),
		DiscountAmount: s.DiscountAmount.StringFixed(2),
		Total:          s.Total.StringFixed(2),
		PromoPercent:   s.PromoPercent,
	}
	for _, l := range s.Lines {
		out.Lines = append(out.Lines, models.OrderLine{
			ItemID:    l.ItemID,
			Title:     l.Title,
			UnitPrice: l.Unit.StringFixed(2),
			Final:     l.Final.StringFixed(2),
		})
	}
	return out
}
