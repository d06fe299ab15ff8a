// Package checkout turns a submitted cart into a priced, validated
// checkout-session request. The catalog is the only price source: client
// input never carries money amounts and is re-priced here on every attempt.
package checkout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	stripe "github.com/stripe/stripe-go/v79"

	"github.com/belizemerch/storefront/internal/catalog"
	"github.com/belizemerch/storefront/internal/shipping"
)

// ErrEmptyCart indicates a checkout attempt with no lines.
var ErrEmptyCart = errors.New("cart required")

// AllowedCountries is the fixed shipping-destination set offered on the
// hosted payment page.
var AllowedCountries = []string{"US", "BZ", "CA", "GB", "MX"}

// Line is one submitted cart entry: product reference plus chosen variant.
type Line struct {
	ID    string
	Qty   int
	Size  string
	Color string
}

// Customer is the contact info forwarded to the payment provider.
type Customer struct {
	Email string
	Name  string
}

// Builder validates and prices checkout requests against an injected catalog.
type Builder struct {
	catalog *catalog.Store
}

// NewBuilder returns a Builder bound to the given catalog.
func NewBuilder(store *catalog.Store) *Builder {
	return &Builder{catalog: store}
}

// resolve walks the submitted lines against the catalog. Any unknown product
// aborts the whole request; quantities below 1 are silently corrected to 1,
// mirroring add-to-cart semantics.
func (b *Builder) resolve(lines []Line) ([]Line, []catalog.Product, error) {
	if len(lines) == 0 {
		return nil, nil, ErrEmptyCart
	}
	resolved := make([]Line, 0, len(lines))
	products := make([]catalog.Product, 0, len(lines))
	for _, l := range lines {
		p, err := b.catalog.FindByID(l.ID)
		if err != nil {
			return nil, nil, err
		}
		if l.Qty < 1 {
			l.Qty = 1
		}
		resolved = append(resolved, l)
		products = append(products, p)
	}
	return resolved, products, nil
}

// Totals is the local order preview: subtotal plus the selected tier's fee.
// The authoritative shipping choice still happens on the hosted page.
type Totals struct {
	Subtotal    int64
	ShippingFee int64
	Total       int64
}

// Totals computes the preview totals for the given lines and tier, pricing
// every line from the catalog.
func (b *Builder) Totals(lines []Line, tier shipping.Tier) (Totals, error) {
	resolved, products, err := b.resolve(lines)
	if err != nil {
		return Totals{}, err
	}
	fee, err := shipping.FeeFor(tier)
	if err != nil {
		return Totals{}, err
	}
	var sub int64
	for i, l := range resolved {
		sub += products[i].Price * int64(l.Qty)
	}
	return Totals{Subtotal: sub, ShippingFee: fee, Total: sub + fee}, nil
}

// SessionParams builds the full checkout-session request: priced line items,
// the complete shipping-option set, allowed destination countries, and the
// success/cancel redirects resolved against the request's own origin.
func (b *Builder) SessionParams(lines []Line, cust Customer, origin string) (*stripe.CheckoutSessionParams, error) {
	resolved, products, err := b.resolve(lines)
	if err != nil {
		return nil, err
	}

	items := make([]*stripe.CheckoutSessionLineItemParams, 0, len(resolved))
	for i, l := range resolved {
		p := products[i]
		items = append(items, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(p.Currency),
				UnitAmount: stripe.Int64(p.Price),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String(p.Name),
					Description: stripe.String(fmt.Sprintf("%s — Size %s — %s", p.Description, l.Size, l.Color)),
					Metadata: map[string]string{
						"sku":        p.SKU,
						"product_id": p.ID,
						"size":       l.Size,
						"color":      l.Color,
						"category":   p.Category,
					},
					Images: stripe.StringSlice(absoluteImages(origin, p.Images)),
				},
			},
			Quantity: stripe.Int64(int64(l.Qty)),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:         items,
		CustomerEmail:     stripe.String(cust.Email),
		ClientReferenceID: stripe.String(uuid.NewString()),
		ShippingOptions:   shippingOptions(),
		ShippingAddressCollection: &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice(AllowedCountries),
		},
		SuccessURL: stripe.String(origin + "/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(origin + "/"),
	}
	return params, nil
}

// shippingOptions maps the full fixed rate table onto provider shipping
// options. All three tiers are always attached; the customer confirms the
// final choice on the hosted page.
func shippingOptions() []*stripe.CheckoutSessionShippingOptionParams {
	opts := shipping.Options()
	out := make([]*stripe.CheckoutSessionShippingOptionParams, 0, len(opts))
	for _, o := range opts {
		out = append(out, &stripe.CheckoutSessionShippingOptionParams{
			ShippingRateData: &stripe.CheckoutSessionShippingOptionShippingRateDataParams{
				Type:        stripe.String("fixed_amount"),
				DisplayName: stripe.String(o.DisplayName),
				FixedAmount: &stripe.CheckoutSessionShippingOptionShippingRateDataFixedAmountParams{
					Amount:   stripe.Int64(o.Fee),
					Currency: stripe.String(o.Currency),
				},
				DeliveryEstimate: &stripe.CheckoutSessionShippingOptionShippingRateDataDeliveryEstimateParams{
					Minimum: &stripe.CheckoutSessionShippingOptionShippingRateDataDeliveryEstimateMinimumParams{
						Unit:  stripe.String("business_day"),
						Value: stripe.Int64(o.MinDays),
					},
					Maximum: &stripe.CheckoutSessionShippingOptionShippingRateDataDeliveryEstimateMaximumParams{
						Unit:  stripe.String("business_day"),
						Value: stripe.Int64(o.MaxDays),
					},
				},
			},
		})
	}
	return out
}

// absoluteImages resolves site-relative image paths against the request
// origin so the provider can render them regardless of deployment host.
func absoluteImages(origin string, images []string) []string {
	out := make([]string, 0, len(images))
	for _, src := range images {
		if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
			out = append(out, src)
			continue
		}
		out = append(out, origin+src)
	}
	return out
}
