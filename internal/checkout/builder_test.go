package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/belizemerch/storefront/internal/catalog"
	"github.com/belizemerch/storefront/internal/shipping"
)

func testBuilder(t *testing.T) *Builder {
	t.Helper()
	store, err := catalog.NewStore(catalog.Seed())
	require.NoError(t, err)
	return NewBuilder(store)
}

func TestTotals_ReferenceScenario(t *testing.T) {
	b := testBuilder(t)

	// 2 × 2499 + domestic 599 = 5597
	totals, err := b.Totals(
		[]Line{{ID: "belize-belizeit-handprint", Qty: 2, Size: "M", Color: "Black"}},
		shipping.TierDomestic,
	)
	require.NoError(t, err)
	assert.Equal(t, int64(4998), totals.Subtotal)
	assert.Equal(t, int64(599), totals.ShippingFee)
	assert.Equal(t, int64(5597), totals.Total)
}

func TestTotals_UnknownTier(t *testing.T) {
	b := testBuilder(t)
	_, err := b.Totals(
		[]Line{{ID: "belize-belizeit-handprint", Qty: 1, Size: "M", Color: "Black"}},
		shipping.Tier("overnight"),
	)
	require.ErrorIs(t, err, shipping.ErrUnknownTier)
}

func TestSessionParams_EmptyCart(t *testing.T) {
	b := testBuilder(t)
	_, err := b.SessionParams(nil, Customer{Email: "a@b.c"}, "https://shop.test")
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestSessionParams_UnknownProductFailsWhole(t *testing.T) {
	b := testBuilder(t)
	_, err := b.SessionParams(
		[]Line{
			{ID: "belize-belizeit-handprint", Qty: 1, Size: "M", Color: "Black"},
			{ID: "nonexistent", Qty: 1, Size: "M", Color: "Black"},
		},
		Customer{Email: "a@b.c"},
		"https://shop.test",
	)
	require.ErrorIs(t, err, catalog.ErrUnknownProduct)
	assert.ErrorContains(t, err, "nonexistent")
}

func TestSessionParams_PricedFromCatalog(t *testing.T) {
	b := testBuilder(t)
	params, err := b.SessionParams(
		[]Line{{ID: "belize-belizeit-handprint", Qty: 2, Size: "M", Color: "Black"}},
		Customer{Email: "kai@example.com", Name: "Kai Flores"},
		"https://shop.test",
	)
	require.NoError(t, err)
	require.Len(t, params.LineItems, 1)

	item := params.LineItems[0]
	assert.Equal(t, int64(2499), *item.PriceData.UnitAmount)
	assert.Equal(t, "usd", *item.PriceData.Currency)
	assert.Equal(t, int64(2), *item.Quantity)

	pd := item.PriceData.ProductData
	assert.Equal(t, "You Better Belize It / Handprint Back", *pd.Name)
	assert.Equal(t, "Premium ringspun cotton. Unisex fit. — Size M — Black", *pd.Description)
	assert.Equal(t, map[string]string{
		"sku":        "BLZ-001",
		"product_id": "belize-belizeit-handprint",
		"size":       "M",
		"color":      "Black",
		"category":   "T-Shirts",
	}, pd.Metadata)

	require.Len(t, pd.Images, 2)
	assert.Equal(t, "https://shop.test/img/belize-tee-1-front.png", *pd.Images[0])
	assert.Equal(t, "https://shop.test/img/belize-tee-1-back.png", *pd.Images[1])
}

func TestSessionParams_ClampsQuantity(t *testing.T) {
	b := testBuilder(t)
	params, err := b.SessionParams(
		[]Line{{ID: "belize-belizeit-handprint", Qty: 0, Size: "M", Color: "Black"}},
		Customer{Email: "a@b.c"},
		"https://shop.test",
	)
	require.NoError(t, err)
	assert.Equal(t, int64(1), *params.LineItems[0].Quantity)
}

func TestSessionParams_AttachesFullShippingSet(t *testing.T) {
	b := testBuilder(t)
	params, err := b.SessionParams(
		[]Line{{ID: "belize-belizeit-handprint", Qty: 1, Size: "M", Color: "Black"}},
		Customer{Email: "a@b.c"},
		"https://shop.test",
	)
	require.NoError(t, err)
	require.Len(t, params.ShippingOptions, 3)

	type row struct {
		name     string
		fee      int64
		min, max int64
	}
	want := []row{
		{"Local pickup", 0, 0, 2},
		{"Domestic", 599, 3, 7},
		{"International", 1299, 7, 21},
	}
	for i, w := range want {
		rate := params.ShippingOptions[i].ShippingRateData
		assert.Equal(t, w.name, *rate.DisplayName)
		assert.Equal(t, w.fee, *rate.FixedAmount.Amount)
		assert.Equal(t, "fixed_amount", *rate.Type)
		assert.Equal(t, w.min, *rate.DeliveryEstimate.Minimum.Value)
		assert.Equal(t, w.max, *rate.DeliveryEstimate.Maximum.Value)
	}
}

func TestSessionParams_RedirectsAndCountries(t *testing.T) {
	b := testBuilder(t)
	params, err := b.SessionParams(
		[]Line{{ID: "belize-belizeit-handprint", Qty: 1, Size: "M", Color: "Black"}},
		Customer{Email: "kai@example.com"},
		"https://shop.test",
	)
	require.NoError(t, err)

	assert.Equal(t, "https://shop.test/success?session_id={CHECKOUT_SESSION_ID}", *params.SuccessURL)
	assert.Equal(t, "https://shop.test/", *params.CancelURL)
	assert.Equal(t, "kai@example.com", *params.CustomerEmail)
	assert.Equal(t, "payment", *params.Mode)
	assert.NotEmpty(t, *params.ClientReferenceID)

	countries := make([]string, 0, len(params.ShippingAddressCollection.AllowedCountries))
	for _, c := range params.ShippingAddressCollection.AllowedCountries {
		countries = append(countries, *c)
	}
	assert.Equal(t, []string{"US", "BZ", "CA", "GB", "MX"}, countries)
}
