package validation

import (
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/belizemerch/storefront/internal/shipping"
)

// New returns a configured validator with custom struct-level validation registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	// register struct-level validation for CreateCheckoutSessionRequest to
	// reject shipping tiers outside the fixed rate table. An absent tier is
	// fine (the preview default applies); a wrong one is not.
	v.RegisterStructValidation(checkoutSessionStructValidation, CreateCheckoutSessionRequest{})

	return v
}

func checkoutSessionStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(CreateCheckoutSessionRequest)

	if req.ShippingTier != "" && !shipping.Known(shipping.Tier(req.ShippingTier)) {
		sl.ReportError(req.ShippingTier, "shippingTier", "ShippingTier", "known_shipping_tier", "")
	}
}
