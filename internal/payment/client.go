// Package payment wraps the Stripe Checkout session API behind a small
// interface so handlers and tests never touch the SDK directly.
package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
)

// ErrNotConfigured is returned when no Stripe secret key is present.
var ErrNotConfigured = errors.New("Stripe not configured")

// SessionCreator creates hosted checkout sessions.
type SessionCreator interface {
	// Enabled reports whether the provider is configured at all, so callers
	// can refuse a checkout before doing any work.
	Enabled() bool
	CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// callTimeout bounds the session-creation call. Session creation is not
// safe to retry blindly, so the SDK's network retries are disabled and a
// failure is terminal for the attempt.
const callTimeout = 10 * time.Second

// Client is the production SessionCreator backed by stripe-go.
type Client struct {
	sessions *session.Client
}

// NewClientFromEnv reads STRIPE_SECRET_KEY. An empty key yields a disabled
// client rather than an error: the storefront still renders, checkout
// reports the provider as unconfigured.
func NewClientFromEnv() *Client {
	return NewClient(os.Getenv("STRIPE_SECRET_KEY"))
}

// NewClient builds a client for the given secret key.
func NewClient(key string) *Client {
	if key == "" {
		return &Client{}
	}
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		HTTPClient:        &http.Client{Timeout: callTimeout},
		MaxNetworkRetries: stripe.Int64(0),
	})
	return &Client{
		sessions: &session.Client{B: backend, Key: key},
	}
}

// Enabled reports whether a secret key was provided.
func (c *Client) Enabled() bool {
	return c != nil && c.sessions != nil
}

// CreateCheckoutSession creates one hosted checkout session. The returned
// session carries the redirect URL for the hosted payment page.
func (c *Client) CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	if !c.Enabled() {
		return nil, ErrNotConfigured
	}
	params.Context = ctx
	s, err := c.sessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	return s, nil
}
