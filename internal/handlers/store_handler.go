package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/belizemerch/storefront/internal/catalog"
	"github.com/belizemerch/storefront/internal/checkout"
	"github.com/belizemerch/storefront/internal/metrics"
	"github.com/belizemerch/storefront/internal/payment"
	"github.com/belizemerch/storefront/internal/validation"
	"github.com/belizemerch/storefront/internal/web"
)

// HandlerConfig groups dependencies for the storefront handlers.
type HandlerConfig struct {
	Catalog   *catalog.Store
	Sessions  payment.SessionCreator
	Metrics   *metrics.Emitter
	Log       *logrus.Logger
	StaticDir string // image assets, served under /img
}

// RegisterStoreRoutes registers the storefront routes.
func RegisterStoreRoutes(r *gin.Engine, cfg HandlerConfig) error {
	renderer, err := web.NewRenderer()
	if err != nil {
		return err
	}
	v := validation.New()
	builder := checkout.NewBuilder(cfg.Catalog)
	log := cfg.Log
	if log == nil {
		log = logrus.New()
	}

	if cfg.StaticDir != "" {
		r.Static("/img", cfg.StaticDir)
	}

	r.GET("/", func(c *gin.Context) {
		var buf bytes.Buffer
		if err := renderer.StorePage(&buf, cfg.Catalog.List(), cfg.Sessions.Enabled()); err != nil {
			log.WithError(err).Error("render store page")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "render failed"})
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
	})

	r.GET("/success", func(c *gin.Context) {
		// session_id is accepted for the receipt page but never verified
		// against the provider; fulfillment trusts the redirect.
		if id := c.Query("session_id"); id != "" {
			log.WithField("session_id", id).Info("checkout completed")
		}
		var buf bytes.Buffer
		if err := renderer.SuccessPage(&buf); err != nil {
			log.WithError(err).Error("render success page")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "render failed"})
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
	})

	r.POST("/create-checkout-session", func(c *gin.Context) {
		ctx := c.Request.Context()

		if !cfg.Sessions.Enabled() {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe not configured"})
			return
		}

		var req validation.CreateCheckoutSessionRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			// BindAndValidate already wrote a 400
			return
		}
		if len(req.Cart) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart required"})
			return
		}

		lines := make([]checkout.Line, 0, len(req.Cart))
		for _, l := range req.Cart {
			lines = append(lines, checkout.Line{ID: l.ID, Qty: l.Qty, Size: l.Size, Color: l.Color})
		}

		origin := requestOrigin(c)
		params, err := builder.SessionParams(lines, checkout.Customer{
			Email: req.Customer.Email,
			Name:  req.Customer.Name,
		}, origin)
		if err != nil {
			// unknown product: the whole request is rejected before any
			// provider call is made
			log.WithError(err).Warn("checkout request rejected")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		sess, err := cfg.Sessions.CreateCheckoutSession(ctx, params)
		if err != nil {
			cfg.Metrics.SessionFailed(ctx)
			log.WithError(err).Error("create checkout session")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		cfg.Metrics.SessionCreated(ctx)
		log.WithFields(logrus.Fields{
			"session_id": sess.ID,
			"tier":       req.ShippingTier,
		}).Info("checkout session created")
		c.JSON(http.StatusOK, gin.H{"url": sess.URL})
	})

	return nil
}

// requestOrigin reconstructs the scheme://host origin of the incoming
// request so redirect targets and image URLs work on any deployment host.
func requestOrigin(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host
}
