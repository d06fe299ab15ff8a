package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/belizemerch/storefront/internal/catalog"
	"github.com/belizemerch/storefront/internal/handlers"
	"github.com/belizemerch/storefront/internal/metrics"
	"github.com/belizemerch/storefront/internal/payment"
)

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.Out = os.Stdout
	return log
}

func setupRouter(cfg handlers.HandlerConfig) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery())

	// health
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if err := handlers.RegisterStoreRoutes(r, cfg); err != nil {
		return nil, err
	}
	return r, nil
}

func main() {
	log := newLogger()

	store, err := catalog.NewStore(catalog.Seed())
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}

	emitter, err := metrics.NewFromEnv(context.Background(), log)
	if err != nil {
		// metrics are optional; run without them rather than refuse to start
		log.WithError(err).Warn("metrics disabled")
	}

	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "public/img"
	}

	cfg := handlers.HandlerConfig{
		Catalog:   store,
		Sessions:  payment.NewClientFromEnv(),
		Metrics:   emitter,
		Log:       log,
		StaticDir: staticDir,
	}

	r, err := setupRouter(cfg)
	if err != nil {
		log.Fatalf("failed to set up router: %v", err)
	}

	// if environment variable RUN_LOCAL is set to "true", run local HTTP server for development.
	if os.Getenv("RUN_LOCAL") == "true" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		log.Infof("Belize Merch server at http://localhost:%s", port)
		if err := r.Run(":" + port); err != nil {
			log.Fatalf("failed to run local server: %v", err)
		}
		return
	}

	// lambda adapter
	adapter := ginadapter.New(r)

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (interface{}, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}
