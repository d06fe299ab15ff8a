package unit

import (
	"context"
	"os"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/belizemerch/storefront/internal/metrics"
)

func TestLoadAWSConfig_DefaultRegion(t *testing.T) {
	os.Setenv("AWS_REGION", "")

	cfg, err := metrics.LoadAWSConfig(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Region != "us-east-1" {
		t.Fatalf("expected default region 'us-east-1', got %s", cfg.Region)
	}
}

func TestNewFromEnv_DisabledWithoutNamespace(t *testing.T) {
	os.Unsetenv("METRICS_NAMESPACE")

	e, err := metrics.NewFromEnv(context.Background(), logrus.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e != nil {
		t.Fatal("expected nil (no-op) emitter when METRICS_NAMESPACE is unset")
	}
}
