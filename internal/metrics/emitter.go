// Package metrics publishes checkout counters to CloudWatch. Emission is
// best effort: a metrics failure never fails a checkout.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/aws/smithy-go"
	"github.com/sirupsen/logrus"
)

// Metric names published under the configured namespace.
const (
	MetricSessionCreated = "CheckoutSessionCreated"
	MetricSessionFailed  = "CheckoutSessionFailed"
)

// CloudWatchAPI is the slice of the CloudWatch client we use, so tests can
// substitute a recording double.
type CloudWatchAPI interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// Emitter counts checkout outcomes. A nil Emitter is a valid no-op, so
// callers never need to guard their counting sites.
type Emitter struct {
	client    CloudWatchAPI
	namespace string
	log       *logrus.Logger
	nowFunc   func() time.Time
}

// NewEmitter returns an Emitter publishing under namespace.
func NewEmitter(client CloudWatchAPI, namespace string, log *logrus.Logger) *Emitter {
	return &Emitter{
		client:    client,
		namespace: namespace,
		log:       log,
		nowFunc:   time.Now,
	}
}

// NewFromEnv builds an Emitter from METRICS_NAMESPACE and the default AWS
// config chain. Returns nil (the no-op emitter) when the namespace is unset.
func NewFromEnv(ctx context.Context, log *logrus.Logger) (*Emitter, error) {
	namespace := os.Getenv("METRICS_NAMESPACE")
	if namespace == "" {
		return nil, nil
	}
	cfg, err := LoadAWSConfig(ctx)
	if err != nil {
		return nil, err
	}
	return NewEmitter(cloudwatch.NewFromConfig(cfg), namespace, log), nil
}

// LoadAWSConfig loads the default AWS config, defaulting the region to
// us-east-1 when the environment doesn't set one.
func LoadAWSConfig(ctx context.Context) (sdkaws.Config, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "us-east-1"
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return cfg, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return cfg, nil
}

// SessionCreated counts one successful checkout-session creation.
func (e *Emitter) SessionCreated(ctx context.Context) {
	e.count(ctx, MetricSessionCreated)
}

// SessionFailed counts one failed checkout-session attempt.
func (e *Emitter) SessionFailed(ctx context.Context) {
	e.count(ctx, MetricSessionFailed)
}

func (e *Emitter) count(ctx context.Context, name string) {
	if e == nil || e.client == nil {
		return
	}
	_, err := e.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: &e.namespace,
		MetricData: []cwtypes.MetricDatum{
			{
				MetricName: &name,
				Timestamp:  sdkaws.Time(e.nowFunc().UTC()),
				Unit:       cwtypes.StandardUnitCount,
				Value:      sdkaws.Float64(1),
			},
		},
	})
	if err == nil || e.log == nil {
		return
	}
	// log the API error code when we have one; never propagate
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		e.log.WithField("code", apiErr.ErrorCode()).WithError(err).Warn("metric emission failed")
		return
	}
	e.log.WithError(err).Warn("metric emission failed")
}
