// Package metrics publishes generation metrics to CloudWatch.
package metrics

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

const (
	namespace         = "GenVec/Engine"
	cloudwatchTimeout = 5 * time.Second
)

// Publisher is the CloudWatch subset the client uses.
type Publisher interface {
	PutMetricData(ctx context.Context, in *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// Client records generation metrics. Outside production it is disabled and
// every method is a no-op.
type Client struct {
	client      Publisher
	enabled     bool
	environment string
	log         *slog.Logger
}

// NewClient creates a client. Only the production environment publishes;
// an AWS configuration error disables the client instead of failing.
func NewClient(ctx context.Context, environment string, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	if environment != "production" {
		log.Info("cloudwatch metrics disabled", "environment", environment)
		return &Client{environment: environment, log: log}
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		log.Warn("failed to load AWS config for CloudWatch", "err", err)
		return &Client{environment: environment, log: log}
	}

	log.Info("cloudwatch metrics enabled", "namespace", namespace)
	return NewWithPublisher(cloudwatch.NewFromConfig(cfg), environment, log)
}

// NewWithPublisher returns an enabled client sending through p.
func NewWithPublisher(p Publisher, environment string, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{client: p, enabled: p != nil, environment: environment, log: log}
}

// Enabled reports whether metrics are published.
func (m *Client) Enabled() bool {
	return m != nil && m.enabled
}

// RecordGeneration records one generation: an element count and a duration,
// dimensioned by pattern, outcome and environment. It publishes in the
// background and returns a channel closed when publishing is done.
func (m *Client) RecordGeneration(pattern string, elements int, duration time.Duration, success bool) <-chan struct{} {
	done := make(chan struct{})
	if !m.Enabled() {
		close(done)
		return done
	}

	go func() {
		defer close(done)
		dimensions := []types.Dimension{
			{Name: aws.String("Pattern"), Value: aws.String(pattern)},
			{Name: aws.String("Success"), Value: aws.String(strconv.FormatBool(success))},
			{Name: aws.String("Environment"), Value: aws.String(m.environment)},
		}
		data := []types.MetricDatum{
			datum("Generations", 1, types.StandardUnitCount, dimensions),
			datum("GenerationElements", float64(elements), types.StandardUnitCount, dimensions),
			datum("GenerationDuration", float64(duration.Milliseconds()), types.StandardUnitMilliseconds, dimensions),
		}
		if err := m.put(data); err != nil {
			m.log.Warn("failed to record generation metrics", "err", err)
		}
	}()
	return done
}

func datum(name string, value float64, unit types.StandardUnit, dimensions []types.Dimension) types.MetricDatum {
	return types.MetricDatum{
		MetricName: aws.String(name),
		Value:      aws.Float64(value),
		Unit:       unit,
		Timestamp:  aws.Time(time.Now()),
		Dimensions: dimensions,
	}
}

func (m *Client) put(data []types.MetricDatum) error {
	ctx, cancel := context.WithTimeout(context.Background(), cloudwatchTimeout)
	defer cancel()

	_, err := m.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace:  aws.String(namespace),
		MetricData: data,
	})
	return err
}
