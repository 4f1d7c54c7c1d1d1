package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/donaldgifford/quicklist/internal/config"
	"github.com/donaldgifford/quicklist/internal/telemetry"
)

func TestSetup_Disabled(t *testing.T) {
	shutdown, err := telemetry.Setup(context.Background(), &config.TelemetryConfig{}, "dev")
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	require.NoError(t, shutdown(context.Background()))

	assert.Contains(t, otel.GetTextMapPropagator().Fields(), "traceparent")
}

func TestSetup_NilConfig(t *testing.T) {
	shutdown, err := telemetry.Setup(context.Background(), nil, "dev")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestSetup_Enabled(t *testing.T) {
	cfg := &config.TelemetryConfig{
		OTLPEndpoint: "127.0.0.1:4317",
		ServiceName:  "quicklist-test",
		Insecure:     true,
	}

	shutdown, err := telemetry.Setup(context.Background(), cfg, "v0.0.0-test")
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(context.Background(), "probe")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = shutdown(ctx)
}
