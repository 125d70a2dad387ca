package telemetry

import (
	"context"
	"testing"

	"github.com/Shreyaj-Padigala/ProSolve/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestSetupTracing_Disabled(t *testing.T) {
	for _, tc := range []config.TelemetryCfg{
		{Enabled: false, OtlpEndpoint: "localhost:4317"},
		{Enabled: true},
	} {
		tp, err := SetupTracing(context.Background(), &config.Config{Telemetry: tc})
		require.NoError(t, err)
		assert.Nil(t, tp)
	}
	assert.NoError(t, Shutdown(context.Background()))
}

func TestCollectorAddr(t *testing.T) {
	assert.Equal(t, "otel:4317", collectorAddr("http://otel:4317"))
	assert.Equal(t, "otel:4317", collectorAddr("https://otel:4317"))
	assert.Equal(t, "otel:4317", collectorAddr("otel:4317"))
}

func TestSampler(t *testing.T) {
	assert.Equal(t, sdktrace.AlwaysSample().Description(), sampler(0).Description())
	assert.Equal(t, sdktrace.AlwaysSample().Description(), sampler(2).Description())
	assert.Equal(t, sdktrace.TraceIDRatioBased(0.25).Description(), sampler(0.25).Description())
}
