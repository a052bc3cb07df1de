// Package telemetry provides OpenTelemetry instrumentation for the turn
// engine, exported
// to Honeycomb via the standard OTLP HTTP exporter.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/mingu600/tapu-simu/internal/pokemon"
)

const (
	serviceName    = "tapu-simu"
	serviceVersion = "0.1.0"
)

// Setup initializes OpenTelemetry with OTLP HTTP exporter.
// It reads configuration from standard OTEL_* environment variables:
//   - OTEL_EXPORTER_OTLP_ENDPOINT: Honeycomb endpoint (https://api.honeycomb.io)
//   - OTEL_EXPORTER_OTLP_HEADERS: Headers including x-honeycomb-team=<api-key>
//
// Returns a shutdown function that should be called on application exit.
func Setup(ctx context.Context) (shutdown func(context.Context) error, err error) {
	// Create OTLP HTTP exporter - automatically uses OTEL_* env vars
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	// Build resource with service information
	// We create our own resource without merging with Default() to avoid schema URL conflicts
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("telemetry.sdk.language", "go"),
			attribute.String("telemetry.sdk.name", "opentelemetry"),
			attribute.String("host.name", getHostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.name", "go"),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, err
	}

	// Create trace provider with batch span processor
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	// Register as global provider
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer for the given component.
// Use this to create spans within different parts of the application.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer("tapu-simu/" + name)
}

// NoopTracer returns a no-op tracer for use when telemetry is disabled.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer("tapu-simu/noop")
}

// StartSpan starts a span named name under tracer and stamps it with the
// battle/turn identifiers every turn-generation span shares: battle.id,
// battle.turn, and (when the state has a format) battle.format.generation. Callers still get back a plain
// context.Context/trace.Span pair, so existing `defer span.End()` usage is
// unchanged — this only centralizes the attribute set so every phase span
// (turn.order, turn.actor, turn.forced_switch) carries the
// same battle correlation fields instead of each call site repeating them.
func StartSpan(ctx context.Context, tracer trace.Tracer, name string, state *pokemon.BattleState) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("battle.id", state.ID.String()),
		attribute.Int("battle.turn", state.Turn),
	}
	if state.Format != nil {
		attrs = append(attrs, attribute.Int("battle.format.generation", state.Format.Generation))
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// getHostname returns the system hostname, or "unknown" if it cannot be determined.
func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
