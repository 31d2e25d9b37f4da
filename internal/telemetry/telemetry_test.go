package telemetry

import (
	"context"
	"testing"
)

func TestSetupWithoutEndpointIsNoop(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	shutdown, err := Setup(context.Background())
	if err != nil {
		t.Fatalf("Setup() failed: %v", err)
	}
	if shutdown == nil {
		t.Fatal("Setup() returned a nil shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("noop shutdown returned error: %v", err)
	}
}

func TestTracerWithoutEndpointIsUsable(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	tr := Tracer("session")
	if tr == nil {
		t.Fatal("Tracer() returned nil")
	}

	// Spans from the disabled tracer must be safe to start and end.
	_, span := tr.Start(context.Background(), "round")
	span.End()
	if span.SpanContext().IsValid() {
		t.Error("disabled tracer produced a recording span context")
	}
}
