package trace

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestTrace(t *testing.T) {
	if err := Init(false, nil); err != nil {
		t.Fatalf("Init(false) error: %v", err)
	}
	_, span := StartSpan(context.Background(), "off")
	if span.SpanContext().IsValid() {
		t.Errorf("StartSpan() must not record while tracing is off")
	}
	span.End()

	var buf bytes.Buffer
	if err := Init(true, &buf); err != nil {
		t.Fatalf("Init(true) error: %v", err)
	}
	t.Cleanup(func() { Init(false, nil) })
	if !Enabled() {
		t.Errorf("Enabled() = false after Init(true)")
	}
	_, span = StartSpan(context.Background(), "dashboard.Upload")
	span.End()
	if err := Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}
	if !strings.Contains(buf.String(), "dashboard.Upload") {
		t.Errorf("exported spans do not contain the span name:\n%s", buf.String())
	}
}
