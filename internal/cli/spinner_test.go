package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func testSpinner(ctx context.Context, msg string) (*Spinner, *bytes.Buffer) {
	var buf bytes.Buffer
	s := newSpinner(ctx, msg)
	s.w = &buf
	return s, &buf
}

// captureOutput redirects status output to a buffer for the test.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := out
	out = &buf
	t.Cleanup(func() { out = prev })
	return &buf
}

func TestSpinnerDrawsFrames(t *testing.T) {
	s, buf := testSpinner(context.Background(), "Computing layout...")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if !strings.Contains(buf.String(), "Computing layout...") {
		t.Errorf("spinner output %q does not contain the message", buf.String())
	}
	if !strings.HasSuffix(buf.String(), "\r") {
		t.Error("Stop should end by clearing the line")
	}
	if s.Cancelled() {
		t.Error("a stopped spinner is not cancelled")
	}
}

func TestSpinnerWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s, _ := testSpinner(ctx, "Rendering...")
	s.Start()
	cancel()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context cancellation")
	}
	s.Stop()
}

func TestSpinnerWithTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s, _ := testSpinner(ctx, "Rendering...")
	s.Start()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context timeout")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s, _ := testSpinner(context.Background(), "Testing idempotent stop...")
	s.Start()

	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithMessage(t *testing.T) {
	buf := captureOutput(t)

	s, _ := testSpinner(context.Background(), "Working...")
	s.Start()
	s.StopWithSuccess("Layout complete")

	s2, _ := testSpinner(context.Background(), "Working...")
	s2.Start()
	s2.StopWithError("Layout failed")

	got := buf.String()
	for _, want := range []string{iconSuccess, "Layout complete", iconError, "Layout failed"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q missing %q", got, want)
		}
	}
}
