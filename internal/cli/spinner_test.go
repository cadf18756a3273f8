package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpinnerDrawsAndClears(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(context.Background(), &buf, "Resolving serde...")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	out := buf.String()
	assert.Contains(t, out, "Resolving serde...")
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\r")), "line should be cleared")
	assert.False(t, s.Cancelled())
}

func TestSpinnerCancelledByContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newSpinner(ctx, &bytes.Buffer{}, "Resolving...")
	s.Start()

	cancel()
	assert.Eventually(t, s.Cancelled, time.Second, 10*time.Millisecond)
	s.Stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner(context.Background(), &bytes.Buffer{}, "Resolving...")
	s.Start()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithMessage(t *testing.T) {
	var ok, failed bytes.Buffer

	s := newSpinner(context.Background(), &ok, "Resolving...")
	s.Start()
	s.StopWithSuccess("Resolved serde")
	assert.Contains(t, ok.String(), iconSuccess)
	assert.Contains(t, ok.String(), "Resolved serde")

	s = newSpinner(context.Background(), &failed, "Resolving...")
	s.Start()
	s.StopWithError("crate not found")
	assert.Contains(t, failed.String(), iconError)
	assert.Contains(t, failed.String(), "crate not found")
}
