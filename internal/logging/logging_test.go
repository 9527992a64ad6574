package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New("debug", &buf)

	logger.Info("check complete", "score", 0.87)

	out := buf.String()
	assert.Contains(t, out, "check complete")
	assert.Contains(t, out, "score=0.87")
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New("error", &buf)

	logger.Debug("hidden")
	logger.Info("also hidden")

	assert.Empty(t, buf.String())
}

func TestWithCarriesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", &buf).With("component", "history")

	logger.Info("opened")

	assert.Contains(t, buf.String(), "component=history")
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New("loud", &buf)

	logger.Info("visible")
	logger.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "visible")
	assert.NotContains(t, out, "hidden")
}
