package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	logger := New()
	assert.NotNil(t, logger)
	assert.NotNil(t, logger.info)
	assert.NotNil(t, logger.error)
	assert.NotNil(t, logger.warn)
}

func TestInfo(t *testing.T) {
	logger := New()
	assert.NotNil(t, logger)

	// Test that Info doesn't panic
	logger.Info("Test message: %s", "info")
}

func TestError(t *testing.T) {
	logger := New()
	assert.NotNil(t, logger)

	logger.Error("Test error: %s", "error")
}

func TestWarn(t *testing.T) {
	logger := New()
	assert.NotNil(t, logger)

	logger.Warn("Test warning: %s", "warning")
}

func TestLogger_Formatting(t *testing.T) {
	logger := New()
	assert.NotNil(t, logger)

	logger.Info("Student %s applied to opportunity %d", "sara", 7)
	logger.Error("Failed to process request %d: %s", 404, "not found")
	logger.Warn("Warning: %s count is %d", "reports", 3)
}
