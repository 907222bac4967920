package fsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "no matching trigger", NoMatchingTrigger.String())
	assert.Equal(t, "not initialized", NotInitialized.String())
	assert.Equal(t, "unknown", Status(42).String())
}

func TestStatus_SuccessIsZero(t *testing.T) {
	assert.Equal(t, Status(0), Success)
}
