package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBringToFrontActivatesOnlyWhenInactive(t *testing.T) {
	activations := 0
	activate := func() { activations++ }

	bringToFront(func() bool { return true }, activate)
	assert.Zero(t, activations)

	bringToFront(func() bool { return false }, activate)
	assert.Equal(t, 1, activations)
}
