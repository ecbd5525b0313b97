package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGui_WindowSize(t *testing.T) {
	w, h := windowSize(800, 600)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)

	w, h = windowSize(2732, 1536)
	assert.LessOrEqual(t, w, maxScreenX)
	assert.LessOrEqual(t, h, maxScreenY)
	assert.Equal(t, 1366, w)
	assert.Equal(t, 768, h)
}
