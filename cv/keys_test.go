package cv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyName(t *testing.T) {
	assert.Equal(t, "", keyName(-1))
	assert.Equal(t, "0", keyName('0'))
	assert.Equal(t, "q", keyName('q'))
	// Some highgui backends report modifier bits above the key code.
	assert.Equal(t, "0", keyName(0x100000|'0'))
}
