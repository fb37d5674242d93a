package version

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasVersionArg(t *testing.T) {
	assert.True(t, HasVersionArg([]string{"--version"}))
	assert.True(t, HasVersionArg([]string{"-v", "extra"}))
	assert.False(t, HasVersionArg(nil))
	assert.False(t, HasVersionArg([]string{"-debug"}))
}

func TestShowVersion(t *testing.T) {
	var buf bytes.Buffer
	ShowVersion(&buf)
	assert.Equal(t, "fliphash v"+Version+"\n", buf.String())
}
