package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	console, err := New(false, false)
	require.NoError(t, err)
	assert.False(t, console.Core().Enabled(-1)) // debug disabled

	debug, err := New(true, true)
	require.NoError(t, err)
	assert.True(t, debug.Core().Enabled(-1))
}

func TestTruncateForLog(t *testing.T) {
	assert.Equal(t, "", TruncateForLog("anything", 0))
	assert.Equal(t, "short", TruncateForLog("  short  ", 10))
	assert.Equal(t, "한국어 텍...", TruncateForLog("한국어 텍스트입니다", 5))
}
