package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer(t *testing.T) {
	render := NewRenderer()
	out, err := render("# Result\n\n- sum: 5\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Result")
	assert.Contains(t, out, "sum: 5")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf)

	// A buffer is not a terminal, so no escape sequences are written.
	assert.NotContains(t, buf.String(), "\x1b[")
	assert.True(t, strings.Contains(buf.String(), "|___/"))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
