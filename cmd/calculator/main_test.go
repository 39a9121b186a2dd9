package main

import (
	"os"
	"strings"
	"testing"

	"github.com/alexanderspevak/calculator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalLine(t *testing.T) {
	cfg := defaultConfig()
	var sb strings.Builder
	require.NoError(t, evalLine(&sb, "2+3*4", cfg, nil))
	assert.Equal(t, "14\n", sb.String())

	sb.Reset()
	cfg.Echo = true
	require.NoError(t, evalLine(&sb, "2+3*4", cfg, nil))
	assert.Equal(t, "2 3 4 * + : 14\n", sb.String())

	sb.Reset()
	cfg.Format = "%.2f"
	require.NoError(t, evalLine(&sb, "7/2", cfg, nil))
	assert.Equal(t, "7 2 / : 3.50\n", sb.String())

	sb.Reset()
	err := evalLine(&sb, "{2+3}", cfg, nil)
	assert.ErrorIs(t, err, calculator.ErrInvalidInput)
	assert.Empty(t, sb.String(), "rejected input should write nothing")
}

func TestParseOpts(t *testing.T) {
	cfg := defaultConfig()
	assert.Empty(t, parseOpts(cfg, nil))

	cfg.Single = true
	assert.Len(t, parseOpts(cfg, nil), 1)
	assert.Len(t, parseOpts(cfg, os.Stderr), 2)
}

func TestTraceTo(t *testing.T) {
	assert.Nil(t, traceTo(false))
	assert.Equal(t, os.Stderr, traceTo(true))
}
