package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	in := `
log:
  level: debug
  format: json
workers: 4
skip_errors: true
profile-dir: /tmp/prof
`
	r, err := loadConfig(strings.NewReader(in))
	require.NoError(t, err)

	cfg, ok := r.(config)
	require.True(t, ok)
	assert.Equal(t, config{
		"log-level":   "debug",
		"log-format":  "json",
		"workers":     "4",
		"skip-errors": true,
		"profile-dir": "/tmp/prof",
	}, cfg)
}

func TestLoadConfigEmpty(t *testing.T) {
	r, err := loadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config{}, r)
}

func TestLoadConfigInvalid(t *testing.T) {
	_, err := loadConfig(strings.NewReader("log: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration file")
}
