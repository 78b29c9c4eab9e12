package main

import (
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// loadConfig is a [kong.ConfigurationLoader] for YAML files whose keys are
// flag names:
//
//	log-level: debug
//	workers: 4
//	skip_errors: true
//
// Nested mappings join their keys with a hyphen, so the following also sets
// --log-level and --log-format:
//
//	log:
//	  level: debug
//	  format: json
//
// Command-line flags override config file values.
func loadConfig(r io.Reader) (kong.Resolver, error) {
	var doc map[string]any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return config{}, nil
		}
		return nil, errors.Wrap(err, "invalid configuration file")
	}
	cfg := config{}
	cfg.flatten("", doc)
	return cfg, nil
}

// config implements [kong.Resolver] over a flattened YAML document.
type config map[string]any

func (c config) flatten(prefix string, m map[string]any) {
	for k, v := range m {
		key := strings.ReplaceAll(k, "_", "-")
		if prefix != "" {
			key = prefix + "-" + key
		}
		switch v := v.(type) {
		case map[string]any:
			c.flatten(key, v)
		case int:
			// Kong parses numbers from strings.
			c[key] = strconv.Itoa(v)
		case float64:
			c[key] = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			c[key] = v
		}
	}
}

// Validate implements [kong.Resolver].
func (c config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (c config) Resolve(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
	if value, ok := c[flag.Name]; ok {
		return value, nil
	}
	return nil, nil
}
