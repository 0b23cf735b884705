// Package config holds the CLI configuration, read from an optional
// YAML file. Command-line flags override file values.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Endpoint is the GraphQL endpoint URL for exec and introspect.
	Endpoint string `yaml:"endpoint"`

	// Headers are added to every request, e.g. an Authorization header.
	Headers map[string]string `yaml:"headers"`

	// Timeout bounds a round trip when the caller's context carries no
	// deadline. 0 disables the default timeout.
	Timeout Duration `yaml:"timeout"`

	// MaxResponseBytes caps response bodies. 0 means unlimited.
	MaxResponseBytes int64 `yaml:"max_response_bytes"`

	// Format selects the rendering mode: "compact" or "indented".
	Format string `yaml:"format"`

	// Otel configures trace export. Disabled while Endpoint is empty.
	Otel OtelConfig `yaml:"otel"`
}

type OtelConfig struct {
	Endpoint string `yaml:"endpoint"`
	Service  string `yaml:"service"`
}

// Duration is a time.Duration that unmarshals from YAML scalars like
// "30s" or "1m30s", or from plain integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!int" {
		var n int64
		if err := value.Decode(&n); err != nil {
			return err
		}
		*d = Duration(n)
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("invalid duration at line %d", value.Line)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q", s)
	}
	*d = Duration(parsed)
	return nil
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Timeout: Duration(10 * time.Second),
		Format:  "compact",
		Otel:    OtelConfig{Service: "gqlcompose"},
	}
}

// Load reads a YAML configuration file using strict parsing, starting
// from the defaults. An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer file.Close()

	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
