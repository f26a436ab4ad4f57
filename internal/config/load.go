package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultPath returns the conventional config file location
// (~/.config/cronspeak/config.yaml), or "" when no home is known.
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "cronspeak", "config.yaml")
}

// Load reads a config file and overlays it on the built-in defaults.
//
// A missing file is not an error: the tool works with defaults alone.
// Present-but-invalid files are errors so typos never degrade silently
// (unknown keys are rejected, as is trailing data).
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	jb, _, err := coerceToJSONBytes(path, b)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(jb))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	// reject trailing tokens (e.g. concatenated JSON)
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return cfg, fmt.Errorf("config %s: trailing data", path)
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "warn"
	}
	if cfg.Output.Color == "" {
		cfg.Output.Color = "auto"
	}
	if cfg.Output.NextRuns == 0 {
		cfg.Output.NextRuns = 3
	}
	return cfg, nil
}
