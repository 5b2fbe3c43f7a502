// Package config loads the num2text command configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	num2text "github.com/rahmat412/num2text-sub006"
	"github.com/rahmat412/num2text-sub006/internal/logging"
)

// Config is the command configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" yaml:"version"`

	// DefaultLocale is used when no --locale flag is given
	DefaultLocale string `json:"default_locale" yaml:"default_locale"`

	// Locales restricts the bound locales; empty binds every built-in locale
	Locales []string `json:"locales,omitempty" yaml:"locales,omitempty"`

	// FallbackText replaces rejected input in lenient mode
	FallbackText *string `json:"fallback_text,omitempty" yaml:"fallback_text,omitempty"`

	// Fallbacks maps a locale to the locales tried after it
	Fallbacks map[string][]string `json:"fallbacks,omitempty" yaml:"fallbacks,omitempty"`

	// LexiconFiles are merged over the built-in lexicons
	LexiconFiles []string `json:"lexicon_files,omitempty" yaml:"lexicon_files,omitempty"`

	// CultureData replaces the embedded culture data
	CultureData string `json:"culture_data,omitempty" yaml:"culture_data,omitempty"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" yaml:"logging"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version:       "1.0",
		DefaultLocale: "en",
		Logging:       logging.DefaultConfig(),
	}
}

// Load reads a JSON or YAML file over the defaults. A missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("config: unsupported extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	// Relative lexicon and culture paths are taken from the config file's directory.
	base := filepath.Dir(path)
	for i, p := range cfg.LexiconFiles {
		cfg.LexiconFiles[i] = resolve(base, p)
	}
	if cfg.CultureData != "" {
		cfg.CultureData = resolve(base, cfg.CultureData)
	}
	return cfg, nil
}

func resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// Options translates the configuration into registry options.
func (c *Config) Options() []num2text.Option {
	opts := []num2text.Option{
		num2text.WithDefaultLocale(c.DefaultLocale),
		num2text.WithLocales(c.Locales...),
	}
	if c.FallbackText != nil {
		opts = append(opts, num2text.WithFallbackText(*c.FallbackText))
	}
	for locale, fallbacks := range c.Fallbacks {
		opts = append(opts, num2text.WithFallback(locale, fallbacks...))
	}
	if len(c.LexiconFiles) > 0 {
		opts = append(opts, num2text.WithLexiconFiles(c.LexiconFiles...))
	}
	if c.CultureData != "" {
		opts = append(opts, num2text.WithCultureData(c.CultureData))
	}
	return opts
}
