package config

import (
	"os"
	"path/filepath"
	"testing"

	num2text "github.com/rahmat412/num2text-sub006"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultLocale != "en" {
		t.Fatalf("DefaultLocale = %q; want en", cfg.DefaultLocale)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("Logging.Level = %q; want warn", cfg.Logging.Level)
	}
}

func TestLoadFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "yaml",
			file: "num2text.yaml",
			content: `default_locale: ru
locales: [ru, en]
fallback_text: "?"
lexicon_files: [extra.yaml]
logging:
  level: debug
`,
		},
		{
			name: "json",
			file: "num2text.json",
			content: `{"default_locale": "ru", "locales": ["ru", "en"], "fallback_text": "?",
"lexicon_files": ["extra.yaml"], "logging": {"level": "debug"}}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}

			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.DefaultLocale != "ru" || len(cfg.Locales) != 2 {
				t.Fatalf("Load = %+v; want ru with two locales", cfg)
			}
			if cfg.FallbackText == nil || *cfg.FallbackText != "?" {
				t.Fatalf("FallbackText = %v; want ?", cfg.FallbackText)
			}
			if want := filepath.Join(dir, "extra.yaml"); cfg.LexiconFiles[0] != want {
				t.Fatalf("LexiconFiles[0] = %q; want %q", cfg.LexiconFiles[0], want)
			}
			if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
				t.Fatalf("Logging = %+v; want debug over console default", cfg.Logging)
			}
		})
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "num2text.ini")
	if err := os.WriteFile(path, []byte("x=1"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load(.ini) = nil error; want error")
	}
}

func TestOptionsBuildRegistry(t *testing.T) {
	fallback := "n/a"
	cfg := Default()
	cfg.DefaultLocale = "ru"
	cfg.Locales = []string{"en", "ru"}
	cfg.FallbackText = &fallback
	cfg.Fallbacks = map[string][]string{"uk": {"ru"}}

	registry, err := num2text.NewRegistry(cfg.Options()...)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if got := registry.DefaultLocale(); got != "ru" {
		t.Fatalf("DefaultLocale() = %q; want ru", got)
	}
	if got := registry.Convert("uk", 2, num2text.Options{}); got != "два" {
		t.Fatalf(`Convert("uk", 2) = %q; want два`, got)
	}
	if got := registry.Convert("en", "abc", num2text.Options{}); got != fallback {
		t.Fatalf(`Convert("en", "abc") = %q; want %q`, got, fallback)
	}
}
