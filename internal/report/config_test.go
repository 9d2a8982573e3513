package report

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.PreviewRows != 100 || cfg.TopProducts != 10 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	doc := `title: "Roastery Weekly"
top_products: 5
notes:
  insights:
    - kind: success
      text: "Espresso drives the morning rush."
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Title != "Roastery Weekly" || cfg.TopProducts != 5 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Untouched fields keep their defaults.
	if cfg.PreviewRows != 100 {
		t.Errorf("PreviewRows = %d, want default 100", cfg.PreviewRows)
	}
	if len(cfg.Notes.Insights) != 1 || cfg.Notes.Insights[0].Text != "Espresso drives the morning rush." {
		t.Errorf("insight override not applied: %+v", cfg.Notes.Insights)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"empty title", func(c *Config) { c.Title = "" }, ErrEmptyTitle},
		{"negative preview", func(c *Config) { c.PreviewRows = -1 }, ErrInvalidPreview},
		{"zero top products", func(c *Config) { c.TopProducts = 0 }, ErrInvalidTopN},
		{"bad note kind", func(c *Config) {
			c.Notes.Hourly = []Note{{Kind: "shout", Text: "x"}}
		}, ErrInvalidNoteKind},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
