package report

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Report definition validation errors.
var (
	ErrEmptyTitle      = errors.New("title is required")
	ErrInvalidPreview  = errors.New("preview_rows must be non-negative")
	ErrInvalidTopN     = errors.New("top_products must be at least 1")
	ErrInvalidNoteKind = errors.New("note kind must be one of: info, success, warning")
)

// Note is one narrative annotation attached to a report section.
type Note struct {
	Kind string `yaml:"kind"` // info, success or warning
	Text string `yaml:"text"`
}

// Notes holds the annotations per report section.
type Notes struct {
	Intro    []Note `yaml:"intro"`
	Preview  []Note `yaml:"preview"`
	Products []Note `yaml:"products"`
	Payments []Note `yaml:"payments"`
	Hourly   []Note `yaml:"hourly"`
	Weekday  []Note `yaml:"weekday"`
	Monthly  []Note `yaml:"monthly"`
	Insights []Note `yaml:"insights"`
}

// Config is the report definition: titles, sizes and narrative text.
// The aggregation semantics themselves are fixed; only presentation knobs
// live here.
type Config struct {
	Title       string `yaml:"title"`
	PreviewRows int    `yaml:"preview_rows"`
	TopProducts int    `yaml:"top_products"`
	Notes       Notes  `yaml:"notes"`
}

// DefaultConfig mirrors the stock dashboard: top-10 products, a 100-row
// preview and the standard annotations.
func DefaultConfig() Config {
	return Config{
		Title:       "Sample Coffee Shop Sales Dashboard",
		PreviewRows: 100,
		TopProducts: 10,
		Notes: Notes{
			Intro: []Note{{Kind: "info", Text: "This dashboard allows businesses to make informed decisions based on their own data, allowing them to improve efficiency and ultimately increase profit."}},
			Preview: []Note{{Kind: "info", Text: "This shows a sample of our data."}},
			Products: []Note{{Kind: "info", Text: "Latte is the biggest seller, followed by Americano with milk."}},
			Payments: []Note{{Kind: "info", Text: "All sales are made via card, suggesting customers prefer cashless payment methods."}},
			Hourly: []Note{
				{Kind: "success", Text: "On average, more money is spent from 4pm onwards."},
				{Kind: "warning", Text: "Sales are lower in the morning; consider promotions."},
			},
			Weekday: []Note{
				{Kind: "success", Text: "Peak sales occur on Monday and Tuesday - ideal for promoting combo deals."},
				{Kind: "warning", Text: "Sales are lower on weekends; consider promotions."},
			},
			Monthly: []Note{
				{Kind: "success", Text: "Peak sales occur in March and October."},
				{Kind: "warning", Text: "Sales are lower in January and April; consider promotions."},
			},
			Insights: []Note{
				{Kind: "success", Text: "Peak sales occur in the evenings, on Mondays and Tuesdays, and in March and October. These are the best times to consider upselling and/or cross-selling e.g. premium versions or combo versions."},
				{Kind: "warning", Text: "Sales are lower in the morning, on weekends, and January and April. Consider running promotions e.g. \"student\" days with small discounts, launch seasonal menu items, or early-bird/night-owl offers."},
			},
		},
	}
}

// LoadConfig reads a YAML report definition. Fields left empty fall back to
// the defaults, so a definition file only needs the overrides.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read report config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse report config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("report config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Title == "" {
		return ErrEmptyTitle
	}
	if c.PreviewRows < 0 {
		return ErrInvalidPreview
	}
	if c.TopProducts < 1 {
		return ErrInvalidTopN
	}
	for _, notes := range [][]Note{
		c.Notes.Intro, c.Notes.Preview, c.Notes.Products, c.Notes.Payments,
		c.Notes.Hourly, c.Notes.Weekday, c.Notes.Monthly, c.Notes.Insights,
	} {
		for _, n := range notes {
			switch n.Kind {
			case "info", "success", "warning":
			default:
				return fmt.Errorf("%w: %q", ErrInvalidNoteKind, n.Kind)
			}
		}
	}
	return nil
}
