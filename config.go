package karte

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls the window and the glyph sheet.
type Config struct {
	Title   string `yaml:"title"`
	Columns int    `yaml:"columns"` // window width in glyph cells
	Rows    int    `yaml:"rows"`    // window height in glyph cells
	Scale   int    `yaml:"scale"`   // integer window scale
	Sheet   string `yaml:"sheet"`   // glyph sheet image path
	ShowFPS bool   `yaml:"show_fps"`
}

// Editor layout needs room for the sidebar plus a usable canvas.
const (
	minColumns = 40
	minRows    = 30
)

// DefaultConfig returns the stock editor setup.
func DefaultConfig() Config {
	return Config{
		Title:   "Karte",
		Columns: 80,
		Rows:    45,
		Scale:   2,
		Sheet:   "res/curses_16x16.png",
	}
}

// LoadConfig reads the YAML file at path over the defaults. A missing file
// is not an error; the defaults come back unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Columns < minColumns || c.Rows < minRows {
		return fmt.Errorf("grid %dx%d is below the minimum %dx%d",
			c.Columns, c.Rows, minColumns, minRows)
	}
	if c.Scale < 1 {
		return fmt.Errorf("scale %d must be at least 1", c.Scale)
	}
	if c.Sheet == "" {
		return errors.New("sheet path must not be empty")
	}
	return nil
}
