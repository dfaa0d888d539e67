package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/mindgraph/internal/engine"
	"github.com/san-kum/mindgraph/internal/forces"
	"github.com/san-kum/mindgraph/internal/graph"
)

const (
	DefaultWidth    = 800.0
	DefaultHeight   = 600.0
	DefaultSettleMs = 800
	DefaultWarmup   = 100
)

type Config struct {
	Viewport ViewportConfig `yaml:"viewport"`
	Forces   ForcesConfig   `yaml:"forces"`
	SettleMs int            `yaml:"settle_ms"`
	Warmup   int            `yaml:"warmup_ticks"`
	Seed     int64          `yaml:"seed"`
	Filters  []string       `yaml:"filters"`
	Theme    string         `yaml:"theme"`
}

type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type ForcesConfig struct {
	Repel   float64 `yaml:"repel"`
	Center  float64 `yaml:"center"`
	Link    float64 `yaml:"link"`
	Damping float64 `yaml:"damping"`
}

func DefaultConfig() *Config {
	co := forces.Defaults()
	return &Config{
		Viewport: ViewportConfig{Width: DefaultWidth, Height: DefaultHeight},
		Forces: ForcesConfig{
			Repel:   co.Repel,
			Center:  co.Center,
			Link:    co.Link,
			Damping: co.Damping,
		},
		SettleMs: DefaultSettleMs,
		Warmup:   DefaultWarmup,
		Theme:    "ink",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects configurations the engine cannot run with.
func (c *Config) Validate() error {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("config: viewport must be positive, got %gx%g", c.Viewport.Width, c.Viewport.Height)
	}
	if c.Forces.Damping <= 0 || c.Forces.Damping >= 1 {
		return fmt.Errorf("config: damping must be in (0,1), got %g", c.Forces.Damping)
	}
	if c.SettleMs <= 0 {
		return fmt.Errorf("config: settle_ms must be positive, got %d", c.SettleMs)
	}
	for _, f := range c.Filters {
		if !validType(f) {
			return fmt.Errorf("config: unknown filter type %q", f)
		}
	}
	return nil
}

func validType(s string) bool {
	for _, t := range graph.Types {
		if string(t) == s {
			return true
		}
	}
	return false
}

// Options converts the file configuration into engine options.
func (c *Config) Options() engine.Options {
	filters := make([]graph.NodeType, 0, len(c.Filters))
	for _, f := range c.Filters {
		filters = append(filters, graph.NodeType(f))
	}
	return engine.Options{
		Width:  c.Viewport.Width,
		Height: c.Viewport.Height,
		Coefficients: forces.Coefficients{
			Repel:   c.Forces.Repel,
			Center:  c.Forces.Center,
			Link:    c.Forces.Link,
			Damping: c.Forces.Damping,
		},
		SettleDuration: time.Duration(c.SettleMs) * time.Millisecond,
		WarmStartTicks: c.Warmup,
		Seed:           c.Seed,
		Filters:        filters,
	}
}
