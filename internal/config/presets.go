package config

// Presets are named force tunings for common graph shapes.
var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"dense": {
		Viewport: ViewportConfig{Width: DefaultWidth, Height: DefaultHeight},
		Forces:   ForcesConfig{Repel: 700, Center: 0.003, Link: 0.05, Damping: 0.82},
		SettleMs: DefaultSettleMs, Warmup: 160, Theme: "ink",
	},
	"airy": {
		Viewport: ViewportConfig{Width: 1000, Height: 750},
		Forces:   ForcesConfig{Repel: 550, Center: 0.0012, Link: 0.03, Damping: 0.88},
		SettleMs: 1200, Warmup: DefaultWarmup, Theme: "ink",
	},
	"calm": {
		Viewport: ViewportConfig{Width: DefaultWidth, Height: DefaultHeight},
		Forces:   ForcesConfig{Repel: 300, Center: 0.002, Link: 0.02, Damping: 0.9},
		SettleMs: DefaultSettleMs, Warmup: 200, Theme: "paper",
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
