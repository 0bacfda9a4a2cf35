package config

import (
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"zero particles allowed", func(c *Config) { c.ParticleCount = 0 }, true},
		{"negative particles", func(c *Config) { c.ParticleCount = -1 }, false},
		{"NaN speed", func(c *Config) { c.Speed = math.NaN() }, false},
		{"infinite speed", func(c *Config) { c.Speed = math.Inf(1) }, false},
		{"negative speed allowed", func(c *Config) { c.Speed = -2 }, true},
		{"zero connection distance", func(c *Config) { c.ConnectionDistance = 0 }, false},
		{"negative glow", func(c *Config) { c.GlowSize = -1 }, false},
		{"zero glow", func(c *Config) { c.GlowSize = 0 }, true},
		{"zero line width", func(c *Config) { c.LineWidth = 0 }, false},
		{"bad color", func(c *Config) { c.Color = "cyan" }, false},
		{"short color", func(c *Config) { c.Color = "#0f0" }, true},
		{"unknown style", func(c *Config) { c.Style = Style(99) }, false},
		{"NaN tilt", func(c *Config) { c.Tilt = math.NaN() }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if tt.ok && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.ok {
				if err == nil {
					t.Error("expected error, got nil")
				} else if !errors.Is(err, ErrInvalid) {
					t.Errorf("expected ErrInvalid, got %v", err)
				}
			}
		})
	}
}

func TestLayoutKey(t *testing.T) {
	base := Default()

	changed := base
	changed.Color = "#ff0000"
	changed.Tilt = 0.3
	changed.ConnectionDistance = 90
	if base.LayoutKey() != changed.LayoutKey() {
		t.Error("non-layout fields must not change the layout key")
	}

	for _, mutate := range []func(*Config){
		func(c *Config) { c.ParticleCount++ },
		func(c *Config) { c.Speed += 0.1 },
		func(c *Config) { c.Style = StyleLattice },
	} {
		c := base
		mutate(&c)
		if c.LayoutKey() == base.LayoutKey() {
			t.Errorf("layout key unchanged after mutation: %+v", c.LayoutKey())
		}
	}
}

func TestApplyPatch(t *testing.T) {
	c := Default()
	out := c.Apply(Patch{Speed: ptr(3.5), Style: ptr(StyleStars)})

	if out.Speed != 3.5 || out.Style != StyleStars {
		t.Errorf("patch not applied: %+v", out)
	}
	if out.Color != c.Color || out.ParticleCount != c.ParticleCount {
		t.Error("nil patch fields must be untouched")
	}
	if c.Speed != 1.2 {
		t.Error("Apply must not mutate the receiver")
	}
}

func TestApplyPreset(t *testing.T) {
	c, err := Default().ApplyPreset("Hyperspace")
	if err != nil {
		t.Fatal(err)
	}
	if c.Style != StyleStars || c.ParticleCount != 200 || c.Theme != "Hyperspace" {
		t.Errorf("unexpected preset result: %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("preset produced invalid config: %v", err)
	}

	if _, err := Default().ApplyPreset("Nope"); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid for unknown preset, got %v", err)
	}
}

func TestAllPresetsValid(t *testing.T) {
	for _, p := range Presets() {
		c, err := Default().ApplyPreset(p.Name)
		if err != nil {
			t.Fatalf("%s: %v", p.Name, err)
		}
		if err := c.Validate(); err != nil {
			t.Errorf("%s: %v", p.Name, err)
		}
	}
}

func TestNextPresetCycles(t *testing.T) {
	all := Presets()
	name := all[0].Name
	for range all {
		name = NextPreset(name)
	}
	if name != all[0].Name {
		t.Errorf("expected full cycle back to %q, got %q", all[0].Name, name)
	}
	if NextPreset("unknown") != all[0].Name {
		t.Error("unknown theme should restart at first preset")
	}
}

func TestStyleText(t *testing.T) {
	for _, s := range Styles() {
		text, err := s.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Style
		if err := back.UnmarshalText(text); err != nil {
			t.Fatal(err)
		}
		if back != s {
			t.Errorf("%s decoded as %s", s, back)
		}
	}

	var s Style
	if err := s.UnmarshalText([]byte("vortex")); err == nil {
		t.Error("expected error for unknown style name")
	}
	if StyleLattice.Next() != StylePlexus {
		t.Error("Next must wrap after the last style")
	}
}

func TestDecodeTOML(t *testing.T) {
	cfg, err := Decode(`
particle_count = 150
style = "lattice"
color = "#00ff41"
matrix_rain = false
`)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ParticleCount != 150 || cfg.Style != StyleLattice || cfg.MatrixRainEnabled {
		t.Errorf("unexpected decode: %+v", cfg)
	}
	if cfg.Speed != Default().Speed {
		t.Error("absent keys must keep defaults")
	}

	if _, err := Decode(`style = "spiral"`); err == nil {
		t.Error("expected error for unknown style")
	}
	if _, err := Decode("glow = 4\n"); !errors.Is(err, ErrInvalid) {
		t.Errorf("unknown key: err = %v, want ErrInvalid", err)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rush.toml")
	if err := os.WriteFile(path, []byte("particle_cnt = 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}

	if err := os.WriteFile(path, []byte("speed = 2.5\ntilt = -0.2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Speed != 2.5 || cfg.Tilt != -0.2 {
		t.Errorf("unexpected load: %+v", cfg)
	}
}

func TestPatchFromJSON(t *testing.T) {
	var p Patch
	data := `{"color":"#bc13fe","particleCount":180,"speed":2.2,"matrixRain":false,"themeName":"Neon","animationStyle":"dna"}`
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		t.Fatal(err)
	}
	c := Default().Apply(p)
	if c.Style != StyleDNA || c.ParticleCount != 180 || c.Theme != "Neon" || c.MatrixRainEnabled {
		t.Errorf("unexpected result: %+v", c)
	}
}
