package control

import (
	"errors"
	"testing"

	"github.com/lixenwraith/code-rush/config"
	"github.com/lixenwraith/code-rush/parameter"
)

func TestActionForRune(t *testing.T) {
	tests := []struct {
		r    rune
		want Action
	}{
		{'s', ActionNextStyle},
		{'+', ActionMoreParticles},
		{'=', ActionMoreParticles},
		{'-', ActionFewerParticles},
		{']', ActionFaster},
		{'[', ActionSlower},
		{'t', ActionTiltUp},
		{'T', ActionTiltDown},
		{'r', ActionToggleRain},
		{'p', ActionNextPreset},
		{'0', ActionReset},
		{'x', ActionExplain},
		{'/', ActionPrompt},
		{'l', ActionWiderLinks},
		{'L', ActionNarrowerLinks},
		{'w', ActionThickerLines},
		{'W', ActionThinnerLines},
		{'g', ActionMoreGlow},
		{'G', ActionLessGlow},
		{'c', ActionNextColor},
		{'q', ActionQuit},
		{'z', ActionNone},
	}
	for _, tt := range tests {
		if got := ActionForRune(tt.r); got != tt.want {
			t.Errorf("ActionForRune(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestPanelApply(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		check  func(t *testing.T, before, after config.Config)
	}{
		{"next style", ActionNextStyle, func(t *testing.T, before, after config.Config) {
			if after.Style != before.Style.Next() {
				t.Errorf("style = %v", after.Style)
			}
		}},
		{"more particles", ActionMoreParticles, func(t *testing.T, before, after config.Config) {
			if after.ParticleCount != before.ParticleCount+parameter.ParticleCountStep {
				t.Errorf("count = %d", after.ParticleCount)
			}
		}},
		{"fewer particles", ActionFewerParticles, func(t *testing.T, before, after config.Config) {
			if after.ParticleCount != before.ParticleCount-parameter.ParticleCountStep {
				t.Errorf("count = %d", after.ParticleCount)
			}
		}},
		{"faster", ActionFaster, func(t *testing.T, _, after config.Config) {
			if after.Speed != 1.4 {
				t.Errorf("speed = %v, want 1.4", after.Speed)
			}
		}},
		{"slower", ActionSlower, func(t *testing.T, _, after config.Config) {
			if after.Speed != 1.0 {
				t.Errorf("speed = %v, want 1.0", after.Speed)
			}
		}},
		{"tilt up", ActionTiltUp, func(t *testing.T, _, after config.Config) {
			if after.Tilt != 0.1 {
				t.Errorf("tilt = %v", after.Tilt)
			}
		}},
		{"tilt down", ActionTiltDown, func(t *testing.T, _, after config.Config) {
			if after.Tilt != -0.1 {
				t.Errorf("tilt = %v", after.Tilt)
			}
		}},
		{"rain", ActionToggleRain, func(t *testing.T, before, after config.Config) {
			if after.MatrixRainEnabled == before.MatrixRainEnabled {
				t.Error("rain not toggled")
			}
		}},
		{"wider links", ActionWiderLinks, func(t *testing.T, _, after config.Config) {
			if after.ConnectionDistance != 160 {
				t.Errorf("distance = %v, want 160", after.ConnectionDistance)
			}
		}},
		{"narrower links", ActionNarrowerLinks, func(t *testing.T, _, after config.Config) {
			if after.ConnectionDistance != 140 {
				t.Errorf("distance = %v, want 140", after.ConnectionDistance)
			}
		}},
		{"thicker lines", ActionThickerLines, func(t *testing.T, _, after config.Config) {
			if after.LineWidth != 0.9 {
				t.Errorf("line width = %v, want 0.9", after.LineWidth)
			}
		}},
		{"thinner lines", ActionThinnerLines, func(t *testing.T, _, after config.Config) {
			if after.LineWidth != 0.7 {
				t.Errorf("line width = %v, want 0.7", after.LineWidth)
			}
		}},
		{"more glow", ActionMoreGlow, func(t *testing.T, _, after config.Config) {
			if after.GlowSize != 16 {
				t.Errorf("glow = %v, want 16", after.GlowSize)
			}
		}},
		{"less glow", ActionLessGlow, func(t *testing.T, _, after config.Config) {
			if after.GlowSize != 14 {
				t.Errorf("glow = %v, want 14", after.GlowSize)
			}
		}},
		{"next color", ActionNextColor, func(t *testing.T, before, after config.Config) {
			if after.Color == before.Color || after.Color != nextColor(before.Color) {
				t.Errorf("color = %q", after.Color)
			}
		}},
		{"preset", ActionNextPreset, func(t *testing.T, before, after config.Config) {
			if after.Theme != config.NextPreset(before.Theme) {
				t.Errorf("theme = %q", after.Theme)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := config.Default()
			p := NewPanel(before)
			after, msg, changed := p.Apply(tt.action)
			if !changed {
				t.Fatal("changed = false")
			}
			if msg == "" {
				t.Error("empty status message")
			}
			if p.Config() != after {
				t.Error("panel copy not updated")
			}
			if err := after.Validate(); err != nil {
				t.Errorf("produced invalid config: %v", err)
			}
			tt.check(t, before, after)
		})
	}
}

func TestPanelClamps(t *testing.T) {
	cfg := config.Default()
	cfg.ParticleCount = parameter.ParticleCountMax
	cfg.Speed = parameter.SpeedMin
	p := NewPanel(cfg)

	if _, _, changed := p.Apply(ActionMoreParticles); changed {
		t.Error("count grew past maximum")
	}
	if _, _, changed := p.Apply(ActionSlower); changed {
		t.Error("speed fell below minimum")
	}

	cfg = config.Default()
	cfg.ConnectionDistance = parameter.ConnectionDistanceMax
	cfg.LineWidth = parameter.LineWidthMin
	cfg.GlowSize = 0
	p = NewPanel(cfg)
	if _, _, changed := p.Apply(ActionWiderLinks); changed {
		t.Error("distance grew past maximum")
	}
	if _, _, changed := p.Apply(ActionThinnerLines); changed {
		t.Error("line width fell below minimum")
	}
	if _, _, changed := p.Apply(ActionLessGlow); changed {
		t.Error("glow went negative")
	}
}

func TestNextColorCycles(t *testing.T) {
	if got := nextColor("#123456"); got != palette[0] {
		t.Errorf("off-palette next = %q, want %q", got, palette[0])
	}
	if got := nextColor("#00F2FF"); got != palette[1] {
		t.Errorf("case-insensitive next = %q, want %q", got, palette[1])
	}
	c := palette[0]
	for range palette {
		c = nextColor(c)
	}
	if c != palette[0] {
		t.Errorf("cycle ended at %q, want %q", c, palette[0])
	}
}

func TestPanelNonEditingActions(t *testing.T) {
	p := NewPanel(config.Default())
	for _, a := range []Action{ActionNone, ActionExplain, ActionPrompt, ActionQuit} {
		if _, _, changed := p.Apply(a); changed {
			t.Errorf("action %v changed config", a)
		}
	}
}

func TestPanelResetAfterEdits(t *testing.T) {
	p := NewPanel(config.Default())
	p.Apply(ActionNextStyle)
	p.Apply(ActionToggleRain)
	got, _, changed := p.Apply(ActionReset)
	if !changed || got != config.Default() {
		t.Errorf("reset = %+v, changed %v", got, changed)
	}
}

func TestPanelApplyPatch(t *testing.T) {
	p := NewPanel(config.Default())
	color := "#ff00ff"
	got, err := p.ApplyPatch(config.Patch{Color: &color})
	if err != nil {
		t.Fatalf("ApplyPatch: %v", err)
	}
	if got.Color != color || p.Config().Color != color {
		t.Errorf("color = %q", got.Color)
	}

	bad := "purple"
	if _, err := p.ApplyPatch(config.Patch{Color: &bad}); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
	if p.Config().Color != color {
		t.Error("invalid patch applied")
	}
}

func TestPanelApplySuggestedPatch(t *testing.T) {
	// A suggestion carries a full theme; style and count changes rebuild the store downstream
	p := NewPanel(config.Default())
	style, count, theme := config.StyleDNA, 150, "Neon Helix"
	got, err := p.ApplyPatch(config.Patch{Style: &style, ParticleCount: &count, Theme: &theme})
	if err != nil {
		t.Fatalf("ApplyPatch: %v", err)
	}
	if got.LayoutKey() == config.Default().LayoutKey() {
		t.Error("layout key unchanged by suggested style and count")
	}
	if got.Theme != theme || p.Config() != got {
		t.Errorf("panel config = %+v", p.Config())
	}
}
