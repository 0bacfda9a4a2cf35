// Package control is the interactive collaborator that owns a copy of the
// configuration, edits it in response to host key presses, and reports status
// through an overlay line. Every edit produces a whole replacement config for
// the engine; the panel never touches scene state directly.
package control

import (
	"fmt"
	"math"
	"strings"

	"github.com/lixenwraith/code-rush/config"
	"github.com/lixenwraith/code-rush/parameter"
)

// Action is one control panel command
type Action int

const (
	ActionNone Action = iota
	ActionNextStyle
	ActionMoreParticles
	ActionFewerParticles
	ActionFaster
	ActionSlower
	ActionTiltUp
	ActionTiltDown
	ActionToggleRain
	ActionWiderLinks
	ActionNarrowerLinks
	ActionThickerLines
	ActionThinnerLines
	ActionMoreGlow
	ActionLessGlow
	ActionNextColor
	ActionNextPreset
	ActionReset
	ActionExplain
	ActionPrompt
	ActionQuit
)

// runeActions maps printable keys shared by every host
var runeActions = map[rune]Action{
	's': ActionNextStyle,
	'+': ActionMoreParticles,
	'=': ActionMoreParticles,
	'-': ActionFewerParticles,
	']': ActionFaster,
	'[': ActionSlower,
	't': ActionTiltUp,
	'T': ActionTiltDown,
	'r': ActionToggleRain,
	'l': ActionWiderLinks,
	'L': ActionNarrowerLinks,
	'w': ActionThickerLines,
	'W': ActionThinnerLines,
	'g': ActionMoreGlow,
	'G': ActionLessGlow,
	'c': ActionNextColor,
	'p': ActionNextPreset,
	'0': ActionReset,
	'x': ActionExplain,
	'/': ActionPrompt,
	'q': ActionQuit,
}

// ActionForRune resolves a printable key
func ActionForRune(r rune) Action {
	return runeActions[r]
}

// Help lists the key bindings for the status line and usage output
const Help = "s style  +/- particles  [/] speed  t/T tilt  l/L links  w/W lines  g/G glow  c color  r rain  p preset  0 reset  / theme  x explain  q quit"

// palette is the color cycle of ActionNextColor
var palette = []string{"#00f2ff", "#00ff41", "#bc13fe", "#ff00ff", "#ffcc00", "#ff3b30", "#ffffff"}

// nextColor returns the palette entry after current, or the first entry for an off-palette color
func nextColor(current string) string {
	for i, c := range palette {
		if strings.EqualFold(c, current) {
			return palette[(i+1)%len(palette)]
		}
	}
	return palette[0]
}

// Panel owns the UI-side configuration copy
// Not safe for concurrent use; hosts call it from their input goroutine
type Panel struct {
	cfg config.Config
}

// NewPanel starts editing from cfg
func NewPanel(cfg config.Config) *Panel {
	return &Panel{cfg: cfg}
}

// Config returns the current configuration copy
func (p *Panel) Config() config.Config {
	return p.cfg
}

// Apply performs a config-editing action
// Returns the new configuration, a status message, and whether the configuration changed
// Non-editing actions (explain, prompt, quit, none) return changed=false
func (p *Panel) Apply(a Action) (config.Config, string, bool) {
	next := p.cfg
	var msg string

	switch a {
	case ActionNextStyle:
		next.Style = next.Style.Next()
		msg = "style " + next.Style.String()
	case ActionMoreParticles:
		next.ParticleCount = clampInt(next.ParticleCount+parameter.ParticleCountStep, parameter.ParticleCountMin, parameter.ParticleCountMax)
		msg = fmt.Sprintf("%d particles", next.ParticleCount)
	case ActionFewerParticles:
		next.ParticleCount = clampInt(next.ParticleCount-parameter.ParticleCountStep, parameter.ParticleCountMin, parameter.ParticleCountMax)
		msg = fmt.Sprintf("%d particles", next.ParticleCount)
	case ActionFaster:
		next.Speed = stepClamp(next.Speed, parameter.SpeedStep, parameter.SpeedMin, parameter.SpeedMax)
		msg = fmt.Sprintf("speed %.1f", next.Speed)
	case ActionSlower:
		next.Speed = stepClamp(next.Speed, -parameter.SpeedStep, parameter.SpeedMin, parameter.SpeedMax)
		msg = fmt.Sprintf("speed %.1f", next.Speed)
	case ActionTiltUp:
		next.Tilt = stepClamp(next.Tilt, parameter.TiltStep, -parameter.TiltMax, parameter.TiltMax)
		msg = fmt.Sprintf("tilt %.1f", next.Tilt)
	case ActionTiltDown:
		next.Tilt = stepClamp(next.Tilt, -parameter.TiltStep, -parameter.TiltMax, parameter.TiltMax)
		msg = fmt.Sprintf("tilt %.1f", next.Tilt)
	case ActionToggleRain:
		next.MatrixRainEnabled = !next.MatrixRainEnabled
		msg = "rain off"
		if next.MatrixRainEnabled {
			msg = "rain on"
		}
	case ActionWiderLinks:
		next.ConnectionDistance = stepClamp(next.ConnectionDistance, parameter.ConnectionDistanceStep, parameter.ConnectionDistanceMin, parameter.ConnectionDistanceMax)
		msg = fmt.Sprintf("links %.0f", next.ConnectionDistance)
	case ActionNarrowerLinks:
		next.ConnectionDistance = stepClamp(next.ConnectionDistance, -parameter.ConnectionDistanceStep, parameter.ConnectionDistanceMin, parameter.ConnectionDistanceMax)
		msg = fmt.Sprintf("links %.0f", next.ConnectionDistance)
	case ActionThickerLines:
		next.LineWidth = stepClamp(next.LineWidth, parameter.LineWidthStep, parameter.LineWidthMin, parameter.LineWidthMax)
		msg = fmt.Sprintf("line width %.1f", next.LineWidth)
	case ActionThinnerLines:
		next.LineWidth = stepClamp(next.LineWidth, -parameter.LineWidthStep, parameter.LineWidthMin, parameter.LineWidthMax)
		msg = fmt.Sprintf("line width %.1f", next.LineWidth)
	case ActionMoreGlow:
		next.GlowSize = stepClamp(next.GlowSize, parameter.GlowSizeStep, 0, parameter.GlowSizeMax)
		msg = fmt.Sprintf("glow %.0f", next.GlowSize)
	case ActionLessGlow:
		next.GlowSize = stepClamp(next.GlowSize, -parameter.GlowSizeStep, 0, parameter.GlowSizeMax)
		msg = fmt.Sprintf("glow %.0f", next.GlowSize)
	case ActionNextColor:
		next.Color = nextColor(next.Color)
		msg = "color " + next.Color
	case ActionNextPreset:
		preset, err := next.ApplyPreset(config.NextPreset(next.Theme))
		if err != nil {
			return p.cfg, err.Error(), false
		}
		next = preset
		msg = "theme " + next.Theme
	case ActionReset:
		next = config.Default()
		msg = "defaults restored"
	default:
		return p.cfg, "", false
	}

	if next == p.cfg {
		return p.cfg, msg, false
	}
	p.cfg = next
	return next, msg, true
}

// ApplyPatch merges a partial configuration, such as a remote suggestion, if the result validates
// Hosts call it on the goroutine that owns the panel, after the request finishes elsewhere
func (p *Panel) ApplyPatch(patch config.Patch) (config.Config, error) {
	next := p.cfg.Apply(patch)
	if err := next.Validate(); err != nil {
		return p.cfg, fmt.Errorf("apply patch: %w", err)
	}
	p.cfg = next
	return next, nil
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// stepClamp adds step and clamps, rounding to one decimal so repeated steps don't drift
func stepClamp(v, step, lo, hi float64) float64 {
	v = math.Round((v+step)*10) / 10
	return max(lo, min(v, hi))
}
