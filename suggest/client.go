// Package suggest asks a Gemini model, through the genai SDK, to propose
// themes and to describe the running animation.
//
// Results are plain values: a theme arrives as a config.Patch and is applied
// through the same path as a key press or a preset. Nothing here touches the
// frame loop; callers run requests on their own goroutine with a deadline.
package suggest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"os"
	"strings"

	"google.golang.org/genai"

	"github.com/lixenwraith/code-rush/config"
	"github.com/lixenwraith/code-rush/parameter"
)

const (
	// DefaultModel is used when Options.Model is empty
	DefaultModel = "gemini-3-pro-preview"

	// FallbackExplanation is shown when the service returns no text
	FallbackExplanation = "No explanation available at this time."
)

// ErrEmptyResponse is returned when the service answers without any text part
var ErrEmptyResponse = errors.New("empty response from suggestion service")

// Options configures New; BaseURL and HTTP are for tests and proxies
type Options struct {
	APIKey  string
	Model   string
	BaseURL string
	HTTP    *http.Client
}

// Client issues generateContent requests through the genai SDK
type Client struct {
	gc    *genai.Client
	model string
}

// New builds a client for the Gemini API backend
func New(ctx context.Context, opts Options) (*Client, error) {
	if opts.APIKey == "" {
		return nil, errors.New("suggest: missing API key")
	}
	model := opts.Model
	if model == "" {
		model = DefaultModel
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      opts.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  opts.HTTP,
		HTTPOptions: genai.HTTPOptions{BaseURL: opts.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("suggest: %w", err)
	}
	return &Client{gc: gc, model: model}, nil
}

// Model reports the model requests are sent to
func (c *Client) Model() string {
	return c.model
}

// APIKeyEnv lists the environment variables consulted by FromEnv, in order
var APIKeyEnv = []string{"GEMINI_API_KEY", "API_KEY"}

// FromEnv returns a client for model using the first API key found in the environment
// It returns nil and no error when no key is set
func FromEnv(ctx context.Context, model string) (*Client, error) {
	for _, name := range APIKeyEnv {
		if key := os.Getenv(name); key != "" {
			return New(ctx, Options{APIKey: key, Model: model})
		}
	}
	return nil, nil
}

// themeSchema constrains the JSON-mode answer of SuggestTheme
var themeSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"color":          {Type: genai.TypeString},
		"particleCount":  {Type: genai.TypeNumber},
		"speed":          {Type: genai.TypeNumber},
		"matrixRain":     {Type: genai.TypeBoolean},
		"themeName":      {Type: genai.TypeString},
		"animationStyle": {Type: genai.TypeString},
	},
	Required: []string{"color", "particleCount", "speed", "matrixRain", "themeName", "animationStyle"},
}

// themeAnswer is decoded loosely; numbers may arrive as floats and the style as any string
type themeAnswer struct {
	Color          *string  `json:"color"`
	ParticleCount  *float64 `json:"particleCount"`
	Speed          *float64 `json:"speed"`
	MatrixRain     *bool    `json:"matrixRain"`
	ThemeName      *string  `json:"themeName"`
	AnimationStyle *string  `json:"animationStyle"`
}

// SuggestTheme asks for a configuration matching a free-text description
// Count and speed are clamped to the suggestion range; an unknown style is dropped from the patch
func (c *Client) SuggestTheme(ctx context.Context, prompt string) (config.Patch, error) {
	text, err := c.generate(ctx, themePrompt(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   themeSchema,
	})
	if err != nil {
		return config.Patch{}, fmt.Errorf("suggest theme: %w", err)
	}

	var ans themeAnswer
	if err := json.Unmarshal([]byte(text), &ans); err != nil {
		return config.Patch{}, fmt.Errorf("suggest theme: decode answer: %w", err)
	}
	return ans.patch(), nil
}

func (a themeAnswer) patch() config.Patch {
	var p config.Patch
	if a.Color != nil {
		p.Color = a.Color
	}
	if a.ParticleCount != nil && !math.IsNaN(*a.ParticleCount) {
		// Clamp before converting; huge floats overflow int
		f := min(max(math.Round(*a.ParticleCount), parameter.SuggestParticleMin), parameter.SuggestParticleMax)
		n := int(f)
		p.ParticleCount = &n
	}
	if a.Speed != nil && !math.IsNaN(*a.Speed) {
		s := min(max(*a.Speed, parameter.SuggestSpeedMin), parameter.SuggestSpeedMax)
		p.Speed = &s
	}
	if a.MatrixRain != nil {
		p.MatrixRainEnabled = a.MatrixRain
	}
	if a.ThemeName != nil {
		p.Theme = a.ThemeName
	}
	if a.AnimationStyle != nil {
		style, err := config.ParseStyle(strings.ToLower(strings.TrimSpace(*a.AnimationStyle)))
		if err != nil {
			log.Printf("suggest: dropping style: %v", err)
		} else {
			p.Style = &style
		}
	}
	return p
}

// Explain asks for prose describing the algorithm behind the active style
func (c *Client) Explain(ctx context.Context, cfg config.Config) (string, error) {
	text, err := c.generate(ctx, explainPrompt(cfg), nil)
	if err != nil {
		return "", fmt.Errorf("explain: %w", err)
	}
	return strings.TrimSpace(text), nil
}

func themePrompt(prompt string) string {
	names := make([]string, 0, len(config.Styles()))
	for _, s := range config.Styles() {
		names = append(names, "'"+s.String()+"'")
	}
	return fmt.Sprintf("Propose an animation configuration for a tech background based on: %q.\n"+
		"Choose a style from: %s. 'stars' is a 3D hyperspace, 'dna' a 3D helix, 'lattice' a 3D grid.\n"+
		"Return a JSON object with: color (hex), particleCount (%d-%d), speed (%.1f-%.1f), matrixRain (boolean), themeName, and animationStyle.",
		prompt, strings.Join(names, ", "),
		parameter.SuggestParticleMin, parameter.SuggestParticleMax,
		parameter.SuggestSpeedMin, parameter.SuggestSpeedMax)
}

func explainPrompt(cfg config.Config) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Explain the '%s' algorithm in this animation.\n", cfg.Style)
	fmt.Fprintf(&b, "Settings: Color %s, Particles %d.\n", cfg.Color, cfg.ParticleCount)
	switch cfg.Style {
	case config.StyleStars, config.StyleDNA, config.StyleLattice:
		b.WriteString("Explain the 3D perspective projection and rotation math.")
	}
	return b.String()
}

// generate sends one prompt and returns the text of the first candidate
func (c *Client) generate(ctx context.Context, prompt string, gcfg *genai.GenerateContentConfig) (string, error) {
	resp, err := c.gc.Models.GenerateContent(ctx, c.model, genai.Text(prompt), gcfg)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("status %d: %s", apiErr.Code, apiErr.Message)
		}
		return "", err
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
