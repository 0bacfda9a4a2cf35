package control

import (
	"strings"

	"github.com/lixenwraith/code-rush/parameter"
)

// Prompt is the one-line text entry for theme descriptions
// Owned by the host input goroutine like Panel
type Prompt struct {
	active bool
	text   []rune
}

// Active reports whether keys should go to the prompt
func (p *Prompt) Active() bool {
	return p.active
}

// Open starts an empty entry
func (p *Prompt) Open() {
	p.active = true
	p.text = p.text[:0]
}

// Insert appends r; control characters and overflow are ignored
func (p *Prompt) Insert(r rune) {
	if !p.active || r < ' ' || r == 0x7f || len(p.text) >= parameter.PromptMaxRunes {
		return
	}
	p.text = append(p.text, r)
}

// Backspace drops the last rune
func (p *Prompt) Backspace() {
	if p.active && len(p.text) > 0 {
		p.text = p.text[:len(p.text)-1]
	}
}

// Cancel closes the entry without a result
func (p *Prompt) Cancel() {
	p.active = false
	p.text = p.text[:0]
}

// Submit closes the entry and returns the trimmed text
// ok is false when nothing but whitespace was typed
func (p *Prompt) Submit() (string, bool) {
	text := strings.TrimSpace(string(p.text))
	p.Cancel()
	return text, text != ""
}

// Line renders the entry for the status line, empty when closed
func (p *Prompt) Line() string {
	if !p.active {
		return ""
	}
	return "theme> " + string(p.text) + "_"
}
