package control

import (
	"strings"
	"testing"

	"github.com/lixenwraith/code-rush/parameter"
)

func TestPromptEditing(t *testing.T) {
	var p Prompt
	p.Insert('x')
	if p.Active() || p.Line() != "" {
		t.Fatal("closed prompt accepted input")
	}

	p.Open()
	for _, r := range "neon  city!" {
		p.Insert(r)
	}
	p.Insert('\t')
	p.Backspace()
	if got := p.Line(); got != "theme> neon  city_" {
		t.Errorf("line = %q", got)
	}

	text, ok := p.Submit()
	if !ok || text != "neon  city" {
		t.Errorf("Submit = %q, %v", text, ok)
	}
	if p.Active() {
		t.Error("prompt still open after submit")
	}
}

func TestPromptSubmitBlank(t *testing.T) {
	var p Prompt
	p.Open()
	p.Insert(' ')
	if _, ok := p.Submit(); ok {
		t.Error("blank prompt submitted")
	}
}

func TestPromptCancelAndReopen(t *testing.T) {
	var p Prompt
	p.Open()
	p.Insert('a')
	p.Cancel()
	if p.Active() {
		t.Fatal("cancel left prompt open")
	}
	p.Open()
	if got := p.Line(); got != "theme> _" {
		t.Errorf("reopened line = %q", got)
	}
}

func TestPromptMaxRunes(t *testing.T) {
	var p Prompt
	p.Open()
	for range parameter.PromptMaxRunes + 10 {
		p.Insert('é')
	}
	text, _ := p.Submit()
	if n := len([]rune(text)); n != parameter.PromptMaxRunes {
		t.Errorf("kept %d runes, want %d", n, parameter.PromptMaxRunes)
	}
	if strings.ContainsRune(text, 0) {
		t.Error("control rune kept")
	}
}
