package leitner

import (
	"strings"
	"testing"
)

func TestPromptHintBlank(t *testing.T) {
	for _, front := range []string{"", "   ", "\t\n "} {
		c := NewCard(front, "back")
		if got := PromptHint(c); got != NoHint {
			t.Errorf("PromptHint(%q) = %q, want %q", front, got, NoHint)
		}
	}
}

func TestPromptHintWordAccumulation(t *testing.T) {
	tests := []struct {
		front string
		want  string
	}{
		{"Capital of France?", "Capital of"},
		{"Who won?", "Who won?"},
		{"a b c d e f g h", "a b c d e"},
		{"Hello", "Hello"},
	}
	for _, tt := range tests {
		c := NewCard(tt.front, "back")
		if got := PromptHint(c); got != tt.want {
			t.Errorf("PromptHint(%q) = %q, want %q", tt.front, got, tt.want)
		}
	}
}

func TestPromptHintLongFirstWordFallback(t *testing.T) {
	c := NewCard("Supercalifragilistic word", "back")
	if got := PromptHint(c); got != "Super" {
		t.Errorf("PromptHint = %q, want %q", got, "Super")
	}
}

func TestPromptHintShortPrompt(t *testing.T) {
	c := NewCard("ab", "back")
	if got := PromptHint(c); got != "ab" {
		t.Errorf("PromptHint = %q, want %q", got, "ab")
	}
}

func TestPromptHintPreservesCasing(t *testing.T) {
	c := NewCard("WHO am I?", "back")
	if got := PromptHint(c); got != "WHO am I?" {
		t.Errorf("PromptHint = %q, want %q", got, "WHO am I?")
	}
}

func TestPromptHintIsPromptDerived(t *testing.T) {
	fronts := []string{
		"Capital of France?",
		"One two three four five six",
		"Antidisestablishmentarianism",
		"x",
		"  leading spaces kept",
	}
	for _, front := range fronts {
		got := PromptHint(NewCard(front, "back"))
		if got == NoHint {
			t.Errorf("PromptHint(%q) returned the placeholder", front)
			continue
		}
		// Either a space-joined run of leading words or a raw prefix.
		joined := strings.Join(strings.Fields(front), " ")
		if !strings.HasPrefix(joined, got) && !strings.HasPrefix(front, got) {
			t.Errorf("PromptHint(%q) = %q is not derived from the prompt", front, got)
		}
	}
}

func TestPromptHintIgnoresAuthorHint(t *testing.T) {
	c := &Card{Front: "Capital of France?", Back: "Paris", Hint: "starts with P"}
	if got := PromptHint(c); got != "Capital of" {
		t.Errorf("PromptHint = %q, want %q", got, "Capital of")
	}
}
