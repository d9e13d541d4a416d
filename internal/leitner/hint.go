// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package leitner

import "strings"

// NoHint is returned by PromptHint when the card's prompt is empty or all
// whitespace.
const NoHint = "No hint available"

const (
	// hintMinLen is the shortest useful hint; the prefix fallback cuts the
	// prompt at this many characters.
	hintMinLen = 5
	// hintMaxLen caps the word-accumulation phase.
	hintMaxLen = 2 * hintMinLen
)

// PromptHint derives a partial-reveal hint from the card's prompt. Whole
// words are accumulated, space-separated, while the running hint fits in
// hintMaxLen characters. If the accumulation ends up shorter than
// hintMinLen (a long first word, for example), the hint falls back to the
// first hintMinLen characters of the prompt, even mid-word.
//
// Casing and punctuation are preserved verbatim. The author-supplied
// Card.Hint is a presentation concern and is not consulted here.
func PromptHint(card *Card) string {
	prompt := card.Front
	words := strings.Fields(prompt)
	if len(words) == 0 {
		return NoHint
	}

	var b strings.Builder
	for _, w := range words {
		next := b.Len() + len(w)
		if b.Len() > 0 {
			next++ // separator
		}
		if next > hintMaxLen {
			break
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w)
	}

	if b.Len() >= hintMinLen {
		return b.String()
	}
	runes := []rune(prompt)
	if len(runes) <= hintMinLen {
		return prompt
	}
	return string(runes[:hintMinLen])
}
