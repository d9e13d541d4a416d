// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package leitner

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// Difficulty is the outcome of a single practice trial on one card.
type Difficulty int

const (
	Wrong Difficulty = iota // Failed to recall; back to bucket 0.
	Hard                    // Recalled with difficulty; down one bucket.
	Easy                    // Recalled easily; up one bucket.
)

var (
	difficultyNames  = [...]string{Wrong: "Wrong", Hard: "Hard", Easy: "Easy"}
	difficultyByName = map[string]Difficulty{
		"Wrong": Wrong,
		"Hard":  Hard,
		"Easy":  Easy,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Difficulty(0)
	_ json.Marshaler           = Difficulty(0)
	_ json.Unmarshaler         = (*Difficulty)(nil)
	_ encoding.TextMarshaler   = Difficulty(0)
	_ encoding.TextUnmarshaler = (*Difficulty)(nil)
)

// IsValid reports whether d is a valid difficulty (Wrong through Easy).
func (d Difficulty) IsValid() bool {
	return d >= Wrong && d <= Easy
}

// String returns the name of the difficulty ("Wrong", "Hard", "Easy").
// For invalid values it returns "Difficulty(n)".
func (d Difficulty) String() string {
	if d.IsValid() {
		return difficultyNames[d]
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// MarshalText implements encoding.TextMarshaler.
func (d Difficulty) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDifficulty, int(d))
	}
	return []byte(difficultyNames[d]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Matching is exact;
// use ParseDifficulty for case-insensitive user input.
func (d *Difficulty) UnmarshalText(text []byte) error {
	v, ok := difficultyByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidDifficulty, text)
	}
	*d = v
	return nil
}

// MarshalJSON implements json.Marshaler. Difficulty serializes as a JSON string.
func (d Difficulty) MarshalJSON() ([]byte, error) {
	text, err := d.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (d *Difficulty) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDifficulty, data)
	}
	return d.UnmarshalText([]byte(s))
}

// ParseDifficulty converts user input ("easy", "Hard", "WRONG") to a
// Difficulty. Only the first letter is significant.
func ParseDifficulty(s string) (Difficulty, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidDifficulty)
	}
	switch s[0] {
	case 'e', 'E':
		return Easy, nil
	case 'h', 'H':
		return Hard, nil
	case 'w', 'W':
		return Wrong, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
}
