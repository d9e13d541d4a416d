// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package trainer

import (
	"time"

	"github.com/mtreilly/leitner-box/internal/leitner"
)

// Card is a stored flashcard with its current Leitner bucket. The pure
// scheduling core works on leitner.Card values; this type adds the
// identity and bookkeeping needed for persistence.
type Card struct {
	ID        string    `json:"id" yaml:"id"`
	Front     string    `json:"front" yaml:"front"`
	Back      string    `json:"back,omitempty" yaml:"back,omitempty"`
	Hint      string    `json:"hint,omitempty" yaml:"hint,omitempty"`
	Tags      []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
	Bucket    int       `json:"bucket" yaml:"bucket"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// Trial is one graded practice attempt, the persistent form of
// leitner.Trial.
type Trial struct {
	ID          string             `json:"id"`
	CardID      string             `json:"card_id"`
	Day         int                `json:"day"`
	Difficulty  leitner.Difficulty `json:"difficulty"`
	PracticedAt time.Time          `json:"practiced_at"`
}

// CardListOptions filters card listing.
type CardListOptions struct {
	Tag    string
	Search string // substring match on front/back
	Bucket *int   // nil = any bucket
	Limit  int
}

// ImportResult summarizes a deck import.
type ImportResult struct {
	TotalProcessed int
	Created        int
	Updated        int
	Skipped        int
	Errors         []string
}
