// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package trainer

// TrainerStore is the interface for persisting cards, bucket state, the
// trial history, and the study-day counter. Implementations may use SQL or
// in-memory structures.
type TrainerStore interface {
	// Card operations
	AddCard(*Card) error
	GetCard(id string) (*Card, error)
	GetCardByFront(front string) (*Card, error)
	ListCards(opts *CardListOptions) ([]*Card, error)
	UpdateCard(*Card) error
	SetBucket(cardID string, bucket int) error
	DeleteCard(id string) error

	// Trial history (append-only log)
	RecordTrial(*Trial) error
	ListTrials(cardID string) ([]*Trial, error) // empty cardID = all trials

	// Study-day counter
	Day() (int, error)
	SetDay(day int) error

	Close() error
}

// Compile-time interface checks.
var (
	_ TrainerStore = (*Store)(nil)
	_ TrainerStore = (*MemStore)(nil)
)
