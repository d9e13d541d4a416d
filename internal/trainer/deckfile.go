// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package trainer

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mtreilly/leitner-box/internal/leitner"
)

// DeckFile is the YAML interchange format for decks of cards.
type DeckFile struct {
	Name  string     `yaml:"name,omitempty" json:"name,omitempty"`
	Cards []DeckCard `yaml:"cards" json:"cards"`
}

// DeckCard is one card in a deck file. Bucket is optional and defaults to
// 0 (new card); values outside 0..5 are clamped on import.
type DeckCard struct {
	Front  string   `yaml:"front" json:"front"`
	Back   string   `yaml:"back,omitempty" json:"back,omitempty"`
	Hint   string   `yaml:"hint,omitempty" json:"hint,omitempty"`
	Tags   []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Bucket int      `yaml:"bucket,omitempty" json:"bucket,omitempty"`
}

// ReadDeckFile parses a YAML deck file.
func ReadDeckFile(path string) (*DeckFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck file: %w", err)
	}
	var deck DeckFile
	if err := yaml.Unmarshal(data, &deck); err != nil {
		return nil, fmt.Errorf("parse deck file: %w", err)
	}
	return &deck, nil
}

// WriteDeckFile writes the deck as YAML to path.
func WriteDeckFile(path string, deck *DeckFile) error {
	data, err := yaml.Marshal(deck)
	if err != nil {
		return fmt.Errorf("marshal deck: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write deck file: %w", err)
	}
	return nil
}

// clampBucket forces a bucket into the valid 0..RetiredBucket range.
func clampBucket(b int) int {
	if b < 0 {
		return 0
	}
	if b > leitner.RetiredBucket {
		return leitner.RetiredBucket
	}
	return b
}

// ImportDeck loads the deck's cards into the store. Existing cards (matched
// by exact front text) are updated when update is true, otherwise skipped.
func ImportDeck(store TrainerStore, deck *DeckFile, update bool) (*ImportResult, error) {
	result := &ImportResult{}

	for i, dc := range deck.Cards {
		result.TotalProcessed++

		front := strings.TrimSpace(dc.Front)
		if front == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("card %d: front must not be empty", i+1))
			continue
		}

		existing, err := store.GetCardByFront(front)
		if err != nil {
			return nil, fmt.Errorf("look up %q: %w", front, err)
		}
		if existing != nil {
			if !update {
				result.Skipped++
				continue
			}
			existing.Back = dc.Back
			existing.Hint = dc.Hint
			existing.Tags = dc.Tags
			if err := store.UpdateCard(existing); err != nil {
				return nil, fmt.Errorf("update %q: %w", front, err)
			}
			result.Updated++
			continue
		}

		card := &Card{
			Front:  front,
			Back:   dc.Back,
			Hint:   dc.Hint,
			Tags:   dc.Tags,
			Bucket: clampBucket(dc.Bucket),
		}
		if err := store.AddCard(card); err != nil {
			return nil, fmt.Errorf("add %q: %w", front, err)
		}
		result.Created++
	}
	return result, nil
}

// ExportDeck builds a deck file from every card in the store, preserving
// bucket state so progress survives a round trip.
func ExportDeck(store TrainerStore, name string) (*DeckFile, error) {
	cards, err := store.ListCards(nil)
	if err != nil {
		return nil, err
	}
	deck := &DeckFile{Name: name, Cards: make([]DeckCard, len(cards))}
	for i, c := range cards {
		deck.Cards[i] = DeckCard{
			Front:  c.Front,
			Back:   c.Back,
			Hint:   c.Hint,
			Tags:   c.Tags,
			Bucket: c.Bucket,
		}
	}
	return deck, nil
}
