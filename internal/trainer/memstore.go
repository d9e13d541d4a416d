// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package trainer

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemStore implements TrainerStore entirely in memory. It backs the
// "memory" storage backend (no persistence, degrades gracefully) and the
// package tests.
type MemStore struct {
	mu     sync.RWMutex
	cards  map[string]*Card
	trials []*Trial
	day    int
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{cards: make(map[string]*Card)}
}

func copyCard(c *Card) *Card {
	out := *c
	out.Tags = append([]string(nil), c.Tags...)
	return &out
}

func copyTrial(t *Trial) *Trial {
	out := *t
	return &out
}

func (m *MemStore) AddCard(c *Card) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if _, exists := m.cards[c.ID]; exists {
		return fmt.Errorf("card already exists: %s", c.ID)
	}
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	m.cards[c.ID] = copyCard(c)
	return nil
}

func (m *MemStore) GetCard(id string) (*Card, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.cards[id]
	if !ok {
		return nil, nil
	}
	return copyCard(c), nil
}

func (m *MemStore) GetCardByFront(front string) (*Card, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, c := range m.cards {
		if c.Front == front {
			return copyCard(c), nil
		}
	}
	return nil, nil
}

func (m *MemStore) ListCards(opts *CardListOptions) ([]*Card, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*Card
	for _, c := range m.cards {
		if opts != nil {
			if opts.Bucket != nil && c.Bucket != *opts.Bucket {
				continue
			}
			if opts.Tag != "" && !hasTag(c.Tags, opts.Tag) {
				continue
			}
			if opts.Search != "" &&
				!strings.Contains(c.Front, opts.Search) &&
				!strings.Contains(c.Back, opts.Search) {
				continue
			}
		}
		out = append(out, copyCard(c))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	if opts != nil && opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (m *MemStore) UpdateCard(c *Card) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.cards[c.ID]; !ok {
		return fmt.Errorf("card not found: %s", c.ID)
	}
	c.UpdatedAt = time.Now().UTC()
	m.cards[c.ID] = copyCard(c)
	return nil
}

func (m *MemStore) SetBucket(cardID string, bucket int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.cards[cardID]
	if !ok {
		return fmt.Errorf("card not found: %s", cardID)
	}
	c.Bucket = bucket
	c.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *MemStore) DeleteCard(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.cards[id]; !ok {
		return fmt.Errorf("card not found: %s", id)
	}
	delete(m.cards, id)
	kept := m.trials[:0]
	for _, t := range m.trials {
		if t.CardID != id {
			kept = append(kept, t)
		}
	}
	m.trials = kept
	return nil
}

func (m *MemStore) RecordTrial(t *Trial) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.PracticedAt.IsZero() {
		t.PracticedAt = time.Now().UTC()
	}
	m.trials = append(m.trials, copyTrial(t))
	return nil
}

func (m *MemStore) ListTrials(cardID string) ([]*Trial, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*Trial
	for _, t := range m.trials {
		if cardID == "" || t.CardID == cardID {
			out = append(out, copyTrial(t))
		}
	}
	return out, nil
}

func (m *MemStore) Day() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.day, nil
}

func (m *MemStore) SetDay(day int) error {
	if day < 0 {
		return fmt.Errorf("day must be non-negative, got %d", day)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.day = day
	return nil
}

// Close is a no-op for the in-memory store.
func (m *MemStore) Close() error { return nil }
