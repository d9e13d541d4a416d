// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package trainer

import (
	"fmt"
	"sort"

	"github.com/mtreilly/leitner-box/internal/leitner"
)

// Session drives practice against a store: it materializes the stored
// bucket state into the pure scheduling core, asks the core what is due or
// how a trial changes the buckets, and persists the outcome. The stored
// bucket column remains the ground truth between sessions.
type Session struct {
	store TrainerStore
}

// NewSession creates a session driver over the given store.
func NewSession(store TrainerStore) *Session {
	return &Session{store: store}
}

// Store exposes the underlying store for card management commands.
func (s *Session) Store() TrainerStore { return s.store }

// snapshot is one materialization of the stored cards into core values.
type snapshot struct {
	buckets leitner.BucketMap
	stored  map[*leitner.Card]*Card
}

func (s *Session) load() (*snapshot, error) {
	cards, err := s.store.ListCards(nil)
	if err != nil {
		return nil, err
	}
	snap := &snapshot{
		buckets: make(leitner.BucketMap),
		stored:  make(map[*leitner.Card]*Card, len(cards)),
	}
	for _, sc := range cards {
		core := &leitner.Card{
			Front: sc.Front,
			Back:  sc.Back,
			Hint:  sc.Hint,
			Tags:  append([]string(nil), sc.Tags...),
		}
		if snap.buckets[sc.Bucket] == nil {
			snap.buckets[sc.Bucket] = make(leitner.CardSet)
		}
		snap.buckets[sc.Bucket].Add(core)
		snap.stored[core] = sc
	}
	return snap, nil
}

// CurrentDay returns the study-day counter.
func (s *Session) CurrentDay() (int, error) {
	return s.store.Day()
}

// AdvanceDay increments the study-day counter and returns the new value.
func (s *Session) AdvanceDay() (int, error) {
	day, err := s.store.Day()
	if err != nil {
		return 0, err
	}
	day++
	if err := s.store.SetDay(day); err != nil {
		return 0, err
	}
	return day, nil
}

// Due returns the cards due for practice on the given day, sorted by front
// text for stable display. A negative day means the current study day.
func (s *Session) Due(day int) ([]*Card, int, error) {
	if day < 0 {
		var err error
		day, err = s.store.Day()
		if err != nil {
			return nil, 0, err
		}
	}
	snap, err := s.load()
	if err != nil {
		return nil, 0, err
	}

	due := leitner.DueCards(leitner.BucketSets(snap.buckets), day)
	out := make([]*Card, 0, len(due))
	for core := range due {
		out = append(out, snap.stored[core])
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Front != out[j].Front {
			return out[i].Front < out[j].Front
		}
		return out[i].ID < out[j].ID
	})
	return out, day, nil
}

// GradeResult describes the bucket move caused by one graded trial.
type GradeResult struct {
	Card *Card
	From int
	To   int
	Day  int
}

// Grade applies one trial outcome to the card: the core computes the bucket
// transition, then the new bucket and a history record are persisted.
func (s *Session) Grade(cardID string, d leitner.Difficulty) (*GradeResult, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("%w: %d", leitner.ErrInvalidDifficulty, int(d))
	}
	snap, err := s.load()
	if err != nil {
		return nil, err
	}

	var core *leitner.Card
	var stored *Card
	for c, sc := range snap.stored {
		if sc.ID == cardID {
			core, stored = c, sc
			break
		}
	}
	if stored == nil {
		return nil, fmt.Errorf("card not found: %s", cardID)
	}

	updated := leitner.Update(snap.buckets, core, d)
	to := stored.Bucket
	for b, set := range updated {
		if set.Contains(core) {
			to = b
			break
		}
	}

	day, err := s.store.Day()
	if err != nil {
		return nil, err
	}
	if err := s.store.SetBucket(stored.ID, to); err != nil {
		return nil, err
	}
	if err := s.store.RecordTrial(&Trial{CardID: stored.ID, Day: day, Difficulty: d}); err != nil {
		return nil, err
	}

	res := &GradeResult{Card: stored, From: stored.Bucket, To: to, Day: day}
	stored.Bucket = to
	return res, nil
}

// Progress returns the overall completion percentage.
func (s *Session) Progress() (int, error) {
	snap, err := s.load()
	if err != nil {
		return 0, err
	}
	trials, err := s.store.ListTrials("")
	if err != nil {
		return 0, err
	}
	history := make([]leitner.Trial, len(trials))
	for i, t := range trials {
		history[i] = leitner.Trial{Day: t.Day, Difficulty: t.Difficulty}
	}
	return leitner.Progress(snap.buckets, history), nil
}

// Range returns the span of non-empty buckets, or ok=false when the deck
// is empty.
func (s *Session) Range() (leitner.Range, bool, error) {
	snap, err := s.load()
	if err != nil {
		return leitner.Range{}, false, err
	}
	r, ok := leitner.BucketRange(leitner.BucketSets(snap.buckets))
	return r, ok, nil
}

// BucketCounts returns the number of cards in each bucket 0..RetiredBucket.
func (s *Session) BucketCounts() ([leitner.RetiredBucket + 1]int, error) {
	var counts [leitner.RetiredBucket + 1]int
	cards, err := s.store.ListCards(nil)
	if err != nil {
		return counts, err
	}
	for _, c := range cards {
		if c.Bucket >= 0 && c.Bucket <= leitner.RetiredBucket {
			counts[c.Bucket]++
		}
	}
	return counts, nil
}

// HintFor derives the practice hint for a stored card.
func (s *Session) HintFor(cardID string) (string, error) {
	sc, err := s.store.GetCard(cardID)
	if err != nil {
		return "", err
	}
	if sc == nil {
		return "", fmt.Errorf("card not found: %s", cardID)
	}
	return leitner.PromptHint(&leitner.Card{Front: sc.Front}), nil
}
