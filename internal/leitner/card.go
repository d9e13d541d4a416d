// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package leitner

// Card is a flashcard with a prompt ("front"), an answer ("back"), an
// optional author-supplied hint, and free-form tags.
//
// Cards are immutable once created and are identified by pointer: the same
// *Card is reused as a set and map key across calls, so two cards with
// identical text are still distinct entries. The scheduling functions never
// modify a card; they only read Front when deriving hints.
type Card struct {
	Front string
	Back  string
	Hint  string
	Tags  []string
}

// NewCard creates a card with the given front and back text.
func NewCard(front, back string, tags ...string) *Card {
	return &Card{Front: front, Back: back, Tags: tags}
}

// CardSet is a set of cards keyed by identity.
type CardSet map[*Card]struct{}

// NewCardSet creates a set containing the given cards.
func NewCardSet(cards ...*Card) CardSet {
	s := make(CardSet, len(cards))
	for _, c := range cards {
		s[c] = struct{}{}
	}
	return s
}

// Contains reports whether the set holds the given card.
func (s CardSet) Contains(c *Card) bool {
	_, ok := s[c]
	return ok
}

// Add inserts the card into the set.
func (s CardSet) Add(c *Card) {
	s[c] = struct{}{}
}

// Cards returns the members of the set in unspecified order.
func (s CardSet) Cards() []*Card {
	out := make([]*Card, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	return out
}

// clone returns an independent copy of the set. Members are shared (cards
// are immutable); the container is fresh.
func (s CardSet) clone() CardSet {
	out := make(CardSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// BucketMap is the sparse bucket assignment: bucket number to the set of
// cards currently in that bucket. Buckets with no entry are implicitly
// empty. A card belongs to at most one bucket; Update preserves this.
type BucketMap map[int]CardSet

// clone returns a deep copy of the map: fresh map, fresh sets.
func (m BucketMap) clone() BucketMap {
	out := make(BucketMap, len(m))
	for b, set := range m {
		out[b] = set.clone()
	}
	return out
}

// Count returns the total number of cards across all buckets.
func (m BucketMap) Count() int {
	n := 0
	for _, set := range m {
		n += len(set)
	}
	return n
}
