// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package leitner

import "math"

// RetiredBucket is the highest bucket. Cards here are considered mastered
// and are excluded from scheduling, though Update may still move them.
const RetiredBucket = 5

// progressWeight scales a bucket number to a percentage: bucket 0 is 0%,
// bucket RetiredBucket is 100%.
const progressWeight = 100 / RetiredBucket

// BucketSets converts the sparse bucket assignment to its dense form: a
// slice indexed 0..maxBucket where entry i holds exactly the cards assigned
// to bucket i and unassigned indices hold empty sets.
//
// Every returned set is a fresh copy, so later mutation of the input map
// cannot leak into the result. An empty map yields a nil slice.
func BucketSets(buckets BucketMap) []CardSet {
	maxBucket := -1
	for b := range buckets {
		if b > maxBucket {
			maxBucket = b
		}
	}
	if maxBucket < 0 {
		return nil
	}

	sets := make([]CardSet, maxBucket+1)
	for i := range sets {
		sets[i] = make(CardSet)
	}
	for b, set := range buckets {
		sets[b] = set.clone()
	}
	return sets
}

// Range is the span of non-empty buckets in a dense encoding.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// BucketRange returns the smallest and largest indices of non-empty sets.
// The second return value is false when every set is empty (or the slice
// has length zero); the Range value is meaningless in that case.
func BucketRange(sets []CardSet) (Range, bool) {
	r := Range{Min: -1, Max: -1}
	for i, set := range sets {
		if len(set) == 0 {
			continue
		}
		if r.Min < 0 {
			r.Min = i
		}
		r.Max = i
	}
	if r.Min < 0 {
		return Range{}, false
	}
	return r, true
}

// DueCards returns the cards due for practice on the given day: the union
// of every eligible bucket b (0 through 4) where day mod 2^b == 0. Bucket 0
// is due every day, bucket 1 every 2 days, up to bucket 4 every 16 days.
// The retired bucket is never due.
//
// day counts days since the start of the study history; day 0 is the first
// day. A dense encoding shorter than 5 entries is valid; missing trailing
// buckets are treated as empty. The result is always a fresh set.
func DueCards(sets []CardSet, day int) CardSet {
	due := make(CardSet)
	for b := 0; b < RetiredBucket && b < len(sets); b++ {
		if day%(1<<b) != 0 {
			continue
		}
		for c := range sets[b] {
			due[c] = struct{}{}
		}
	}
	return due
}

// Update moves a card between buckets according to the trial outcome:
//
//	Easy:  up one bucket, capped at RetiredBucket
//	Hard:  down one bucket, floored at 0
//	Wrong: back to bucket 0 regardless of current bucket
//
// The returned map is a deep copy; the input and its sets are never
// mutated, so the caller keeps a valid snapshot of the prior state. If the
// card is in no bucket the result is a content-equal copy of the input.
func Update(buckets BucketMap, card *Card, d Difficulty) BucketMap {
	out := buckets.clone()

	current, ok := findBucket(out, card)
	if !ok {
		return out
	}

	next := current
	switch d {
	case Easy:
		if next < RetiredBucket {
			next++
		}
	case Hard:
		if next > 0 {
			next--
		}
	case Wrong:
		next = 0
	}

	delete(out[current], card)
	if len(out[current]) == 0 {
		delete(out, current)
	}
	if out[next] == nil {
		out[next] = make(CardSet)
	}
	out[next][card] = struct{}{}
	return out
}

// findBucket locates the card's bucket by scanning every set. Linear in the
// total card count; a reverse index would be needed for very large decks.
func findBucket(buckets BucketMap, card *Card) (int, bool) {
	for b, set := range buckets {
		if set.Contains(card) {
			return b, true
		}
	}
	return 0, false
}

// Progress computes overall learning progress as an integer percentage in
// [0, 100]: the size-weighted average bucket number scaled so that bucket 0
// is 0% and the retired bucket is 100%. Zero cards yields 0.
//
// trials is the practice history. The current metric does not use it; the
// parameter exists so trend-aware weighting can be added without changing
// the signature, and an empty or nil history is always accepted.
func Progress(buckets BucketMap, trials []Trial) int {
	total := 0
	weighted := 0
	for b, set := range buckets {
		total += len(set)
		weighted += len(set) * b * progressWeight
	}
	if total == 0 {
		return 0
	}

	pct := int(math.Round(float64(weighted) / float64(total)))
	// Buckets above RetiredBucket never arise from Update, but malformed
	// caller state could push the average past 100.
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}
