// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package leitner implements a Modified-Leitner spaced repetition system.
//
// Cards live in numbered proficiency buckets 0 through 5, where bucket 0
// holds the newest or least-known cards and bucket 5 holds retired
// (mastered) cards. Bucket b is reviewed every 2^b days; retired cards are
// never scheduled.
//
// The package is pure: every function treats its inputs as read-only and
// returns freshly allocated containers, so callers can keep snapshots of
// prior bucket state for undo or history. The caller owns the sparse
// BucketMap as ground truth; the dense []CardSet form is a derived view
// produced by BucketSets.
//
// Basic usage:
//
//	buckets := leitner.BucketMap{0: leitner.NewCardSet(card)}
//	due := leitner.DueCards(leitner.BucketSets(buckets), day)
//	buckets = leitner.Update(buckets, card, leitner.Easy)
package leitner
