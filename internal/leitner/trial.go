// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package leitner

// Trial records the graded outcome of practicing one card on one day. The
// slice of past trials handed to Progress is the practice history; the
// scheduling functions themselves never modify it.
type Trial struct {
	Card       *Card      `json:"-"`
	Day        int        `json:"day"`
	Difficulty Difficulty `json:"difficulty"`
}
