// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package leitner

import "errors"

// Sentinel errors for the leitner package.
// Use errors.Is to check: errors.Is(err, leitner.ErrInvalidDifficulty)
var (
	ErrInvalidDifficulty = errors.New("leitner: invalid difficulty")
)
