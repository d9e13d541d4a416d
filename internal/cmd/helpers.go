// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
