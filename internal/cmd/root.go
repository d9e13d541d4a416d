// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mtreilly/leitner-box/internal/config"
	"github.com/mtreilly/leitner-box/internal/trainer"
)

// NewRootCmd creates the root command for leitner-box.
func NewRootCmd(cfg *config.Config, sess *trainer.Session) *cobra.Command {

	root := &cobra.Command{
		Use:   "leitner-box",
		Short: "Flashcard practice with Leitner scheduling",
		Long: `Learn flashcards with a modified Leitner system.

leitner-box provides tools to:
- Add and manage flashcards
- Practice the cards due each study day
- Track progress as cards climb toward retirement
- Import and export decks (YAML, spreadsheets, Anki)
- Get hints derived from a card's prompt`,
	}

	root.AddCommand(newCardCmd(cfg, sess))
	root.AddCommand(newPracticeCmd(cfg, sess))
	root.AddCommand(newHintCmd(cfg, sess))
	root.AddCommand(newProgressCmd(cfg, sess))
	root.AddCommand(newDayCmd(cfg, sess))
	root.AddCommand(newDeckCmd(cfg, sess))
	root.AddCommand(newWatchCmd(cfg, sess))
	root.AddCommand(newRemindCmd(cfg, sess))
	root.AddCommand(newWebCmd(cfg, sess))

	return root
}
