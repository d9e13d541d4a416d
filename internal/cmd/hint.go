// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mtreilly/leitner-box/internal/config"
	"github.com/mtreilly/leitner-box/internal/output"
	"github.com/mtreilly/leitner-box/internal/trainer"
)

func newHintCmd(cfg *config.Config, sess *trainer.Session) *cobra.Command {
	var out output.OutputOptions

	cmd := &cobra.Command{
		Use:   "hint <card-id>",
		Short: "Show a hint for a card",
		Long:  "Derive a hint from the card's prompt: a leading run of whole words, or the first few characters when the first word is too long.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			hint, err := sess.HintFor(args[0])
			if err != nil {
				return fmt.Errorf("get hint: %w", err)
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(map[string]string{"card_id": args[0], "hint": hint})
			}

			fmt.Println(hint)
			return nil
		},
	}

	out.AddOutputFlags(cmd, output.OutputJSON)
	return cmd
}
