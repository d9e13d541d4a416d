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

func newDayCmd(cfg *config.Config, sess *trainer.Session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Manage the study-day counter",
		Long:  "The study day drives scheduling: bucket b is due whenever the day is divisible by 2^b.",
	}

	cmd.AddCommand(newDayShowCmd(sess))
	cmd.AddCommand(newDayNextCmd(sess))

	return cmd
}

func newDayShowCmd(sess *trainer.Session) *cobra.Command {
	var out output.OutputOptions

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current study day",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			day, err := sess.CurrentDay()
			if err != nil {
				return fmt.Errorf("get day: %w", err)
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(map[string]int{"day": day})
			}

			fmt.Printf("Current study day: %d\n", day)
			return nil
		},
	}

	out.AddOutputFlags(cmd, output.OutputJSON)
	return cmd
}

func newDayNextCmd(sess *trainer.Session) *cobra.Command {
	var out output.OutputOptions

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Advance to the next study day",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			day, err := sess.AdvanceDay()
			if err != nil {
				return fmt.Errorf("advance day: %w", err)
			}

			cards, _, err := sess.Due(day)
			if err != nil {
				return fmt.Errorf("collect due cards: %w", err)
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(map[string]int{"day": day, "due": len(cards)})
			}

			fmt.Printf("Advanced to day %d. %d card(s) due.\n", day, len(cards))
			return nil
		},
	}

	out.AddOutputFlags(cmd, output.OutputJSON)
	return cmd
}
