// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mtreilly/leitner-box/internal/config"
	"github.com/mtreilly/leitner-box/internal/leitner"
	"github.com/mtreilly/leitner-box/internal/output"
	"github.com/mtreilly/leitner-box/internal/trainer"
)

func newProgressCmd(cfg *config.Config, sess *trainer.Session) *cobra.Command {
	var out output.OutputOptions

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show learning progress",
		Long: `Show the overall completion percentage and the bucket distribution.

Each card contributes its bucket number; retired cards count 100% and
new cards 0%, so the percentage is the deck's average climb toward
retirement.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			percent, err := sess.Progress()
			if err != nil {
				return fmt.Errorf("compute progress: %w", err)
			}
			counts, err := sess.BucketCounts()
			if err != nil {
				return fmt.Errorf("count buckets: %w", err)
			}
			r, ok, err := sess.Range()
			if err != nil {
				return fmt.Errorf("bucket range: %w", err)
			}

			if out.Is(output.OutputJSON) {
				payload := map[string]any{
					"percent": percent,
					"buckets": counts,
				}
				if ok {
					payload["range"] = r
				}
				return output.JSON(payload)
			}

			fmt.Printf("Progress: %d%%\n", percent)
			if ok {
				fmt.Printf("Buckets in use: %d-%d\n", r.Min, r.Max)
			} else {
				fmt.Println("No cards yet.")
				return nil
			}

			fmt.Println()
			table := output.NewTable("Bucket", "Cards", "Interval")
			for b, n := range counts {
				interval := fmt.Sprintf("every %d day(s)", 1<<b)
				if b == leitner.RetiredBucket {
					interval = "retired"
				}
				table.AddRow(fmt.Sprintf("%d", b), fmt.Sprintf("%d", n), interval)
			}
			table.Render()
			return nil
		},
	}

	out.AddOutputFlags(cmd, output.OutputTable)
	return cmd
}
