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

func newPracticeCmd(cfg *config.Config, sess *trainer.Session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "practice",
		Short: "Practice the cards due today",
		Long:  "Show which cards are due on a study day and record how each recall went.",
	}

	cmd.AddCommand(newPracticeDueCmd(sess))
	cmd.AddCommand(newPracticeGradeCmd(sess))

	return cmd
}

func newPracticeDueCmd(sess *trainer.Session) *cobra.Command {
	var (
		day int
		out output.OutputOptions
	)

	cmd := &cobra.Command{
		Use:   "due",
		Short: "List cards due for practice",
		Long: `Show the cards scheduled for a study day.

A card in bucket b is due every 2^b days; retired cards (bucket 5) are
never scheduled. With no --day flag the current study day is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			query := day
			if !cmd.Flags().Changed("day") {
				query = -1
			}
			cards, day, err := sess.Due(query)
			if err != nil {
				return fmt.Errorf("collect due cards: %w", err)
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(map[string]any{"day": day, "cards": cards})
			}

			if len(cards) == 0 {
				fmt.Printf("No cards due on day %d.\n", day)
				return nil
			}

			fmt.Printf("Day %d: %d card(s) due\n\n", day, len(cards))
			table := output.NewTable("ID", "Front", "Bucket")
			for _, c := range cards {
				table.AddRow(truncate(c.ID, 8), truncate(c.Front, 45), fmt.Sprintf("%d", c.Bucket))
			}
			table.Render()

			fmt.Printf("\nGrade with: leitner-box practice grade <id> --difficulty <easy|hard|wrong>\n")
			return nil
		},
	}

	cmd.Flags().IntVarP(&day, "day", "d", 0, "Study day to query (default: current day)")
	out.AddOutputFlags(cmd, output.OutputTable)

	return cmd
}

func newPracticeGradeCmd(sess *trainer.Session) *cobra.Command {
	var (
		difficulty string
		out        output.OutputOptions
	)

	cmd := &cobra.Command{
		Use:   "grade <card-id>",
		Short: "Record how a recall went",
		Long: `Record the outcome of practicing one card.

Easy moves the card up a bucket, Hard moves it down one, Wrong sends it
back to bucket 0. A card that reaches bucket 5 is retired.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			d, err := leitner.ParseDifficulty(difficulty)
			if err != nil {
				return err
			}

			res, err := sess.Grade(args[0], d)
			if err != nil {
				return fmt.Errorf("grade card: %w", err)
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(res)
			}

			fmt.Printf("Card graded: %s\n", res.Card.ID)
			fmt.Printf("Front: %s\n", truncate(res.Card.Front, 60))
			fmt.Printf("Result: %s\n", d)
			fmt.Printf("Bucket: %d -> %d\n", res.From, res.To)
			if res.To == leitner.RetiredBucket {
				fmt.Println("Card retired!")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "", "Recall outcome: easy, hard, or wrong (required)")
	cmd.MarkFlagRequired("difficulty")
	out.AddOutputFlags(cmd, output.OutputJSON)

	return cmd
}
