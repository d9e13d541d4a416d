// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mtreilly/leitner-box/internal/config"
	"github.com/mtreilly/leitner-box/internal/output"
	"github.com/mtreilly/leitner-box/internal/trainer"
)

func newCardCmd(cfg *config.Config, sess *trainer.Session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Manage flashcards",
		Long:  "Add, list, inspect, and delete the flashcards in your box.",
	}

	cmd.AddCommand(newCardAddCmd(sess))
	cmd.AddCommand(newCardListCmd(sess))
	cmd.AddCommand(newCardShowCmd(sess))
	cmd.AddCommand(newCardDeleteCmd(sess))

	return cmd
}

func newCardAddCmd(sess *trainer.Session) *cobra.Command {
	var (
		front string
		back  string
		hint  string
		tags  []string
		out   output.OutputOptions
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new flashcard",
		Long:  "Create a flashcard. New cards start in bucket 0 and are due every practice day.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			if front == "" {
				return fmt.Errorf("front text is required")
			}

			card := &trainer.Card{
				Front: front,
				Back:  back,
				Hint:  hint,
				Tags:  tags,
			}
			if err := sess.Store().AddCard(card); err != nil {
				return fmt.Errorf("add card: %w", err)
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(card)
			}

			fmt.Printf("Card created: %s\n", card.ID)
			fmt.Printf("Front: %s\n", truncate(card.Front, 60))
			fmt.Printf("Back: %s\n", truncate(card.Back, 60))
			fmt.Printf("Bucket: %d\n", card.Bucket)
			return nil
		},
	}

	cmd.Flags().StringVar(&front, "front", "", "Front side text (required)")
	cmd.Flags().StringVar(&back, "back", "", "Back side text")
	cmd.Flags().StringVar(&hint, "hint", "", "Author-supplied hint")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Tags")
	out.AddOutputFlags(cmd, output.OutputJSON)

	return cmd
}

func newCardListCmd(sess *trainer.Session) *cobra.Command {
	var (
		tag    string
		search string
		bucket int
		limit  int
		out    output.OutputOptions
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List flashcards",
		Long:  "List all flashcards, optionally filtered by tag, text, or bucket.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			opts := &trainer.CardListOptions{
				Tag:    tag,
				Search: search,
				Limit:  limit,
			}
			if cmd.Flags().Changed("bucket") {
				opts.Bucket = &bucket
			}

			cards, err := sess.Store().ListCards(opts)
			if err != nil {
				return fmt.Errorf("list cards: %w", err)
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(cards)
			}

			if len(cards) == 0 {
				fmt.Println("No cards found.")
				return nil
			}

			table := output.NewTable("ID", "Front", "Back", "Bucket", "Tags")
			for _, c := range cards {
				table.AddRow(
					truncate(c.ID, 8),
					truncate(c.Front, 35),
					truncate(c.Back, 25),
					fmt.Sprintf("%d", c.Bucket),
					truncate(strings.Join(c.Tags, ","), 20),
				)
			}
			table.Render()

			fmt.Printf("\nTotal: %d card(s)\n", len(cards))
			return nil
		},
	}

	cmd.Flags().StringVarP(&tag, "tag", "t", "", "Filter by tag")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Filter by front/back text")
	cmd.Flags().IntVarP(&bucket, "bucket", "b", 0, "Filter by bucket")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Limit number of results")
	out.AddOutputFlags(cmd, output.OutputTable)

	return cmd
}

func newCardShowCmd(sess *trainer.Session) *cobra.Command {
	var out output.OutputOptions

	cmd := &cobra.Command{
		Use:   "show <card-id>",
		Short: "Show a flashcard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			card, err := sess.Store().GetCard(args[0])
			if err != nil {
				return fmt.Errorf("get card: %w", err)
			}
			if card == nil {
				return fmt.Errorf("card not found: %s", args[0])
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(card)
			}

			fmt.Printf("ID:     %s\n", card.ID)
			fmt.Printf("Front:  %s\n", card.Front)
			fmt.Printf("Back:   %s\n", card.Back)
			if card.Hint != "" {
				fmt.Printf("Hint:   %s\n", card.Hint)
			}
			if len(card.Tags) > 0 {
				fmt.Printf("Tags:   %s\n", strings.Join(card.Tags, ", "))
			}
			fmt.Printf("Bucket: %d\n", card.Bucket)

			trials, err := sess.Store().ListTrials(card.ID)
			if err != nil {
				return fmt.Errorf("list trials: %w", err)
			}
			if len(trials) > 0 {
				fmt.Printf("\nHistory (%d trial(s)):\n", len(trials))
				for _, t := range trials {
					fmt.Printf("  day %d: %s\n", t.Day, t.Difficulty)
				}
			}
			return nil
		},
	}

	out.AddOutputFlags(cmd, output.OutputJSON)
	return cmd
}

func newCardDeleteCmd(sess *trainer.Session) *cobra.Command {
	var out output.OutputOptions

	cmd := &cobra.Command{
		Use:   "delete <card-id>",
		Short: "Delete a flashcard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			id := args[0]
			if err := sess.Store().DeleteCard(id); err != nil {
				return fmt.Errorf("delete card: %w", err)
			}

			fmt.Printf("Card deleted: %s\n", id)
			return nil
		},
	}

	out.AddOutputFlags(cmd, output.OutputJSON)
	return cmd
}
