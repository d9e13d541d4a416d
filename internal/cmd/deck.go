// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mtreilly/leitner-box/internal/config"
	"github.com/mtreilly/leitner-box/internal/output"
	"github.com/mtreilly/leitner-box/internal/trainer"
)

func newDeckCmd(cfg *config.Config, sess *trainer.Session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deck",
		Short: "Import and export decks",
		Long:  "Move whole decks in and out of the box: YAML deck files, spreadsheets, and Anki packages.",
	}

	cmd.AddCommand(newDeckImportCmd(sess))
	cmd.AddCommand(newDeckExportCmd(sess))

	return cmd
}

func newDeckImportCmd(sess *trainer.Session) *cobra.Command {
	var (
		update bool
		sheet  string
		header bool
		out    output.OutputOptions
	)

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a deck file",
		Long: `Import cards from a deck file. The format follows the extension:
.yaml/.yml deck files, .xlsx spreadsheets, or .csv files.

Existing cards are matched by exact front text and skipped unless
--update is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			deck, err := readDeck(args[0], sheet, header)
			if err != nil {
				return err
			}

			result, err := trainer.ImportDeck(sess.Store(), deck, update)
			if err != nil {
				return fmt.Errorf("import deck: %w", err)
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(result)
			}

			fmt.Printf("Processed: %d\n", result.TotalProcessed)
			fmt.Printf("Created:   %d\n", result.Created)
			fmt.Printf("Updated:   %d\n", result.Updated)
			fmt.Printf("Skipped:   %d\n", result.Skipped)
			for _, e := range result.Errors {
				fmt.Printf("Error: %s\n", e)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&update, "update", "u", false, "Update existing cards instead of skipping them")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Excel sheet name (default: first sheet)")
	cmd.Flags().BoolVar(&header, "skip-header", false, "Skip the first spreadsheet row")
	out.AddOutputFlags(cmd, output.OutputJSON)

	return cmd
}

func readDeck(path, sheet string, skipHeader bool) (*trainer.DeckFile, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return trainer.ReadDeckFile(path)
	case ".xlsx", ".csv":
		return trainer.ReadDeckSheet(path, trainer.SheetImportConfig{
			SheetName:  sheet,
			SkipHeader: skipHeader,
		})
	default:
		return nil, fmt.Errorf("unsupported deck format: %s (expected .yaml, .xlsx, or .csv)", path)
	}
}

func newDeckExportCmd(sess *trainer.Session) *cobra.Command {
	var (
		name string
		out  output.OutputOptions
	)

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export the deck",
		Long: `Export every card to a file. The format follows the extension:
.yaml/.yml deck files, .json, or .apkg Anki packages.

Bucket state is preserved in YAML and JSON exports; Anki exports map
bucket b to a 2^b-day review interval.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			path := args[0]
			if name == "" {
				name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			}

			var count int
			switch strings.ToLower(filepath.Ext(path)) {
			case ".yaml", ".yml":
				deck, err := trainer.ExportDeck(sess.Store(), name)
				if err != nil {
					return fmt.Errorf("export deck: %w", err)
				}
				if err := trainer.WriteDeckFile(path, deck); err != nil {
					return err
				}
				count = len(deck.Cards)

			case ".json":
				deck, err := trainer.ExportDeck(sess.Store(), name)
				if err != nil {
					return fmt.Errorf("export deck: %w", err)
				}
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("create export file: %w", err)
				}
				defer f.Close()
				if err := output.EncodeJSON(f, deck); err != nil {
					return fmt.Errorf("write export file: %w", err)
				}
				count = len(deck.Cards)

			case ".apkg":
				cards, err := sess.Store().ListCards(nil)
				if err != nil {
					return fmt.Errorf("list cards: %w", err)
				}
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("create export file: %w", err)
				}
				defer f.Close()
				if err := trainer.NewAnkiExporter(name).ExportCards(cards, f); err != nil {
					return fmt.Errorf("export anki package: %w", err)
				}
				count = len(cards)

			default:
				return fmt.Errorf("unsupported export format: %s (expected .yaml, .json, or .apkg)", path)
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(map[string]any{"file": path, "cards": count})
			}

			fmt.Printf("Exported %d card(s) to %s\n", count, path)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Deck name (default: file name)")
	out.AddOutputFlags(cmd, output.OutputJSON)

	return cmd
}
