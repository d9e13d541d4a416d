// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package trainer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SheetImportConfig controls spreadsheet deck imports. Columns are fixed:
// front, back, hint, comma-separated tags, optional bucket.
type SheetImportConfig struct {
	SheetName  string // Excel sheet to read ("" = first sheet)
	SkipHeader bool   // skip the first row
}

// ReadDeckSheet loads a deck from an .xlsx or .csv file.
func ReadDeckSheet(path string, cfg SheetImportConfig) (*DeckFile, error) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var rows [][]string
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSVRows(path)
	case ".xlsx":
		rows, err = readExcelRows(path, cfg.SheetName)
	default:
		return nil, fmt.Errorf("unsupported deck sheet type: %s (expected .xlsx or .csv)", path)
	}
	if err != nil {
		return nil, err
	}

	deck := &DeckFile{Name: name}
	for i, row := range rows {
		if i == 0 && (cfg.SkipHeader || looksLikeHeader(row)) {
			continue
		}
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		deck.Cards = append(deck.Cards, rowToCard(row))
	}
	return deck, nil
}

func readExcelRows(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx file: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// looksLikeHeader detects an un-flagged header row by its first cell.
func looksLikeHeader(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "front")
}

func rowToCard(row []string) DeckCard {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	card := DeckCard{
		Front: cell(0),
		Back:  cell(1),
		Hint:  cell(2),
	}
	if tags := cell(3); tags != "" {
		for _, t := range strings.Split(tags, ",") {
			if t = strings.TrimSpace(t); t != "" {
				card.Tags = append(card.Tags, t)
			}
		}
	}
	if b, err := strconv.Atoi(cell(4)); err == nil {
		card.Bucket = clampBucket(b)
	}
	return card
}
