// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package trainer

import (
	"archive/zip"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mtreilly/leitner-box/internal/leitner"
)

// AnkiExporter generates .apkg files so a deck can be taken into Anki.
// Bucket b maps onto a 2^b-day review interval; retired cards keep the
// longest interval.
type AnkiExporter struct {
	deckName string
}

// NewAnkiExporter creates an exporter for the named deck.
func NewAnkiExporter(deckName string) *AnkiExporter {
	if deckName == "" {
		deckName = "Leitner Box"
	}
	return &AnkiExporter{deckName: deckName}
}

// ExportCards writes an .apkg package containing the given cards.
func (e *AnkiExporter) ExportCards(cards []*Card, w io.Writer) error {
	tmpDir, err := os.MkdirTemp("", "anki-export-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	dbPath := filepath.Join(tmpDir, "collection.anki2")
	if err := e.createDatabase(dbPath, cards); err != nil {
		return fmt.Errorf("create database: %w", err)
	}

	// No images/audio; the media manifest is empty.
	mediaPath := filepath.Join(tmpDir, "media")
	if err := os.WriteFile(mediaPath, []byte("{}"), 0o644); err != nil {
		return fmt.Errorf("create media file: %w", err)
	}

	zipWriter := zip.NewWriter(w)
	defer zipWriter.Close()

	if err := e.addFileToZip(zipWriter, dbPath, "collection.anki2"); err != nil {
		return fmt.Errorf("add database to zip: %w", err)
	}
	if err := e.addFileToZip(zipWriter, mediaPath, "media"); err != nil {
		return fmt.Errorf("add media to zip: %w", err)
	}
	return nil
}

func (e *AnkiExporter) createDatabase(dbPath string, cards []*Card) error {
	os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	schema := `
		CREATE TABLE col (
			id INTEGER PRIMARY KEY,
			crt INTEGER NOT NULL,
			mod INTEGER NOT NULL,
			scm INTEGER NOT NULL,
			ver INTEGER NOT NULL,
			dty INTEGER NOT NULL,
			usn INTEGER NOT NULL,
			ls INTEGER NOT NULL,
			conf TEXT NOT NULL,
			models TEXT NOT NULL,
			decks TEXT NOT NULL,
			dconf TEXT NOT NULL,
			tags TEXT NOT NULL
		);

		CREATE TABLE notes (
			id INTEGER PRIMARY KEY,
			guid TEXT NOT NULL,
			mid INTEGER NOT NULL,
			usn INTEGER NOT NULL,
			mod INTEGER NOT NULL,
			sfld INTEGER NOT NULL,
			csum INTEGER NOT NULL,
			flags INTEGER NOT NULL,
			data TEXT NOT NULL,
			sflds TEXT NOT NULL
		);

		CREATE TABLE cards (
			id INTEGER PRIMARY KEY,
			nid INTEGER NOT NULL,
			did INTEGER NOT NULL,
			ord INTEGER NOT NULL,
			mod INTEGER NOT NULL,
			usn INTEGER NOT NULL,
			type INTEGER NOT NULL,
			queue INTEGER NOT NULL,
			due INTEGER NOT NULL,
			ivl INTEGER NOT NULL,
			factor INTEGER NOT NULL,
			reps INTEGER NOT NULL,
			lapses INTEGER NOT NULL,
			left INTEGER NOT NULL,
			odue INTEGER NOT NULL,
			odid INTEGER NOT NULL,
			flags INTEGER NOT NULL,
			data TEXT NOT NULL
		);

		CREATE INDEX ix_cards_nid ON cards (nid);
		CREATE INDEX ix_cards_sched ON cards (did, queue, due);
		CREATE INDEX ix_notes_csum ON notes (csum);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	now := time.Now().UnixMilli()
	deckID := int64(1)
	modelID := int64(1)

	conf := map[string]any{
		"curModel":    modelID,
		"activeDecks": []int64{deckID},
	}
	confJSON, _ := json.Marshal(conf)

	// Basic front/back note type.
	model := map[string]any{
		fmt.Sprintf("%d", modelID): map[string]any{
			"id":    modelID,
			"name":  "Basic",
			"type":  0,
			"mod":   now,
			"usn":   -1,
			"sortf": 0,
			"did":   deckID,
			"tmpls": []map[string]any{
				{
					"name":  "Card 1",
					"ord":   0,
					"qfmt":  "{{Front}}",
					"afmt":  "{{FrontSide}}<hr id=\"answer\">{{Back}}",
					"bqfmt": "",
					"bafmt": "",
					"did":   nil,
					"bfont": "Arial",
					"bsize": 20,
				},
			},
			"flds": []map[string]any{
				{"name": "Front", "ord": 0, "sticky": false, "rtl": false, "font": "Arial", "size": 20, "media": []string{}},
				{"name": "Back", "ord": 1, "sticky": false, "rtl": false, "font": "Arial", "size": 20, "media": []string{}},
			},
			"css":  ".card { font-family: arial; font-size: 20px; text-align: center; color: black; background-color: white; }",
			"req":  [][]any{{0, "all", []int{0}}},
			"tags": []string{},
			"vers": []int{},
		},
	}
	modelsJSON, _ := json.Marshal(model)

	deck := map[string]any{
		fmt.Sprintf("%d", deckID): map[string]any{
			"id":        deckID,
			"name":      e.deckName,
			"desc":      "",
			"mod":       now,
			"usn":       -1,
			"collapsed": false,
			"dyn":       0,
			"newToday":  []any{0, 0},
			"revToday":  []any{0, 0},
			"lrnToday":  []any{0, 0},
			"timeToday": []any{0, 0},
			"conf":      1,
		},
	}
	decksJSON, _ := json.Marshal(deck)

	dconf := map[string]any{
		"1": map[string]any{
			"id":  1,
			"mod": now,
			"usn": -1,
			"new": map[string]any{
				"delays":        []float64{1, 10},
				"ints":          []int{1, 2, 4},
				"initialFactor": 2500,
				"perDay":        20,
			},
			"rev": map[string]any{
				"perDay": 200,
				"maxIvl": 1 << leitner.RetiredBucket,
			},
		},
	}
	dconfJSON, _ := json.Marshal(dconf)

	_, err = db.Exec(`
		INSERT INTO col (id, crt, mod, scm, ver, dty, usn, ls, conf, models, decks, dconf, tags)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, 1, now/1000, now, now, 11, 0, 0, 0, string(confJSON), string(modelsJSON), string(decksJSON), string(dconfJSON), "[]")
	if err != nil {
		return fmt.Errorf("insert collection: %w", err)
	}

	for i, card := range cards {
		if err := e.insertCard(db, int64(i), card, modelID, deckID, now); err != nil {
			return fmt.Errorf("insert card %d: %w", i, err)
		}
	}
	return nil
}

func (e *AnkiExporter) insertCard(db *sql.DB, idx int64, card *Card, modelID, deckID, now int64) error {
	noteID := now + idx*1000
	cardID := noteID + 1

	fields := card.Front + "\x1f" + card.Back // \x1f is the Anki field separator
	sfld := card.Front

	csum := int64(0)
	for _, c := range fields {
		csum = (csum*31 + int64(c)) & 0xFFFFFFFF
	}

	_, err := db.Exec(`
		INSERT INTO notes (id, guid, mid, usn, mod, sfld, csum, flags, data, sflds)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, noteID, fmt.Sprintf("leitner-%d", noteID), modelID, -1, now, sfld, csum, 0, "", fields)
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}

	ivl := 1 << clampBucket(card.Bucket)

	_, err = db.Exec(`
		INSERT INTO cards (id, nid, did, ord, mod, usn, type, queue, due, ivl, factor, reps, lapses, left, odue, odid, flags, data)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, cardID, noteID, deckID, 0, now, -1, 0, 0, 0, ivl, 2500, 0, 0, 0, 0, 0, 0, "")
	if err != nil {
		return fmt.Errorf("insert card: %w", err)
	}
	return nil
}

func (e *AnkiExporter) addFileToZip(zw *zip.Writer, filePath, nameInZip string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return err
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = nameInZip
	header.Method = zip.Deflate

	writer, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}
	_, err = io.Copy(writer, file)
	return err
}
