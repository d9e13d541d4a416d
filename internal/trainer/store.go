// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package trainer

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Store provides persistence for trainer data using SQLite.
type Store struct {
	db *sqlx.DB
}

// Open opens (creating if necessary) the SQLite database at path and
// initializes the schema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return s, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS cards (
		id TEXT PRIMARY KEY,
		front TEXT NOT NULL,
		back TEXT,
		hint TEXT,
		tags TEXT,
		bucket INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS trials (
		id TEXT PRIMARY KEY,
		card_id TEXT NOT NULL,
		day INTEGER NOT NULL,
		difficulty TEXT NOT NULL,
		practiced_at INTEGER NOT NULL,
		FOREIGN KEY (card_id) REFERENCES cards(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS profile (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		day INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_cards_bucket ON cards(bucket);
	CREATE INDEX IF NOT EXISTS idx_trials_card ON trials(card_id);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	_, err := s.db.Exec(`INSERT OR IGNORE INTO profile (id, day) VALUES (1, 0)`)
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// cardRow is the flat SQL representation of a Card.
type cardRow struct {
	ID        string `db:"id"`
	Front     string `db:"front"`
	Back      string `db:"back"`
	Hint      string `db:"hint"`
	Tags      string `db:"tags"`
	Bucket    int    `db:"bucket"`
	CreatedAt int64  `db:"created_at"`
	UpdatedAt int64  `db:"updated_at"`
}

func (r *cardRow) toCard() *Card {
	return &Card{
		ID:        r.ID,
		Front:     r.Front,
		Back:      r.Back,
		Hint:      r.Hint,
		Tags:      splitTags(r.Tags),
		Bucket:    r.Bucket,
		CreatedAt: time.Unix(r.CreatedAt, 0).UTC(),
		UpdatedAt: time.Unix(r.UpdatedAt, 0).UTC(),
	}
}

func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// AddCard inserts a card, generating an ID and timestamps when unset.
func (s *Store) AddCard(c *Card) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	_, err := s.db.Exec(`
		INSERT INTO cards (id, front, back, hint, tags, bucket, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Front, c.Back, c.Hint, joinTags(c.Tags), c.Bucket,
		c.CreatedAt.Unix(), c.UpdatedAt.Unix())
	if err != nil {
		return fmt.Errorf("insert card: %w", err)
	}
	return nil
}

// GetCard returns the card with the given ID, or nil if absent.
func (s *Store) GetCard(id string) (*Card, error) {
	var r cardRow
	err := s.db.Get(&r, `SELECT * FROM cards WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}
	return r.toCard(), nil
}

// GetCardByFront returns the first card with exactly the given front text,
// or nil if none exists. Used for import deduplication.
func (s *Store) GetCardByFront(front string) (*Card, error) {
	var r cardRow
	err := s.db.Get(&r, `SELECT * FROM cards WHERE front = ? LIMIT 1`, front)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get card by front: %w", err)
	}
	return r.toCard(), nil
}

// ListCards returns cards matching opts, ordered by creation time.
func (s *Store) ListCards(opts *CardListOptions) ([]*Card, error) {
	query := `SELECT * FROM cards`
	var conds []string
	var args []any

	if opts != nil {
		if opts.Bucket != nil {
			conds = append(conds, `bucket = ?`)
			args = append(args, *opts.Bucket)
		}
		if opts.Tag != "" {
			conds = append(conds, `(',' || tags || ',') LIKE ?`)
			args = append(args, "%,"+opts.Tag+",%")
		}
		if opts.Search != "" {
			conds = append(conds, `(front LIKE ? OR back LIKE ?)`)
			pat := "%" + opts.Search + "%"
			args = append(args, pat, pat)
		}
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at, id"
	if opts != nil && opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", opts.Limit)
	}

	var rows []cardRow
	if err := s.db.Select(&rows, query, args...); err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	cards := make([]*Card, len(rows))
	for i := range rows {
		cards[i] = rows[i].toCard()
	}
	return cards, nil
}

// UpdateCard rewrites all mutable fields of the card.
func (s *Store) UpdateCard(c *Card) error {
	c.UpdatedAt = time.Now().UTC()
	res, err := s.db.Exec(`
		UPDATE cards SET front = ?, back = ?, hint = ?, tags = ?, bucket = ?, updated_at = ?
		WHERE id = ?`,
		c.Front, c.Back, c.Hint, joinTags(c.Tags), c.Bucket, c.UpdatedAt.Unix(), c.ID)
	if err != nil {
		return fmt.Errorf("update card: %w", err)
	}
	return requireRow(res, c.ID)
}

// SetBucket moves the card to the given bucket.
func (s *Store) SetBucket(cardID string, bucket int) error {
	res, err := s.db.Exec(`UPDATE cards SET bucket = ?, updated_at = ? WHERE id = ?`,
		bucket, time.Now().UTC().Unix(), cardID)
	if err != nil {
		return fmt.Errorf("set bucket: %w", err)
	}
	return requireRow(res, cardID)
}

// DeleteCard removes the card and its trials.
func (s *Store) DeleteCard(id string) error {
	if _, err := s.db.Exec(`DELETE FROM trials WHERE card_id = ?`, id); err != nil {
		return fmt.Errorf("delete trials: %w", err)
	}
	res, err := s.db.Exec(`DELETE FROM cards WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete card: %w", err)
	}
	return requireRow(res, id)
}

func requireRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("card not found: %s", id)
	}
	return nil
}

type trialRow struct {
	ID          string `db:"id"`
	CardID      string `db:"card_id"`
	Day         int    `db:"day"`
	Difficulty  string `db:"difficulty"`
	PracticedAt int64  `db:"practiced_at"`
}

func (r *trialRow) toTrial() (*Trial, error) {
	t := &Trial{
		ID:          r.ID,
		CardID:      r.CardID,
		Day:         r.Day,
		PracticedAt: time.Unix(r.PracticedAt, 0).UTC(),
	}
	if err := t.Difficulty.UnmarshalText([]byte(r.Difficulty)); err != nil {
		return nil, err
	}
	return t, nil
}

// RecordTrial appends one trial to the history log.
func (s *Store) RecordTrial(t *Trial) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.PracticedAt.IsZero() {
		t.PracticedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(`
		INSERT INTO trials (id, card_id, day, difficulty, practiced_at)
		VALUES (?, ?, ?, ?, ?)`,
		t.ID, t.CardID, t.Day, t.Difficulty.String(), t.PracticedAt.Unix())
	if err != nil {
		return fmt.Errorf("insert trial: %w", err)
	}
	return nil
}

// ListTrials returns the trial history for one card, or all trials when
// cardID is empty, oldest first.
func (s *Store) ListTrials(cardID string) ([]*Trial, error) {
	query := `SELECT * FROM trials`
	var args []any
	if cardID != "" {
		query += ` WHERE card_id = ?`
		args = append(args, cardID)
	}
	query += ` ORDER BY practiced_at, id`

	var rows []trialRow
	if err := s.db.Select(&rows, query, args...); err != nil {
		return nil, fmt.Errorf("list trials: %w", err)
	}
	trials := make([]*Trial, 0, len(rows))
	for i := range rows {
		t, err := rows[i].toTrial()
		if err != nil {
			return nil, fmt.Errorf("trial %s: %w", rows[i].ID, err)
		}
		trials = append(trials, t)
	}
	return trials, nil
}

// Day returns the persistent study-day counter.
func (s *Store) Day() (int, error) {
	var day int
	if err := s.db.Get(&day, `SELECT day FROM profile WHERE id = 1`); err != nil {
		return 0, fmt.Errorf("get day: %w", err)
	}
	return day, nil
}

// SetDay stores the study-day counter.
func (s *Store) SetDay(day int) error {
	if day < 0 {
		return fmt.Errorf("day must be non-negative, got %d", day)
	}
	if _, err := s.db.Exec(`UPDATE profile SET day = ? WHERE id = 1`, day); err != nil {
		return fmt.Errorf("set day: %w", err)
	}
	return nil
}
