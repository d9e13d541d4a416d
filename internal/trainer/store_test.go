package trainer

import (
	"path/filepath"
	"testing"

	"github.com/mtreilly/leitner-box/internal/leitner"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "box.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreCardRoundTrip(t *testing.T) {
	store := openTestStore(t)

	card := &Card{
		Front:  "Capital of France?",
		Back:   "Paris",
		Hint:   "city of light",
		Tags:   []string{"geo", "europe"},
		Bucket: 2,
	}
	if err := store.AddCard(card); err != nil {
		t.Fatalf("AddCard: %v", err)
	}

	got, err := store.GetCard(card.ID)
	if err != nil {
		t.Fatalf("GetCard: %v", err)
	}
	if got == nil {
		t.Fatal("card not found after insert")
	}
	if got.Front != card.Front || got.Back != card.Back || got.Hint != card.Hint {
		t.Errorf("got %+v", got)
	}
	if got.Bucket != 2 {
		t.Errorf("bucket = %d, want 2", got.Bucket)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "geo" {
		t.Errorf("tags = %v", got.Tags)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("timestamps not set")
	}
}

func TestStoreMissingCard(t *testing.T) {
	store := openTestStore(t)

	got, err := store.GetCard("missing")
	if err != nil {
		t.Fatalf("GetCard: %v", err)
	}
	if got != nil {
		t.Errorf("got %+v, want nil", got)
	}

	if err := store.SetBucket("missing", 1); err == nil {
		t.Error("expected error setting bucket on missing card")
	}
	if err := store.DeleteCard("missing"); err == nil {
		t.Error("expected error deleting missing card")
	}
}

func TestStoreListFilters(t *testing.T) {
	store := openTestStore(t)

	cards := []*Card{
		{Front: "capital of france", Back: "paris", Tags: []string{"geo"}},
		{Front: "capital of spain", Back: "madrid", Tags: []string{"geo"}, Bucket: 3},
		{Front: "2+2", Back: "4", Tags: []string{"math"}},
	}
	for _, c := range cards {
		if err := store.AddCard(c); err != nil {
			t.Fatalf("AddCard: %v", err)
		}
	}

	byTag, err := store.ListCards(&CardListOptions{Tag: "geo"})
	if err != nil {
		t.Fatalf("ListCards: %v", err)
	}
	if len(byTag) != 2 {
		t.Errorf("tag filter: got %d, want 2", len(byTag))
	}

	bucket := 3
	byBucket, err := store.ListCards(&CardListOptions{Bucket: &bucket})
	if err != nil {
		t.Fatalf("ListCards: %v", err)
	}
	if len(byBucket) != 1 || byBucket[0].Front != "capital of spain" {
		t.Errorf("bucket filter: got %v", byBucket)
	}

	bySearch, err := store.ListCards(&CardListOptions{Search: "capital"})
	if err != nil {
		t.Fatalf("ListCards: %v", err)
	}
	if len(bySearch) != 2 {
		t.Errorf("search filter: got %d, want 2", len(bySearch))
	}
}

func TestStoreTrialsAndDay(t *testing.T) {
	store := openTestStore(t)

	card := &Card{Front: "front"}
	if err := store.AddCard(card); err != nil {
		t.Fatalf("AddCard: %v", err)
	}

	if err := store.RecordTrial(&Trial{CardID: card.ID, Day: 1, Difficulty: leitner.Hard}); err != nil {
		t.Fatalf("RecordTrial: %v", err)
	}
	trials, err := store.ListTrials(card.ID)
	if err != nil {
		t.Fatalf("ListTrials: %v", err)
	}
	if len(trials) != 1 || trials[0].Difficulty != leitner.Hard {
		t.Fatalf("trials = %+v", trials)
	}

	day, err := store.Day()
	if err != nil {
		t.Fatalf("Day: %v", err)
	}
	if day != 0 {
		t.Errorf("initial day = %d, want 0", day)
	}
	if err := store.SetDay(4); err != nil {
		t.Fatalf("SetDay: %v", err)
	}
	day, _ = store.Day()
	if day != 4 {
		t.Errorf("day = %d, want 4", day)
	}
}

func TestStoreSessionEndToEnd(t *testing.T) {
	store := openTestStore(t)
	sess := NewSession(store)

	card := &Card{Front: "Capital of France?", Back: "Paris"}
	if err := store.AddCard(card); err != nil {
		t.Fatalf("AddCard: %v", err)
	}

	due, _, err := sess.Due(0)
	if err != nil {
		t.Fatalf("Due: %v", err)
	}
	if len(due) != 1 {
		t.Fatalf("due = %d card(s), want 1", len(due))
	}

	res, err := sess.Grade(card.ID, leitner.Easy)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.To != 1 {
		t.Errorf("bucket after easy = %d, want 1", res.To)
	}

	// Bucket 1 cards are not due on odd days.
	due, _, err = sess.Due(1)
	if err != nil {
		t.Fatalf("Due: %v", err)
	}
	if len(due) != 0 {
		t.Errorf("due on day 1 = %d card(s), want 0", len(due))
	}
}
