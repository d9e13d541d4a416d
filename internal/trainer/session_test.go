package trainer

import (
	"fmt"
	"testing"

	"github.com/mtreilly/leitner-box/internal/leitner"
)

func seedSession(t *testing.T) (*Session, *Card, *Card) {
	t.Helper()

	store := NewMemStore()
	sess := NewSession(store)

	a := &Card{Front: "Capital of France?", Back: "Paris"}
	b := &Card{Front: "Largest planet?", Back: "Jupiter", Bucket: 1}
	if err := store.AddCard(a); err != nil {
		t.Fatalf("AddCard: %v", err)
	}
	if err := store.AddCard(b); err != nil {
		t.Fatalf("AddCard: %v", err)
	}
	return sess, a, b
}

func dueFronts(t *testing.T, sess *Session, day int) []string {
	t.Helper()
	cards, _, err := sess.Due(day)
	if err != nil {
		t.Fatalf("Due(%d): %v", day, err)
	}
	fronts := make([]string, len(cards))
	for i, c := range cards {
		fronts[i] = c.Front
	}
	return fronts
}

func TestSessionDueSchedule(t *testing.T) {
	sess, _, _ := seedSession(t)

	// Bucket 0 is due every day; bucket 1 only on even days.
	tests := []struct {
		day  int
		want []string
	}{
		{0, []string{"Capital of France?", "Largest planet?"}},
		{1, []string{"Capital of France?"}},
		{2, []string{"Capital of France?", "Largest planet?"}},
		{3, []string{"Capital of France?"}},
	}
	for _, tt := range tests {
		got := dueFronts(t, sess, tt.day)
		if len(got) != len(tt.want) {
			t.Fatalf("day %d: got %v, want %v", tt.day, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("day %d: got %v, want %v", tt.day, got, tt.want)
				break
			}
		}
	}
}

func TestSessionDueUsesCurrentDay(t *testing.T) {
	sess, _, _ := seedSession(t)

	if err := sess.Store().SetDay(3); err != nil {
		t.Fatalf("SetDay: %v", err)
	}
	cards, day, err := sess.Due(-1)
	if err != nil {
		t.Fatalf("Due: %v", err)
	}
	if day != 3 {
		t.Errorf("day = %d, want 3", day)
	}
	if len(cards) != 1 || cards[0].Front != "Capital of France?" {
		t.Errorf("due on day 3 = %d card(s), want just the bucket-0 card", len(cards))
	}
}

func TestSessionGradeTransitions(t *testing.T) {
	tests := []struct {
		name       string
		start      int
		difficulty leitner.Difficulty
		want       int
	}{
		{"easy moves up", 0, leitner.Easy, 1},
		{"easy caps at retirement", 5, leitner.Easy, 5},
		{"hard moves down", 2, leitner.Hard, 1},
		{"hard floors at zero", 0, leitner.Hard, 0},
		{"wrong resets", 4, leitner.Wrong, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemStore()
			sess := NewSession(store)
			card := &Card{Front: "f", Back: "b", Bucket: tt.start}
			if err := store.AddCard(card); err != nil {
				t.Fatalf("AddCard: %v", err)
			}

			res, err := sess.Grade(card.ID, tt.difficulty)
			if err != nil {
				t.Fatalf("Grade: %v", err)
			}
			if res.From != tt.start || res.To != tt.want {
				t.Errorf("transition %d -> %d, want %d -> %d", res.From, res.To, tt.start, tt.want)
			}

			stored, err := store.GetCard(card.ID)
			if err != nil {
				t.Fatalf("GetCard: %v", err)
			}
			if stored.Bucket != tt.want {
				t.Errorf("persisted bucket = %d, want %d", stored.Bucket, tt.want)
			}
		})
	}
}

func TestSessionGradeRecordsTrial(t *testing.T) {
	sess, a, _ := seedSession(t)

	if err := sess.Store().SetDay(2); err != nil {
		t.Fatalf("SetDay: %v", err)
	}
	if _, err := sess.Grade(a.ID, leitner.Easy); err != nil {
		t.Fatalf("Grade: %v", err)
	}

	trials, err := sess.Store().ListTrials(a.ID)
	if err != nil {
		t.Fatalf("ListTrials: %v", err)
	}
	if len(trials) != 1 {
		t.Fatalf("got %d trial(s), want 1", len(trials))
	}
	if trials[0].Day != 2 || trials[0].Difficulty != leitner.Easy {
		t.Errorf("trial = day %d %s, want day 2 %s", trials[0].Day, trials[0].Difficulty, leitner.Easy)
	}
}

func TestSessionGradeUnknownCard(t *testing.T) {
	sess, _, _ := seedSession(t)

	if _, err := sess.Grade("no-such-card", leitner.Easy); err == nil {
		t.Fatal("expected error for unknown card")
	}
}

func TestSessionGradeInvalidDifficulty(t *testing.T) {
	sess, a, _ := seedSession(t)

	if _, err := sess.Grade(a.ID, leitner.Difficulty(9)); err == nil {
		t.Fatal("expected error for invalid difficulty")
	}
}

func TestSessionProgress(t *testing.T) {
	store := NewMemStore()
	sess := NewSession(store)

	percent, err := sess.Progress()
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if percent != 0 {
		t.Errorf("empty box progress = %d, want 0", percent)
	}

	// One retired card and one new card average to 50%.
	if err := store.AddCard(&Card{Front: "a", Bucket: 5}); err != nil {
		t.Fatalf("AddCard: %v", err)
	}
	if err := store.AddCard(&Card{Front: "b", Bucket: 0}); err != nil {
		t.Fatalf("AddCard: %v", err)
	}
	percent, err = sess.Progress()
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if percent != 50 {
		t.Errorf("progress = %d, want 50", percent)
	}
}

func TestSessionRangeAndCounts(t *testing.T) {
	store := NewMemStore()
	sess := NewSession(store)

	if _, ok, err := sess.Range(); err != nil || ok {
		t.Fatalf("empty Range = ok=%v err=%v, want ok=false", ok, err)
	}

	for i, b := range []int{1, 1, 4} {
		if err := store.AddCard(&Card{Front: fmt.Sprintf("card-%d", i), Bucket: b}); err != nil {
			t.Fatalf("AddCard: %v", err)
		}
	}

	r, ok, err := sess.Range()
	if err != nil || !ok {
		t.Fatalf("Range: ok=%v err=%v", ok, err)
	}
	if r.Min != 1 || r.Max != 4 {
		t.Errorf("range = %d-%d, want 1-4", r.Min, r.Max)
	}

	counts, err := sess.BucketCounts()
	if err != nil {
		t.Fatalf("BucketCounts: %v", err)
	}
	if counts[1] != 2 || counts[4] != 1 {
		t.Errorf("counts = %v, want 2 in bucket 1 and 1 in bucket 4", counts)
	}
}

func TestSessionAdvanceDay(t *testing.T) {
	sess, _, _ := seedSession(t)

	day, err := sess.AdvanceDay()
	if err != nil {
		t.Fatalf("AdvanceDay: %v", err)
	}
	if day != 1 {
		t.Errorf("day = %d, want 1", day)
	}
	day, err = sess.CurrentDay()
	if err != nil {
		t.Fatalf("CurrentDay: %v", err)
	}
	if day != 1 {
		t.Errorf("persisted day = %d, want 1", day)
	}
}

func TestSessionHintFor(t *testing.T) {
	sess, a, _ := seedSession(t)

	hint, err := sess.HintFor(a.ID)
	if err != nil {
		t.Fatalf("HintFor: %v", err)
	}
	if hint != "Capital of" {
		t.Errorf("hint = %q, want %q", hint, "Capital of")
	}

	if _, err := sess.HintFor("missing"); err == nil {
		t.Fatal("expected error for unknown card")
	}
}
