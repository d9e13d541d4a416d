package leitner

import (
	"testing"
)

// --- BucketSets ---

func TestBucketSetsEmpty(t *testing.T) {
	sets := BucketSets(BucketMap{})
	if len(sets) != 0 {
		t.Errorf("BucketSets(empty) = %d entries, want 0", len(sets))
	}
}

func TestBucketSetsGaps(t *testing.T) {
	a := NewCard("A", "1")
	b := NewCard("B", "2")
	c := NewCard("C", "3")
	m := BucketMap{0: NewCardSet(a), 2: NewCardSet(b, c)}

	sets := BucketSets(m)
	if len(sets) != 3 {
		t.Fatalf("len = %d, want 3", len(sets))
	}
	if len(sets[0]) != 1 || !sets[0].Contains(a) {
		t.Errorf("bucket 0 = %v, want {A}", sets[0].Cards())
	}
	if len(sets[1]) != 0 {
		t.Errorf("bucket 1 should be empty, got %d cards", len(sets[1]))
	}
	if len(sets[2]) != 2 || !sets[2].Contains(b) || !sets[2].Contains(c) {
		t.Errorf("bucket 2 = %v, want {B, C}", sets[2].Cards())
	}
}

func TestBucketSetsRoundTrip(t *testing.T) {
	cards := make([]*Card, 6)
	for i := range cards {
		cards[i] = NewCard("front", "back")
	}
	m := BucketMap{
		1: NewCardSet(cards[0], cards[1]),
		3: NewCardSet(cards[2]),
		5: NewCardSet(cards[3], cards[4], cards[5]),
	}

	sets := BucketSets(m)
	if len(sets) != 6 {
		t.Fatalf("len = %d, want 6", len(sets))
	}
	for b := 0; b < len(sets); b++ {
		want := m[b]
		if len(sets[b]) != len(want) {
			t.Errorf("bucket %d: %d cards, want %d", b, len(sets[b]), len(want))
		}
		for c := range want {
			if !sets[b].Contains(c) {
				t.Errorf("bucket %d missing card %p", b, c)
			}
		}
	}
}

func TestBucketSetsNoAliasing(t *testing.T) {
	a := NewCard("A", "1")
	m := BucketMap{0: NewCardSet(a)}

	sets := BucketSets(m)
	m[0].Add(NewCard("B", "2"))

	if len(sets[0]) != 1 {
		t.Error("mutating the sparse map leaked into the dense encoding")
	}
}

// --- BucketRange ---

func TestBucketRange(t *testing.T) {
	a := NewCard("A", "1")
	b := NewCard("B", "2")

	tests := []struct {
		name string
		sets []CardSet
		want Range
		ok   bool
	}{
		{"nil", nil, Range{}, false},
		{"all empty", []CardSet{{}, {}}, Range{}, false},
		{"spread", []CardSet{NewCardSet(a), {}, NewCardSet(b)}, Range{Min: 0, Max: 2}, true},
		{"single", []CardSet{{}, NewCardSet(a)}, Range{Min: 1, Max: 1}, true},
		{"trailing empty", []CardSet{{}, NewCardSet(a), {}, {}}, Range{Min: 1, Max: 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BucketRange(tt.sets)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("range = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// --- DueCards ---

func TestDueCardsPeriodicity(t *testing.T) {
	cards := make([]*Card, 6)
	sets := make([]CardSet, 6)
	for b := range sets {
		cards[b] = NewCard("front", "back")
		sets[b] = NewCardSet(cards[b])
	}

	for day := 0; day <= 32; day++ {
		due := DueCards(sets, day)
		for b := 0; b <= 5; b++ {
			want := b < RetiredBucket && day%(1<<b) == 0
			if got := due.Contains(cards[b]); got != want {
				t.Errorf("day %d bucket %d: due = %v, want %v", day, b, got, want)
			}
		}
	}
}

func TestDueCardsScenario(t *testing.T) {
	x := NewCard("X", "1")
	y := NewCard("Y", "2")
	sets := []CardSet{NewCardSet(x), NewCardSet(y)}

	day0 := DueCards(sets, 0)
	if len(day0) != 2 || !day0.Contains(x) || !day0.Contains(y) {
		t.Errorf("day 0 = %v, want {X, Y}", day0.Cards())
	}
	day1 := DueCards(sets, 1)
	if len(day1) != 1 || !day1.Contains(x) {
		t.Errorf("day 1 = %v, want {X}", day1.Cards())
	}
	day2 := DueCards(sets, 2)
	if len(day2) != 2 {
		t.Errorf("day 2 = %v, want {X, Y}", day2.Cards())
	}
}

func TestDueCardsShortEncoding(t *testing.T) {
	a := NewCard("A", "1")
	due := DueCards([]CardSet{NewCardSet(a)}, 0)
	if len(due) != 1 || !due.Contains(a) {
		t.Errorf("due = %v, want {A}", due.Cards())
	}

	if got := DueCards(nil, 0); len(got) != 0 {
		t.Errorf("empty encoding: due = %v, want empty", got.Cards())
	}
}

func TestDueCardsRetiredNeverSelected(t *testing.T) {
	r := NewCard("retired", "x")
	sets := BucketSets(BucketMap{RetiredBucket: NewCardSet(r)})
	for day := 0; day <= 64; day++ {
		if DueCards(sets, day).Contains(r) {
			t.Fatalf("retired card selected on day %d", day)
		}
	}
}

// --- Update ---

func TestUpdateTransitions(t *testing.T) {
	tests := []struct {
		name string
		from int
		d    Difficulty
		want int
	}{
		{"easy up", 2, Easy, 3},
		{"easy cap", RetiredBucket, Easy, RetiredBucket},
		{"hard down", 1, Hard, 0},
		{"hard floor", 0, Hard, 0},
		{"wrong from high", 4, Wrong, 0},
		{"wrong at zero", 0, Wrong, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCard("front", "back")
			m := BucketMap{tt.from: NewCardSet(c)}

			got := Update(m, c, tt.d)

			b, ok := findBucket(got, c)
			if !ok {
				t.Fatal("card vanished")
			}
			if b != tt.want {
				t.Errorf("bucket = %d, want %d", b, tt.want)
			}
			if got.Count() != 1 {
				t.Errorf("card count = %d, want 1", got.Count())
			}
		})
	}
}

func TestUpdateHardThenWrongScenario(t *testing.T) {
	c := NewCard("front", "back")
	m := BucketMap{1: NewCardSet(c)}

	m = Update(m, c, Hard)
	if b, _ := findBucket(m, c); b != 0 {
		t.Fatalf("after Hard: bucket = %d, want 0", b)
	}
	m = Update(m, c, Wrong)
	if b, _ := findBucket(m, c); b != 0 {
		t.Fatalf("after Wrong: bucket = %d, want 0", b)
	}
}

func TestUpdateUnknownCardNoOp(t *testing.T) {
	a := NewCard("A", "1")
	stranger := NewCard("B", "2")
	m := BucketMap{2: NewCardSet(a)}

	got := Update(m, stranger, Easy)

	if got.Count() != 1 {
		t.Errorf("count = %d, want 1", got.Count())
	}
	if b, ok := findBucket(got, a); !ok || b != 2 {
		t.Errorf("card A moved: bucket = %d, ok = %v", b, ok)
	}
	if _, ok := findBucket(got, stranger); ok {
		t.Error("unknown card inserted")
	}
}

func TestUpdateDoesNotMutateInput(t *testing.T) {
	c := NewCard("front", "back")
	m := BucketMap{0: NewCardSet(c)}

	out := Update(m, c, Easy)

	if b, ok := findBucket(m, c); !ok || b != 0 {
		t.Fatal("input map was mutated")
	}
	if b, _ := findBucket(out, c); b != 1 {
		t.Fatalf("output bucket = %d, want 1", b)
	}
	// Input and output share no sets.
	out[0] = NewCardSet(NewCard("other", "x"))
	if len(m[0]) != 1 {
		t.Error("output aliases input sets")
	}
}

func TestUpdateConservation(t *testing.T) {
	cards := []*Card{NewCard("A", "1"), NewCard("B", "2"), NewCard("C", "3")}
	m := BucketMap{0: NewCardSet(cards[0]), 3: NewCardSet(cards[1], cards[2])}

	for _, d := range []Difficulty{Easy, Hard, Wrong} {
		for _, c := range cards {
			m = Update(m, c, d)
			if m.Count() != 3 {
				t.Fatalf("after %v on %q: count = %d, want 3", d, c.Front, m.Count())
			}
		}
	}
}

func TestUpdateMonotoneClamping(t *testing.T) {
	c := NewCard("front", "back")
	m := BucketMap{RetiredBucket: NewCardSet(c)}
	for i := 0; i < 10; i++ {
		m = Update(m, c, Easy)
		if b, _ := findBucket(m, c); b != RetiredBucket {
			t.Fatalf("repeated Easy: bucket = %d, want %d", b, RetiredBucket)
		}
	}

	m = BucketMap{0: NewCardSet(c)}
	for i := 0; i < 10; i++ {
		m = Update(m, c, Hard)
		if b, _ := findBucket(m, c); b != 0 {
			t.Fatalf("repeated Hard: bucket = %d, want 0", b)
		}
	}
}

func TestUpdateRemovesEmptiedBucket(t *testing.T) {
	c := NewCard("front", "back")
	m := Update(BucketMap{2: NewCardSet(c)}, c, Easy)
	if _, ok := m[2]; ok {
		t.Error("emptied bucket 2 still present in sparse map")
	}
	if len(m[3]) != 1 {
		t.Errorf("bucket 3 = %d cards, want 1", len(m[3]))
	}
}

// --- Progress ---

func TestProgressEmpty(t *testing.T) {
	if got := Progress(BucketMap{}, nil); got != 0 {
		t.Errorf("Progress(empty) = %d, want 0", got)
	}
}

func TestProgressAllRetired(t *testing.T) {
	m := BucketMap{RetiredBucket: NewCardSet(NewCard("A", "1"), NewCard("B", "2"))}
	if got := Progress(m, nil); got != 100 {
		t.Errorf("Progress(all retired) = %d, want 100", got)
	}
}

func TestProgressAllNew(t *testing.T) {
	m := BucketMap{0: NewCardSet(NewCard("A", "1"), NewCard("B", "2"))}
	if got := Progress(m, nil); got != 0 {
		t.Errorf("Progress(all bucket 0) = %d, want 0", got)
	}
}

func TestProgressWeightedScenario(t *testing.T) {
	// {0:[p], 2:[q], 5:[r]} -> round((0 + 40 + 100) / 3) = 47.
	m := BucketMap{
		0: NewCardSet(NewCard("p", "1")),
		2: NewCardSet(NewCard("q", "2")),
		5: NewCardSet(NewCard("r", "3")),
	}
	if got := Progress(m, nil); got != 47 {
		t.Errorf("Progress = %d, want 47", got)
	}
}

func TestProgressBounds(t *testing.T) {
	maps := []BucketMap{
		{},
		{0: NewCardSet(NewCard("a", "1"))},
		{1: NewCardSet(NewCard("a", "1"), NewCard("b", "2")), 4: NewCardSet(NewCard("c", "3"))},
		{5: NewCardSet(NewCard("a", "1"))},
		// Malformed external state: bucket above the retirement threshold.
		{9: NewCardSet(NewCard("a", "1"))},
	}
	for i, m := range maps {
		got := Progress(m, nil)
		if got < 0 || got > 100 {
			t.Errorf("map %d: Progress = %d, out of [0, 100]", i, got)
		}
	}
}

func TestProgressIgnoresHistory(t *testing.T) {
	c := NewCard("A", "1")
	m := BucketMap{3: NewCardSet(c)}
	trials := []Trial{
		{Card: c, Day: 0, Difficulty: Wrong},
		{Card: c, Day: 1, Difficulty: Easy},
	}
	if Progress(m, trials) != Progress(m, nil) {
		t.Error("history changed the progress result")
	}
}
