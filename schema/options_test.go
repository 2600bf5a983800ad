package schema

import (
	"math/rand"
	"reflect"
	"testing"
	"testing/quick"
)

func (TextOptions) Generate(r *rand.Rand, _ int) reflect.Value {
	o := NewTextOptions().SetIndexingOptions(TextIndexing(r.Intn(int(TokenizedWithFreqAndPosition) + 1)))
	if r.Intn(2) == 0 {
		o = o.SetStored()
	}
	return reflect.ValueOf(o)
}

func (U32Options) Generate(r *rand.Rand, _ int) reflect.Value {
	o := NewU32Options()
	if r.Intn(2) == 0 {
		o = o.SetStored()
	}
	if r.Intn(2) == 0 {
		o = o.SetIndexed()
	}
	if r.Intn(2) == 0 {
		o = o.SetFast()
	}
	return reflect.ValueOf(o)
}

func TestTextOptionsAlgebra(t *testing.T) {
	assoc := func(a, b, c TextOptions) bool { return a.Or(b).Or(c) == a.Or(b.Or(c)) }
	comm := func(a, b TextOptions) bool { return a.Or(b) == b.Or(a) }
	idem := func(a TextOptions) bool { return a.Or(a) == a }
	for name, fn := range map[string]any{"associative": assoc, "commutative": comm, "idempotent": idem} {
		if err := quick.Check(fn, nil); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestU32OptionsAlgebra(t *testing.T) {
	assoc := func(a, b, c U32Options) bool { return a.Or(b).Or(c) == a.Or(b.Or(c)) }
	comm := func(a, b U32Options) bool { return a.Or(b) == b.Or(a) }
	idem := func(a U32Options) bool { return a.Or(a) == a }
	for name, fn := range map[string]any{"associative": assoc, "commutative": comm, "idempotent": idem} {
		if err := quick.Check(fn, nil); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestTextShortcuts(t *testing.T) {
	ts := TEXT.Or(STORED)
	if !ts.IsStored() || ts.IndexingOptions() != TokenizedWithFreqAndPosition {
		t.Fatalf("TEXT|STORED = %v", ts)
	}
	if STRING.IsStored() || STRING.IndexingOptions() != Untokenized {
		t.Fatalf("STRING = %v", STRING)
	}
	if !STORED.IsStored() || STORED.IsIndexed() {
		t.Fatalf("STORED = %v", STORED)
	}
	// the richer level wins regardless of order
	if got := STRING.Or(TEXT).IndexingOptions(); got != TokenizedWithFreqAndPosition {
		t.Fatalf("STRING|TEXT indexing = %v", got)
	}
	manual := NewTextOptions().SetStored().SetIndexingOptions(TokenizedWithFreqAndPosition)
	if manual != ts {
		t.Fatalf("builder %v != shortcut %v", manual, ts)
	}
}

func TestSettersDoNotMutateShortcuts(t *testing.T) {
	_ = TEXT.SetStored()
	if TEXT.IsStored() {
		t.Fatal("SetStored mutated TEXT")
	}
	_ = FAST.SetIndexed()
	if FAST.IsIndexed() {
		t.Fatal("SetIndexed mutated FAST")
	}
}

func TestU32Shortcut(t *testing.T) {
	o := FAST.Or(NewU32Options().SetStored())
	if !o.IsFast() || !o.IsStored() || o.IsIndexed() {
		t.Fatalf("FAST|stored = %v", o)
	}
	if o != NewU32Options().SetStored().SetFast() {
		t.Fatalf("composition depends on order: %v", o)
	}
}

func TestTextIndexingLevels(t *testing.T) {
	cases := []struct {
		level                         TextIndexing
		indexed, tokenized, freq, pos bool
	}{
		{Unindexed, false, false, false, false},
		{Untokenized, true, false, false, false},
		{TokenizedNoFreq, true, true, false, false},
		{TokenizedWithFreq, true, true, true, false},
		{TokenizedWithFreqAndPosition, true, true, true, true},
	}
	for _, tc := range cases {
		if tc.level.IsIndexed() != tc.indexed || tc.level.IsTokenized() != tc.tokenized ||
			tc.level.IsTermFreqEnabled() != tc.freq || tc.level.IsPositionEnabled() != tc.pos {
			t.Errorf("%v: unexpected predicates", tc.level)
		}
		parsed, err := ParseTextIndexing(tc.level.String())
		if err != nil || parsed != tc.level {
			t.Errorf("ParseTextIndexing(%q) = %v, %v", tc.level.String(), parsed, err)
		}
	}
	if _, err := ParseTextIndexing("bogus"); !IsKind(err, ErrSchema) {
		t.Fatalf("expected schema error, got %v", err)
	}
}
