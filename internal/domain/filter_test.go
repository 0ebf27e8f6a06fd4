package domain

import (
	"errors"
	"testing"

	m "github.com/mouse-blink/dataobj/internal/model"
)

func TestParseSkipRule_Empty(t *testing.T) {
	r, err := ParseSkipRule("  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Empty() {
		t.Fatalf("expected empty rule")
	}
	for _, k := range m.Kinds {
		if r.Skips(k) {
			t.Fatalf("empty rule should not skip %s", k)
		}
	}
}

func TestParseSkipRule_All(t *testing.T) {
	r, err := ParseSkipRule("ALL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Empty() {
		t.Fatalf("expected non-empty rule")
	}
	for _, k := range m.Kinds {
		if !r.Skips(k) {
			t.Fatalf("expected %s to be skipped", k)
		}
	}
}

func TestParseSkipRule_Names(t *testing.T) {
	r, err := ParseSkipRule("Integer, float,")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Skips(m.KindString) {
		t.Fatalf("did not expect string to be skipped")
	}
	if !r.Skips(m.KindInteger) || !r.Skips(m.KindFloat) {
		t.Fatalf("expected integer and float to be skipped")
	}
}

func TestParseSkipRule_UnknownKind(t *testing.T) {
	_, err := ParseSkipRule("string,complex")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, m.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestSkip_ForwardsOnlyKeptKinds(t *testing.T) {
	rule, err := ParseSkipRule("string")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tr := &tracer{}
	Dispatch(m.SampleSequence(), Skip(tr, rule))

	if len(tr.seen) != 2 || tr.seen[0] != "i:16" || tr.seen[1] != "f:3.14" {
		t.Fatalf("unexpected visits: %v", tr.seen)
	}
}

func TestSkip_EmptyRuleReturnsNext(t *testing.T) {
	tr := &tracer{}
	if got := Skip(tr, SkipRule{}); got != m.Visitor(tr) {
		t.Fatalf("expected the wrapped visitor to be returned unchanged")
	}
}

func TestSelect(t *testing.T) {
	rule, err := ParseSkipRule("integer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seq := m.SampleSequence()
	selected, positions := Select(seq, rule)

	if selected.Len() != 2 {
		t.Fatalf("expected 2 objects, got %d", selected.Len())
	}
	if m.KindOf(selected.At(0)) != m.KindString || m.KindOf(selected.At(1)) != m.KindFloat {
		t.Fatalf("unexpected kinds after select")
	}
	if len(positions) != 2 || positions[0] != 0 || positions[1] != 2 {
		t.Fatalf("unexpected positions: %v", positions)
	}
	if seq.Len() != 3 {
		t.Fatalf("source sequence must be unchanged")
	}

	all, _ := ParseSkipRule("all")
	if none, positions := Select(seq, all); none.Len() != 0 || len(positions) != 0 {
		t.Fatalf("expected skip all to select nothing")
	}
}

func TestSelect_EmptyRuleKeepsPositions(t *testing.T) {
	seq := m.SampleSequence()
	selected, positions := Select(seq, SkipRule{})

	if selected.Len() != 3 {
		t.Fatalf("expected 3 objects, got %d", selected.Len())
	}
	for i, p := range positions {
		if p != i {
			t.Fatalf("positions = %v, want identity", positions)
		}
	}
}
