package xgxgroup

import (
	"errors"
	"testing"
)

func TestSplit_Partition(t *testing.T) {
	nf := NewError(KindNotFound, "user missing")
	oor := NewError(KindOutOfRange, "index 9")
	to := NewError(KindTimeout, "db slow")
	g, err := New("batch failed", []error{nf, to, oor}, []string{"w1", "w2", "w3"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	matched, rest := Split(KindLookup, g)
	mg, ok := matched.(*GroupError)
	if !ok {
		t.Fatalf("matched side should be a group, got %T", matched)
	}
	rg, ok := rest.(*GroupError)
	if !ok {
		t.Fatalf("rest side should be a group, got %T", rest)
	}

	if mg.Len() != 2 || rg.Len() != 1 {
		t.Fatalf("partition sizes = %d/%d, want 2/1", mg.Len(), rg.Len())
	}
	// Order and source alignment survive the partition.
	if excs := mg.Exceptions(); excs[0] != nf || excs[1] != oor {
		t.Fatal("matched side must keep original member order")
	}
	if srcs := mg.Sources(); srcs[0] != "w1" || srcs[1] != "w3" {
		t.Fatalf("matched sources misaligned: %v", srcs)
	}
	if srcs := rg.Sources(); srcs[0] != "w2" {
		t.Fatalf("rest sources misaligned: %v", srcs)
	}
	if mg.Message() != g.Message() || rg.Message() != g.Message() {
		t.Fatal("both sides keep the original message")
	}

	// Narrowed shapes are re-derived, so the sides still match structurally.
	if !errors.Is(matched, Grouped.MustSpecialize(KindLookup, Others)) {
		t.Fatal("matched side should satisfy the lookup filter")
	}
	if !errors.Is(rest, Grouped.MustSpecialize(KindTimeout)) {
		t.Fatal("rest side should be exactly the timeout group")
	}
}

func TestSplit_AllOrNothing(t *testing.T) {
	g, err := New("m",
		[]error{NewError(KindNotFound, "a"), NewError(KindOutOfRange, "b")},
		[]string{"s1", "s2"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	matched, rest := Split(KindLookup, g)
	if matched != g || rest != nil {
		t.Fatal("full match must return the original group and a nil rest")
	}

	matched, rest = Split(KindConflict, g)
	if matched != nil || rest != g {
		t.Fatal("no match must return a nil matched and the original group")
	}
}

func TestSplit_ChainingMetadataCarried(t *testing.T) {
	g, err := New("m",
		[]error{NewError(KindNotFound, "a"), NewError(KindTimeout, "b")},
		[]string{"s1", "s2"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cause := errors.New("origin")
	g.SetCause(cause)
	g.SetSuppressPrior(false)

	matched, rest := Split(KindLookup, g)
	for _, side := range []error{matched, rest} {
		sg := side.(*GroupError)
		if sg.Cause() != cause {
			t.Fatal("cause link must carry over")
		}
		if sg.SuppressPrior() {
			t.Fatal("suppress flag must be re-applied after the cause copy")
		}
	}
}

func TestSplit_NonGroup(t *testing.T) {
	e := NewError(KindNotFound, "x")
	if m, r := Split(KindLookup, e); m != e || r != nil {
		t.Fatal("matching non-group goes entirely to matched")
	}
	if m, r := Split(KindTimeout, e); m != nil || r != e {
		t.Fatal("non-matching non-group goes entirely to rest")
	}
}

func TestSplit_NilInputs(t *testing.T) {
	if m, r := Split(KindLookup, nil); m != nil || r != nil {
		t.Fatal("Split(kind, nil) = nil, nil")
	}
	e := NewError(KindNotFound, "x")
	if m, r := Split(nil, e); m != nil || r != e {
		t.Fatal("Split(nil, err) keeps everything in rest")
	}
}
