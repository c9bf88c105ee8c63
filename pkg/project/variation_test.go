package project

import (
	"errors"
	"testing"
)

func TestVariations(t *testing.T) {
	p := testProject()
	p.SetVariations([]Variation{
		{Title: "One", Lyrics: "first"},
		{Title: "Two", Lyrics: "second"},
	})
	if err := p.ApplyVariation(1); err != nil {
		t.Fatal(err)
	}
	if p.Lyrics != "second" || p.AppliedVariation == nil || *p.AppliedVariation != 1 {
		t.Fatalf("ApplyVariation(1) = %q, %v", p.Lyrics, p.AppliedVariation)
	}
	// Re-applying is idempotent.
	if err := p.ApplyVariation(1); err != nil || p.Lyrics != "second" {
		t.Fatalf("ApplyVariation(1) again = %v, %q", err, p.Lyrics)
	}
	if err := p.ApplyVariation(0); err != nil || p.Lyrics != "first" || *p.AppliedVariation != 0 {
		t.Fatalf("ApplyVariation(0) = %v, %q", err, p.Lyrics)
	}

	p.SetVariations([]Variation{{Title: "Three", Lyrics: "third"}})
	if p.AppliedVariation != nil {
		t.Fatalf("SetVariations() applied = %d; want nil", *p.AppliedVariation)
	}
	if p.Lyrics != "first" {
		t.Fatalf("SetVariations() lyrics = %q; want %q", p.Lyrics, "first")
	}
}

func TestApplyVariationInvalid(t *testing.T) {
	p := testProject()
	p.SetVariations([]Variation{{Lyrics: "only"}})
	for _, k := range []int{-1, 1, 5} {
		if err := p.ApplyVariation(k); !errors.Is(err, ErrInvalidIndex) {
			t.Fatalf("ApplyVariation(%d) err = %v; want %v", k, err, ErrInvalidIndex)
		}
	}
	if p.Lyrics != "la la" || p.AppliedVariation != nil {
		t.Fatalf("failed ApplyVariation() changed state: %q, %v", p.Lyrics, p.AppliedVariation)
	}
}
