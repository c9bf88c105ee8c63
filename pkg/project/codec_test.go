package project

import (
	"errors"
	"reflect"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	p := testProject()
	p.DJName = "DJ Loco"
	p.IntroStyle = "3"
	p.GeneratedTitles = []string{"A (가)"}
	p.SetVariations([]Variation{{Title: "One", Lyrics: "first", Rationale: "why"}})
	if err := p.ApplyVariation(0); err != nil {
		t.Fatal(err)
	}
	b, err := Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Parse(b)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, p) {
		t.Fatalf("Parse(Marshal(p)) = %+v; want %+v", got, p)
	}
}

func TestRoundTripCollection(t *testing.T) {
	a := testProject()
	b := testProject()
	b.Title = "Second"
	raw, err := MarshalCollection([]*Project{b, a})
	if err != nil {
		t.Fatal(err)
	}
	got, err := ParseCollection(raw)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []*Project{b, a}) {
		t.Fatalf("ParseCollection() = %v", got)
	}
	raw, err = MarshalCollection(nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "[]" {
		t.Fatalf("MarshalCollection(nil) = %s; want []", raw)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		valid bool
	}{
		{"string id", `{"id":"abc","title":"Song"}`, true},
		{"number id", `{"id":1700000000000,"title":"Song","bpm":95}`, true},
		{"missing id", `{"title":"Song"}`, false},
		{"missing title", `{"id":"abc"}`, false},
		{"empty title", `{"id":"abc","title":"  "}`, false},
		{"empty id", `{"id":"","title":"Song"}`, false},
		{"zero id", `{"id":0,"title":"Song"}`, false},
		{"bool id", `{"id":true,"title":"Song"}`, false},
		{"not json", `{"id":`, false},
		{"array", `[]`, false},
		{"wrong type", `{"id":"abc","title":"Song","bpm":"fast"}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse([]byte(tt.in))
			if tt.valid {
				if err != nil {
					t.Fatalf("Parse(%s) err = %v; want nil", tt.in, err)
				}
				if p.Structure == nil || p.Instruments == nil || p.Variations == nil || p.GeneratedTitles == nil {
					t.Fatalf("Parse(%s) left nil slices", tt.in)
				}
				return
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("Parse(%s) err = %v; want %v", tt.in, err, ErrValidation)
			}
		})
	}
}

func TestParseClearsAppliedIndex(t *testing.T) {
	p, err := Parse([]byte(`{"id":"x","title":"t","lyricVariations":[{"title":"a","lyrics":"b","rationale":"c"}],"selectedLyricVariationIndex":3}`))
	if err != nil {
		t.Fatal(err)
	}
	if p.AppliedVariation != nil {
		t.Fatalf("AppliedVariation = %d; want nil", *p.AppliedVariation)
	}
	p, err = Parse([]byte(`{"id":"x","title":"t","lyricVariations":[{"title":"a","lyrics":"b","rationale":"c"}],"selectedLyricVariationIndex":0}`))
	if err != nil {
		t.Fatal(err)
	}
	if p.AppliedVariation == nil || *p.AppliedVariation != 0 {
		t.Fatalf("AppliedVariation = %v; want 0", p.AppliedVariation)
	}
}

func TestParseCollectionUntitled(t *testing.T) {
	raw := `[{"id":"a","title":""},{"id":"b"}]`
	got, err := ParseCollection([]byte(raw))
	if err != nil {
		t.Fatalf("ParseCollection() err = %v; want nil", err)
	}
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("ParseCollection() = %+v", got)
	}
	if _, err := ParseCollection([]byte(`[{"title":"x"}]`)); !errors.Is(err, ErrValidation) {
		t.Fatalf("ParseCollection(no id) err = %v; want %v", err, ErrValidation)
	}
	if _, err := Parse([]byte(`{"id":"a","title":" "}`)); !errors.Is(err, ErrValidation) {
		t.Fatalf("Parse(blank title) err = %v; want %v", err, ErrValidation)
	}
}

func TestParseDuplicateInstruments(t *testing.T) {
	p, err := Parse([]byte(`{"id":"a","title":"Song","instruments":["Piano","Bass","Piano"]}`))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"Piano", "Bass"}; !reflect.DeepEqual(p.Instruments, want) {
		t.Fatalf("Parse() instruments = %v; want %v", p.Instruments, want)
	}
}
