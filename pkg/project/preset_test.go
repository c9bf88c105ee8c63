package project

import (
	"errors"
	"reflect"
	"testing"
)

func TestApplyGenrePreset(t *testing.T) {
	p := testProject()
	before := p.Clone()
	if err := p.ApplyGenrePreset("🔥 Salsa Dura (Fast & Aggressive)"); err != nil {
		t.Fatal(err)
	}
	if p.BPM != 180 || p.Key != "Am" {
		t.Fatalf("ApplyGenrePreset() bpm, key = %d, %q; want 180, Am", p.BPM, p.Key)
	}
	want := []string{"Trumpet", "Trombone", "Timbales", "Congas", "Piano", "Bass"}
	if !reflect.DeepEqual(p.Instruments, want) {
		t.Fatalf("ApplyGenrePreset() instruments = %v; want %v", p.Instruments, want)
	}
	if p.Title != before.Title || p.Lyrics != before.Lyrics || !reflect.DeepEqual(p.Structure, before.Structure) {
		t.Fatal("ApplyGenrePreset() modified title, lyrics or structure")
	}
}

func TestApplyGenrePresetOverwrites(t *testing.T) {
	p := testProject()
	if err := p.ApplyGenrePreset("🔥 Salsa Dura (Fast & Aggressive)"); err != nil {
		t.Fatal(err)
	}
	if err := p.ApplyGenrePreset("🎹 Piano Ballad"); err != nil {
		t.Fatal(err)
	}
	if p.BPM != 70 || p.Key != "C" {
		t.Fatalf("second preset bpm, key = %d, %q; want 70, C", p.BPM, p.Key)
	}
	if want := []string{"Piano", "Strings", "Cello"}; !reflect.DeepEqual(p.Instruments, want) {
		t.Fatalf("second preset instruments = %v; want %v", p.Instruments, want)
	}
}

func TestApplyGenrePresetUnknown(t *testing.T) {
	p := testProject()
	before := p.Clone()
	if err := p.ApplyGenrePreset("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("ApplyGenrePreset(nope) err = %v; want %v", err, ErrNotFound)
	}
	if !reflect.DeepEqual(p, before) {
		t.Fatal("ApplyGenrePreset(nope) modified the project")
	}
}

func TestApplyInstrumentPreset(t *testing.T) {
	p := testProject()
	in := []string{"Guira", "Bass", "Guira"}
	p.ApplyInstrumentPreset(in)
	if want := []string{"Guira", "Bass"}; !reflect.DeepEqual(p.Instruments, want) {
		t.Fatalf("ApplyInstrumentPreset() = %v; want %v", p.Instruments, want)
	}
	in[0] = "Kazoo"
	if p.Instruments[0] == "Kazoo" {
		t.Fatal("ApplyInstrumentPreset() kept a reference to the input")
	}
}
