package project

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/igolaizola/songstudio/pkg/catalog"
)

func testProject() *Project {
	p := New("Noche", "Salsa", "Salsa Dura", "Passionate", time.UnixMilli(1700000000000))
	p.Structure = []SongBlock{
		{ID: "a", Type: catalog.Intro, Description: "Percussion", Duration: 4},
		{ID: "b", Type: catalog.Verse, Description: "Story", Duration: 16},
		{ID: "c", Type: catalog.Chorus, Description: "Hook", Duration: 8},
	}
	p.Lyrics = "la la"
	return p
}

func TestNew(t *testing.T) {
	tests := []struct {
		genre string
		want  []string
	}{
		{"Salsa", catalog.GenreDefaults["Salsa"]},
		{"Kizomba", catalog.GenreDefaults["Kizomba"]},
		{"Polka", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.genre, func(t *testing.T) {
			p := New("Title", tt.genre, "", "Romantic", time.Now())
			if !reflect.DeepEqual(p.Instruments, tt.want) {
				t.Fatalf("New(%q).Instruments = %v; want %v", tt.genre, p.Instruments, tt.want)
			}
			if p.ID == "" {
				t.Fatal("New() id is empty")
			}
			if p.VocalType != DefaultVocalType {
				t.Fatalf("New().VocalType = %q; want %q", p.VocalType, DefaultVocalType)
			}
			if p.Structure == nil || p.Variations == nil || p.GeneratedTitles == nil {
				t.Fatal("New() returned nil slices")
			}
			if p.AppliedVariation != nil {
				t.Fatal("New() applied variation is set")
			}
		})
	}
}

func TestCloneIndependent(t *testing.T) {
	p := testProject()
	p.SetVariations([]Variation{{Title: "A", Lyrics: "a"}})
	if err := p.ApplyVariation(0); err != nil {
		t.Fatal(err)
	}
	c := p.Clone()
	if !reflect.DeepEqual(c, p) {
		t.Fatalf("Clone() = %+v; want %+v", c, p)
	}
	c.Structure[0].Description = "changed"
	c.Instruments[0] = "Kazoo"
	c.Variations[0].Lyrics = "changed"
	*c.AppliedVariation = 5
	if p.Structure[0].Description == "changed" || p.Instruments[0] == "Kazoo" ||
		p.Variations[0].Lyrics == "changed" || *p.AppliedVariation != 0 {
		t.Fatal("Clone() shares state with the source")
	}
}

func TestRemix(t *testing.T) {
	p := testProject()
	now := time.UnixMilli(1800000000000)
	r := p.Remix(now)
	if r.ID == p.ID {
		t.Fatal("Remix() kept the source id")
	}
	if r.Title != "Noche (Remix)" {
		t.Fatalf("Remix().Title = %q; want %q", r.Title, "Noche (Remix)")
	}
	if r.CreatedAt != now.UnixMilli() {
		t.Fatalf("Remix().CreatedAt = %d; want %d", r.CreatedAt, now.UnixMilli())
	}
	r.Structure[0].Type = catalog.Drop
	if p.Structure[0].Type != catalog.Intro {
		t.Fatal("Remix() shares structure with the source")
	}
}

func TestPatch(t *testing.T) {
	p := testProject()
	before := p.Clone()
	Patch{
		Title:       String("Nueva"),
		BPM:         Int(190),
		Instruments: Strings([]string{"Piano", "Piano", "Bass"}),
	}.Apply(p)
	if p.Title != "Nueva" || p.BPM != 190 {
		t.Fatalf("Apply() title, bpm = %q, %d; want Nueva, 190", p.Title, p.BPM)
	}
	if want := []string{"Piano", "Bass"}; !reflect.DeepEqual(p.Instruments, want) {
		t.Fatalf("Apply() instruments = %v; want %v", p.Instruments, want)
	}
	if p.Mood != before.Mood || p.Lyrics != before.Lyrics || !reflect.DeepEqual(p.Structure, before.Structure) {
		t.Fatal("Apply() modified fields outside the patch")
	}
	if !(Patch{}).Empty() {
		t.Fatal("Patch{}.Empty() = false; want true")
	}
}

func TestMainTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Summer Night (여름밤)", "Summer Night"},
		{"No Translation", "No Translation"},
		{"(Only Paren)", "(Only Paren)"},
		{"  Spaced  (x)", "Spaced"},
	}
	for _, tt := range tests {
		if got := MainTitle(tt.in); got != tt.want {
			t.Fatalf("MainTitle(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyThemePack(t *testing.T) {
	p := testProject()
	p.ApplyThemePack(ThemePack{Title: "Luna Roja (붉은 달)", Topic: "eclipse", Style: "dark brass"})
	if p.Title != "Luna Roja" || p.Concept != "eclipse" || p.StyleDescription != "dark brass" {
		t.Fatalf("ApplyThemePack() = %q %q %q", p.Title, p.Concept, p.StyleDescription)
	}
	p.ApplyReference(Reference{Song: "Pedro Navaja", Artist: "Rubén Blades"})
	if p.ReferenceSongTitle != "Pedro Navaja" || p.ReferenceArtist != "Rubén Blades" {
		t.Fatalf("ApplyReference() = %q %q", p.ReferenceSongTitle, p.ReferenceArtist)
	}
	p.ApplySuggestedTitle("Fuego (불)")
	if p.Title != "Fuego" {
		t.Fatalf("ApplySuggestedTitle() = %q", p.Title)
	}
}

func TestApplyIntroStyle(t *testing.T) {
	p := testProject()
	if err := p.ApplyIntroStyle("2"); err != nil {
		t.Fatal(err)
	}
	if p.IntroStyle != "2" {
		t.Fatalf("IntroStyle = %q; want 2", p.IntroStyle)
	}
	if err := p.ApplyIntroStyle("99"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("ApplyIntroStyle(99) err = %v; want %v", err, ErrNotFound)
	}
	if p.IntroStyle != "2" {
		t.Fatalf("IntroStyle after failure = %q; want 2", p.IntroStyle)
	}
	if err := p.ApplyIntroStyle(""); err != nil || p.IntroStyle != "" {
		t.Fatalf("ApplyIntroStyle(\"\") = %v, %q", err, p.IntroStyle)
	}
}

func TestToggleInstrument(t *testing.T) {
	p := testProject()
	p.Instruments = []string{"Piano", "Bass"}
	if on := p.ToggleInstrument("Congas"); !on {
		t.Fatal("ToggleInstrument(Congas) = false; want true")
	}
	if on := p.ToggleInstrument("Piano"); on {
		t.Fatal("ToggleInstrument(Piano) = true; want false")
	}
	if want := []string{"Bass", "Congas"}; !reflect.DeepEqual(p.Instruments, want) {
		t.Fatalf("Instruments = %v; want %v", p.Instruments, want)
	}
}

func TestPatchValidate(t *testing.T) {
	tests := []struct {
		name  string
		patch Patch
		valid bool
	}{
		{"empty", Patch{}, true},
		{"bpm", Patch{BPM: Int(120)}, true},
		{"bpm unset", Patch{BPM: Int(0)}, true},
		{"negative bpm", Patch{BPM: Int(-40)}, false},
		{"key", Patch{Key: String("F#m")}, true},
		{"preset key", Patch{Key: String("Fmaj7")}, true},
		{"key unset", Patch{Key: String("")}, true},
		{"unknown key", Patch{Key: String("H#")}, false},
		{"vocal", Patch{VocalType: String("Duet")}, true},
		{"unknown vocal", Patch{VocalType: String("Robot")}, false},
		{"blank title", Patch{Title: String("  ")}, false},
		{"title", Patch{Title: String("Nueva")}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.patch.Validate()
			if tt.valid && err != nil {
				t.Fatalf("Validate() err = %v; want nil", err)
			}
			if !tt.valid && !errors.Is(err, ErrValidation) {
				t.Fatalf("Validate() err = %v; want %v", err, ErrValidation)
			}
		})
	}
}
