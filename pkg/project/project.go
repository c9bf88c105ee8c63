// Package project holds the song project entity and every in-place
// mutation that can be applied to it: structure editing, lyric variations
// and preset application.
package project

import (
	"time"

	"github.com/igolaizola/songstudio/pkg/catalog"
	"github.com/oklog/ulid/v2"
)

// DefaultVocalType is assigned to new projects.
const DefaultVocalType = "Male"

// RemixSuffix is appended to the title of a remixed project.
const RemixSuffix = " (Remix)"

type Project struct {
	ID        string `json:"id"`
	CreatedAt int64  `json:"createdAt"`

	Title            string `json:"title"`
	Genre            string `json:"genre"`
	SubGenre         string `json:"subGenre"`
	Mood             string `json:"mood"`
	Concept          string `json:"concept"`
	StyleDescription string `json:"styleDescription"`
	BPM              int    `json:"bpm"`
	Key              string `json:"key"`

	ReferenceSongTitle string `json:"referenceSongTitle"`
	ReferenceArtist    string `json:"referenceArtist"`

	GeneratedTitles   []string    `json:"generatedTitles"`
	Structure         []SongBlock `json:"structure"`
	Lyrics            string      `json:"lyrics"`
	ExcludedThemes    string      `json:"excludedThemes"`
	SoundPrompt       string      `json:"sunoPrompt"`
	CoverImage        string      `json:"coverImage"`
	CompositionAdvice string      `json:"compositionAdvice"`

	Variations       []Variation `json:"lyricVariations"`
	AppliedVariation *int        `json:"selectedLyricVariationIndex"`

	Instruments []string `json:"instruments"`
	VocalType   string   `json:"vocalType"`
	DJName      string   `json:"djName"`
	IntroStyle  string   `json:"introStyle"`
}

// SongBlock is one section of a song structure. Duration is a relative
// layout weight, not a time unit.
type SongBlock struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
}

// Variation is a candidate lyric draft.
type Variation struct {
	Title     string `json:"title"`
	Lyrics    string `json:"lyrics"`
	Rationale string `json:"rationale"`
}

// ThemePack is a suggested title, topic and style bundle.
type ThemePack struct {
	Title string `json:"title"`
	Topic string `json:"topic"`
	Style string `json:"style"`
}

// Reference is a suggested reference song.
type Reference struct {
	Song   string `json:"song"`
	Artist string `json:"artist"`
}

// NewID returns a new time ordered identifier.
func NewID() string {
	return ulid.Make().String()
}

// New creates a project seeded with the default instruments of its genre.
func New(title, genre, subGenre, mood string, now time.Time) *Project {
	p := &Project{
		ID:          NewID(),
		CreatedAt:   now.UnixMilli(),
		Title:       title,
		Genre:       genre,
		SubGenre:    subGenre,
		Mood:        mood,
		Instruments: catalog.DefaultInstruments(genre),
		VocalType:   DefaultVocalType,
	}
	p.normalize()
	return p
}

// Clone returns a deep copy of the project.
func (p *Project) Clone() *Project {
	c := *p
	c.GeneratedTitles = cloneStrings(p.GeneratedTitles)
	c.Instruments = cloneStrings(p.Instruments)
	c.Structure = make([]SongBlock, len(p.Structure))
	copy(c.Structure, p.Structure)
	c.Variations = make([]Variation, len(p.Variations))
	copy(c.Variations, p.Variations)
	if p.AppliedVariation != nil {
		v := *p.AppliedVariation
		c.AppliedVariation = &v
	}
	return &c
}

// Remix returns an independent copy under a new identity.
func (p *Project) Remix(now time.Time) *Project {
	c := p.Clone()
	c.ID = NewID()
	c.CreatedAt = now.UnixMilli()
	c.Title = p.Title + RemixSuffix
	return c
}

// normalize replaces nil slices with empty ones and clears an applied
// variation index that no longer points into the list.
func (p *Project) normalize() {
	if p.GeneratedTitles == nil {
		p.GeneratedTitles = []string{}
	}
	if p.Structure == nil {
		p.Structure = []SongBlock{}
	}
	if p.Variations == nil {
		p.Variations = []Variation{}
	}
	p.Instruments = uniqueStrings(p.Instruments)
	if v := p.AppliedVariation; v != nil && (*v < 0 || *v >= len(p.Variations)) {
		p.AppliedVariation = nil
	}
}

func cloneStrings(vs []string) []string {
	out := make([]string, len(vs))
	copy(out, vs)
	return out
}
