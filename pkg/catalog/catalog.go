// Package catalog holds the static reference tables used to build song
// projects: genres, moods, instruments, intro styles, structure templates
// and genre presets. All tables are read-only after process start.
package catalog

import "strings"

// Section types conventionally used in a structure.
const (
	Intro        = "Intro"
	Verse        = "Verse"
	Chorus       = "Chorus"
	Bridge       = "Bridge"
	Drop         = "Drop"
	Instrumental = "Instrumental"
	Outro        = "Outro"
)

// Custom is the template and genre key that carries no preset data.
const Custom = "Custom"

// SectionTypes in display order.
var SectionTypes = []string{Intro, Verse, Chorus, Bridge, Drop, Instrumental, Outro}

type Genre struct {
	Label     string   `json:"label" yaml:"label"`
	Subgenres []string `json:"subgenres" yaml:"subgenres"`
}

type IntroStyle struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Desc  string `json:"desc" yaml:"desc"`
	Tags  string `json:"tags" yaml:"tags"`
}

// Block is a structure template entry. It has no identity until it is
// instantiated into a project.
type Block struct {
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description" yaml:"description"`
	Duration    int    `json:"duration" yaml:"duration"`
}

type StructureTemplate struct {
	Name   string  `json:"name" yaml:"name"`
	Blocks []Block `json:"blocks" yaml:"blocks"`
}

type GenrePreset struct {
	Label       string   `json:"label" yaml:"label"`
	BPM         int      `json:"bpm" yaml:"bpm"`
	Key         string   `json:"key" yaml:"key"`
	Instruments []string `json:"instruments" yaml:"instruments"`
}

type ImageSizePreset struct {
	ID    int    `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Ratio string `json:"ratio" yaml:"ratio"`
	Desc  string `json:"desc" yaml:"desc"`
}

type FontOption struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

type TextEffect struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

type SamplePrompt struct {
	Label string `json:"label" yaml:"label" csv:"label"`
	Text  string `json:"text" yaml:"text" csv:"text"`
}

type DanceGuide struct {
	Genre string `json:"genre" yaml:"genre"`
	BPM   string `json:"bpm" yaml:"bpm"`
	Key   string `json:"key" yaml:"key"`
	Desc  string `json:"desc" yaml:"desc"`
}

// LookupGenre returns the genre with the given label.
func LookupGenre(label string) (Genre, bool) {
	for _, g := range Genres {
		if g.Label == label {
			return g, true
		}
	}
	return Genre{}, false
}

// DefaultSubgenre returns the first sub-genre of a genre, or empty for
// Custom and unknown genres.
func DefaultSubgenre(genre string) string {
	g, ok := LookupGenre(genre)
	if !ok || len(g.Subgenres) == 0 {
		return ""
	}
	return g.Subgenres[0]
}

// DefaultInstruments returns a copy of the default instruments of a genre.
// Unknown genres return an empty list.
func DefaultInstruments(genre string) []string {
	return clone(GenreDefaults[genre])
}

// LookupIntroStyle returns the intro style with the given id.
func LookupIntroStyle(id string) (IntroStyle, bool) {
	for _, s := range IntroStyles {
		if s.ID == id {
			return s, true
		}
	}
	return IntroStyle{}, false
}

// LookupTemplate returns the structure template with the given name.
func LookupTemplate(name string) (StructureTemplate, bool) {
	for _, t := range StructureTemplates {
		if t.Name == name {
			return t, true
		}
	}
	return StructureTemplate{}, false
}

// LookupGenrePreset searches the presets of every genre for the label.
func LookupGenrePreset(label string) (GenrePreset, bool) {
	for _, g := range Genres {
		for _, p := range GenrePresets[g.Label] {
			if p.Label == label {
				return p, true
			}
		}
	}
	return GenrePreset{}, false
}

// FirstSample returns the first block sample for a section type, or "..."
// when the type has none.
func FirstSample(typ string) string {
	if s := BlockSamples[typ]; len(s) > 0 {
		return s[0]
	}
	return "..."
}

// DefaultDuration returns the duration weight of a new block.
func DefaultDuration(typ string) int {
	if typ == Intro || typ == Outro {
		return 4
	}
	return 8
}

// LookupImageSize returns the image size preset with the given id, falling
// back to the first preset.
func LookupImageSize(id int) ImageSizePreset {
	for _, p := range ImageSizePresets {
		if p.ID == id {
			return p
		}
	}
	return ImageSizePresets[0]
}

// ValidKey reports whether k is a musical key of the vocabulary or of a
// genre preset. Empty
// means unset and is valid.
func ValidKey(k string) bool {
	if k == "" {
		return true
	}
	for _, v := range Keys {
		if v == k {
			return true
		}
	}
	// Genre presets may carry extended chords such as "Fmaj7".
	for _, ps := range GenrePresets {
		for _, p := range ps {
			if p.Key == k {
				return true
			}
		}
	}
	return false
}

// ValidVocalType reports whether v is a known vocal type.
func ValidVocalType(v string) bool {
	for _, t := range VocalTypes {
		if strings.EqualFold(t, v) {
			return true
		}
	}
	return false
}

func clone(vs []string) []string {
	out := make([]string, len(vs))
	copy(out, vs)
	return out
}

// Snapshot groups every table for dumping.
type Snapshot struct {
	Genres             []Genre                  `json:"genres" yaml:"genres"`
	Moods              []string                 `json:"moods" yaml:"moods"`
	Instruments        []string                 `json:"instruments" yaml:"instruments"`
	Keys               []string                 `json:"keys" yaml:"keys"`
	VocalTypes         []string                 `json:"vocalTypes" yaml:"vocal_types"`
	SectionTypes       []string                 `json:"sectionTypes" yaml:"section_types"`
	IntroStyles        []IntroStyle             `json:"introStyles" yaml:"intro_styles"`
	StructureTemplates []StructureTemplate      `json:"structureTemplates" yaml:"structure_templates"`
	GenrePresets       map[string][]GenrePreset `json:"genrePresets" yaml:"genre_presets"`
	GenreDefaults      map[string][]string      `json:"genreDefaults" yaml:"genre_defaults"`
	BlockSamples       map[string][]string      `json:"blockSamples" yaml:"block_samples"`
	ArtStyles          []string                 `json:"artStyles" yaml:"art_styles"`
	CharacterSamples   []string                 `json:"characterSamples" yaml:"character_samples"`
	ImageSizePresets   []ImageSizePreset        `json:"imageSizePresets" yaml:"image_size_presets"`
	FontOptions        []FontOption             `json:"fontOptions" yaml:"font_options"`
	TextEffects        []TextEffect             `json:"textEffects" yaml:"text_effects"`
	LyricLanguages     []string                 `json:"lyricLanguages" yaml:"lyric_languages"`
	LyricLengths       []string                 `json:"lyricLengths" yaml:"lyric_lengths"`
	DanceGuides        []DanceGuide             `json:"danceGuides" yaml:"dance_guides"`
}

// All returns the tables. The slices are shared and must not be modified.
func All() Snapshot {
	return Snapshot{
		Genres:             Genres,
		Moods:              Moods,
		Instruments:        Instruments,
		Keys:               Keys,
		VocalTypes:         VocalTypes,
		SectionTypes:       SectionTypes,
		IntroStyles:        IntroStyles,
		StructureTemplates: StructureTemplates,
		GenrePresets:       GenrePresets,
		GenreDefaults:      GenreDefaults,
		BlockSamples:       BlockSamples,
		ArtStyles:          ArtStyles,
		CharacterSamples:   CharacterSamples,
		ImageSizePresets:   ImageSizePresets,
		FontOptions:        FontOptions,
		TextEffects:        TextEffects,
		LyricLanguages:     LyricLanguages,
		LyricLengths:       LyricLengths,
		DanceGuides:        DanceGuides,
	}
}
