package project

import (
	"fmt"
	"strings"

	"github.com/igolaizola/songstudio/pkg/catalog"
)

// Patch is a partial update. Only non-nil fields are written.
type Patch struct {
	Title              *string   `json:"title,omitempty"`
	Genre              *string   `json:"genre,omitempty"`
	SubGenre           *string   `json:"subGenre,omitempty"`
	Mood               *string   `json:"mood,omitempty"`
	Concept            *string   `json:"concept,omitempty"`
	StyleDescription   *string   `json:"styleDescription,omitempty"`
	BPM                *int      `json:"bpm,omitempty"`
	Key                *string   `json:"key,omitempty"`
	ReferenceSongTitle *string   `json:"referenceSongTitle,omitempty"`
	ReferenceArtist    *string   `json:"referenceArtist,omitempty"`
	GeneratedTitles    *[]string `json:"generatedTitles,omitempty"`
	Lyrics             *string   `json:"lyrics,omitempty"`
	ExcludedThemes     *string   `json:"excludedThemes,omitempty"`
	SoundPrompt        *string   `json:"sunoPrompt,omitempty"`
	CoverImage         *string   `json:"coverImage,omitempty"`
	CompositionAdvice  *string   `json:"compositionAdvice,omitempty"`
	Instruments        *[]string `json:"instruments,omitempty"`
	VocalType          *string   `json:"vocalType,omitempty"`
	DJName             *string   `json:"djName,omitempty"`
	IntroStyle         *string   `json:"introStyle,omitempty"`
}

// Empty reports whether the patch sets no field.
func (u Patch) Empty() bool {
	return u == Patch{}
}

// ValidateTitle rejects a blank title.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("project: record without title: %w", ErrValidation)
	}
	return nil
}

// Validate checks the fields the patch sets. A BPM of 0 and an empty key
// mean unset.
func (u Patch) Validate() error {
	if u.Title != nil {
		if err := ValidateTitle(*u.Title); err != nil {
			return err
		}
	}
	if u.BPM != nil && *u.BPM < 0 {
		return fmt.Errorf("project: negative bpm %d: %w", *u.BPM, ErrValidation)
	}
	if u.Key != nil && !catalog.ValidKey(*u.Key) {
		return fmt.Errorf("project: unknown key %q: %w", *u.Key, ErrValidation)
	}
	if u.VocalType != nil && !catalog.ValidVocalType(*u.VocalType) {
		return fmt.Errorf("project: unknown vocal type %q: %w", *u.VocalType, ErrValidation)
	}
	return nil
}

// Apply merges the patch into p. Structure and variations have their own
// operations and cannot be patched.
func (u Patch) Apply(p *Project) {
	setString(&p.Title, u.Title)
	setString(&p.Genre, u.Genre)
	setString(&p.SubGenre, u.SubGenre)
	setString(&p.Mood, u.Mood)
	setString(&p.Concept, u.Concept)
	setString(&p.StyleDescription, u.StyleDescription)
	if u.BPM != nil {
		p.BPM = *u.BPM
	}
	setString(&p.Key, u.Key)
	setString(&p.ReferenceSongTitle, u.ReferenceSongTitle)
	setString(&p.ReferenceArtist, u.ReferenceArtist)
	if u.GeneratedTitles != nil {
		p.GeneratedTitles = cloneStrings(*u.GeneratedTitles)
	}
	setString(&p.Lyrics, u.Lyrics)
	setString(&p.ExcludedThemes, u.ExcludedThemes)
	setString(&p.SoundPrompt, u.SoundPrompt)
	setString(&p.CoverImage, u.CoverImage)
	setString(&p.CompositionAdvice, u.CompositionAdvice)
	if u.Instruments != nil {
		p.Instruments = uniqueStrings(*u.Instruments)
	}
	setString(&p.VocalType, u.VocalType)
	setString(&p.DJName, u.DJName)
	setString(&p.IntroStyle, u.IntroStyle)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// String returns a pointer to v, for building patches.
func String(v string) *string { return &v }

// Int returns a pointer to v, for building patches.
func Int(v int) *int { return &v }

// Strings returns a pointer to v, for building patches.
func Strings(v []string) *[]string { return &v }
