package project

import (
	"fmt"
	"strings"

	"github.com/igolaizola/songstudio/pkg/catalog"
)

// ApplyGenrePreset overwrites BPM, key and instruments with the values of
// the named preset. Presets of every genre are searched.
func (p *Project) ApplyGenrePreset(label string) error {
	preset, ok := catalog.LookupGenrePreset(label)
	if !ok {
		return fmt.Errorf("project: genre preset %q: %w", label, ErrNotFound)
	}
	p.BPM = preset.BPM
	p.Key = preset.Key
	p.Instruments = uniqueStrings(preset.Instruments)
	return nil
}

// ApplyInstrumentPreset overwrites the instrument list.
func (p *Project) ApplyInstrumentPreset(instruments []string) {
	p.Instruments = uniqueStrings(instruments)
}

// ApplyStructureTemplate is ApplyTemplate under its preset name.
func (p *Project) ApplyStructureTemplate(key string) error {
	return p.ApplyTemplate(key)
}

// ApplyIntroStyle selects an intro style by id. The empty id clears it.
func (p *Project) ApplyIntroStyle(id string) error {
	if id == "" {
		p.IntroStyle = ""
		return nil
	}
	if _, ok := catalog.LookupIntroStyle(id); !ok {
		return fmt.Errorf("project: intro style %q: %w", id, ErrNotFound)
	}
	p.IntroStyle = id
	return nil
}

// ToggleInstrument adds the instrument if missing, otherwise removes it.
// It reports whether the instrument is selected afterwards.
func (p *Project) ToggleInstrument(name string) bool {
	for i, v := range p.Instruments {
		if v == name {
			out := make([]string, 0, len(p.Instruments)-1)
			out = append(out, p.Instruments[:i]...)
			p.Instruments = append(out, p.Instruments[i+1:]...)
			return false
		}
	}
	p.Instruments = append(cloneStrings(p.Instruments), name)
	return true
}

// ApplyThemePack sets title, concept and style description from a pack.
func (p *Project) ApplyThemePack(pack ThemePack) {
	p.Title = MainTitle(pack.Title)
	p.Concept = pack.Topic
	p.StyleDescription = pack.Style
}

// ApplySuggestedTitle sets the title from a suggestion.
func (p *Project) ApplySuggestedTitle(full string) {
	p.Title = MainTitle(full)
}

// ApplyReference sets the reference song.
func (p *Project) ApplyReference(ref Reference) {
	p.ReferenceSongTitle = ref.Song
	p.ReferenceArtist = ref.Artist
}

// MainTitle strips a trailing parenthesised translation from a suggested
// title: "Summer Night (여름밤)" becomes "Summer Night".
func MainTitle(full string) string {
	head := full
	if i := strings.IndexByte(full, '('); i >= 0 {
		head = full[:i]
	}
	if t := strings.TrimSpace(head); t != "" {
		return t
	}
	return full
}

func uniqueStrings(vs []string) []string {
	out := make([]string, 0, len(vs))
	seen := make(map[string]struct{}, len(vs))
	for _, v := range vs {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
