// Package compose renders project state into the instruction text sent to
// the generation backend. Every function is pure: the same project and
// settings always produce the same bytes.
package compose

import (
	"fmt"
	"strings"

	"github.com/igolaizola/songstudio/pkg/catalog"
	"github.com/igolaizola/songstudio/pkg/project"
)

// prompt accumulates lines. Empty strings are skipped so that optional
// clauses leave no gaps.
type prompt struct {
	lines []string
}

func (b *prompt) add(lines ...string) {
	for _, l := range lines {
		if l == "" {
			continue
		}
		b.lines = append(b.lines, l)
	}
}

func (b *prompt) addf(format string, args ...any) {
	b.add(fmt.Sprintf(format, args...))
}

// blank adds a paragraph separator.
func (b *prompt) blank() {
	if n := len(b.lines); n > 0 && b.lines[n-1] != "" {
		b.lines = append(b.lines, "")
	}
}

func (b *prompt) String() string {
	return strings.TrimSpace(strings.Join(b.lines, "\n"))
}

// StructureLines renders one "[Type]: description" line per block, in
// order.
func StructureLines(blocks []project.SongBlock) []string {
	lines := make([]string, 0, len(blocks))
	for _, b := range blocks {
		lines = append(lines, fmt.Sprintf("[%s]: %s", b.Type, b.Description))
	}
	return lines
}

func hasSection(blocks []project.SongBlock, typ string) bool {
	for _, b := range blocks {
		if strings.EqualFold(strings.TrimSpace(b.Type), typ) {
			return true
		}
	}
	return false
}

// djClause names exactly one of the Intro or Outro sections for the DJ
// shout-out. When only one of them exists the clause is bound to it. With
// neither the clause is omitted.
func djClause(p *project.Project) string {
	name := strings.TrimSpace(p.DJName)
	if name == "" {
		return ""
	}
	intro := hasSection(p.Structure, catalog.Intro)
	outro := hasSection(p.Structure, catalog.Outro)
	switch {
	case intro && outro:
		return fmt.Sprintf("- IMPORTANT: Include a shoutout to \"%s\" in EITHER the [Intro] OR the [Outro]. Choose ONE location only. Do NOT repeat it.", name)
	case intro:
		return fmt.Sprintf("- IMPORTANT: Include a shoutout to \"%s\" in the [Intro] only. Do NOT repeat it in any other section.", name)
	case outro:
		return fmt.Sprintf("- IMPORTANT: Include a shoutout to \"%s\" in the [Outro] only. Do NOT repeat it in any other section.", name)
	default:
		return ""
	}
}

func referenceClause(p *project.Project, format string) string {
	if strings.TrimSpace(p.ReferenceSongTitle) == "" {
		return ""
	}
	return fmt.Sprintf(format, p.ReferenceSongTitle, or(p.ReferenceArtist, "Unknown Artist"))
}

func introStyle(p *project.Project) (catalog.IntroStyle, bool) {
	if p.IntroStyle == "" {
		return catalog.IntroStyle{}, false
	}
	return catalog.LookupIntroStyle(p.IntroStyle)
}

func or(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
