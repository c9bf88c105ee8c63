package compose

import (
	"strings"
	"unicode/utf8"

	"github.com/igolaizola/songstudio/pkg/project"
)

// SoundPromptLimit is the target length of a sound prompt in characters.
const SoundPromptLimit = 200

const (
	VersionV5  = "v5"
	VersionV35 = "v3.5"
)

// SoundSettings are the per-request options of the sound prompt.
type SoundSettings struct {
	StrictDance bool   `json:"strictDance,omitempty"`
	Version     string `json:"version,omitempty"`
}

// Sound builds the instructions that ask for a tag style audio prompt.
func Sound(p *project.Project, s SoundSettings) string {
	version := "Suno.ai v3.5 (Standard)."
	if s.Version == VersionV5 {
		version = "Suno v5 (Latest). Focus on high-fidelity, clarity, and modern production standards."
	}

	var b prompt
	b.addf("Construct a high-quality prompt for a music generation AI (%s).", version)
	b.blank()
	b.add("Project Metadata:")
	b.addf("- Genre: %s (%s)", p.Genre, p.SubGenre)
	b.addf("- Mood: %s", p.Mood)
	b.addf("- Style: %s", p.StyleDescription)
	b.addf("- Instruments: %s", strings.Join(p.Instruments, ", "))
	b.addf("- Vocal Type: %s", p.VocalType)
	b.addf("- BPM: %d", p.BPM)
	b.addf("- Key: %s", p.Key)
	if len(p.Structure) > 0 {
		b.blank()
		b.add("Song Structure (in order):")
		b.add(StructureLines(p.Structure)...)
	}
	b.blank()
	b.add(
		"Requirement:",
		"- Create a comma-separated list of tags and style descriptors.",
		"- Include genre, mood, key instruments, vocal type, and production style.",
		"- Format: \"[Tag 1], [Tag 2], [Tag 3], ...\"",
		"- Limit to around 200 characters max.",
		"- Output ONLY the prompt string on a single line.",
	)

	if s.StrictDance {
		b.blank()
		b.add(
			"STRICT DANCE MODE:",
			"- The beat MUST be constant and steady (Metronomic).",
			"- Emphasis on the \"1\" count.",
			"- Clear percussion suitable for social dancing.",
		)
	}
	if style, ok := introStyle(p); ok {
		b.blank()
		b.add("Intro Style: " + style.Tags)
	}
	if ref := referenceClause(p, "Reference Vibe: Sound reminiscent of \"%s\" by %s."); ref != "" {
		b.blank()
		b.add(ref)
	}
	if strings.TrimSpace(p.ExcludedThemes) != "" {
		b.blank()
		b.add("Avoid: " + p.ExcludedThemes)
	}
	if dj := djClause(p); dj != "" {
		b.blank()
		b.add(dj)
	}
	return b.String()
}

// ClampSoundPrompt flattens a generated sound prompt to a single line and
// cuts it to SoundPromptLimit characters on a tag boundary.
func ClampSoundPrompt(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = strings.Trim(s, "\"'` ")
	if utf8.RuneCountInString(s) <= SoundPromptLimit {
		return s
	}
	var out string
	for _, tag := range strings.Split(s, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		next := tag
		if out != "" {
			next = out + ", " + tag
		}
		if utf8.RuneCountInString(next) > SoundPromptLimit {
			break
		}
		out = next
	}
	if out == "" {
		// A single tag longer than the limit
		r := []rune(s)
		out = strings.TrimSpace(string(r[:SoundPromptLimit]))
	}
	return out
}
