package compose

import (
	"github.com/igolaizola/songstudio/pkg/project"
)

const (
	DefaultLanguage = "Korean & English Mix"
	DefaultLength   = "Standard (~3:00)"
)

// LyricSettings are the per-request options of the lyric prompt.
type LyricSettings struct {
	Language         string `json:"language,omitempty"`
	Length           string `json:"length,omitempty"`
	DanceMode        bool   `json:"danceMode,omitempty"`
	AutoAdjustLength bool   `json:"autoAdjustLength,omitempty"`
}

// Lyrics builds the lyric writing instructions.
func Lyrics(p *project.Project, s LyricSettings) string {
	language := or(s.Language, DefaultLanguage)
	length := or(s.Length, DefaultLength)
	bpm := p.BPM
	if bpm <= 0 {
		bpm = 95
	}

	var b prompt
	b.addf("Write lyrics for a %s song titled \"%s\".", p.Genre, p.Title)
	b.addf("Mood: %s.", p.Mood)
	b.addf("Style Description: %s.", or(p.StyleDescription, "Standard style"))
	b.addf("BPM: %d", bpm)
	b.addf("Language Preference: %s.", language)
	b.addf("Target Duration: %s.", length)
	b.blank()
	b.add("CRITICAL: Follow this Structure strictly in this exact order:")
	b.add(StructureLines(p.Structure)...)
	b.blank()

	b.add("Instructions:")
	b.add("- Reflect the \"Style Description\" in the choice of words and emotional tone.")
	if s.AutoAdjustLength {
		b.addf("- Target Duration is %s. STRICTLY Adjust the number of lines and stanza length accordingly to match the duration.", length)
	} else {
		b.addf("- Target Duration is %s.", length)
	}
	b.add(
		"- Output MUST strictly match the defined structure blocks. Generate lyrics for EVERY block in the list.",
		"- Output format: Include the structure tags (e.g., [Verse 1]) before the lyrics for each block.",
	)
	b.blank()
	b.add(
		"CRITICAL: DANCEABILITY & RHYTHM (Jeong-bak / 정박):",
		"- The song must have a comfortable, unchanging, steady beat suitable for social dancing.",
		"- Lyrics must match this steady rhythm perfectly (On-Beat).",
		"- Avoid complex syncopation, rubato, or wordy poetic lines that disrupt the groove.",
	)
	if p.Genre == "Salsa" {
		b.add("- Include distinct \"Coro\" (Chorus) and \"Pregon\" (Lead vocal improv) sections. \"Coro\" lines should be simple and repetitive.")
	}

	if s.DanceMode {
		b.blank()
		b.add(danceLyricMode(p.Genre)...)
	}
	if style, ok := introStyle(p); ok {
		b.blank()
		b.add(
			"SPECIAL INTRO INSTRUCTION:",
			"The user has selected the intro vibe: \""+style.Label+"\".",
			style.Desc,
			"Please indicate this vibe in the [Intro] section of the lyrics (e.g., [Intro: Clean Lead Guitar Solo] or [Intro: Whisper & Bass]).",
		)
	}
	if ref := referenceClause(p, "Reference Vibe/Flow: Make the lyrics and rhythm reminiscent of the song \"%s\" by %s. Capture its emotional tone and rhythmic delivery."); ref != "" {
		b.blank()
		b.add(ref)
	}
	b.blank()
	b.addf("Negative Constraints (DO NOT INCLUDE): %s.", or(p.ExcludedThemes, "None"))
	if dj := djClause(p); dj != "" {
		b.blank()
		b.add(dj)
	}
	return b.String()
}

func danceLyricMode(genre string) []string {
	preset := "DANCE PRESET: Target consistent 8 syllables per line."
	switch genre {
	case "Salsa":
		preset = "SALSA PRESET: Target 6-8 syllables per line. Bright, energetic, staccato."
	case "Bachata":
		preset = "BACHATA PRESET: Target 7-9 syllables per line. Smooth, sensual, flowing."
	}
	return []string{
		"*** STRICT DANCE LYRIC MODE ACTIVATED ***",
		"OBJECTIVE: Generate lyrics strictly optimized for choreography and dancers (8-count structure).",
		"1. SYLLABLE COUNT & DISPLAY:",
		"- You MUST display the syllable count at the end of EVERY line in parentheses. Format: \"Lyric text here (count)\"",
		"- " + preset,
		"- Maintain consistent syllable counts within each 4-line block.",
		"2. 8-COUNT STRUCTURE (VISUAL):",
		"- Group lyrics strictly into 4-line blocks (representing one 8-count phrase).",
		"- Add an empty line between every 4-line block.",
		"- This is critical for dancers to count the beat.",
		"3. CONTENT & RHYTHM:",
		"- Use [Strict Rhythm] (Jeong-bak).",
		"- Add [Breath] or pause implied at the end of lines.",
		"- Avoid complex sentences or rubato.",
		"- Simple, clear words that hit the beat.",
	}
}
