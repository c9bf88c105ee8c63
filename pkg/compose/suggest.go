package compose

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/igolaizola/songstudio/pkg/project"
)

// Advice asks for composition suggestions for the project.
func Advice(p *project.Project) string {
	var b prompt
	b.addf("Provide professional AI music composition suggestions for a %s (%s) song.", p.Genre, p.SubGenre)
	b.addf("Mood: %s.", p.Mood)
	b.addf("BPM: %d.", p.BPM)
	b.addf("Key: %s.", p.Key)
	b.addf("Instruments: %s.", strings.Join(p.Instruments, ", "))
	b.blank()
	b.add(
		"Requirements:",
		"- Provide structured advice in Korean.",
		"- Focus on 3 categories:",
		"  1. Rhythmic Patterns (리듬 가이드)",
		"  2. Melodic Style (멜로디 제안)",
		"  3. Harmonic Progression (추천 코드 진행)",
		"- Be specific to the genre.",
		"- Keep it concise and actionable for someone creating music in Suno.ai.",
		"- Format with Markdown.",
	)
	return b.String()
}

// Variations asks for 5 alternative lyric drafts as a JSON array.
func Variations(p *project.Project) string {
	var b prompt
	b.addf("Generate 5 distinct and creative lyric concepts for a %s song.", p.Genre)
	b.add("Topic: " + or(p.Concept, "Freestyle"))
	b.add("Mood: " + p.Mood)
	b.add("Style: " + or(p.StyleDescription, "Standard"))
	b.blank()
	b.add("CRITICAL: Follow this Structure strictly in this exact order for all 5 variations:")
	b.add(StructureLines(p.Structure)...)
	b.blank()
	b.add(
		"Requirements:",
		"1. Create 5 different versions (e.g., Emotional, Rhythmic, Story-telling, Minimal, Energetic).",
		"2. For each version, provide:",
		"   - \"title\": A catchy title.",
		"   - \"rationale\": A brief description (in Korean) of the style/vibe.",
		"   - \"lyrics\": The full lyrics structured with tags like [Verse], [Chorus].",
		"3. Ensure lyrics are suitable for Suno.ai (musical generation).",
		"4. CRITICAL: Every version MUST include lyrics for EACH block defined in the structure in the exact order provided. Do not skip blocks or change their order.",
	)
	b.blank()
	b.add(
		"Return ONLY a JSON array of 5 objects.",
		"Schema: [{ title: string, rationale: string, lyrics: string }]",
	)
	return b.String()
}

// ThemePacks asks for 12 title, topic and style bundles. Keywords are
// optional.
func ThemePacks(p *project.Project, keywords string) string {
	var b prompt
	b.addf("Generate 12 unique and creative \"Song Idea Packs\" for a %s (%s) song with a %s mood.", p.Genre, p.SubGenre, p.Mood)
	if k := strings.TrimSpace(keywords); k != "" {
		b.addf("User Keywords/Themes: \"%s\".", k)
		b.add("Please prioritize these keywords in the generated concepts.")
	}
	b.add(
		"Each pack must include:",
		"1. A catchy English Title (with Korean translation in parentheses).",
		"2. A Topic: A 1-2 sentence description in Korean of the story or scenario.",
		"3. A Style: A 1-2 sentence description in Korean of the musical production, era, and vibe.",
	)
	b.blank()
	b.add(
		"Strict Requirements:",
		"- Return ONLY a JSON array of objects.",
		"- Each object should have keys: \"title\", \"topic\", \"style\".",
		"- Do not include markdown code blocks or any other text.",
		"- Use Korean for \"topic\" and \"style\".",
		"- Titles should be formatted like \"Title (제목)\".",
	)
	return b.String()
}

// Titles asks for 5 title suggestions. The project needs a concept.
func Titles(p *project.Project) string {
	var b prompt
	b.addf("Suggest 5 catchy and creative song titles for a %s song.", p.Genre)
	b.add("Topic/Theme: " + p.Concept)
	b.add("Mood: " + p.Mood)
	b.add(
		"Requirements:",
		"- Return ONLY a JSON array of 5 strings.",
		"- Each string should be in the format: \"English Title (한글 제목)\".",
		"- Do not include any other text or markdown.",
	)
	return b.String()
}

// References asks for 5 representative reference songs.
func References(p *project.Project) string {
	var b prompt
	b.addf("Suggest 5 popular and characteristic songs that represent the %s (%s) genre with a %s mood.", p.Genre, p.SubGenre, p.Mood)
	b.add(
		"Return ONLY a JSON array of objects.",
		"Each object should have keys: \"song\" and \"artist\".",
		"Do not include markdown code blocks.",
	)
	return b.String()
}

// ParseVariations decodes a variations response.
func ParseVariations(text string) ([]project.Variation, error) {
	var vs []project.Variation
	if err := decodeArray(text, &vs); err != nil {
		return nil, err
	}
	out := vs[:0]
	for _, v := range vs {
		if strings.TrimSpace(v.Lyrics) == "" {
			continue
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("compose: no variations with lyrics: %w", project.ErrGeneration)
	}
	return out, nil
}

// ParseThemePacks decodes a theme packs response.
func ParseThemePacks(text string) ([]project.ThemePack, error) {
	var ps []project.ThemePack
	if err := decodeArray(text, &ps); err != nil {
		return nil, err
	}
	out := ps[:0]
	for _, p := range ps {
		if strings.TrimSpace(p.Title) == "" {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("compose: no theme packs: %w", project.ErrGeneration)
	}
	return out, nil
}

// ParseTitles decodes a titles response.
func ParseTitles(text string) ([]string, error) {
	var ts []string
	if err := decodeArray(text, &ts); err != nil {
		return nil, err
	}
	out := ts[:0]
	for _, t := range ts {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("compose: no titles: %w", project.ErrGeneration)
	}
	return out, nil
}

// ParseReferences decodes a reference songs response.
func ParseReferences(text string) ([]project.Reference, error) {
	var rs []project.Reference
	if err := decodeArray(text, &rs); err != nil {
		return nil, err
	}
	out := rs[:0]
	for _, r := range rs {
		if strings.TrimSpace(r.Song) == "" {
			continue
		}
		out = append(out, r)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("compose: no references: %w", project.ErrGeneration)
	}
	return out, nil
}

// decodeArray unmarshals the outermost JSON array found in text, ignoring
// any markdown fences around it.
func decodeArray(text string, v any) error {
	start := strings.IndexByte(text, '[')
	end := strings.LastIndexByte(text, ']')
	if start < 0 || end <= start {
		return fmt.Errorf("compose: no json array in response: %w", project.ErrGeneration)
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), v); err != nil {
		return fmt.Errorf("compose: couldn't decode response: %v: %w", err, project.ErrGeneration)
	}
	return nil
}
