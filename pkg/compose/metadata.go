package compose

import (
	"fmt"
	"strings"

	"github.com/igolaizola/songstudio/pkg/project"
)

// DefaultArtist is used when neither an artist nor a DJ name is set.
const DefaultArtist = "DJ Doberman"

const maxTags = 10

// Tags returns up to 10 unique hashtags for the project.
func Tags(p *project.Project) []string {
	base := []string{
		p.Genre, p.SubGenre, p.Mood,
		"NewMusic", "OriginalSong", "SunoAI", "AI_Music",
		p.VocalType,
		"MusicProduction", "Trending", "Kpop", "Latin", "Dance",
	}
	seen := map[string]bool{}
	var tags []string
	for _, t := range base {
		tag := "#" + strings.Join(strings.Fields(t), "")
		if tag == "#" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
		if len(tags) == maxTags {
			break
		}
	}
	return tags
}

// Metadata builds the release metadata draft.
func Metadata(p *project.Project, artist string) string {
	artist = or(artist, or(p.DJName, DefaultArtist))
	lyrics := or(p.Lyrics, "(No lyrics generated)")
	text := fmt.Sprintf("Title: %s\nArtist: %s\n\n[Tags]\n%s\n\n[Lyrics]\n%s",
		p.Title, artist, strings.Join(Tags(p), " "), lyrics)
	return strings.TrimSpace(text)
}
