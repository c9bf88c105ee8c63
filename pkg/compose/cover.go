package compose

import (
	"github.com/igolaizola/songstudio/pkg/catalog"
	"github.com/igolaizola/songstudio/pkg/project"
)

const (
	DefaultArtMood  = "Atmospheric"
	DefaultArtStyle = "Digital Art"
)

// ArtSettings are the per-request options of the cover art prompt.
type ArtSettings struct {
	Mood        string `json:"mood,omitempty"`
	Style       string `json:"style,omitempty"`
	Characters  string `json:"characters,omitempty"`
	Description string `json:"description,omitempty"`
	SizePreset  int    `json:"sizePreset,omitempty"`
}

// CoverArt builds the image generation instructions.
func CoverArt(p *project.Project, s ArtSettings) string {
	size := catalog.LookupImageSize(s.SizePreset)

	var b prompt
	b.add("Album cover art for a song.")
	b.blank()
	b.add("[Song Info]")
	b.add("Genre: " + p.Genre)
	b.blank()
	b.add("[Visual Concept]")
	b.add("Mood: " + or(s.Mood, or(p.Mood, DefaultArtMood)))
	b.add("Style: " + or(s.Style, DefaultArtStyle))
	b.add("Subject/Characters: " + s.Characters)
	b.add("Detailed Description: " + or(s.Description, "A creative and atmospheric composition representing the music."))
	b.blank()
	b.add("Instructions:")
	b.add("- High quality, creative composition.")
	b.addf("- Target Ratio: %s (%s)", size.Label, size.Ratio)
	b.add(sizeAddon(size.ID))
	b.add("- Do NOT add text if possible, as it will be added as an overlay.")
	return b.String()
}

func sizeAddon(id int) string {
	switch id {
	case 5:
		return "Composition framed for 4:5 aspect ratio."
	case 6:
		return "Wide composition suitable for 1.91:1 link preview."
	case 7:
		return "Cinematic 21:9 aspect ratio composition."
	case 8:
		return "Tall 1:2 aspect ratio vertical composition."
	case 9:
		return "Circular vignette composition centered."
	}
	return ""
}

// AspectRatio maps a display ratio to one the image backend supports.
func AspectRatio(ratio string) string {
	switch ratio {
	case "1:1", "3:4", "4:3", "9:16", "16:9":
		return ratio
	case "4:5":
		return "3:4"
	case "1.91:1", "21:9":
		return "16:9"
	case "1:2":
		return "9:16"
	}
	return "1:1"
}
