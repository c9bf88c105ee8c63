package project

import "fmt"

// SetVariations replaces the variation list and clears the applied marker.
// The lyrics are kept as they are.
func (p *Project) SetVariations(vs []Variation) {
	p.Variations = make([]Variation, len(vs))
	copy(p.Variations, vs)
	p.AppliedVariation = nil
}

// ApplyVariation copies the lyrics of variation k into the project and
// records k as applied.
func (p *Project) ApplyVariation(k int) error {
	if k < 0 || k >= len(p.Variations) {
		return fmt.Errorf("project: variation %d of %d: %w", k, len(p.Variations), ErrInvalidIndex)
	}
	p.Lyrics = p.Variations[k].Lyrics
	p.AppliedVariation = &k
	return nil
}
