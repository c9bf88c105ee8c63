package project

import (
	"fmt"

	"github.com/igolaizola/songstudio/pkg/catalog"
)

// ApplyTemplate replaces the whole structure with fresh copies of the
// template blocks. The Custom template and the empty key leave the
// structure untouched.
func (p *Project) ApplyTemplate(key string) error {
	if key == "" || key == catalog.Custom {
		return nil
	}
	tpl, ok := catalog.LookupTemplate(key)
	if !ok {
		return fmt.Errorf("project: template %q: %w", key, ErrNotFound)
	}
	blocks := make([]SongBlock, 0, len(tpl.Blocks))
	for _, b := range tpl.Blocks {
		blocks = append(blocks, SongBlock{
			ID:          NewID(),
			Type:        b.Type,
			Description: b.Description,
			Duration:    b.Duration,
		})
	}
	p.Structure = blocks
	return nil
}

// AddBlock appends a new block of the given type and returns it.
func (p *Project) AddBlock(typ string) SongBlock {
	b := SongBlock{
		ID:          NewID(),
		Type:        typ,
		Description: catalog.FirstSample(typ),
		Duration:    catalog.DefaultDuration(typ),
	}
	p.Structure = append(p.Structure, b)
	return b
}

// RemoveBlock deletes the block at index i. Out of range indexes are
// ignored.
func (p *Project) RemoveBlock(i int) {
	if i < 0 || i >= len(p.Structure) {
		return
	}
	blocks := make([]SongBlock, 0, len(p.Structure)-1)
	blocks = append(blocks, p.Structure[:i]...)
	blocks = append(blocks, p.Structure[i+1:]...)
	p.Structure = blocks
}

// MoveBlock swaps the block at index i with its neighbour in direction dir
// (-1 earlier, +1 later). Moves that would leave the sequence are ignored.
func (p *Project) MoveBlock(i, dir int) {
	if dir != -1 && dir != 1 {
		return
	}
	j := i + dir
	if i < 0 || i >= len(p.Structure) || j < 0 || j >= len(p.Structure) {
		return
	}
	p.Structure[i], p.Structure[j] = p.Structure[j], p.Structure[i]
}

// UpdateDescription overwrites the description of the block at index i.
func (p *Project) UpdateDescription(i int, text string) error {
	if i < 0 || i >= len(p.Structure) {
		return fmt.Errorf("project: block %d of %d: %w", i, len(p.Structure), ErrInvalidIndex)
	}
	p.Structure[i].Description = text
	return nil
}
