// Package variation lists and applies the lyric variations of a project.
package variation

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/igolaizola/songstudio/pkg/project"
	"github.com/igolaizola/songstudio/pkg/studio"
)

type Config struct {
	Debug  bool
	DBType string
	DBConn string

	Output io.Writer
}

// Run prints the variations of a project, or applies the one at index
// when args is "apply <index>".
func Run(ctx context.Context, cfg *Config, id string, args []string) error {
	apply := -1
	if len(args) > 0 {
		if args[0] != "apply" || len(args) != 2 {
			return fmt.Errorf("variation: usage is apply <index>: %w", project.ErrValidation)
		}
		k, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("variation: invalid index %q: %w", args[1], project.ErrValidation)
		}
		apply = k
	}

	s, store, err := studio.Open(ctx, cfg.DBType, cfg.DBConn, cfg.Debug)
	if err != nil {
		return fmt.Errorf("variation: %w", err)
	}
	defer func() { _ = store.Stop() }()

	var p *project.Project
	if apply < 0 && len(args) == 0 {
		p, err = s.Get(ctx, id)
	} else {
		p, err = s.Update(ctx, id, func(p *project.Project) error { return p.ApplyVariation(apply) })
	}
	if err != nil {
		return fmt.Errorf("variation: %w", err)
	}
	for i, v := range p.Variations {
		mark := " "
		if p.AppliedVariation != nil && *p.AppliedVariation == i {
			mark = "*"
		}
		fmt.Fprintf(cfg.Output, "%s %d. %s\n   %s\n", mark, i, v.Title, v.Rationale)
	}
	return nil
}
