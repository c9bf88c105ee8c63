// Package compose prints the prompts built for a project without calling
// any generator.
package compose

import (
	"context"
	"fmt"
	"io"

	"github.com/igolaizola/songstudio/pkg/studio"
)

type Config struct {
	Debug  bool
	DBType string
	DBConn string

	Output  io.Writer
	Request studio.Request
}

func Run(ctx context.Context, cfg *Config, id string, kinds []studio.Affordance) error {
	if len(kinds) == 0 {
		kinds = []studio.Affordance{studio.Lyrics}
	}
	s, store, err := studio.Open(ctx, cfg.DBType, cfg.DBConn, cfg.Debug)
	if err != nil {
		return fmt.Errorf("compose: %w", err)
	}
	defer func() { _ = store.Stop() }()

	for i, k := range kinds {
		text, err := s.Compose(ctx, id, k, cfg.Request)
		if err != nil {
			return fmt.Errorf("compose: %w", err)
		}
		if len(kinds) > 1 {
			if i > 0 {
				fmt.Fprintln(cfg.Output)
			}
			fmt.Fprintf(cfg.Output, "=== %s ===\n", k)
		}
		fmt.Fprintln(cfg.Output, text)
	}
	return nil
}
