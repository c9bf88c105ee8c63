// Package structure edits the block structure of a project.
package structure

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/igolaizola/songstudio/pkg/project"
	"github.com/igolaizola/songstudio/pkg/studio"
)

type Config struct {
	Debug  bool
	DBType string
	DBConn string

	Output io.Writer
}

// Run applies one structure action to a project. Actions are "show",
// "template <name>", "add <type>", "remove <index>", "move <index> <up|down>"
// and "describe <index> <text...>".
func Run(ctx context.Context, cfg *Config, id string, args []string) error {
	if len(args) == 0 {
		args = []string{"show"}
	}
	action, args := args[0], args[1:]
	fn, err := mutation(action, args)
	if err != nil {
		return fmt.Errorf("structure: %w", err)
	}

	s, store, err := studio.Open(ctx, cfg.DBType, cfg.DBConn, cfg.Debug)
	if err != nil {
		return fmt.Errorf("structure: %w", err)
	}
	defer func() { _ = store.Stop() }()

	var p *project.Project
	if fn == nil {
		p, err = s.Get(ctx, id)
	} else {
		p, err = s.Update(ctx, id, fn)
	}
	if err != nil {
		return fmt.Errorf("structure: %w", err)
	}
	return Print(cfg.Output, p.Structure)
}

// Print writes the blocks as a table.
func Print(out io.Writer, blocks []project.SongBlock) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tTYPE\tBARS\tDESCRIPTION")
	for i, b := range blocks {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", i, b.Type, b.Duration, b.Description)
	}
	return w.Flush()
}

func mutation(action string, args []string) (func(*project.Project) error, error) {
	need := func(n int) error {
		if len(args) < n {
			return fmt.Errorf("%s needs %d argument(s): %w", action, n, project.ErrValidation)
		}
		return nil
	}
	index := func() (int, error) {
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return 0, fmt.Errorf("invalid index %q: %w", args[0], project.ErrValidation)
		}
		return i, nil
	}
	switch action {
	case "show":
		return nil, nil
	case "template":
		if err := need(1); err != nil {
			return nil, err
		}
		key := strings.Join(args, " ")
		return func(p *project.Project) error { return p.ApplyTemplate(key) }, nil
	case "add":
		if err := need(1); err != nil {
			return nil, err
		}
		return func(p *project.Project) error {
			p.AddBlock(args[0])
			return nil
		}, nil
	case "remove":
		if err := need(1); err != nil {
			return nil, err
		}
		i, err := index()
		if err != nil {
			return nil, err
		}
		return func(p *project.Project) error {
			p.RemoveBlock(i)
			return nil
		}, nil
	case "move":
		if err := need(2); err != nil {
			return nil, err
		}
		i, err := index()
		if err != nil {
			return nil, err
		}
		var dir int
		switch args[1] {
		case "up", "-1":
			dir = -1
		case "down", "+1", "1":
			dir = 1
		default:
			return nil, fmt.Errorf("invalid direction %q: %w", args[1], project.ErrValidation)
		}
		return func(p *project.Project) error {
			p.MoveBlock(i, dir)
			return nil
		}, nil
	case "describe":
		if err := need(2); err != nil {
			return nil, err
		}
		i, err := index()
		if err != nil {
			return nil, err
		}
		text := strings.Join(args[1:], " ")
		return func(p *project.Project) error { return p.UpdateDescription(i, text) }, nil
	}
	return nil, fmt.Errorf("unknown action %q: %w", action, project.ErrValidation)
}
