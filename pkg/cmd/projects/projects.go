// Package projects implements the project lifecycle commands.
package projects

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/igolaizola/songstudio/pkg/filestore"
	"github.com/igolaizola/songstudio/pkg/project"
	"github.com/igolaizola/songstudio/pkg/studio"
	"go.uber.org/zap"
)

type Config struct {
	Debug  bool
	DBType string
	DBConn string
	// Covers of deleted projects are removed from this file store when set.
	FSType string
	FSConn string

	Output io.Writer
}

func open(ctx context.Context, cfg *Config) (*studio.Studio, func(), error) {
	s, store, err := studio.Open(ctx, cfg.DBType, cfg.DBConn, cfg.Debug)
	if err != nil {
		return nil, nil, err
	}
	return s, func() { _ = store.Stop() }, nil
}

// Print writes a project as indented JSON.
func Print(w io.Writer, p *project.Project) error {
	b, err := project.Marshal(p)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func RunCreate(ctx context.Context, cfg *Config, form studio.Form) error {
	s, stop, err := open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	defer stop()
	p, err := s.Create(ctx, form)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	fmt.Fprintln(cfg.Output, p.ID)
	return nil
}

func RunList(ctx context.Context, cfg *Config) error {
	s, stop, err := open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	defer stop()
	w := tabwriter.NewWriter(cfg.Output, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tGENRE\tCREATED")
	for _, p := range s.List(ctx) {
		genre := p.Genre
		if p.SubGenre != "" {
			genre += " / " + p.SubGenre
		}
		created := time.UnixMilli(p.CreatedAt).Format("2006-01-02 15:04")
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Title, genre, created)
	}
	return w.Flush()
}

func RunShow(ctx context.Context, cfg *Config, id string) error {
	s, stop, err := open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("show: %w", err)
	}
	defer stop()
	p, err := s.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("show: %w", err)
	}
	return Print(cfg.Output, p)
}

// RunEdit merges a patch into a project.
func RunEdit(ctx context.Context, cfg *Config, id string, patch project.Patch) error {
	if patch.Empty() {
		return fmt.Errorf("edit: nothing to change: %w", project.ErrValidation)
	}
	if err := patch.Validate(); err != nil {
		return fmt.Errorf("edit: %w", err)
	}
	s, stop, err := open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("edit: %w", err)
	}
	defer stop()
	p, err := s.Patch(ctx, id, patch)
	if err != nil {
		return fmt.Errorf("edit: %w", err)
	}
	return Print(cfg.Output, p)
}

func RunDelete(ctx context.Context, cfg *Config, id string) error {
	s, stop, err := open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	defer stop()
	p, err := s.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	var fs *filestore.Store
	if cfg.FSType != "" {
		fs, err = filestore.New(ctx, cfg.FSType, cfg.FSConn, cfg.Debug)
		if err != nil {
			return fmt.Errorf("delete: couldn't create file storage: %w", err)
		}
	}
	if err := s.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	if fs != nil && p.CoverImage != "" {
		// The cover may never have been uploaded.
		if err := fs.DeleteCover(ctx, id, filestore.CoverExt(p.CoverImage)); err != nil {
			zap.S().Warnf("delete: %v", err)
		}
	}
	return nil
}

// RunExport writes a project to file, or to the output when file is empty.
func RunExport(ctx context.Context, cfg *Config, id, file string) error {
	s, stop, err := open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer stop()
	b, err := s.Export(ctx, id)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if file == "" {
		_, err := fmt.Fprintln(cfg.Output, string(b))
		return err
	}
	if err := os.WriteFile(file, b, 0644); err != nil {
		return fmt.Errorf("export: couldn't write %s: %w", file, err)
	}
	zap.S().Infof("export: project %s written to %s", id, file)
	return nil
}

// RunImport reads one project record from each file.
func RunImport(ctx context.Context, cfg *Config, files []string) error {
	if len(files) == 0 {
		return fmt.Errorf("import: no files: %w", project.ErrValidation)
	}
	s, stop, err := open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	defer stop()
	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			return fmt.Errorf("import: couldn't read %s: %w", f, err)
		}
		p, err := s.Import(ctx, b)
		if err != nil {
			return fmt.Errorf("import: %s: %w", f, err)
		}
		fmt.Fprintln(cfg.Output, p.ID)
	}
	return nil
}

func RunRemix(ctx context.Context, cfg *Config, id string) error {
	s, stop, err := open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("remix: %w", err)
	}
	defer stop()
	p, err := s.Remix(ctx, id)
	if err != nil {
		return fmt.Errorf("remix: %w", err)
	}
	fmt.Fprintln(cfg.Output, p.ID)
	return nil
}
