package cover

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/igolaizola/songstudio/pkg/filestore"
	"github.com/igolaizola/songstudio/pkg/openai"
	"github.com/igolaizola/songstudio/pkg/project"
	"github.com/igolaizola/songstudio/pkg/studio"
	"go.uber.org/zap"
)

type Config struct {
	Debug  bool
	DBType string
	DBConn string
	FSType string
	FSConn string

	Output io.Writer
	// Generate renders a new cover before uploading it.
	Generate bool
	// Download copies the stored cover to this path instead of uploading.
	Download string
	Request  studio.Request
	OpenAI   openai.Config
}

// Run uploads the cover image of a project to the file store, or downloads
// the stored one when Download is set.
func Run(ctx context.Context, cfg *Config, id string) error {
	var opts []studio.Option
	if cfg.Generate && cfg.Download != "" {
		return errors.New("cover: generate and download can't be combined")
	}
	if cfg.Generate {
		if cfg.OpenAI.Token == "" {
			return errors.New("cover: openai token is required to generate")
		}
		opts = append(opts, studio.WithGenerator(openai.New(&cfg.OpenAI)))
	}
	s, store, err := studio.Open(ctx, cfg.DBType, cfg.DBConn, cfg.Debug, opts...)
	if err != nil {
		return fmt.Errorf("cover: %w", err)
	}
	defer func() { _ = store.Stop() }()

	fs, err := filestore.New(ctx, cfg.FSType, cfg.FSConn, cfg.Debug)
	if err != nil {
		return fmt.Errorf("cover: couldn't create file storage: %w", err)
	}

	if cfg.Download != "" {
		if _, err := s.Get(ctx, id); err != nil {
			return fmt.Errorf("cover: %w", err)
		}
		if err := fs.GetCover(ctx, cfg.Download, id); err != nil {
			return fmt.Errorf("cover: %w", err)
		}
		zap.S().Infof("cover: downloaded %s to %s", id, cfg.Download)
		fmt.Fprintln(cfg.Output, cfg.Download)
		return nil
	}

	var p *project.Project
	if cfg.Generate {
		zap.S().Infof("cover: generating cover for %s", id)
		p, err = s.GenerateCover(ctx, id, cfg.Request.Art, cfg.Request.ImageSize)
	} else {
		p, err = s.Get(ctx, id)
	}
	if err != nil {
		return fmt.Errorf("cover: %w", err)
	}
	if p.CoverImage == "" {
		return fmt.Errorf("cover: project %s has no cover image: %w", id, project.ErrValidation)
	}
	name, err := fs.SetCover(ctx, p.CoverImage, p.ID)
	if err != nil {
		return fmt.Errorf("cover: %w", err)
	}
	zap.S().Infof("cover: uploaded %s", name)
	fmt.Fprintln(cfg.Output, name)
	return nil
}
