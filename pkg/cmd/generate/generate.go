package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/igolaizola/songstudio/pkg/openai"
	"github.com/igolaizola/songstudio/pkg/studio"
	"go.uber.org/zap"
)

type Config struct {
	Debug   bool
	DBType  string
	DBConn  string
	Timeout time.Duration

	Output  io.Writer
	Request studio.Request
	OpenAI  openai.Config
}

// Run launches one generation per kind for a project. Kinds run
// concurrently and failures are joined.
func Run(ctx context.Context, cfg *Config, id string, kinds []studio.Affordance) error {
	if len(kinds) == 0 {
		return errors.New("generate: no kinds given")
	}
	if cfg.OpenAI.Token == "" {
		return errors.New("generate: openai token is required")
	}
	zap.S().Infof("generate: process started (%s)", join(kinds))
	start := time.Now()
	defer func() {
		zap.S().Infof("generate: process ended in %s", time.Since(start).Round(time.Millisecond))
	}()

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	client := openai.New(&cfg.OpenAI)
	s, store, err := studio.Open(ctx, cfg.DBType, cfg.DBConn, cfg.Debug, studio.WithGenerator(client))
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	defer func() { _ = store.Stop() }()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		errs    []error
		results = make([]*studio.Result, len(kinds))
	)
	for i, k := range kinds {
		wg.Add(1)
		go func(i int, k studio.Affordance) {
			defer wg.Done()
			res, err := s.Generate(ctx, id, k, cfg.Request)
			if err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("generate: %s: %w", k, err))
				mu.Unlock()
				return
			}
			zap.S().Infof("generate: %s done", k)
			results[i] = res
		}(i, k)
	}
	wg.Wait()

	for i, k := range kinds {
		if results[i] == nil {
			continue
		}
		fmt.Fprintf(cfg.Output, "=== %s ===\n%s\n", k, Describe(k, results[i]))
	}
	return errors.Join(errs...)
}

// Describe renders the part of a result that a kind produced.
func Describe(k studio.Affordance, res *studio.Result) string {
	var lines []string
	switch k {
	case studio.Themes:
		for _, t := range res.Themes {
			lines = append(lines, fmt.Sprintf("%s | %s | %s", t.Title, t.Topic, t.Style))
		}
	case studio.References:
		for _, r := range res.References {
			lines = append(lines, fmt.Sprintf("%s - %s", r.Song, r.Artist))
		}
	}
	if res.Project == nil {
		return strings.Join(lines, "\n")
	}
	p := res.Project
	switch k {
	case studio.Lyrics:
		return p.Lyrics
	case studio.Sound:
		return p.SoundPrompt
	case studio.Advice:
		return p.CompositionAdvice
	case studio.Titles:
		return strings.Join(p.GeneratedTitles, "\n")
	case studio.Cover:
		return fmt.Sprintf("cover image stored (%d bytes)", len(p.CoverImage))
	case studio.Variations:
		for i, v := range p.Variations {
			lines = append(lines, fmt.Sprintf("%d. %s: %s", i, v.Title, v.Rationale))
		}
	}
	return strings.Join(lines, "\n")
}

func join(kinds []studio.Affordance) string {
	s := make([]string, len(kinds))
	for i, k := range kinds {
		s[i] = string(k)
	}
	return strings.Join(s, ", ")
}
