// Package studio owns the project collection. Every mutation runs on a
// private copy and is committed only after the whole collection has been
// persisted.
package studio

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/igolaizola/songstudio/pkg/project"
	"github.com/igolaizola/songstudio/pkg/storage"
	"go.uber.org/zap"
)

// ErrBusy is returned when a generation of the same kind is already running
// for a project.
var ErrBusy = errors.New("busy")

// Backend persists the whole collection.
type Backend interface {
	LoadProjects(ctx context.Context) ([]*project.Project, error)
	SaveProjects(ctx context.Context, ps []*project.Project) error
}

// Generator produces text and images from prompts.
type Generator interface {
	Text(ctx context.Context, prompt string) (string, error)
	Image(ctx context.Context, prompt, ratio, size string) (string, error)
}

// Form holds the fields of a new project.
type Form struct {
	Title    string `json:"title"`
	Genre    string `json:"genre"`
	SubGenre string `json:"subGenre"`
	Mood     string `json:"mood"`
}

type Studio struct {
	backend   Backend
	generator Generator
	now       func() time.Time

	mu       sync.Mutex
	projects []*project.Project
	inflight map[string]struct{}
}

type Option func(*Studio)

// WithGenerator sets the generation backend.
func WithGenerator(g Generator) Option {
	return func(s *Studio) { s.generator = g }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Studio) { s.now = now }
}

// New loads the collection from the backend.
func New(ctx context.Context, backend Backend, opts ...Option) (*Studio, error) {
	ps, err := backend.LoadProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("studio: couldn't load projects: %w", err)
	}
	s := &Studio{
		backend:  backend,
		now:      time.Now,
		projects: ps,
		inflight: map[string]struct{}{},
	}
	for _, o := range opts {
		o(s)
	}
	zap.S().Debugf("studio: loaded %d projects", len(ps))
	return s, nil
}

// commit persists next and makes it the current collection. On failure the
// current collection is kept.
func (s *Studio) commit(ctx context.Context, next []*project.Project) error {
	if err := s.backend.SaveProjects(ctx, next); err != nil {
		return fmt.Errorf("studio: couldn't save projects: %w", err)
	}
	s.projects = next
	return nil
}

func (s *Studio) index(id string) int {
	for i, p := range s.projects {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func notFound(id string) error {
	return fmt.Errorf("studio: project %s: %w", id, project.ErrNotFound)
}

func (s *Studio) prepend(ctx context.Context, p *project.Project) error {
	next := make([]*project.Project, 0, len(s.projects)+1)
	next = append(next, p)
	next = append(next, s.projects...)
	return s.commit(ctx, next)
}

// Create adds a new project at the head of the collection.
func (s *Studio) Create(ctx context.Context, f Form) (*project.Project, error) {
	if err := project.ValidateTitle(f.Title); err != nil {
		return nil, fmt.Errorf("studio: %w", err)
	}
	p := project.New(f.Title, f.Genre, f.SubGenre, f.Mood, s.now())
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.prepend(ctx, p); err != nil {
		return nil, err
	}
	zap.S().Infof("studio: created project %s %q", p.ID, p.Title)
	return p.Clone(), nil
}

// Patch merges the non-nil fields of u into the project.
func (s *Studio) Patch(ctx context.Context, id string, u project.Patch) (*project.Project, error) {
	if err := u.Validate(); err != nil {
		return nil, fmt.Errorf("studio: %w", err)
	}
	return s.Update(ctx, id, func(p *project.Project) error {
		u.Apply(p)
		return nil
	})
}

// Update runs fn on a copy of the project and commits the copy if fn
// succeeds. Identity fields are restored after fn.
func (s *Studio) Update(ctx context.Context, id string, fn func(*project.Project) error) (*project.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return nil, notFound(id)
	}
	orig := s.projects[i]
	p := orig.Clone()
	if err := fn(p); err != nil {
		return nil, err
	}
	p.ID = orig.ID
	p.CreatedAt = orig.CreatedAt

	next := make([]*project.Project, len(s.projects))
	copy(next, s.projects)
	next[i] = p
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	return p.Clone(), nil
}

// Delete removes a project.
func (s *Studio) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return notFound(id)
	}
	next := make([]*project.Project, 0, len(s.projects)-1)
	next = append(next, s.projects[:i]...)
	next = append(next, s.projects[i+1:]...)
	if err := s.commit(ctx, next); err != nil {
		return err
	}
	zap.S().Infof("studio: deleted project %s", id)
	return nil
}

// Import adds an external project record under a new id. Every other field
// is kept.
func (s *Studio) Import(ctx context.Context, raw []byte) (*project.Project, error) {
	p, err := project.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("studio: couldn't import project: %w", err)
	}
	p.ID = project.NewID()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.prepend(ctx, p); err != nil {
		return nil, err
	}
	zap.S().Infof("studio: imported project %s %q", p.ID, p.Title)
	return p.Clone(), nil
}

// Export serializes a project in the interchange format.
func (s *Studio) Export(ctx context.Context, id string) ([]byte, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return project.Marshal(p)
}

// Remix adds an independent copy of a project with a new id.
func (s *Studio) Remix(ctx context.Context, id string) (*project.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return nil, notFound(id)
	}
	r := s.projects[i].Remix(s.now())
	if err := s.prepend(ctx, r); err != nil {
		return nil, err
	}
	zap.S().Infof("studio: remixed project %s into %s", id, r.ID)
	return r.Clone(), nil
}

// Get returns a copy of a project.
func (s *Studio) Get(ctx context.Context, id string) (*project.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return nil, notFound(id)
	}
	return s.projects[i].Clone(), nil
}

// List returns copies of all projects, most recent first.
func (s *Studio) List(ctx context.Context) []*project.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*project.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, p.Clone())
	}
	return out
}

// Open starts the storage backend and loads a studio from it. The caller
// stops the returned store.
func Open(ctx context.Context, dbType, dbConn string, debug bool, opts ...Option) (*Studio, *storage.Store, error) {
	store, err := storage.Open(ctx, dbType, dbConn, debug)
	if err != nil {
		return nil, nil, fmt.Errorf("studio: couldn't open store: %w", err)
	}
	s, err := New(ctx, store, opts...)
	if err != nil {
		_ = store.Stop()
		return nil, nil, err
	}
	return s, store, nil
}
