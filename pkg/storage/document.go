package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/igolaizola/songstudio/pkg/project"
)

// ProjectsKey holds the project collection, most recent first.
const ProjectsKey = "projects"

// GetDocument decodes the JSON value stored under key into v.
func (s *Store) GetDocument(ctx context.Context, key string, v any) error {
	setting, err := s.GetSetting(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(setting.Value), v); err != nil {
		return fmt.Errorf("storage: failed to decode %s: %w", key, err)
	}
	return nil
}

// SetDocument stores v as JSON under key.
func (s *Store) SetDocument(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("storage: failed to encode %s: %w", key, err)
	}
	return s.SetSetting(ctx, &Setting{ID: key, Value: string(b)})
}

// LoadProjects returns the stored collection. A missing collection is
// empty.
func (s *Store) LoadProjects(ctx context.Context) ([]*project.Project, error) {
	setting, err := s.GetSetting(ctx, ProjectsKey)
	if errors.Is(err, ErrNotFound) {
		return []*project.Project{}, nil
	}
	if err != nil {
		return nil, err
	}
	ps, err := project.ParseCollection([]byte(setting.Value))
	if err != nil {
		return nil, fmt.Errorf("storage: failed to decode projects: %w", err)
	}
	return ps, nil
}

// SaveProjects replaces the stored collection.
func (s *Store) SaveProjects(ctx context.Context, ps []*project.Project) error {
	b, err := project.MarshalCollection(ps)
	if err != nil {
		return fmt.Errorf("storage: failed to encode projects: %w", err)
	}
	return s.SetSetting(ctx, &Setting{ID: ProjectsKey, Value: string(b)})
}
