package projects

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/igolaizola/songstudio/pkg/filestore"
	"github.com/igolaizola/songstudio/pkg/project"
	"github.com/igolaizola/songstudio/pkg/studio"
)

func TestDeleteRemovesCover(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	covers := filepath.Join(dir, "covers")
	var out bytes.Buffer
	cfg := &Config{DBType: "sqlite", DBConn: filepath.Join(dir, "test.db"), FSType: "local", FSConn: covers, Output: &out}

	if err := RunCreate(ctx, cfg, studio.Form{Title: "One", Genre: "Salsa"}); err != nil {
		t.Fatal(err)
	}
	id := strings.TrimSpace(out.String())

	s, stop, err := open(ctx, cfg)
	if err != nil {
		t.Fatal(err)
	}
	p, err := s.Patch(ctx, id, project.Patch{CoverImage: project.String("data:image/png;base64,AAEC")})
	if err != nil {
		stop()
		t.Fatal(err)
	}
	stop()
	files, err := filestore.New(ctx, "local", covers, false)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := files.SetCover(ctx, p.CoverImage, id); err != nil {
		t.Fatal(err)
	}

	if err := RunDelete(ctx, cfg, id); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(covers, id+".png")); !os.IsNotExist(err) {
		t.Fatalf("stored cover after delete: err = %v; want not exist", err)
	}
	if err := RunDelete(ctx, cfg, id); !errors.Is(err, project.ErrNotFound) {
		t.Fatalf("RunDelete(deleted) err = %v; want %v", err, project.ErrNotFound)
	}
}

func TestEditValidation(t *testing.T) {
	ctx := context.Background()
	cfg := &Config{DBType: "sqlite", DBConn: filepath.Join(t.TempDir(), "test.db"), Output: &bytes.Buffer{}}
	tests := []project.Patch{
		{},
		{BPM: project.Int(-40)},
		{Key: project.String("H#")},
		{Title: project.String("")},
	}
	for _, u := range tests {
		if err := RunEdit(ctx, cfg, "any", u); !errors.Is(err, project.ErrValidation) {
			t.Fatalf("RunEdit(%+v) err = %v; want %v", u, err, project.ErrValidation)
		}
	}
}
