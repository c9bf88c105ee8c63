// Package library manages the saved instrument presets, sample prompts and
// artist lists.
package library

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/igolaizola/songstudio/pkg/library"
	"github.com/igolaizola/songstudio/pkg/project"
	"github.com/igolaizola/songstudio/pkg/storage"
	"go.uber.org/zap"
)

type Config struct {
	Debug  bool
	DBType string
	DBConn string

	Output io.Writer
}

// Lists accepted by Run.
const (
	Presets = "presets"
	Prompts = "prompts"
	Art     = "art"
	Export  = "export"
)

// Run applies an action to a list. Actions are "list", "add <fields...>",
// "remove <name>" and "import <file.json|file.csv>".
func Run(ctx context.Context, cfg *Config, list string, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	action, args := args[0], args[1:]

	store, err := storage.Open(ctx, cfg.DBType, cfg.DBConn, cfg.Debug)
	if err != nil {
		return fmt.Errorf("library: %w", err)
	}
	defer func() { _ = store.Stop() }()
	lib := library.New(store)

	var h handler
	switch list {
	case Presets:
		h = &presetHandler{lib: lib}
	case Prompts:
		h = &promptHandler{lib: lib}
	case Art, Export:
		l, err := library.ParseArtistList(list)
		if err != nil {
			return err
		}
		h = &artistHandler{lib: lib, list: l}
	default:
		return fmt.Errorf("library: unknown list %q: %w", list, project.ErrNotFound)
	}

	switch action {
	case "list":
		return h.print(ctx, cfg.Output)
	case "add":
		if err := h.add(ctx, args); err != nil {
			return fmt.Errorf("library: %w", err)
		}
	case "remove":
		if len(args) == 0 {
			return fmt.Errorf("library: remove needs a name: %w", project.ErrValidation)
		}
		if err := h.remove(ctx, strings.Join(args, " ")); err != nil {
			return fmt.Errorf("library: %w", err)
		}
	case "import":
		if len(args) != 1 {
			return fmt.Errorf("library: import needs one file: %w", project.ErrValidation)
		}
		b, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("library: couldn't read input file: %w", err)
		}
		n, err := h.load(ctx, filepath.Ext(args[0]), b)
		if err != nil {
			return fmt.Errorf("library: %w", err)
		}
		zap.S().Infof("library: imported %d %s", n, list)
	default:
		return fmt.Errorf("library: unknown action %q: %w", action, project.ErrValidation)
	}
	return h.print(ctx, cfg.Output)
}

type handler interface {
	print(ctx context.Context, w io.Writer) error
	add(ctx context.Context, args []string) error
	remove(ctx context.Context, name string) error
	load(ctx context.Context, ext string, b []byte) (int, error)
}

// unmarshal decodes json or csv rows depending on the file extension.
func unmarshal[T any](ext string, b []byte) ([]T, error) {
	var is []T
	switch ext {
	case ".json":
		if err := json.Unmarshal(b, &is); err != nil {
			return nil, fmt.Errorf("couldn't unmarshal items: %w", err)
		}
	case ".csv":
		if err := gocsv.UnmarshalBytes(b, &is); err != nil {
			return nil, fmt.Errorf("couldn't unmarshal items: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported input format %q: %w", ext, project.ErrValidation)
	}
	return is, nil
}

type presetRow struct {
	Name        string   `json:"name" csv:"name"`
	Instruments string   `json:"-" csv:"instruments"`
	List        []string `json:"instruments" csv:"-"`
}

// ParsePresets decodes instrument presets. CSV rows separate instruments
// with "|".
func ParsePresets(ext string, b []byte) ([]library.InstrumentPreset, error) {
	rows, err := unmarshal[presetRow](ext, b)
	if err != nil {
		return nil, err
	}
	out := make([]library.InstrumentPreset, 0, len(rows))
	for _, r := range rows {
		list := r.List
		if len(list) == 0 && r.Instruments != "" {
			list = splitList(r.Instruments, "|")
		}
		out = append(out, library.InstrumentPreset{Name: r.Name, Instruments: list})
	}
	return out, nil
}

// ParsePrompts decodes sample prompts.
func ParsePrompts(ext string, b []byte) ([]library.SamplePrompt, error) {
	return unmarshal[library.SamplePrompt](ext, b)
}

type artistRow struct {
	Name string `csv:"name"`
}

// ParseArtists decodes artist names from a json string array or a csv with
// a name column.
func ParseArtists(ext string, b []byte) ([]string, error) {
	if ext == ".json" {
		return unmarshal[string](ext, b)
	}
	rows, err := unmarshal[artistRow](ext, b)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Name)
	}
	return out, nil
}

func splitList(s, sep string) []string {
	var out []string
	for _, v := range strings.Split(s, sep) {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

type presetHandler struct {
	lib *library.Library
}

func (h *presetHandler) print(ctx context.Context, w io.Writer) error {
	ps, err := h.lib.InstrumentPresets(ctx)
	if err != nil {
		return err
	}
	for _, p := range ps {
		fmt.Fprintf(w, "%s: %s\n", p.Name, strings.Join(p.Instruments, ", "))
	}
	return nil
}

// add takes a name followed by instruments, comma or "|" separated.
func (h *presetHandler) add(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("add needs a name and instruments: %w", project.ErrValidation)
	}
	list := splitList(strings.ReplaceAll(strings.Join(args[1:], ","), "|", ","), ",")
	return h.lib.AddInstrumentPreset(ctx, library.InstrumentPreset{Name: args[0], Instruments: list})
}

func (h *presetHandler) remove(ctx context.Context, name string) error {
	return h.lib.RemoveInstrumentPreset(ctx, name)
}

func (h *presetHandler) load(ctx context.Context, ext string, b []byte) (int, error) {
	ps, err := ParsePresets(ext, b)
	if err != nil {
		return 0, err
	}
	for i, p := range ps {
		if err := h.lib.AddInstrumentPreset(ctx, p); err != nil {
			return i, err
		}
	}
	return len(ps), nil
}

type promptHandler struct {
	lib *library.Library
}

func (h *promptHandler) print(ctx context.Context, w io.Writer) error {
	ps, err := h.lib.SamplePrompts(ctx)
	if err != nil {
		return err
	}
	for _, p := range ps {
		fmt.Fprintf(w, "%s\n  %s\n", p.Label, strings.ReplaceAll(p.Text, "\n", "\n  "))
	}
	return nil
}

func (h *promptHandler) add(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("add needs a label and a text: %w", project.ErrValidation)
	}
	return h.lib.AddSamplePrompt(ctx, library.SamplePrompt{Label: args[0], Text: strings.Join(args[1:], " ")})
}

func (h *promptHandler) remove(ctx context.Context, label string) error {
	return h.lib.RemoveSamplePrompt(ctx, label)
}

func (h *promptHandler) load(ctx context.Context, ext string, b []byte) (int, error) {
	ps, err := ParsePrompts(ext, b)
	if err != nil {
		return 0, err
	}
	for i, p := range ps {
		if err := h.lib.AddSamplePrompt(ctx, p); err != nil {
			return i, err
		}
	}
	return len(ps), nil
}

type artistHandler struct {
	lib  *library.Library
	list library.ArtistList
}

func (h *artistHandler) print(ctx context.Context, w io.Writer) error {
	names, err := h.lib.Artists(ctx, h.list)
	if err != nil {
		return err
	}
	for _, n := range names {
		fmt.Fprintln(w, n)
	}
	return nil
}

func (h *artistHandler) add(ctx context.Context, args []string) error {
	return h.lib.AddArtist(ctx, h.list, strings.Join(args, " "))
}

func (h *artistHandler) remove(ctx context.Context, name string) error {
	return h.lib.RemoveArtist(ctx, h.list, name)
}

func (h *artistHandler) load(ctx context.Context, ext string, b []byte) (int, error) {
	names, err := ParseArtists(ext, b)
	if err != nil {
		return 0, err
	}
	for i, n := range names {
		if err := h.lib.AddArtist(ctx, h.list, n); err != nil {
			return i, err
		}
	}
	return len(names), nil
}
