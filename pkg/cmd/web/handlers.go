package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/igolaizola/songstudio/pkg/catalog"
	"github.com/igolaizola/songstudio/pkg/filestore"
	"github.com/igolaizola/songstudio/pkg/library"
	"github.com/igolaizola/songstudio/pkg/project"
	"github.com/igolaizola/songstudio/pkg/studio"
	"go.uber.org/zap"
)

const maxBody = 32 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.S().Errorf("web: couldn't encode response: %v", err)
	}
}

// statusOf maps domain errors to http status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, project.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, project.ErrInvalidIndex), errors.Is(err, project.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, studio.ErrBusy):
		return http.StatusConflict
	case errors.Is(err, project.ErrGeneration):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		zap.S().Errorf("web: %v", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBody)).Decode(v); err != nil {
		return fmt.Errorf("web: invalid body: %v: %w", err, project.ErrValidation)
	}
	return nil
}

// decodeOptional accepts an empty body.
func decodeOptional(r *http.Request, v any) error {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBody)).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return fmt.Errorf("web: invalid body: %v: %w", err, project.ErrValidation)
}

func index(r *http.Request) (int, error) {
	v := chi.URLParam(r, "index")
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("web: invalid index %q: %w", v, project.ErrValidation)
	}
	return i, nil
}

func (rt *Router) getCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.All())
}

func (rt *Router) listProjects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rt.Studio.List(r.Context()))
}

func (rt *Router) createProject(w http.ResponseWriter, r *http.Request) {
	var f studio.Form
	if err := decode(r, &f); err != nil {
		writeError(w, err)
		return
	}
	p, err := rt.Studio.Create(r.Context(), f)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (rt *Router) importProject(w http.ResponseWriter, r *http.Request) {
	b, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
	if err != nil {
		writeError(w, fmt.Errorf("web: couldn't read body: %w", err))
		return
	}
	p, err := rt.Studio.Import(r.Context(), b)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (rt *Router) getProject(w http.ResponseWriter, r *http.Request) {
	p, err := rt.Studio.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (rt *Router) patchProject(w http.ResponseWriter, r *http.Request) {
	var u project.Patch
	if err := decode(r, &u); err != nil {
		writeError(w, err)
		return
	}
	p, err := rt.Studio.Patch(r.Context(), chi.URLParam(r, "id"), u)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (rt *Router) deleteProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := rt.Studio.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := rt.Studio.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	if rt.Files != nil && p.CoverImage != "" {
		if err := rt.Files.DeleteCover(r.Context(), id, filestore.CoverExt(p.CoverImage)); err != nil {
			zap.S().Warnf("web: %v", err)
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (rt *Router) exportProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	b, err := rt.Studio.Export(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", id+".json"))
	_, _ = w.Write(b)
}

func (rt *Router) remixProject(w http.ResponseWriter, r *http.Request) {
	p, err := rt.Studio.Remix(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// respond runs a mutation and writes the updated project.
func (rt *Router) respond(w http.ResponseWriter, r *http.Request, fn func(*project.Project) error) {
	p, err := rt.Studio.Update(r.Context(), chi.URLParam(r, "id"), fn)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (rt *Router) applyTemplate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	rt.respond(w, r, func(p *project.Project) error { return p.ApplyTemplate(req.Name) })
}

func (rt *Router) addBlock(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type string `json:"type"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	rt.respond(w, r, func(p *project.Project) error {
		p.AddBlock(req.Type)
		return nil
	})
}

func (rt *Router) removeBlock(w http.ResponseWriter, r *http.Request) {
	i, err := index(r)
	if err != nil {
		writeError(w, err)
		return
	}
	rt.respond(w, r, func(p *project.Project) error {
		p.RemoveBlock(i)
		return nil
	})
}

func (rt *Router) moveBlock(w http.ResponseWriter, r *http.Request) {
	i, err := index(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req struct {
		Direction int `json:"direction"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Direction != -1 && req.Direction != 1 {
		writeError(w, fmt.Errorf("web: direction must be -1 or 1: %w", project.ErrValidation))
		return
	}
	rt.respond(w, r, func(p *project.Project) error {
		p.MoveBlock(i, req.Direction)
		return nil
	})
}

func (rt *Router) describeBlock(w http.ResponseWriter, r *http.Request) {
	i, err := index(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req struct {
		Description string `json:"description"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	rt.respond(w, r, func(p *project.Project) error { return p.UpdateDescription(i, req.Description) })
}

type presetRequest struct {
	Value     string            `json:"value"`
	Theme     project.ThemePack `json:"theme"`
	Reference project.Reference `json:"reference"`
}

func (rt *Router) applyPreset(w http.ResponseWriter, r *http.Request) {
	var req presetRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	var fn func(*project.Project) error
	switch kind := chi.URLParam(r, "kind"); kind {
	case "genre":
		fn = func(p *project.Project) error { return p.ApplyGenrePreset(req.Value) }
	case "instruments":
		saved, err := rt.Library.InstrumentPreset(r.Context(), req.Value)
		if err != nil {
			writeError(w, err)
			return
		}
		fn = func(p *project.Project) error {
			p.ApplyInstrumentPreset(saved.Instruments)
			return nil
		}
	case "template":
		fn = func(p *project.Project) error { return p.ApplyStructureTemplate(req.Value) }
	case "intro":
		fn = func(p *project.Project) error { return p.ApplyIntroStyle(req.Value) }
	case "toggle":
		fn = func(p *project.Project) error {
			p.ToggleInstrument(req.Value)
			return nil
		}
	case "title":
		fn = func(p *project.Project) error {
			p.ApplySuggestedTitle(req.Value)
			return nil
		}
	case "theme":
		fn = func(p *project.Project) error {
			p.ApplyThemePack(req.Theme)
			return nil
		}
	case "reference":
		fn = func(p *project.Project) error {
			p.ApplyReference(req.Reference)
			return nil
		}
	default:
		writeError(w, fmt.Errorf("web: unknown preset %q: %w", kind, project.ErrNotFound))
		return
	}
	rt.respond(w, r, fn)
}

func (rt *Router) applyVariation(w http.ResponseWriter, r *http.Request) {
	k, err := index(r)
	if err != nil {
		writeError(w, err)
		return
	}
	rt.respond(w, r, func(p *project.Project) error { return p.ApplyVariation(k) })
}

func (rt *Router) compose(w http.ResponseWriter, r *http.Request) {
	var req studio.Request
	if err := decodeOptional(r, &req); err != nil {
		writeError(w, err)
		return
	}
	kind := studio.Affordance(chi.URLParam(r, "kind"))
	text, err := rt.Studio.Compose(r.Context(), chi.URLParam(r, "id"), kind, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"prompt": text})
}

func (rt *Router) generate(w http.ResponseWriter, r *http.Request) {
	var req studio.Request
	if err := decodeOptional(r, &req); err != nil {
		writeError(w, err)
		return
	}
	kind := studio.Affordance(chi.URLParam(r, "kind"))
	res, err := rt.Studio.Generate(r.Context(), chi.URLParam(r, "id"), kind, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (rt *Router) running(w http.ResponseWriter, r *http.Request) {
	kind := studio.Affordance(chi.URLParam(r, "kind"))
	writeJSON(w, http.StatusOK, map[string]bool{"running": rt.Studio.Running(chi.URLParam(r, "id"), kind)})
}

func (rt *Router) uploadCover(w http.ResponseWriter, r *http.Request) {
	if rt.Files == nil {
		writeError(w, fmt.Errorf("web: no file storage configured: %w", project.ErrValidation))
		return
	}
	p, err := rt.Studio.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if p.CoverImage == "" {
		writeError(w, fmt.Errorf("web: project %s has no cover: %w", p.ID, project.ErrValidation))
		return
	}
	name, err := rt.Files.SetCover(r.Context(), p.CoverImage, p.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"name": name})
}

// downloadCover serves the stored cover of a project.
func (rt *Router) downloadCover(w http.ResponseWriter, r *http.Request) {
	if rt.Files == nil {
		writeError(w, fmt.Errorf("web: no file storage configured: %w", project.ErrValidation))
		return
	}
	p, err := rt.Studio.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if p.CoverImage == "" {
		writeError(w, fmt.Errorf("web: project %s has no cover: %w", p.ID, project.ErrNotFound))
		return
	}
	dir, err := os.MkdirTemp("", "cover-*")
	if err != nil {
		writeError(w, err)
		return
	}
	defer func() { _ = os.RemoveAll(dir) }()
	path := filepath.Join(dir, filestore.Cover(p.ID, filestore.CoverExt(p.CoverImage)))
	if err := rt.Files.GetCover(r.Context(), path, p.ID); err != nil {
		writeError(w, fmt.Errorf("web: cover not uploaded: %v: %w", err, project.ErrNotFound))
		return
	}
	http.ServeFile(w, r, path)
}

func (rt *Router) listPresets(w http.ResponseWriter, r *http.Request) {
	ps, err := rt.Library.InstrumentPresets(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ps)
}

func (rt *Router) addPreset(w http.ResponseWriter, r *http.Request) {
	var p library.InstrumentPreset
	if err := decode(r, &p); err != nil {
		writeError(w, err)
		return
	}
	if err := rt.Library.AddInstrumentPreset(r.Context(), p); err != nil {
		writeError(w, err)
		return
	}
	rt.listPresets(w, r)
}

func (rt *Router) removePreset(w http.ResponseWriter, r *http.Request) {
	if err := rt.Library.RemoveInstrumentPreset(r.Context(), chi.URLParam(r, "name")); err != nil {
		writeError(w, err)
		return
	}
	rt.listPresets(w, r)
}

func (rt *Router) listPrompts(w http.ResponseWriter, r *http.Request) {
	ps, err := rt.Library.SamplePrompts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ps)
}

func (rt *Router) addPrompt(w http.ResponseWriter, r *http.Request) {
	var p library.SamplePrompt
	if err := decode(r, &p); err != nil {
		writeError(w, err)
		return
	}
	if err := rt.Library.AddSamplePrompt(r.Context(), p); err != nil {
		writeError(w, err)
		return
	}
	rt.listPrompts(w, r)
}

func (rt *Router) removePrompt(w http.ResponseWriter, r *http.Request) {
	if err := rt.Library.RemoveSamplePrompt(r.Context(), chi.URLParam(r, "name")); err != nil {
		writeError(w, err)
		return
	}
	rt.listPrompts(w, r)
}

func (rt *Router) artistList(w http.ResponseWriter, r *http.Request) (library.ArtistList, bool) {
	l, err := library.ParseArtistList(chi.URLParam(r, "list"))
	if err != nil {
		writeError(w, err)
		return "", false
	}
	return l, true
}

func (rt *Router) listArtists(w http.ResponseWriter, r *http.Request) {
	l, ok := rt.artistList(w, r)
	if !ok {
		return
	}
	names, err := rt.Library.Artists(r.Context(), l)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, names)
}

func (rt *Router) addArtist(w http.ResponseWriter, r *http.Request) {
	l, ok := rt.artistList(w, r)
	if !ok {
		return
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := rt.Library.AddArtist(r.Context(), l, req.Name); err != nil {
		writeError(w, err)
		return
	}
	rt.listArtists(w, r)
}

func (rt *Router) removeArtist(w http.ResponseWriter, r *http.Request) {
	l, ok := rt.artistList(w, r)
	if !ok {
		return
	}
	if err := rt.Library.RemoveArtist(r.Context(), l, chi.URLParam(r, "name")); err != nil {
		writeError(w, err)
		return
	}
	rt.listArtists(w, r)
}
