package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/igolaizola/songstudio/pkg/filestore"
	"github.com/igolaizola/songstudio/pkg/library"
	"github.com/igolaizola/songstudio/pkg/project"
	"github.com/igolaizola/songstudio/pkg/storage"
	"github.com/igolaizola/songstudio/pkg/studio"
)

type memBackend struct {
	saved []byte
}

func (m *memBackend) LoadProjects(ctx context.Context) ([]*project.Project, error) {
	if m.saved == nil {
		return []*project.Project{}, nil
	}
	return project.ParseCollection(m.saved)
}

func (m *memBackend) SaveProjects(ctx context.Context, ps []*project.Project) error {
	b, err := project.MarshalCollection(ps)
	if err != nil {
		return err
	}
	m.saved = b
	return nil
}

type memStore map[string][]byte

func (m memStore) GetDocument(ctx context.Context, key string, v any) error {
	b, ok := m[key]
	if !ok {
		return storage.ErrNotFound
	}
	return json.Unmarshal(b, v)
}

func (m memStore) SetDocument(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m[key] = b
	return nil
}

type fakeGenerator struct {
	text string
	err  error
}

func (f *fakeGenerator) Text(ctx context.Context, prompt string) (string, error) {
	return f.text, f.err
}

func (f *fakeGenerator) Image(ctx context.Context, prompt, ratio, size string) (string, error) {
	return "data:image/png;base64,AAEC", f.err
}

func newServer(t *testing.T, g studio.Generator) *httptest.Server {
	t.Helper()
	var opts []studio.Option
	if g != nil {
		opts = append(opts, studio.WithGenerator(g))
	}
	st, err := studio.New(context.Background(), &memBackend{}, opts...)
	if err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(NewRouter(&Router{Studio: st, Library: library.New(memStore{})}))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, body string, out any) int {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, url, r)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("%s %s: couldn't decode: %v", method, url, err)
		}
	}
	return resp.StatusCode
}

func create(t *testing.T, srv *httptest.Server) *project.Project {
	t.Helper()
	var p project.Project
	if code := do(t, http.MethodPost, srv.URL+"/api/projects", `{"title":"One","genre":"Salsa","subGenre":"Salsa Dura","mood":"Passionate"}`, &p); code != http.StatusCreated {
		t.Fatalf("create status = %d; want %d", code, http.StatusCreated)
	}
	return &p
}

func TestProjects(t *testing.T) {
	srv := newServer(t, nil)
	p := create(t, srv)
	base := srv.URL + "/api/projects/" + p.ID

	var got project.Project
	if code := do(t, http.MethodPatch, base, `{"concept":"night","bpm":180}`, &got); code != http.StatusOK {
		t.Fatalf("patch status = %d", code)
	}
	if got.Concept != "night" || got.BPM != 180 || got.Title != "One" {
		t.Fatalf("patched = %+v", got)
	}

	if code := do(t, http.MethodPost, base+"/structure/template", `{"name":"Salsa Dura (Heavy Brass)"}`, &got); code != http.StatusOK {
		t.Fatalf("template status = %d", code)
	}
	if len(got.Structure) == 0 {
		t.Fatal("template applied no blocks")
	}
	n := len(got.Structure)
	if code := do(t, http.MethodDelete, base+"/structure/blocks/0", "", &got); code != http.StatusOK || len(got.Structure) != n-1 {
		t.Fatalf("remove status = %d, blocks = %d", code, len(got.Structure))
	}

	var list []*project.Project
	if code := do(t, http.MethodPost, base+"/remix", "", nil); code != http.StatusCreated {
		t.Fatalf("remix status = %d", code)
	}
	if code := do(t, http.MethodGet, srv.URL+"/api/projects", "", &list); code != http.StatusOK || len(list) != 2 {
		t.Fatalf("list status = %d, len = %d", code, len(list))
	}
	if list[0].Title != "One (Remix)" {
		t.Fatalf("list[0].Title = %q", list[0].Title)
	}

	var prompt map[string]string
	if code := do(t, http.MethodPost, base+"/compose/lyrics", "", &prompt); code != http.StatusOK || prompt["prompt"] == "" {
		t.Fatalf("compose status = %d, prompt = %q", code, prompt["prompt"])
	}

	if code := do(t, http.MethodDelete, base, "", nil); code != http.StatusNoContent {
		t.Fatalf("delete status = %d", code)
	}
	if code := do(t, http.MethodGet, base, "", nil); code != http.StatusNotFound {
		t.Fatalf("get deleted status = %d; want %d", code, http.StatusNotFound)
	}
}

func TestCreateUntitled(t *testing.T) {
	srv := newServer(t, nil)
	if code := do(t, http.MethodPost, srv.URL+"/api/projects", `{"genre":"Salsa"}`, nil); code != http.StatusBadRequest {
		t.Fatalf("create untitled status = %d; want %d", code, http.StatusBadRequest)
	}
}

func TestExportImport(t *testing.T) {
	srv := newServer(t, nil)
	p := create(t, srv)
	resp, err := http.Get(srv.URL + "/api/projects/" + p.ID + "/export")
	if err != nil {
		t.Fatal(err)
	}
	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatal(err)
	}
	var imported project.Project
	if code := do(t, http.MethodPost, srv.URL+"/api/projects/import", string(raw), &imported); code != http.StatusCreated {
		t.Fatalf("import status = %d", code)
	}
	if imported.ID == p.ID || imported.Title != p.Title {
		t.Fatalf("imported = %s %q", imported.ID, imported.Title)
	}
	if code := do(t, http.MethodPost, srv.URL+"/api/projects/import", `{"genre":"Salsa"}`, nil); code != http.StatusBadRequest {
		t.Fatalf("import invalid status = %d; want %d", code, http.StatusBadRequest)
	}
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{project.ErrNotFound, http.StatusNotFound},
		{project.ErrInvalidIndex, http.StatusBadRequest},
		{project.ErrValidation, http.StatusBadRequest},
		{studio.ErrBusy, http.StatusConflict},
		{project.ErrGeneration, http.StatusBadGateway},
		{errors.New("disk"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			if got := statusOf(tt.err); got != tt.want {
				t.Fatalf("statusOf(%v) = %d; want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestBadRequests(t *testing.T) {
	srv := newServer(t, nil)
	p := create(t, srv)
	base := srv.URL + "/api/projects/" + p.ID
	tests := []struct {
		method, path, body string
		want               int
	}{
		{http.MethodPut, "/structure/blocks/9/description", `{"description":"x"}`, http.StatusBadRequest},
		{http.MethodPost, "/structure/blocks/x/move", `{"direction":1}`, http.StatusBadRequest},
		{http.MethodPost, "/structure/template", `{"name":"nope"}`, http.StatusNotFound},
		{http.MethodPost, "/variations/0/apply", "", http.StatusBadRequest},
		{http.MethodPost, "/presets/genre", `{"value":"nope"}`, http.StatusNotFound},
		{http.MethodPatch, "", `not json`, http.StatusBadRequest},
		{http.MethodPatch, "", `{"bpm":-40}`, http.StatusBadRequest},
		{http.MethodPatch, "", `{"key":"H#"}`, http.StatusBadRequest},
		{http.MethodPatch, "", `{"title":""}`, http.StatusBadRequest},
		{http.MethodPost, "/cover/upload", "", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.method+tt.path, func(t *testing.T) {
			if code := do(t, tt.method, base+tt.path, tt.body, nil); code != tt.want {
				t.Fatalf("%s %s status = %d; want %d", tt.method, tt.path, code, tt.want)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	g := &fakeGenerator{text: "[Verse] oye"}
	srv := newServer(t, g)
	p := create(t, srv)
	base := srv.URL + "/api/projects/" + p.ID

	var res studio.Result
	if code := do(t, http.MethodPost, base+"/generate/lyrics", `{"lyrics":{"language":"English"}}`, &res); code != http.StatusOK {
		t.Fatalf("generate status = %d", code)
	}
	if res.Project == nil || res.Project.Lyrics != "[Verse] oye" {
		t.Fatalf("generate result = %+v", res)
	}
	g.text = ""
	if code := do(t, http.MethodPost, base+"/generate/advice", "", nil); code != http.StatusBadGateway {
		t.Fatalf("empty generation status = %d; want %d", code, http.StatusBadGateway)
	}
}

func TestLibrary(t *testing.T) {
	srv := newServer(t, nil)
	base := srv.URL + "/api/library"
	var names []string
	if code := do(t, http.MethodGet, base+"/artists/export", "", &names); code != http.StatusOK || len(names) != 1 {
		t.Fatalf("artists status = %d, names = %v", code, names)
	}
	if code := do(t, http.MethodPost, base+"/artists/export", `{"name":"DJ Loco"}`, &names); code != http.StatusOK || len(names) != 2 {
		t.Fatalf("add artist status = %d, names = %v", code, names)
	}
	if code := do(t, http.MethodPost, base+"/artists/export", `{"name":"DJ Loco"}`, nil); code != http.StatusBadRequest {
		t.Fatalf("duplicate artist status = %d", code)
	}
	if code := do(t, http.MethodGet, base+"/artists/radio", "", nil); code != http.StatusNotFound {
		t.Fatalf("unknown list status = %d", code)
	}
	var presets []library.InstrumentPreset
	if code := do(t, http.MethodPost, base+"/presets", `{"name":"Brass","instruments":["Trumpet"]}`, &presets); code != http.StatusOK || len(presets) != 1 {
		t.Fatalf("add preset status = %d, presets = %v", code, presets)
	}
	if code := do(t, http.MethodDelete, base+"/presets/Brass", "", &presets); code != http.StatusOK || len(presets) != 0 {
		t.Fatalf("remove preset status = %d, presets = %v", code, presets)
	}
}

func TestCover(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "covers")
	files, err := filestore.New(ctx, "local", dir, false)
	if err != nil {
		t.Fatal(err)
	}
	st, err := studio.New(ctx, &memBackend{})
	if err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(NewRouter(&Router{Studio: st, Library: library.New(memStore{}), Files: files}))
	t.Cleanup(srv.Close)
	p := create(t, srv)
	base := srv.URL + "/api/projects/" + p.ID

	if code := do(t, http.MethodGet, base+"/cover", "", nil); code != http.StatusNotFound {
		t.Fatalf("cover without image status = %d; want %d", code, http.StatusNotFound)
	}
	if code := do(t, http.MethodPatch, base, `{"coverImage":"data:image/png;base64,AAEC"}`, nil); code != http.StatusOK {
		t.Fatalf("patch cover status = %d", code)
	}
	if code := do(t, http.MethodGet, base+"/cover", "", nil); code != http.StatusNotFound {
		t.Fatalf("cover before upload status = %d; want %d", code, http.StatusNotFound)
	}
	var up map[string]string
	if code := do(t, http.MethodPost, base+"/cover/upload", "", &up); code != http.StatusOK || up["name"] != p.ID+".png" {
		t.Fatalf("upload status = %d, name = %q", code, up["name"])
	}

	resp, err := http.Get(base + "/cover")
	if err != nil {
		t.Fatal(err)
	}
	b, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK || !bytes.Equal(b, []byte{0, 1, 2}) {
		t.Fatalf("download status = %d, body = %v", resp.StatusCode, b)
	}

	if code := do(t, http.MethodDelete, base, "", nil); code != http.StatusNoContent {
		t.Fatalf("delete status = %d", code)
	}
	if _, err := os.Stat(filepath.Join(dir, p.ID+".png")); !os.IsNotExist(err) {
		t.Fatalf("stored cover after delete: err = %v; want not exist", err)
	}
}
