package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestImageSize(t *testing.T) {
	tests := []struct {
		ratio string
		want  string
	}{
		{"1:1", "1024x1024"},
		{"16:9", "1792x1024"},
		{"3:4", "1024x1792"},
		{"9:16", "1024x1792"},
		{"", "1024x1024"},
		{"wide", "1024x1024"},
	}
	for _, tt := range tests {
		t.Run(tt.ratio, func(t *testing.T) {
			if got := imageSize(tt.ratio); got != tt.want {
				t.Fatalf("imageSize(%q) = %q; want %q", tt.ratio, got, tt.want)
			}
		})
	}
}

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *[]map[string]any) {
	t.Helper()
	var reqs []map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		body["path"] = r.URL.Path
		reqs = append(reqs, body)
		w.Header().Set("Content-Type", "application/json")
		h(w, r)
	}))
	t.Cleanup(srv.Close)
	return New(&Config{Token: "test", BaseURL: srv.URL + "/v1"}), &reqs
}

func TestText(t *testing.T) {
	c, reqs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"index":0,"message":{"role":"assistant","content":"[Verse] hola"}}]}`))
	})
	got, err := c.Text(context.Background(), "write")
	if err != nil {
		t.Fatal(err)
	}
	if got != "[Verse] hola" {
		t.Fatalf("Text() = %q", got)
	}
	if len(*reqs) != 1 || (*reqs)[0]["path"] != "/v1/chat/completions" || (*reqs)[0]["model"] != DefaultModel {
		t.Fatalf("requests = %v", *reqs)
	}
}

func TestTextNoChoices(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})
	if _, err := c.Text(context.Background(), "write"); err == nil {
		t.Fatal("Text() err = nil; want error")
	}
}

func TestImage(t *testing.T) {
	c, reqs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"created":1,"data":[{"b64_json":"AAAA"}]}`))
	})
	got, err := c.Image(context.Background(), "cover", "3:4", "2K")
	if err != nil {
		t.Fatal(err)
	}
	if got != "data:image/png;base64,AAAA" {
		t.Fatalf("Image() = %q", got)
	}
	req := (*reqs)[0]
	if req["path"] != "/v1/images/generations" || req["size"] != "1024x1792" || req["quality"] != "hd" || req["response_format"] != "b64_json" {
		t.Fatalf("request = %v", req)
	}
}
