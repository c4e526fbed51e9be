package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func do(t *testing.T, s *Server, method, target string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestIndex(t *testing.T) {
	w := do(t, New(Config{}), http.MethodGet, "/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `<img src="/svg/`) {
		t.Errorf("index missing logo image:\n%s", w.Body.String())
	}
}

func TestThemes(t *testing.T) {
	w := do(t, New(Config{}), http.MethodGet, "/themes", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var got struct {
		Themes  []string `json:"themes"`
		Default string   `json:"default"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got.Themes) != 7 || got.Default != "mesos" {
		t.Errorf("themes = %+v", got)
	}
}

func TestGenerate(t *testing.T) {
	s := New(Config{})
	tests := []struct {
		name     string
		body     string
		wantSeed uint64 // zero means any
	}{
		{"numeric seed", `{"seed": 42}`, 42},
		{"string seed", `{"seed": "7", "theme": "Blues", "shapes": 4}`, 7},
		{"uuid seed", `{"seed": "00000000-0000-0009-0000-000000000000"}`, 9},
		{"empty seed", `{"seed": ""}`, 0},
		{"no seed", `{}`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, http.MethodPost, "/generate", tt.body)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d: %s", w.Code, w.Body.String())
			}
			var resp generateResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}
			if tt.wantSeed != 0 && resp.Seed != tt.wantSeed {
				t.Errorf("seed = %d, want %d", resp.Seed, tt.wantSeed)
			}
			if !strings.HasPrefix(resp.SVG, "/svg/") || !strings.HasPrefix(resp.PNG, "/png/") {
				t.Errorf("links = %q, %q", resp.SVG, resp.PNG)
			}
		})
	}

	w := do(t, s, http.MethodPost, "/generate", `{"seed": "7", "theme": "Blues", "shapes": 4}`)
	var resp generateResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.SVG != "/svg/7?shapes=4&theme=blues" {
		t.Errorf("svg link = %q", resp.SVG)
	}
}

func TestGenerateBadJSON(t *testing.T) {
	w := do(t, New(Config{}), http.MethodPost, "/generate", `{"seed":`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", w.Code)
	}
}

func TestSVG(t *testing.T) {
	s := New(Config{})
	w := do(t, s, http.MethodGet, "/svg/12345?theme=google&shapes=4&grid_size=4", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.HasPrefix(w.Body.String(), "<svg") {
		t.Errorf("body does not start with <svg: %.40s", w.Body.String())
	}
	if w.Header().Get("X-Cache") != "MISS" {
		t.Errorf("first request X-Cache = %q, want MISS", w.Header().Get("X-Cache"))
	}
}

func TestPNG(t *testing.T) {
	w := do(t, New(Config{}), http.MethodGet, "/png/5?width=64&height=64&background=white", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("body is not a PNG")
	}
}

func TestIdenticalParamsIdenticalBodies(t *testing.T) {
	s := New(Config{})
	a := do(t, s, http.MethodGet, "/svg/99?shapes=5&grid_size=6", "")
	b := do(t, s, http.MethodGet, "/svg/99?grid_size=6&shapes=5", "")
	if !bytes.Equal(a.Body.Bytes(), b.Body.Bytes()) {
		t.Error("identical parameters must return identical bodies")
	}
	if b.Header().Get("X-Cache") != "HIT" {
		t.Errorf("second request X-Cache = %q, want HIT", b.Header().Get("X-Cache"))
	}

	// A fresh server regenerates the same bytes.
	c := do(t, New(Config{}), http.MethodGet, "/svg/99?shapes=5&grid_size=6", "")
	if !bytes.Equal(a.Body.Bytes(), c.Body.Bytes()) {
		t.Error("output must not depend on server state")
	}
}

func TestClampedParamsShareCacheEntry(t *testing.T) {
	s := New(Config{})
	do(t, s, http.MethodGet, "/svg/3?grid_size=8", "")
	w := do(t, s, http.MethodGet, "/svg/3?grid_size=50", "")
	if w.Header().Get("X-Cache") != "HIT" {
		t.Error("densities that clamp to 8 should share a cache entry")
	}
}

func TestBadRequests(t *testing.T) {
	s := New(Config{MaxDimension: 1024})
	for _, target := range []string{
		"/svg/abc",
		"/png/not-a-seed",
		"/svg/-1",
		"/svg/1?shapes=many",
		"/svg/1?width=0",
		"/png/1?height=5000",
		"/png/1?background=nonsense",
	} {
		t.Run(target, func(t *testing.T) {
			if w := do(t, s, http.MethodGet, target, ""); w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestUUIDSeedPath(t *testing.T) {
	s := New(Config{})
	a := do(t, s, http.MethodGet, "/svg/00000000-0000-0009-0000-000000000000", "")
	b := do(t, s, http.MethodGet, "/svg/9", "")
	if a.Code != http.StatusOK || !bytes.Equal(a.Body.Bytes(), b.Body.Bytes()) {
		t.Error("a UUID path should render the seed it maps to")
	}
}

func TestStats(t *testing.T) {
	s := New(Config{})
	do(t, s, http.MethodGet, "/svg/1", "")
	do(t, s, http.MethodGet, "/svg/1", "")
	w := do(t, s, http.MethodGet, "/stats", "")
	var st struct {
		Len  int
		Hits uint64
	}
	if err := json.Unmarshal(w.Body.Bytes(), &st); err != nil {
		t.Fatal(err)
	}
	if st.Len != 1 || st.Hits != 1 {
		t.Errorf("stats = %+v", st)
	}
}
