package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pathcover/pkg/config"
	"github.com/matzehuels/pathcover/pkg/errors"
	"github.com/matzehuels/pathcover/pkg/pipeline"
	"github.com/matzehuels/pathcover/pkg/store"
)

func newTestServer(t *testing.T) (*httptest.Server, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	s := New(pipeline.NewRunner(nil, nil, logger), st, logger, config.Default().Server)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts, st
}

func post(t *testing.T, ts *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(ts.URL+"/v1/covers", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestHealth(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decode[map[string]any](t, resp)
	if body["status"] != "ok" {
		t.Errorf("status field = %v, want ok", body["status"])
	}
}

func TestCreateAndGetCover(t *testing.T) {
	ts, st := newTestServer(t)

	resp := post(t, ts, `{"graph": {"edges": [{"from": "a", "to": "b"}, {"from": "b", "to": "c"}, {"from": "x", "to": "c"}]}}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	rec := decode[store.Record](t, resp)
	if rec.Cover.PathCount != 2 {
		t.Errorf("PathCount = %d, want 2", rec.Cover.PathCount)
	}
	if got := strings.Join(rec.Cover.Paths[0], " "); got != "a b c" {
		t.Errorf("first path = %q, want \"a b c\"", got)
	}
	if loc := resp.Header.Get("Location"); loc != "/v1/covers/"+rec.ID {
		t.Errorf("Location = %q", loc)
	}
	if st.Len() != 1 {
		t.Errorf("store has %d records, want 1", st.Len())
	}

	get, err := http.Get(ts.URL + "/v1/covers/" + rec.ID)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer get.Body.Close()
	if get.StatusCode != http.StatusOK {
		t.Fatalf("GET status = %d, want 200", get.StatusCode)
	}
	if got := decode[store.Record](t, get); got.ID != rec.ID || got.Cover.PathCount != 2 {
		t.Errorf("GET record = %+v", got)
	}
}

func TestCreateCoverEdgeList(t *testing.T) {
	ts, _ := newTestServer(t)
	resp := post(t, ts, `{"edgelist": "4 4\n1 2\n1 3\n2 4\n3 4\n"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	rec := decode[store.Record](t, resp)
	if rec.Cover.PathCount != 2 || rec.Cover.MatchingSize != 2 {
		t.Errorf("Cover = %+v, want 2 paths and matching size 2", rec.Cover)
	}
}

func TestCreateCoverErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		code   errors.Code
	}{
		{"malformed json", `{"graph": `, http.StatusBadRequest, errors.ErrCodeInvalidFormat},
		{"unknown field", `{"graf": {}}`, http.StatusBadRequest, errors.ErrCodeInvalidFormat},
		{"empty", `{}`, http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"both inputs", `{"graph": {"edges": []}, "edgelist": "1 0"}`, http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"vertex out of range", `{"edgelist": "2 1\n1 3\n"}`, http.StatusBadRequest, errors.ErrCodeInvalidVertex},
		{"cycle", `{"edgelist": "2 2\n1 2\n2 1\n"}`, http.StatusUnprocessableEntity, errors.ErrCodeCyclicInput},
		{"closure over large graph", `{"edgelist": "100000 0", "closure": true}`, http.StatusBadRequest, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, st := newTestServer(t)
			resp := post(t, ts, tt.body)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			body := decode[errorBody](t, resp)
			if body.Error.Code != tt.code {
				t.Errorf("code = %s, want %s (message %q)", body.Error.Code, tt.code, body.Error.Message)
			}
			if st.Len() != 0 {
				t.Errorf("failed request stored %d records", st.Len())
			}
		})
	}
}

func TestBreakCyclesOverAPI(t *testing.T) {
	ts, _ := newTestServer(t)
	resp := post(t, ts, `{"edgelist": "2 2\n1 2\n2 1\n", "break_cycles": true}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	if rec := decode[store.Record](t, resp); rec.Cover.PathCount != 1 || !rec.BreakCycles {
		t.Errorf("record = %+v, want 1 path with break_cycles set", rec)
	}
}

func TestGetCoverErrors(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"malformed", "not-a-uuid", http.StatusBadRequest},
		{"missing", "6f1c1a52-3d1e-4c55-9d4e-2b7d4f0f9a11", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, _ := newTestServer(t)
			resp, err := http.Get(ts.URL + "/v1/covers/" + tt.id)
			if err != nil {
				t.Fatalf("GET: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
		})
	}
}

func TestBodyLimit(t *testing.T) {
	st := store.NewMemoryStore()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	cfg := config.Default().Server
	cfg.MaxBodyBytes = 16
	ts := httptest.NewServer(New(pipeline.NewRunner(nil, nil, logger), st, logger, cfg).Handler())
	defer ts.Close()

	resp := post(t, ts, `{"edgelist": "4 3\n1 2\n2 3\n3 4\n"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
