package server

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/pathcover/pkg/buildinfo"
	"github.com/matzehuels/pathcover/pkg/errors"
	pio "github.com/matzehuels/pathcover/pkg/io"
	"github.com/matzehuels/pathcover/pkg/pipeline"
	"github.com/matzehuels/pathcover/pkg/render"
	"github.com/matzehuels/pathcover/pkg/store"
)

// coverRequest is the body of POST /v1/covers. Exactly one of Graph (a JSON
// graph) and EdgeList (edge-list text) must be set.
type coverRequest struct {
	Graph       json.RawMessage `json:"graph,omitempty"`
	EdgeList    string          `json:"edgelist,omitempty"`
	Closure     bool            `json:"closure,omitempty"`
	BreakCycles bool            `json:"break_cycles,omitempty"`
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"build":  buildinfo.Get(),
	})
}

func (s *Server) handleCreateCover(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)

	var req coverRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "request body exceeds %d bytes", tooLarge.Limit))
			return
		}
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request"))
		return
	}

	opts := pipeline.Options{
		Closure:     req.Closure,
		BreakCycles: req.BreakCycles,
		Formats:     []string{string(render.FormatJSON)},
		Logger:      s.logger,
	}
	var input *bytes.Reader
	switch {
	case len(req.Graph) > 0 && req.EdgeList != "":
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "set either graph or edgelist, not both"))
		return
	case len(req.Graph) > 0:
		opts.InputFormat = string(pio.FormatJSON)
		input = bytes.NewReader(req.Graph)
	case strings.TrimSpace(req.EdgeList) != "":
		opts.InputFormat = string(pio.FormatEdgeList)
		input = bytes.NewReader([]byte(req.EdgeList))
	default:
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "request needs a graph or an edgelist"))
		return
	}

	result, err := s.runner.Execute(r.Context(), input, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	rec := store.NewRecord(render.NewDocument(result.Cover, result.Graph.EdgeCount()))
	rec.GraphHash = result.GraphHash
	rec.Closure = req.Closure
	rec.BreakCycles = req.BreakCycles
	rec.CacheHit = result.CacheInfo.CoverHit
	if err := s.store.Put(r.Context(), rec); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "store result"))
		return
	}

	s.logger.Info("cover computed", "id", rec.ID, "nodes", rec.Cover.Vertices,
		"paths", rec.Cover.PathCount, "cached", rec.CacheHit)
	w.Header().Set("Location", "/v1/covers/"+rec.ID)
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleGetCover(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !store.ValidID(id) {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "malformed id %q", id))
		return
	}
	rec, err := s.store.Get(r.Context(), id)
	if stderrors.Is(err, store.ErrNotFound) {
		s.writeError(w, errors.Wrap(errors.ErrCodeNotFound, err, "cover %s", id))
		return
	}
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "load cover"))
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// writeError classifies err and writes the error body. Internal errors are
// logged and their detail withheld from the client.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	err = errors.FromCore(err)
	code := errors.GetCode(err)
	status := errors.HTTPStatus(code)
	msg := errors.UserMessage(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "code", code, "error", err)
	}
	if code == errors.ErrCodeInternal {
		msg = "internal error"
	} else if cause := stderrors.Unwrap(err); cause != nil && code != errors.ErrCodeNotFound {
		msg += ": " + cause.Error()
	}
	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: msg}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
