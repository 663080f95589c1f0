package errors

import (
	"context"
	"errors"
	"net/http"

	"github.com/matzehuels/pathcover/pkg/bipartite"
	"github.com/matzehuels/pathcover/pkg/cover"
	"github.com/matzehuels/pathcover/pkg/dag"
)

// FromCore classifies sentinel errors from the core packages into a coded
// *Error. Errors that already carry a code are returned unchanged; anything
// unrecognized becomes ErrCodeInternal. Returns nil for a nil error.
func FromCore(err error) error {
	if err == nil {
		return nil
	}
	var coded *Error
	if errors.As(err, &coded) {
		return err
	}

	switch {
	case errors.Is(err, bipartite.ErrInvalidVertex):
		return Wrap(ErrCodeInvalidVertex, err, "edge references a vertex outside the graph")
	case errors.Is(err, bipartite.ErrInvalidSize):
		return Wrap(ErrCodeInvalidInput, err, "invalid vertex count")
	case errors.Is(err, cover.ErrCyclicInput), errors.Is(err, dag.ErrGraphHasCycle):
		return Wrap(ErrCodeCyclicInput, err, "graph must be acyclic")
	case errors.Is(err, dag.ErrInvalidNodeID), errors.Is(err, dag.ErrDuplicateNodeID):
		return Wrap(ErrCodeInvalidNodeID, err, "invalid node")
	case errors.Is(err, dag.ErrUnknownSourceNode), errors.Is(err, dag.ErrUnknownTargetNode):
		return Wrap(ErrCodeInvalidInput, err, "edge references an unknown node")
	case errors.Is(err, context.DeadlineExceeded):
		return Wrap(ErrCodeTimeout, err, "operation timed out")
	}
	return Wrap(ErrCodeInternal, err, "internal error")
}

// HTTPStatus maps an error code to the HTTP status used by the API.
func HTTPStatus(code Code) int {
	switch code {
	case ErrCodeInvalidInput, ErrCodeInvalidVertex, ErrCodeInvalidFormat, ErrCodeInvalidNodeID:
		return http.StatusBadRequest
	case ErrCodeCyclicInput:
		return http.StatusUnprocessableEntity
	case ErrCodeNotFound, ErrCodeFileNotFound:
		return http.StatusNotFound
	case ErrCodeUnsupported:
		return http.StatusNotImplemented
	case ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case ErrCodeNetwork:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
