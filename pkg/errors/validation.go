package errors

import (
	"slices"
	"strings"
	"unicode"
)

// MaxNodeIDLength bounds node identifiers read from JSON and TOML input.
const MaxNodeIDLength = 256

// ValidateNodeID validates a node identifier read from untrusted input.
//
// The rules are intentionally conservative:
//   - No empty IDs
//   - No control characters (IDs are printed one path per line)
//   - No whitespace (text output separates IDs with spaces)
//   - Maximum length of MaxNodeIDLength bytes
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidNodeID, "node ID cannot be empty")
	}

	if len(id) > MaxNodeIDLength {
		return New(ErrCodeInvalidNodeID, "node ID too long (max %d characters)", MaxNodeIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidNodeID, "node ID contains invalid control characters")
		}
	}

	if strings.IndexFunc(id, unicode.IsSpace) >= 0 {
		return New(ErrCodeInvalidNodeID, "node ID %q contains whitespace", id)
	}

	return nil
}

// ValidateFormat checks that format is one of the allowed names.
func ValidateFormat(format string, allowed []string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !slices.Contains(allowed, format) {
		return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(allowed, ", "))
	}
	return nil
}

// ValidateVertexCount rejects negative or oversized vertex counts announced
// by edge-list headers.
func ValidateVertexCount(n, limit int) error {
	if n < 0 {
		return New(ErrCodeInvalidInput, "vertex count %d must not be negative", n)
	}
	if limit > 0 && n > limit {
		return New(ErrCodeInvalidInput, "vertex count %d exceeds limit %d", n, limit)
	}
	return nil
}
