package errors

import (
	"strings"
	"testing"
)

func TestValidateNodeID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "build", false},
		{"valid with dash", "unit-test", false},
		{"valid unicode", "Straße", false},
		{"valid numeric", "42", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", MaxNodeIDLength+1), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
		{"carriage return", "foo\rbar", true},
		{"leading space", " foo", true},
		{"trailing tab", "foo\t", true},
		{"space inside", "deploy prod", true},
		{"no-break space inside", "deploy\u00a0prod", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNodeID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNodeID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidNodeID) {
				t.Errorf("ValidateNodeID(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidNodeID)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	allowed := []string{"text", "json", "dot", "svg"}
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"text", false},
		{"svg", false},
		{"", true},
		{"png", true},
		{"TEXT", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateFormat(tt.input, allowed)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidFormat) {
				t.Errorf("ValidateFormat(%q) code = %v", tt.input, GetCode(err))
			}
		})
	}
}

func TestValidateVertexCount(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		limit   int
		wantErr bool
	}{
		{"zero", 0, 10, false},
		{"at limit", 10, 10, false},
		{"no limit", 1 << 30, 0, false},
		{"negative", -1, 10, true},
		{"over limit", 11, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVertexCount(tt.n, tt.limit)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVertexCount(%d, %d) error = %v, wantErr %v", tt.n, tt.limit, err, tt.wantErr)
			}
		})
	}
}
