package errors

import (
	"testing"
)

func TestValidatePackageName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "serde", false},
		{"valid with dash", "cellular-raza", false},
		{"valid with underscore", "serde_json", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 300)), true},
		{"path traversal ..", "foo/../bar", true},
		{"path traversal //", "foo//bar", true},
		{"null byte", "foo\x00bar", true},
		{"backslash", "foo\\bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePackageName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePackageName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateCrateName(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"serde", false},
		{"cellular-raza", false},
		{"tokio_util", false},
		{"Inflector", false},

		{"", true},
		{"1password", true},
		{"-leading", true},
		{"with space", true},
		{"@scope/pkg", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateCrateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCrateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && GetCode(err) != ErrCodeInvalidPackage {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidPackage)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"cff", "CITATION.cff", false},
		{"bib", "citation.bib", false},
		{"nested", "docs/CITATION.cff", false},

		{"empty", "", true},
		{"absolute", "/etc/passwd", true},
		{"traversal", "../CITATION.cff", true},
		{"backslash", "docs\\CITATION.cff", true},
		{"control", "CITATION\x00.cff", true},
		{"too long", string(make([]byte, 600)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateHeaderValue(t *testing.T) {
	if err := ValidateHeaderValue("User-Agent", "crate2bib-cli-user-agent"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	err := ValidateHeaderValue("User-Agent", "bad\r\nvalue")
	if err == nil {
		t.Fatal("expected error for header with CRLF")
	}
	if !Is(err, ErrCodeInvalidConfig) {
		t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidConfig)
	}
}
