package document

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestClean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "tabs become spaces",
			input:  "Jane\tDoe",
			expect: "Jane Doe",
		},
		{
			name:   "control characters stripped",
			input:  "Jane\x01 Doe\x7f",
			expect: "Jane Doe",
		},
		{
			name:   "bullet glyphs stripped",
			input:  " Led the team",
			expect: "Led the team",
		},
		{
			name:   "whitespace around newlines collapsed",
			input:  "Experience   \n   Engineer at Acme",
			expect: "Experience\nEngineer at Acme",
		},
		{
			name:   "crlf normalized",
			input:  "Skills\r\nGo, SQL",
			expect: "Skills\nGo, SQL",
		},
		{
			name:   "runs of spaces condensed",
			input:  "Jane    Doe",
			expect: "Jane Doe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Clean(tt.input); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestExtractTextRejectsUnknownExtension(t *testing.T) {
	t.Parallel()

	_, err := ExtractText("resume.odt")
	if err == nil {
		t.Fatalf("expected error for unsupported extension")
	}
	var unsupported *UnsupportedFormatError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedFormatError, got %T", err)
	}
}

func TestExtractTextPlainFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "resume.txt")
	content := "Jane Doe\njane@example.com\nExperience\nEngineer at Acme"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	text, err := ExtractText(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != content {
		t.Fatalf("expected %q, got %q", content, text)
	}
}

func TestExtractTextRejectsTooShort(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "resume.txt")
	if err := os.WriteFile(path, []byte("hi"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := ExtractText(path); err == nil {
		t.Fatalf("expected error for near-empty document")
	}
}
