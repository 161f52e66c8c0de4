package resume

import (
	"reflect"
	"testing"
)

func TestExtractSkillsWholeWord(t *testing.T) {
	t.Parallel()

	vocabulary := []string{"Java", "JavaScript", "Go", "PostgreSQL", "C++"}

	tests := []struct {
		name   string
		text   string
		expect []string
	}{
		{
			name:   "java does not match inside javascript",
			text:   "JavaScript, TypeScript",
			expect: []string{"JavaScript"},
		},
		{
			name:   "case insensitive",
			text:   "golang? no: go, postgresql",
			expect: []string{"Go", "PostgreSQL"},
		},
		{
			name:   "symbol-suffixed names",
			text:   "C++ and Java",
			expect: []string{"C++", "Java"},
		},
		{
			name:   "empty text",
			text:   "",
			expect: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ExtractSkills(tt.text, vocabulary)
			if !reflect.DeepEqual(got, tt.expect) {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestExtractSkillsSortedAndDeduplicated(t *testing.T) {
	t.Parallel()

	got := ExtractSkills("Go, Docker, Go", []string{"Go", "go", "Docker"})
	if !reflect.DeepEqual(got, []string{"Docker", "Go"}) {
		t.Fatalf("expected sorted deduplicated hits, got %v", got)
	}
}
