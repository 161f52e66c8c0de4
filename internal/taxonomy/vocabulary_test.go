package taxonomy

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTaxonomy(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "skills.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing taxonomy fixture: %v", err)
	}
	return path
}

func TestLoadVocabularyFlattens(t *testing.T) {
	t.Parallel()

	path := writeTaxonomy(t, `{
		"languages": ["Go", "Python"],
		"infrastructure": {
			"containers": ["Docker", "Kubernetes"],
			"databases": ["PostgreSQL", "Python"]
		}
	}`)

	vocabulary, err := LoadVocabulary(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Docker", "Go", "Kubernetes", "PostgreSQL", "Python"}
	if !reflect.DeepEqual(vocabulary, want) {
		t.Fatalf("got %v, want %v", vocabulary, want)
	}
}

func TestLoadVocabularyRejectsMalformedCategory(t *testing.T) {
	t.Parallel()

	path := writeTaxonomy(t, `{"languages": 42}`)

	if _, err := LoadVocabulary(path); err == nil {
		t.Fatal("expected an error for a scalar category")
	}
}

func TestLoadVocabularyMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := LoadVocabulary(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
