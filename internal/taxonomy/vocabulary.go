// Package taxonomy loads the skill vocabulary used for whole-word skill
// matching. The source file is a hierarchical JSON document whose leaves
// are skill names; the hierarchy is flattened away on load.
package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// LoadVocabulary reads a skill taxonomy file and returns its leaf skills
// as a deduplicated, sorted list. Categories may hold either a flat list
// of skills or a further map of sub-categories to lists.
func LoadVocabulary(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading skill taxonomy: %w", err)
	}

	var categories map[string]json.RawMessage
	if err := json.Unmarshal(raw, &categories); err != nil {
		return nil, fmt.Errorf("parsing skill taxonomy: %w", err)
	}

	seen := make(map[string]struct{})
	for name, category := range categories {
		var flat []string
		if err := json.Unmarshal(category, &flat); err == nil {
			for _, skill := range flat {
				seen[skill] = struct{}{}
			}
			continue
		}

		var nested map[string][]string
		if err := json.Unmarshal(category, &nested); err != nil {
			return nil, fmt.Errorf("category %q: expected a skill list or sub-category map", name)
		}
		for _, skills := range nested {
			for _, skill := range skills {
				seen[skill] = struct{}{}
			}
		}
	}

	vocabulary := make([]string, 0, len(seen))
	for skill := range seen {
		vocabulary = append(vocabulary, skill)
	}
	sort.Strings(vocabulary)

	return vocabulary, nil
}
