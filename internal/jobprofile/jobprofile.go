// Package jobprofile holds the role archetypes resumes are evaluated
// against. Profiles are keyed by candidate level and role name in a
// single JSON document.
package jobprofile

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/mitchellh/mapstructure"
)

// JobProfile describes the requirements of one role archetype.
type JobProfile struct {
	Title               string   `json:"title"`
	MinExperience       float64  `json:"min_experience"`
	RequiredSkills      []string `json:"required_skills"`
	PreferredSkills     []string `json:"preferred_skills"`
	Keywords            []string `json:"keywords"`
	JobSpecificKeywords []string `json:"job_specific_keywords"`
	EduKeywords         []string `json:"edu_keywords"`
	RelevantCerts       []string `json:"relevant_certs"`
}

// Normalize replaces nil skill lists with empty ones and clamps a
// negative experience floor to zero.
func (p *JobProfile) Normalize() {
	if p.MinExperience < 0 {
		p.MinExperience = 0
	}
	for _, list := range []*[]string{
		&p.RequiredSkills, &p.PreferredSkills, &p.Keywords,
		&p.JobSpecificKeywords, &p.EduKeywords, &p.RelevantCerts,
	} {
		if *list == nil {
			*list = []string{}
		}
	}
}

// Store is the loaded set of profiles, grouped level -> role -> profile.
type Store struct {
	profiles map[string]map[string]*JobProfile
}

// LoadStore reads a profile document from disk.
func LoadStore(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job profiles: %w", err)
	}

	var items map[string]map[string]any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("parsing job profiles: %w", err)
	}

	profiles := make(map[string]map[string]*JobProfile)
	for level, roles := range items {
		profiles[level] = make(map[string]*JobProfile)
		for role, item := range roles {
			profile := &JobProfile{}
			cfg := &mapstructure.DecoderConfig{
				Metadata: nil,
				Result:   profile,
				TagName:  "json",
			}
			decoder, _ := mapstructure.NewDecoder(cfg)
			if err := decoder.Decode(item); err != nil {
				return nil, fmt.Errorf("profile %s/%s: %w", level, role, err)
			}
			profile.Normalize()
			profiles[level][role] = profile
		}
	}

	return &Store{profiles: profiles}, nil
}

// Levels returns the candidate levels in sorted order.
func (s *Store) Levels() []string {
	levels := make([]string, 0, len(s.profiles))
	for level := range s.profiles {
		levels = append(levels, level)
	}
	sort.Strings(levels)
	return levels
}

// Roles returns the role names under a level in sorted order.
func (s *Store) Roles(level string) []string {
	roles := make([]string, 0, len(s.profiles[level]))
	for role := range s.profiles[level] {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}

// Get returns the profile for a level and role, or an error naming the
// missing key.
func (s *Store) Get(level, role string) (*JobProfile, error) {
	roles, ok := s.profiles[level]
	if !ok {
		return nil, fmt.Errorf("unknown candidate level %q", level)
	}
	profile, ok := roles[role]
	if !ok {
		return nil, fmt.Errorf("unknown role %q for level %q", role, level)
	}
	return profile, nil
}
