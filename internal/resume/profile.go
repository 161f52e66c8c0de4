// Package resume turns cleaned resume text into a structured candidate
// profile: ordered sections, contact entities, job records and matched
// skills. Extraction is total: ambiguous input degrades to absent fields,
// never to an error.
package resume

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/resufit/resufit/internal/ai"
)

// Profile is the structured candidate record built from one resume. It is
// assembled once and treated as immutable afterwards; scorers only read it.
type Profile struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Links []Link `json:"links"`

	ProfessionalSummary []string    `json:"professional_summary"`
	WorkExperience      []JobRecord `json:"work_experience"`
	Education           []string    `json:"education"`
	Skills              []string    `json:"skills"`
	Projects            []string    `json:"projects"`
	Achievements        []string    `json:"achievements"`
	Certifications      []string    `json:"certifications"`

	// RawText is the cleaned source text; whole-document heuristics
	// (recency, word count, link evidence) scan it directly.
	RawText string `json:"-"`
}

// Parse segments the text, extracts entities from the header region,
// structures the experience section and matches the skill vocabulary,
// assembling everything into one profile. The recognizer is optional.
func Parse(ctx context.Context, text string, vocabulary []string, recognizer ai.PersonRecognizer) *Profile {
	sections := Segment(text)

	entities := ExtractEntities(ctx, sections.HeaderRegion(), recognizer)

	profile := &Profile{
		Name:  entities.Name,
		Email: entities.Email,
		Phone: entities.Phone,
		Links: entities.Links,

		ProfessionalSummary: orEmpty(sections.Get(SectionSummary)),
		WorkExperience:      StructureExperience(sections.Get(SectionExperience)),
		Education:           orEmpty(sections.Get(SectionEducation)),
		Skills:              ExtractSkills(strings.Join(sections.Get(SectionSkills), "\n"), vocabulary),
		Projects:            orEmpty(sections.Get(SectionProjects)),
		Achievements:        orEmpty(sections.Get(SectionAchievements)),
		Certifications:      orEmpty(sections.Get(SectionCertifications)),

		RawText: text,
	}

	return profile
}

func orEmpty(lines []string) []string {
	if lines == nil {
		return []string{}
	}
	return lines
}

// Lines returns every non-empty line of the source document.
func (p *Profile) Lines() []string {
	lines := make([]string, 0)
	for _, line := range strings.Split(p.RawText, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// ExperienceLines flattens the structured job records back into lines.
func (p *Profile) ExperienceLines() []string {
	lines := make([]string, 0)
	for _, record := range p.WorkExperience {
		lines = append(lines, record.Lines()...)
	}
	return lines
}

// DumpToTmpFile writes the profile as indented JSON to a temp file and
// returns its name.
func (p *Profile) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "profile_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return "", err
	}
	return file.Name(), nil
}
