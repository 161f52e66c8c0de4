package resume

import "strings"

// SectionKey identifies a canonical resume section.
type SectionKey string

const (
	SectionHeader         SectionKey = "header"
	SectionSummary        SectionKey = "professional_summary"
	SectionExperience     SectionKey = "work_experience"
	SectionEducation      SectionKey = "education"
	SectionSkills         SectionKey = "skills"
	SectionProjects       SectionKey = "projects"
	SectionAchievements   SectionKey = "achievements"
	SectionCertifications SectionKey = "certifications"
)

// headerKeywords is the fixed priority list for section detection. Keywords
// are tested in order and the first hit wins, so multi-word variants sit
// before their shorter forms.
var headerKeywords = []struct {
	keyword string
	key     SectionKey
}{
	{"professional summary", SectionSummary},
	{"summary", SectionSummary},
	{"objective", SectionSummary},
	{"work experience", SectionExperience},
	{"employment history", SectionExperience},
	{"experience", SectionExperience},
	{"education", SectionEducation},
	{"technical skills", SectionSkills},
	{"skills", SectionSkills},
	{"projects", SectionProjects},
	{"achievements", SectionAchievements},
	{"awards", SectionAchievements},
	{"licenses & certifications", SectionCertifications},
	{"certifications", SectionCertifications},
}

// maxHeaderLineLength guards against header words appearing inside prose.
const maxHeaderLineLength = 30

// Sections is an ordered mapping from section key to the lines belonging to
// it. Lines are stored trimmed; the header line itself is never content.
type Sections struct {
	order map[SectionKey]int
	keys  []SectionKey
	lines map[SectionKey][]string
}

// Segment splits cleaned resume text into sections. Scanning starts in the
// default header bucket; a short line containing a known section keyword
// switches the cursor. Text with no recognizable headers yields a single
// header bucket containing everything.
func Segment(text string) *Sections {
	s := &Sections{
		order: make(map[SectionKey]int),
		lines: make(map[SectionKey][]string),
	}

	current := SectionHeader
	s.touch(current)

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)

		if key, ok := classifyHeader(lower); ok {
			current = key
			s.touch(current)
			continue
		}

		if trimmed == "" {
			continue
		}
		s.lines[current] = append(s.lines[current], trimmed)
	}

	return s
}

func classifyHeader(lower string) (SectionKey, bool) {
	if len(lower) >= maxHeaderLineLength {
		return "", false
	}
	for _, h := range headerKeywords {
		if strings.Contains(lower, h.keyword) {
			return h.key, true
		}
	}
	return "", false
}

func (s *Sections) touch(key SectionKey) {
	if _, seen := s.order[key]; !seen {
		s.order[key] = len(s.keys)
		s.keys = append(s.keys, key)
	}
}

// Get returns the lines of the named section, or nil when absent.
func (s *Sections) Get(key SectionKey) []string {
	return s.lines[key]
}

// Keys returns the section keys in first-seen order.
func (s *Sections) Keys() []SectionKey {
	return s.keys
}

// Has reports whether the section was seen, even if it collected no lines.
func (s *Sections) Has(key SectionKey) bool {
	_, ok := s.order[key]
	return ok
}

// HeaderRegion returns the lines preceding the first recognized section.
func (s *Sections) HeaderRegion() []string {
	return s.lines[SectionHeader]
}
