package scoring

import (
	"context"
	"regexp"
	"strings"

	"github.com/resufit/resufit/internal/lexicon"
)

const (
	maxEvidence       = 15
	maxOnlinePresence = 3
	maxEduCertPoints  = 5
	maxProjectPoints  = 7
	pointsPerProject  = 3
)

var (
	linkedinProfilePattern = regexp.MustCompile(`linkedin\.com/in/[\w-]+`)
	githubProfilePattern   = regexp.MustCompile(`github\.com/[\w-]+`)
	urlPattern             = regexp.MustCompile(`https?://`)
)

// ProjectAnalysis captures the quality signals found in one project
// entry. The snippet keeps the breakdown readable for long entries.
type ProjectAnalysis struct {
	Snippet        string `json:"description"`
	HasLink        bool   `json:"has_link"`
	HasTechStack   bool   `json:"has_tech_stack"`
	HasOutcomeVerb bool   `json:"has_outcome_verb"`
	Awarded        bool   `json:"awarded"`
}

// EvidenceBreakdown is the breakdown of the supporting-evidence section.
type EvidenceBreakdown struct {
	LinkedIn     bool              `json:"linkedin"`
	GitHub       bool              `json:"github"`
	ActiveGitHub bool              `json:"active_github"`
	EduMatched   []string          `json:"edu_keywords"`
	CertsMatched []string          `json:"relevant_certs"`
	Projects     []ProjectAnalysis `json:"projects"`
}

// evidenceScorer looks for signals outside the prose: public profiles,
// matching education and certifications, and well-described projects.
type evidenceScorer struct{}

func (s *evidenceScorer) Name() string { return SectionEvidence }
func (s *evidenceScorer) Max() int     { return maxEvidence }

func (s *evidenceScorer) Score(_ context.Context, in *Input) (Section, error) {
	evidence := EvidenceBreakdown{
		EduMatched:   make([]string, 0),
		CertsMatched: make([]string, 0),
		Projects:     make([]ProjectAnalysis, 0, len(in.Resume.Projects)),
	}

	online := 0
	if linkedinProfilePattern.MatchString(in.LowerText) {
		online++
		evidence.LinkedIn = true
	}
	if githubProfilePattern.MatchString(in.LowerText) {
		online++
		evidence.GitHub = true
	}
	// More than one mention of the hosting domain suggests per-project
	// links rather than a lone profile URL.
	if strings.Count(in.LowerText, "github.com") > 1 {
		online++
		evidence.ActiveGitHub = true
	}
	points := clamp(online, maxOnlinePresence)

	eduCert := 0
	for _, keyword := range in.Profile.EduKeywords {
		if strings.Contains(in.EduText, strings.ToLower(keyword)) {
			eduCert++
			evidence.EduMatched = append(evidence.EduMatched, keyword)
		}
	}
	for _, cert := range in.Profile.RelevantCerts {
		if strings.Contains(in.CertText, strings.ToLower(cert)) {
			eduCert++
			evidence.CertsMatched = append(evidence.CertsMatched, cert)
		}
	}
	points += clamp(eduCert, maxEduCertPoints)

	projects := 0
	for _, project := range in.Resume.Projects {
		analysis := analyzeProject(project)
		if analysis.Awarded {
			projects += pointsPerProject
		}
		evidence.Projects = append(evidence.Projects, analysis)
	}
	points += clamp(projects, maxProjectPoints)

	return Section{Points: points, Evidence: evidence}, nil
}

// analyzeProject checks one project entry for three quality signals and
// awards it when at least two are present.
func analyzeProject(project string) ProjectAnalysis {
	lowered := strings.ToLower(project)
	analysis := ProjectAnalysis{Snippet: snippet(project, 50)}

	if urlPattern.MatchString(lowered) || strings.Contains(lowered, "github") ||
		strings.Contains(lowered, "live app") {
		analysis.HasLink = true
	}
	if strings.Contains(lowered, "technologies") || strings.Contains(lowered, "built with") ||
		strings.Contains(lowered, "skills applied") {
		analysis.HasTechStack = true
	}
	if lexicon.ContainsOutcomeVerb(lowered) {
		analysis.HasOutcomeVerb = true
	}

	signals := 0
	for _, present := range []bool{analysis.HasLink, analysis.HasTechStack, analysis.HasOutcomeVerb} {
		if present {
			signals++
		}
	}
	analysis.Awarded = signals >= 2

	return analysis
}

func snippet(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
