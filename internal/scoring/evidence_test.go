package scoring

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/resufit/resufit/internal/jobprofile"
	"github.com/resufit/resufit/internal/resume"
)

func scoreEvidence(t *testing.T, candidate *resume.Profile, job *jobprofile.JobProfile) Section {
	t.Helper()

	scorer := &evidenceScorer{}
	section, err := scorer.Score(context.Background(), NewInput(candidate, job, testNow))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return section
}

func TestEvidenceOnlinePresence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want int
	}{
		{"no links", "plain resume text", 0},
		{"linkedin only", "linkedin.com/in/janedoe", 1},
		{"github only", "github.com/janedoe", 1},
		{"both profiles", "linkedin.com/in/janedoe github.com/janedoe", 2},
		{"active github", "github.com/janedoe and github.com/janedoe/pipeviz", 2},
		{"all capped", "linkedin.com/in/janedoe github.com/janedoe github.com/janedoe/pipeviz", 3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			section := scoreEvidence(t, testProfile(tt.text), &jobprofile.JobProfile{})
			if section.Points != tt.want {
				t.Fatalf("expected %d points, got %d", tt.want, section.Points)
			}
		})
	}
}

func TestEvidenceEducationAndCerts(t *testing.T) {
	t.Parallel()

	candidate := testProfile("Education", "BSc Computer Science", "Certifications", "AWS Certified Solutions Architect")
	candidate.Education = []string{"BSc Computer Science"}
	candidate.Certifications = []string{"AWS Certified Solutions Architect"}

	job := &jobprofile.JobProfile{
		EduKeywords:   []string{"computer science", "mathematics"},
		RelevantCerts: []string{"solutions architect"},
	}

	section := scoreEvidence(t, candidate, job)
	if section.Points != 2 {
		t.Fatalf("expected 2 points, got %d", section.Points)
	}

	evidence := section.Evidence.(EvidenceBreakdown)
	if len(evidence.EduMatched) != 1 || len(evidence.CertsMatched) != 1 {
		t.Fatalf("unexpected matches: %+v", evidence)
	}
}

func TestEvidenceProjectQuality(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		project string
		awarded bool
	}{
		{"link and stack", "Pipeline visualizer, built with Go: https://pipeviz.dev", true},
		{"stack and outcome", "Built a reporting dashboard, technologies: Python, Postgres", true},
		{"link only", "See https://pipeviz.dev", false},
		{"bare description", "A small side project", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := analyzeProject(tt.project).Awarded; got != tt.awarded {
				t.Fatalf("awarded = %v, want %v", got, tt.awarded)
			}
		})
	}
}

func TestSnippetKeepsRunesIntact(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("é", 60)
	got := snippet(long, 50)
	if !utf8.ValidString(got) {
		t.Fatalf("snippet produced invalid UTF-8: %q", got)
	}
	if got != strings.Repeat("é", 50)+"..." {
		t.Fatalf("unexpected snippet: %q", got)
	}

	if short := snippet("portfolio", 50); short != "portfolio" {
		t.Fatalf("short text should pass through, got %q", short)
	}
}

func TestEvidenceProjectCap(t *testing.T) {
	t.Parallel()

	project := "Pipeline visualizer, built with Go: https://pipeviz.dev"
	candidate := testProfile("Projects", project)
	candidate.Projects = []string{project, project, project}

	section := scoreEvidence(t, candidate, &jobprofile.JobProfile{})

	// Three awarded projects would be 9 points without the cap.
	if got := section.Points; got != maxProjectPoints {
		t.Fatalf("expected the project tier capped at %d, got %d", maxProjectPoints, got)
	}
}
