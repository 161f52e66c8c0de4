package scoring

import (
	"context"
	"testing"

	"github.com/resufit/resufit/internal/jobprofile"
	"github.com/resufit/resufit/internal/resume"
)

func scoreAlignment(t *testing.T, candidate *resume.Profile, job *jobprofile.JobProfile) Section {
	t.Helper()

	scorer := &skillAlignmentScorer{}
	section, err := scorer.Score(context.Background(), NewInput(candidate, job, testNow))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return section
}

func TestAlignmentRequiredTiers(t *testing.T) {
	t.Parallel()

	candidate := testProfile("Experience", "Built services in Go", "Skills", "Go, PostgreSQL")
	candidate.WorkExperience = resume.StructureExperience([]string{"Built services in Go"})
	candidate.Skills = []string{"Go", "PostgreSQL"}

	job := &jobprofile.JobProfile{RequiredSkills: []string{"Go", "PostgreSQL", "Kafka"}}

	section := scoreAlignment(t, candidate, job)

	// Go appears in experience text (2), PostgreSQL only in the skills
	// list (1), Kafka nowhere.
	if section.Points != 3 {
		t.Fatalf("expected 3 points, got %d", section.Points)
	}

	evidence := section.Evidence.(SkillAlignmentEvidence)
	if len(evidence.RequiredFound) != 2 {
		t.Fatalf("unexpected required matches: %v", evidence.RequiredFound)
	}
}

func TestAlignmentCreditedOnce(t *testing.T) {
	t.Parallel()

	candidate := testProfile("Experience", "Built services in Go")
	candidate.WorkExperience = resume.StructureExperience([]string{"Built services in Go"})

	job := &jobprofile.JobProfile{
		RequiredSkills:  []string{"Go"},
		PreferredSkills: []string{"Go"},
		Keywords:        []string{"Go"},
	}

	section := scoreAlignment(t, candidate, job)
	if section.Points != 2 {
		t.Fatalf("expected the skill credited once for 2 points, got %d", section.Points)
	}

	evidence := section.Evidence.(SkillAlignmentEvidence)
	if len(evidence.PreferredFound) != 0 || len(evidence.KeywordsFound) != 0 {
		t.Fatalf("expected no duplicate credit, got %+v", evidence)
	}
}

func TestAlignmentTierCaps(t *testing.T) {
	t.Parallel()

	keywords := []string{
		"alpha", "beta", "gamma", "delta", "epsilon", "zeta",
		"eta", "theta", "iota", "kappa", "lambda", "mu",
	}
	candidate := testProfile("alpha beta gamma delta epsilon zeta eta theta iota kappa lambda mu")

	job := &jobprofile.JobProfile{Keywords: keywords}

	section := scoreAlignment(t, candidate, job)
	if section.Points != maxKeywordPoints {
		t.Fatalf("expected the keyword tier capped at %d, got %d", maxKeywordPoints, section.Points)
	}
}

func TestAlignmentPreferredAnywhere(t *testing.T) {
	t.Parallel()

	candidate := testProfile("Skills", "Terraform")
	candidate.Skills = []string{"Terraform"}

	job := &jobprofile.JobProfile{PreferredSkills: []string{"Terraform"}}

	section := scoreAlignment(t, candidate, job)
	if section.Points != 1 {
		t.Fatalf("expected 1 preferred point, got %d", section.Points)
	}
}
