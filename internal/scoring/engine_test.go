package scoring

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/resufit/resufit/internal/jobprofile"
	"github.com/resufit/resufit/internal/resume"
)

func strongResume() *resume.Profile {
	lines := []string{
		"Jane Doe",
		"github.com/janedoe | linkedin.com/in/janedoe",
		"Experience",
		"Backend Engineer",
		"Acme Corp",
		"Jan 2020 - Present",
	}
	// Enough credited lines to push the achievement ladder past its
	// section cap.
	for i := 0; i < 10; i++ {
		lines = append(lines, "- Increased revenue by 20% through automated pipelines")
	}
	lines = append(lines,
		"Education",
		"BSc Computer Science",
		"Skills",
		"Go, PostgreSQL, Docker",
	)

	candidate := &resume.Profile{RawText: strings.Join(lines, "\n")}
	candidate.WorkExperience = resume.StructureExperience([]string{
		"Backend Engineer", "Acme Corp", "Jan 2020 - Present",
	})
	candidate.Skills = []string{"Go", "PostgreSQL", "Docker"}
	candidate.Education = []string{"BSc Computer Science"}
	return candidate
}

func strongJob() *jobprofile.JobProfile {
	return &jobprofile.JobProfile{
		Title:          "Backend Engineer",
		MinExperience:  3,
		RequiredSkills: []string{"Go", "PostgreSQL"},
		EduKeywords:    []string{"computer science"},
	}
}

func TestEvaluateClampsAndSums(t *testing.T) {
	t.Parallel()

	engine := New(nil, &stubChecker{issues: 0})

	result, err := engine.Evaluate(context.Background(), strongResume(), strongJob(), testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.CoreImpactScore != maxCoreImpact {
		t.Fatalf("expected the core section clamped at %d, got %d", maxCoreImpact, result.CoreImpactScore)
	}
	core := result.Breakdown[SectionCoreImpact]
	if core.RawPoints <= core.Points {
		t.Fatalf("expected raw points above the clamp, got %d vs %d", core.RawPoints, core.Points)
	}

	sum := result.CoreImpactScore + result.SkillAlignmentScore +
		result.EvidenceScore + result.PresentationScore
	if result.TotalScore != sum {
		t.Fatalf("total %d is not the sum of sections %d", result.TotalScore, sum)
	}

	for name, section := range result.Breakdown {
		if section.Points < 0 || section.Points > section.Max {
			t.Fatalf("section %s out of range: %+v", name, section)
		}
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	t.Parallel()

	engine := New(nil, &stubChecker{issues: 1})
	candidate := strongResume()
	job := strongJob()

	first, err := engine.Evaluate(context.Background(), candidate, job, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := engine.Evaluate(context.Background(), candidate, job, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results:\n%+v\n%+v", first, second)
	}
}

func TestEvaluateLeavesJobProfileUntouched(t *testing.T) {
	t.Parallel()

	// A hand-constructed profile with nil lists and a negative floor is
	// exactly what normalization would rewrite in place.
	job := &jobprofile.JobProfile{Title: "Backend Engineer", MinExperience: -1}
	before := *job

	engine := New(nil, nil)
	if _, err := engine.Evaluate(context.Background(), strongResume(), job, testNow); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(*job, before) {
		t.Fatalf("job profile was modified:\nbefore %+v\nafter  %+v", before, *job)
	}
	if job.RequiredSkills != nil {
		t.Fatalf("expected the nil skill list to stay nil, got %v", job.RequiredSkills)
	}
}

func TestEvaluateEmptyInputs(t *testing.T) {
	t.Parallel()

	engine := New(nil, nil)

	result, err := engine.Evaluate(context.Background(), &resume.Profile{}, &jobprofile.JobProfile{}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A zero experience floor is trivially met, and empty text still
	// earns conciseness points plus the grammar fallback.
	if result.CoreImpactScore != minExperienceAward {
		t.Fatalf("expected only the experience award, got %+v", result)
	}
	if result.SkillAlignmentScore != 0 || result.EvidenceScore != 0 {
		t.Fatalf("expected no alignment or evidence points, got %+v", result)
	}
	if len(result.Breakdown) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(result.Breakdown))
	}
}
