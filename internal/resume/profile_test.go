package resume

import (
	"context"
	"strings"
	"testing"
)

const sampleResume = `Jane Doe
jane.doe@example.com | +1 555-123-4567
linkedin.com/in/janedoe
Summary
Backend engineer focused on data-heavy systems
Experience
Senior Engineer
Acme Corp
Jan 2020 - Present
Increased revenue by 20% through automated pipelines
Education
BSc Computer Science
Skills
Go, PostgreSQL, Docker
Projects
Pipeline visualizer, built with Go: github.com/janedoe/pipeviz`

func TestParseAssemblesProfile(t *testing.T) {
	t.Parallel()

	profile := Parse(context.Background(), sampleResume, []string{"Go", "PostgreSQL", "Docker", "Java"}, nil)

	if profile.Name != "Jane Doe" {
		t.Fatalf("unexpected name: %q", profile.Name)
	}
	if profile.Email != "jane.doe@example.com" {
		t.Fatalf("unexpected email: %q", profile.Email)
	}
	if len(profile.WorkExperience) != 1 {
		t.Fatalf("expected 1 job record, got %d", len(profile.WorkExperience))
	}
	if profile.WorkExperience[0].EndDate != "Present" {
		t.Fatalf("unexpected end date: %q", profile.WorkExperience[0].EndDate)
	}
	if len(profile.Skills) != 3 {
		t.Fatalf("expected 3 skills, got %v", profile.Skills)
	}
	if len(profile.Projects) != 1 {
		t.Fatalf("expected 1 project line, got %v", profile.Projects)
	}
}

func TestParseMissingSectionsDefaultEmpty(t *testing.T) {
	t.Parallel()

	profile := Parse(context.Background(), "just some text with no structure", nil, nil)

	if profile.ProfessionalSummary == nil || profile.Education == nil ||
		profile.Projects == nil || profile.Achievements == nil || profile.Certifications == nil {
		t.Fatalf("expected empty slices, got %+v", profile)
	}
	if len(profile.WorkExperience) != 0 {
		t.Fatalf("expected no job records, got %v", profile.WorkExperience)
	}
}

func TestProfileLines(t *testing.T) {
	t.Parallel()

	profile := Parse(context.Background(), sampleResume, nil, nil)

	lines := profile.Lines()
	if len(lines) != len(strings.Split(sampleResume, "\n")) {
		t.Fatalf("expected every non-empty source line, got %d", len(lines))
	}
}

func TestProfileExperienceLines(t *testing.T) {
	t.Parallel()

	profile := Parse(context.Background(), sampleResume, nil, nil)

	joined := strings.Join(profile.ExperienceLines(), "\n")
	if !strings.Contains(joined, "Senior Engineer") || !strings.Contains(joined, "Acme Corp") {
		t.Fatalf("expected title and company in experience lines: %q", joined)
	}
}
