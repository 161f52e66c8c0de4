package scoring

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/resufit/resufit/internal/jobprofile"
	"github.com/resufit/resufit/internal/resume"
)

type stubChecker struct {
	issues int
	err    error
}

func (s *stubChecker) IssueCount(_ context.Context, _ string) (int, error) {
	return s.issues, s.err
}

func scorePresentation(t *testing.T, candidate *resume.Profile, checker GrammarChecker) Section {
	t.Helper()

	scorer := &presentationScorer{grammar: checker}
	section, err := scorer.Score(context.Background(), NewInput(candidate, &jobprofile.JobProfile{}, testNow))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return section
}

func TestPresentationClarity(t *testing.T) {
	t.Parallel()

	candidate := testProfile(
		"Experience",
		"- shipped the ingestion service",
		"Education",
		"Skills",
	)

	section := scorePresentation(t, candidate, &stubChecker{issues: 99})

	evidence := section.Evidence.(PresentationEvidence)
	if !evidence.UsesBulletPoints || !evidence.HasClearSections {
		t.Fatalf("expected both clarity signals, got %+v", evidence)
	}
	// 2 bullets + 2 sections + 5 conciseness + 0 grammar.
	if section.Points != 9 {
		t.Fatalf("expected 9 points, got %d", section.Points)
	}
}

func TestPresentationConcisenessThresholds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		wordCount  int
		totalYears float64
		want       int
	}{
		{"short early career", 600, 5, 5},
		{"medium early career", 700, 5, 3},
		{"long early career", 900, 5, 0},
		{"short veteran", 1000, 12, 5},
		{"medium veteran", 1100, 12, 3},
		{"long veteran", 1300, 12, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := concisenessPoints(tt.wordCount, tt.totalYears); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestPresentationGrammarTiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		issues int
		want   int
	}{
		{"clean", 0, 5},
		{"few issues", 4, 3},
		{"many issues", 9, 1},
		{"sloppy", 30, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			scorer := &presentationScorer{grammar: &stubChecker{issues: tt.issues}}
			points, marker := scorer.grammarPoints(context.Background(), "text")
			if points != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, points)
			}
			if marker == grammarUnavailable {
				t.Fatalf("unexpected unavailable marker")
			}
		})
	}
}

func TestPresentationGrammarOutage(t *testing.T) {
	t.Parallel()

	candidate := testProfile(strings.Repeat("word ", 50))

	section := scorePresentation(t, candidate, &stubChecker{err: errors.New("connection refused")})

	if section.Points < grammarUnavailableAward {
		t.Fatalf("expected at least the fallback award, got %d", section.Points)
	}
	evidence := section.Evidence.(PresentationEvidence)
	if evidence.GrammarErrors != grammarUnavailable {
		t.Fatalf("expected the unavailable marker, got %q", evidence.GrammarErrors)
	}
}

func TestPresentationNilCheckerFallsBack(t *testing.T) {
	t.Parallel()

	section := scorePresentation(t, testProfile("short text"), nil)

	evidence := section.Evidence.(PresentationEvidence)
	if evidence.GrammarErrors != grammarUnavailable {
		t.Fatalf("expected the unavailable marker, got %q", evidence.GrammarErrors)
	}
}
