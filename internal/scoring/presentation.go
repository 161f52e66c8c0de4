package scoring

import (
	"context"
	"regexp"
	"strconv"
	"strings"
)

const (
	maxPresentation = 15
	maxClarity      = 5

	grammarUnavailableAward = 2
	grammarUnavailable      = "unavailable"
)

var bulletPattern = regexp.MustCompile(`(?m)^\s*[–•●*-]\s+`)

var canonicalHeaders = []string{"education", "experience", "skills", "projects"}

// PresentationEvidence is the breakdown of the presentation section.
// GrammarErrors holds the issue count as a string, or "unavailable" when
// the external check could not run.
type PresentationEvidence struct {
	UsesBulletPoints bool    `json:"uses_bullet_points"`
	HasClearSections bool    `json:"has_clear_sections"`
	WordCount        int     `json:"word_count"`
	TotalYears       float64 `json:"total_years"`
	GrammarErrors    string  `json:"grammar_errors"`
}

// presentationScorer judges formatting, length and language quality.
// The grammar check is the engine's only network call; its failure
// degrades to a flat award instead of failing the evaluation.
type presentationScorer struct {
	grammar GrammarChecker
}

func (s *presentationScorer) Name() string { return SectionPresentation }
func (s *presentationScorer) Max() int     { return maxPresentation }

func (s *presentationScorer) Score(ctx context.Context, in *Input) (Section, error) {
	evidence := PresentationEvidence{}

	clarity := 0
	if bulletPattern.MatchString(in.FullText) {
		clarity += 2
		evidence.UsesBulletPoints = true
	}
	found := 0
	for _, header := range canonicalHeaders {
		if strings.Contains(in.LowerText, header) {
			found++
		}
	}
	if found >= 3 {
		clarity += 2
		evidence.HasClearSections = true
	}
	points := clamp(clarity, maxClarity)

	evidence.TotalYears = TotalYears(ExtractDateRanges(in.FullText), in.Now)
	evidence.WordCount = len(strings.Fields(in.FullText))
	points += concisenessPoints(evidence.WordCount, evidence.TotalYears)

	grammarPoints, errors := s.grammarPoints(ctx, in.FullText)
	points += grammarPoints
	evidence.GrammarErrors = errors

	return Section{Points: points, Evidence: evidence}, nil
}

// concisenessPoints applies word-count thresholds that widen for
// candidates with ten or more years of experience, who are expected to
// need a second page.
func concisenessPoints(wordCount int, totalYears float64) int {
	if totalYears < 10 {
		switch {
		case wordCount <= 600:
			return 5
		case wordCount <= 800:
			return 3
		}
		return 0
	}
	switch {
	case wordCount <= 1000:
		return 5
	case wordCount <= 1200:
		return 3
	}
	return 0
}

func (s *presentationScorer) grammarPoints(ctx context.Context, text string) (int, string) {
	if s.grammar == nil {
		return grammarUnavailableAward, grammarUnavailable
	}

	errors, err := s.grammar.IssueCount(ctx, text)
	if err != nil {
		return grammarUnavailableAward, grammarUnavailable
	}

	points := 0
	switch {
	case errors <= 2:
		points = 5
	case errors <= 5:
		points = 3
	case errors <= 10:
		points = 1
	}
	return points, strconv.Itoa(errors)
}
