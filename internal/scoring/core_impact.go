package scoring

import (
	"context"
	"math"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/resufit/resufit/internal/lexicon"
)

const (
	maxCoreImpact      = 45
	maxRelevancePoints = 10
	minExperienceAward = 10
)

// AchievementLine is one line credited by the quantifiable-achievement
// ladder, with the rung it hit.
type AchievementLine struct {
	Line   string `json:"line"`
	Points int    `json:"points"`
}

// RelevanceEvidence records how the experience-relevance points were
// earned: the closest experience line when job records exist, or the
// matched fallback terms otherwise.
type RelevanceEvidence struct {
	Points       int      `json:"points"`
	BestMatch    string   `json:"best_match,omitempty"`
	MatchedTerms []string `json:"matched_terms,omitempty"`
}

// CoreImpactEvidence is the breakdown of the core impact section.
type CoreImpactEvidence struct {
	AchievementLines []AchievementLine `json:"quantifiable_achievements"`
	Relevance        RelevanceEvidence `json:"experience_relevance"`
	RecencyEndDates  []string          `json:"recency"`
	TotalYears       float64           `json:"total_years"`
	MeetsMinimum     bool              `json:"total_relevant_experience"`
}

// coreImpactScorer accumulates quantifiable achievements across the
// whole document and adds relevance, recency and total experience on
// top. The achievement ladder itself is uncapped; the section clamp
// happens in the engine.
type coreImpactScorer struct{}

func (s *coreImpactScorer) Name() string { return SectionCoreImpact }
func (s *coreImpactScorer) Max() int     { return maxCoreImpact }

func (s *coreImpactScorer) Score(_ context.Context, in *Input) (Section, error) {
	evidence := CoreImpactEvidence{
		AchievementLines: make([]AchievementLine, 0),
		RecencyEndDates:  make([]string, 0),
	}
	points := 0

	for _, line := range in.AllLines {
		linePoints, _ := lexicon.Score(line)
		if linePoints == 0 {
			continue
		}
		points += linePoints
		evidence.AchievementLines = append(evidence.AchievementLines, AchievementLine{
			Line:   line,
			Points: linePoints,
		})
	}

	evidence.Relevance = scoreRelevance(in)
	points += evidence.Relevance.Points

	ranges := ExtractDateRanges(in.FullText)

	recency := 0
	switch {
	case hasOpenRange(ranges):
		recency = 5
	default:
		if latest, ok := LatestEnd(ranges); ok {
			gapYears := float64(in.Now.Year()-latest.Year()) +
				float64(int(in.Now.Month())-int(latest.Month()))/12.0
			switch {
			case gapYears <= 1:
				recency = 5
			case gapYears <= 3:
				recency = 3
			default:
				recency = 1
			}
		}
	}
	points += recency
	for _, r := range ranges {
		evidence.RecencyEndDates = append(evidence.RecencyEndDates, r.RawEnd)
	}

	evidence.TotalYears = TotalYears(ranges, in.Now)
	if evidence.TotalYears >= in.Profile.MinExperience {
		evidence.MeetsMinimum = true
		points += minExperienceAward
	}

	return Section{Points: points, Evidence: evidence}, nil
}

// scoreRelevance compares every experience line against the job title
// and keeps the best similarity, scaled to ten. Resumes with no job
// records fall back to counting job keywords in projects and
// achievements, two points per match.
func scoreRelevance(in *Input) RelevanceEvidence {
	if len(in.Resume.WorkExperience) > 0 {
		target := chars(strings.ToLower(in.Profile.Title))
		best := 0.0
		bestLine := ""
		for _, line := range in.Resume.ExperienceLines() {
			ratio := difflib.NewMatcher(chars(strings.ToLower(line)), target).Ratio() * 10
			if ratio > best {
				best = ratio
				bestLine = line
			}
		}
		return RelevanceEvidence{
			Points:    int(math.Round(best)),
			BestMatch: bestLine,
		}
	}

	text := strings.ToLower(strings.Join(append(in.Resume.Projects, in.Resume.Achievements...), "\n"))
	matched := make([]string, 0)
	seen := make(map[string]struct{})
	for _, term := range append(in.Profile.Keywords, in.Profile.RequiredSkills...) {
		lowered := strings.ToLower(term)
		if _, dup := seen[lowered]; dup {
			continue
		}
		if strings.Contains(text, lowered) {
			seen[lowered] = struct{}{}
			matched = append(matched, lowered)
		}
	}

	points := len(matched) * 2
	if points > maxRelevancePoints {
		points = maxRelevancePoints
	}
	return RelevanceEvidence{Points: points, MatchedTerms: matched}
}

func hasOpenRange(ranges []DateRange) bool {
	for _, r := range ranges {
		if r.Open() {
			return true
		}
	}
	return false
}

// chars splits a string into per-rune sequence elements so the matcher
// compares character by character.
func chars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
