package scoring

import (
	"context"
	"strings"
)

const (
	maxSkillAlignment  = 25
	maxRequiredPoints  = 15
	maxPreferredPoints = 5
	maxKeywordPoints   = 10
)

// SkillAlignmentEvidence lists the terms credited by each tier. The
// tiers are disjoint: a term credited as required never reappears under
// preferred or keywords.
type SkillAlignmentEvidence struct {
	RequiredFound  []string `json:"skill_usage"`
	PreferredFound []string `json:"preferred_skills"`
	KeywordsFound  []string `json:"keywords"`
}

// skillAlignmentScorer matches the job profile's skill tiers against
// the resume text. A shared credited set is threaded through the three
// passes so no term earns points twice.
type skillAlignmentScorer struct{}

func (s *skillAlignmentScorer) Name() string { return SectionSkillAlignment }
func (s *skillAlignmentScorer) Max() int     { return maxSkillAlignment }

func (s *skillAlignmentScorer) Score(_ context.Context, in *Input) (Section, error) {
	contentText := in.ExperienceText + " " + in.ProjectsText
	allText := contentText + " " + in.SkillText

	credited := make(map[string]struct{})
	evidence := SkillAlignmentEvidence{
		RequiredFound:  make([]string, 0),
		PreferredFound: make([]string, 0),
		KeywordsFound:  make([]string, 0),
	}

	// Required skills found in experience or project text earn double
	// what a bare skills-list mention does.
	required := 0
	for _, skill := range in.Profile.RequiredSkills {
		lowered := strings.ToLower(skill)
		if _, done := credited[lowered]; done {
			continue
		}
		switch {
		case strings.Contains(contentText, lowered):
			required += 2
		case strings.Contains(in.SkillText, lowered):
			required++
		default:
			continue
		}
		credited[lowered] = struct{}{}
		evidence.RequiredFound = append(evidence.RequiredFound, lowered)
	}
	points := clamp(required, maxRequiredPoints)

	preferred := 0
	for _, skill := range in.Profile.PreferredSkills {
		lowered := strings.ToLower(skill)
		if _, done := credited[lowered]; done {
			continue
		}
		if strings.Contains(allText, lowered) {
			preferred++
			credited[lowered] = struct{}{}
			evidence.PreferredFound = append(evidence.PreferredFound, lowered)
		}
	}
	points += clamp(preferred, maxPreferredPoints)

	keywords := 0
	terms := append(append([]string{}, in.Profile.Keywords...), in.Profile.JobSpecificKeywords...)
	for _, term := range terms {
		lowered := strings.ToLower(term)
		if _, done := credited[lowered]; done {
			continue
		}
		if strings.Contains(in.LowerText, lowered) {
			keywords++
			credited[lowered] = struct{}{}
			evidence.KeywordsFound = append(evidence.KeywordsFound, lowered)
		}
	}
	points += clamp(keywords, maxKeywordPoints)

	return Section{Points: points, Evidence: evidence}, nil
}

func clamp(points, max int) int {
	if points > max {
		return max
	}
	return points
}
