// Package scoring evaluates a candidate profile against a job profile
// across four capped sections. Each scorer is a pure function of its
// input aside from the grammar check, and every point awarded is backed
// by an evidence entry in the breakdown.
package scoring

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/resufit/resufit/internal/jobprofile"
	"github.com/resufit/resufit/internal/resume"
	"go.uber.org/zap"
)

// Scorer produces one capped section of the evaluation.
type Scorer interface {
	Name() string
	Max() int
	Score(ctx context.Context, in *Input) (Section, error)
}

// GrammarChecker reports the number of language issues in a text, or an
// error when the check cannot be performed.
type GrammarChecker interface {
	IssueCount(ctx context.Context, text string) (int, error)
}

// Input bundles the profile pair with text views precomputed once and
// shared by all scorers. Now stands in for the wall clock so recency and
// duration scoring stay deterministic under test.
type Input struct {
	Profile *jobprofile.JobProfile
	Resume  *resume.Profile
	Now     time.Time

	AllLines       []string
	FullText       string
	LowerText      string
	ExperienceText string
	ProjectsText   string
	SkillText      string
	EduText        string
	CertText       string
}

// NewInput precomputes the shared text views. The job profile is copied
// and the copy normalized so scorers never see nil collections and the
// caller's profile is never written to; one profile can back concurrent
// evaluations.
func NewInput(candidate *resume.Profile, job *jobprofile.JobProfile, now time.Time) *Input {
	normalized := *job
	normalized.Normalize()

	lines := candidate.Lines()
	full := strings.Join(lines, "\n")

	return &Input{
		Profile: &normalized,
		Resume:  candidate,
		Now:     now,

		AllLines:       lines,
		FullText:       full,
		LowerText:      strings.ToLower(full),
		ExperienceText: strings.ToLower(strings.Join(candidate.ExperienceLines(), " ")),
		ProjectsText:   strings.ToLower(strings.Join(candidate.Projects, " ")),
		SkillText:      strings.ToLower(strings.Join(candidate.Skills, " ")),
		EduText:        strings.ToLower(strings.Join(candidate.Education, " ")),
		CertText:       strings.ToLower(strings.Join(candidate.Certifications, " ")),
	}
}

// Section is the outcome of one scorer. Points is clamped to [0, Max];
// RawPoints keeps the unclamped accumulation for the breakdown.
type Section struct {
	Name      string `json:"name"`
	Points    int    `json:"points"`
	RawPoints int    `json:"raw_points"`
	Max       int    `json:"max"`
	Evidence  any    `json:"evidence"`
}

// Section names, also the breakdown keys.
const (
	SectionCoreImpact     = "core_impact_and_experience"
	SectionSkillAlignment = "skill_and_tech_alignment"
	SectionEvidence       = "projects_and_evidence"
	SectionPresentation   = "professional_presentation"
)

// Result is the full evaluation of one resume against one job profile.
type Result struct {
	TotalScore          int                `json:"total_score"`
	CoreImpactScore     int                `json:"core_impact_score"`
	SkillAlignmentScore int                `json:"skill_alignment_score"`
	EvidenceScore       int                `json:"projects_and_evidence_score"`
	PresentationScore   int                `json:"professional_presentation_score"`
	Breakdown           map[string]Section `json:"breakdown"`
}

// Engine runs the four scorers in order.
type Engine struct {
	logger  *zap.Logger
	scorers []Scorer
}

// New builds an engine with the standard four sections. The grammar
// checker may be nil, in which case the presentation scorer uses its
// unavailable fallback.
func New(logger *zap.Logger, grammar GrammarChecker) *Engine {
	return &Engine{
		logger: logger,
		scorers: []Scorer{
			&coreImpactScorer{},
			&skillAlignmentScorer{},
			&evidenceScorer{},
			&presentationScorer{grammar: grammar},
		},
	}
}

// Evaluate scores the candidate against the job profile. The total is
// the exact sum of the four clamped section scores.
func (e *Engine) Evaluate(ctx context.Context, candidate *resume.Profile, job *jobprofile.JobProfile, now time.Time) (*Result, error) {
	in := NewInput(candidate, job, now)

	result := &Result{Breakdown: make(map[string]Section, len(e.scorers))}
	for _, scorer := range e.scorers {
		section, err := scorer.Score(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", scorer.Name(), err)
		}

		section.Name = scorer.Name()
		section.Max = scorer.Max()
		section.RawPoints = section.Points
		if section.Points > section.Max {
			section.Points = section.Max
		}
		if section.Points < 0 {
			section.Points = 0
		}

		if e.logger != nil {
			e.logger.Info("section scored",
				zap.String("name", section.Name),
				zap.Int("points", section.Points),
				zap.Int("raw_points", section.RawPoints),
				zap.Int("max", section.Max),
			)
		}

		result.Breakdown[section.Name] = section
		result.TotalScore += section.Points

		switch section.Name {
		case SectionCoreImpact:
			result.CoreImpactScore = section.Points
		case SectionSkillAlignment:
			result.SkillAlignmentScore = section.Points
		case SectionEvidence:
			result.EvidenceScore = section.Points
		case SectionPresentation:
			result.PresentationScore = section.Points
		}
	}

	return result, nil
}
