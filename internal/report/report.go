// Package report collects per-resume evaluation outcomes, ranks them
// and renders them for the recruiter flow.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/resufit/resufit/internal/scoring"
)

var sectionOrder = []string{
	scoring.SectionCoreImpact,
	scoring.SectionSkillAlignment,
	scoring.SectionEvidence,
	scoring.SectionPresentation,
}

// Item is the outcome for one resume file. Err is set when that file
// failed anywhere in the pipeline; failed items keep their place in the
// report but are ranked last.
type Item struct {
	Rank   int             `json:"rank"`
	Name   string          `json:"name"`
	File   string          `json:"file"`
	Result *scoring.Result `json:"result,omitempty"`
	Err    string          `json:"error,omitempty"`
}

func (i *Item) total() int {
	if i.Result == nil {
		return -1
	}
	return i.Result.TotalScore
}

// Report is a set of evaluated resumes for one job profile.
type Report struct {
	JobTitle string  `json:"job_title"`
	Items    []*Item `json:"items"`
}

func New(jobTitle string) *Report {
	return &Report{JobTitle: jobTitle, Items: make([]*Item, 0)}
}

// Add records one outcome. Ranks are assigned on Finalize.
func (r *Report) Add(item *Item) {
	r.Items = append(r.Items, item)
}

// Finalize orders the items by total score, best first, and assigns
// ranks. Failed items sort below every scored one.
func (r *Report) Finalize() {
	sort.SliceStable(r.Items, func(i, j int) bool {
		return r.Items[i].total() > r.Items[j].total()
	})
	for i, item := range r.Items {
		item.Rank = i + 1
	}
}

func (r *Report) Len() int {
	return len(r.Items)
}

// Failed returns the items that did not produce a score.
func (r *Report) Failed() []*Item {
	failed := make([]*Item, 0)
	for _, item := range r.Items {
		if item.Err != "" {
			failed = append(failed, item)
		}
	}
	return failed
}

// Render produces the console table shown after a batch run.
func (r *Report) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Candidates for %s:\n", r.JobTitle)
	for _, item := range r.Items {
		name := item.Name
		if name == "" {
			name = item.File
		}
		if item.Err != "" {
			fmt.Fprintf(&b, "%3d. %-30s failed: %s\n", item.Rank, name, item.Err)
			continue
		}
		fmt.Fprintf(&b, "%3d. %-30s total %3d (core %d, skills %d, evidence %d, presentation %d)\n",
			item.Rank, name, item.Result.TotalScore,
			item.Result.CoreImpactScore, item.Result.SkillAlignmentScore,
			item.Result.EvidenceScore, item.Result.PresentationScore,
		)
	}
	return b.String()
}

// DumpToTmpFile writes the report as indented JSON to a temp file and
// returns its name.
func (r *Report) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "report_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}
