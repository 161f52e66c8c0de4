// Package lexicon holds the immutable word sets and metric patterns used to
// classify resume lines. Everything is built once at package init and is safe
// for concurrent reads.
package lexicon

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball/english"
)

var actionVerbs = []string{
	// Leadership & management
	"accelerated", "administered", "advanced", "advised", "advocated", "appointed",
	"approved", "assigned", "authorized", "chaired", "coached", "commanded",
	"consolidated", "controlled", "coordinated", "cultivated", "decided", "delegated",
	"developed", "directed", "drove", "enabled", "established", "executed",
	"facilitated", "founded", "guided", "headed", "influenced", "initiated",
	"inspired", "launched", "led", "managed", "motivated", "orchestrated",
	"organized", "oversaw", "pioneered", "presided", "prioritized", "regulated",
	"spearheaded", "steered", "strategized", "supervised", "transformed",

	// Achievement & results
	"accomplished", "achieved", "amplified", "attained", "boosted", "delivered",
	"demonstrated", "doubled", "earned", "elevated", "enhanced", "exceeded",
	"expanded", "expedited", "generated", "improved", "increased", "maximized",
	"optimized", "outperformed", "progressed", "realized", "reduced",
	"strengthened", "succeeded", "surpassed", "tripled", "won", "yielded",

	// Technical & analysis
	"analyzed", "assessed", "audited", "calculated", "calibrated", "compiled",
	"computed", "configured", "debugged", "designed", "detected", "diagnosed",
	"engineered", "evaluated", "examined", "experimented", "identified",
	"implemented", "integrated", "investigated", "mapped", "measured",
	"modeled", "monitored", "programmed", "researched", "solved", "tested",
	"troubleshot", "upgraded", "validated", "verified",

	// Communication & collaboration
	"articulated", "authored", "collaborated", "communicated", "consulted",
	"corresponded", "counseled", "debated", "documented", "edited", "explained",
	"expressed", "interpreted", "interviewed", "lectured", "mediated",
	"negotiated", "networked", "persuaded", "presented", "promoted",
	"publicized", "published", "recommended", "reported", "represented",
	"solicited", "spoke", "translated", "wrote",

	// Creative & innovation
	"adapted", "brainstormed", "conceptualized", "created", "customized",
	"devised", "enacted", "fashioned", "formulated", "illustrated", "imagined",
	"improvised", "innovated", "instituted", "introduced", "invented",
	"originated", "performed", "planned", "produced", "redesigned",
	"revamped", "revitalized", "shaped", "visualized",

	// Organization & detail
	"allocated", "arranged", "assembled", "budgeted", "catalogued", "categorized",
	"classified", "collected", "completed", "corrected", "dispersed",
	"distributed", "filed", "inspected", "logged", "maintained", "operated",
	"ordered", "prepared", "processed", "purchased", "recorded", "registered",
	"reserved", "responded", "reviewed", "routed", "scheduled", "screened",
	"submitted", "supplied", "systematized", "tabulated", "updated",
}

var achievementVerbs = []string{
	"accelerated", "boosted", "cut", "drove", "enhanced", "exceeded", "generated",
	"optimized", "streamlined", "transformed", "led", "initiated", "launched",
	"executed", "revamped", "overhauled", "achieved", "surpassed", "secured",
	"managed", "mentored", "solved", "won", "closed", "built", "automated",
}

var recognitionTerms = []string{
	"awarded", "recognized", "certified", "nominated", "winner", "top performer",
	"appreciated", "honored", "commendation", "employee of the month", "ranked",
}

// metricPatterns match quantified outcomes: percentages, money, scale,
// head counts, deliverables, performance deltas, budgets, and goal phrases.
// Applied to the lowercased line.
var metricPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+%`),
	regexp.MustCompile(`\$\d+(?:,\d{3})*(?:\.\d{2})?[kmb]?`),
	regexp.MustCompile(`\d+(?:,\d{3})*\s*(?:million|billion|thousand|crore|lakh|[kmb]\b)`),
	regexp.MustCompile(`\d+\+?\s*(?:users?|clients?|customers?|people|employees|team members?)`),
	regexp.MustCompile(`\d+\+?\s*(?:projects?|products?|campaigns?|leads?|deals?|sales?)`),
	regexp.MustCompile(`(?:increased?|improved?|enhanced?|boosted?|grew|raised?)\s+(?:by\s+)?\d+%`),
	regexp.MustCompile(`(?:reduced?|decreased?|cut|lowered?|saved?)\s+(?:by\s+)?\d+%`),
	regexp.MustCompile(`(?:reduced?|cut|saved?)\s+\$?\d+`),
	regexp.MustCompile(`\d+x\s+(?:faster|improvement|increase|growth)`),
	regexp.MustCompile(`(?:managed?|oversaw|led)\s+\$?\d+(?:,\d{3})*(?:[kmb]|\s+(?:million|thousand))?`),
	regexp.MustCompile(`(?:within|under|ahead of)\s+(?:budget|schedule|timeline)`),
	regexp.MustCompile(`(?:exceeded?|surpassed?|outperformed?)\s+(?:target|goal|quota|benchmark)`),
}

var nonWord = regexp.MustCompile(`[^\w\s]`)

var (
	stemmedActionVerbs      map[string]struct{}
	stemmedAchievementVerbs map[string]struct{}
	stemmedRecognitionWords map[string]struct{}
	recognitionPhrases      []string
)

func init() {
	stemmedActionVerbs = stemSet(actionVerbs)
	stemmedAchievementVerbs = stemSet(achievementVerbs)

	stemmedRecognitionWords = make(map[string]struct{})
	for _, term := range recognitionTerms {
		if strings.ContainsRune(term, ' ') {
			recognitionPhrases = append(recognitionPhrases, term)
			continue
		}
		stemmedRecognitionWords[Stem(term)] = struct{}{}
	}
}

func stemSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[Stem(w)] = struct{}{}
	}
	return set
}

// Stem normalizes a single lowercase token to its stem.
func Stem(word string) string {
	return english.Stem(word, false)
}

// Signals are the independent boolean classifications of one line.
type Signals struct {
	Action      bool
	Achievement bool
	Metric      bool
	Recognition bool
}

// Empty reports whether no signal fired.
func (s Signals) Empty() bool {
	return !s.Action && !s.Achievement && !s.Metric && !s.Recognition
}

// Classify inspects one resume line and reports which lexical and numeric
// signals it carries. Verb membership is tested on stemmed tokens so
// inflections ("increase"/"increased"/"increasing") collapse together.
func Classify(line string) Signals {
	lower := strings.ToLower(line)
	cleaned := nonWord.ReplaceAllString(lower, "")

	var sig Signals
	for _, token := range strings.Fields(cleaned) {
		stem := Stem(token)
		if _, ok := stemmedActionVerbs[stem]; ok {
			sig.Action = true
		}
		if _, ok := stemmedAchievementVerbs[stem]; ok {
			sig.Achievement = true
		}
		if _, ok := stemmedRecognitionWords[stem]; ok {
			sig.Recognition = true
		}
	}

	if !sig.Recognition {
		for _, phrase := range recognitionPhrases {
			if strings.Contains(lower, phrase) {
				sig.Recognition = true
				break
			}
		}
	}

	for _, pattern := range metricPatterns {
		if pattern.MatchString(lower) {
			sig.Metric = true
			break
		}
	}

	return sig
}

// rule is one rung of the point ladder: a required signal set and its value.
type rule struct {
	points int
	need   Signals
}

// ladder is evaluated top-down with first-match-wins semantics. A rung
// matches when every required signal is present on the line.
var ladder = []rule{
	{20, Signals{Action: true, Achievement: true, Metric: true, Recognition: true}},
	{18, Signals{Action: true, Achievement: true, Metric: true}},
	{15, Signals{Action: true, Achievement: true}},
	{12, Signals{Achievement: true, Metric: true}},
	{10, Signals{Action: true, Metric: true}},
	{7, Signals{Achievement: true}},
	{5, Signals{Action: true}},
	{3, Signals{Metric: true}},
}

func (s Signals) satisfies(need Signals) bool {
	if need.Action && !s.Action {
		return false
	}
	if need.Achievement && !s.Achievement {
		return false
	}
	if need.Metric && !s.Metric {
		return false
	}
	if need.Recognition && !s.Recognition {
		return false
	}
	return true
}

// Score classifies the line and walks the ladder, returning the awarded
// points and the signals that produced them. Lines with no signal score 0.
func Score(line string) (int, Signals) {
	sig := Classify(line)
	for _, r := range ladder {
		if sig.satisfies(r.need) {
			return r.points, sig
		}
	}
	return 0, sig
}

// ContainsOutcomeVerb reports whether the text mentions any action or
// achievement verb as a plain substring. Used for project quality checks
// where whole-line classification is too strict.
func ContainsOutcomeVerb(text string) bool {
	lower := strings.ToLower(text)
	for _, verb := range achievementVerbs {
		if strings.Contains(lower, verb) {
			return true
		}
	}
	for _, verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			return true
		}
	}
	return false
}
