package resume

import (
	"context"
	"regexp"
	"strings"

	"github.com/resufit/resufit/internal/ai"
)

// Link is a tagged profile URL found in the resume.
type Link struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

const (
	LinkLinkedIn  = "linkedin"
	LinkGitHub    = "github"
	LinkPortfolio = "portfolio"
)

var (
	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	// namePattern is the fallback when no recognizer is available: two
	// capitalized tokens at the very start of the header region.
	namePattern = regexp.MustCompile(`^[A-Z][a-z]+\s+[A-Z][a-z]+`)

	linkedinPattern  = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	githubPattern    = regexp.MustCompile(`(?i)github\.com/[\w-]+`)
	portfolioPattern = regexp.MustCompile(`(?i)https?://[\w.-]+`)
)

// Entities holds the contact details pulled from the header region. Empty
// strings mark absence; extraction never fails.
type Entities struct {
	Name  string
	Email string
	Phone string
	Links []Link
}

// ExtractEntities scans the header region (text preceding the first section)
// for the candidate's name, email, phone and profile links. The recognizer,
// when provided, is preferred for name detection; any recognizer failure
// silently degrades to the capitalized-pair fallback.
func ExtractEntities(ctx context.Context, headerLines []string, recognizer ai.PersonRecognizer) Entities {
	text := strings.Join(headerLines, "\n")

	return Entities{
		Name:  extractName(ctx, text, recognizer),
		Email: emailPattern.FindString(text),
		Phone: phonePattern.FindString(text),
		Links: ExtractLinks(text),
	}
}

func extractName(ctx context.Context, text string, recognizer ai.PersonRecognizer) string {
	if recognizer != nil {
		if name, err := recognizer.FirstPerson(ctx, text); err == nil {
			if name = strings.TrimSpace(name); name != "" {
				return name
			}
		}
	}

	return namePattern.FindString(text)
}

// ExtractLinks collects all profile URLs in the text, tagged by family.
// It runs over the header region during extraction and over the whole
// document for evidence scoring.
func ExtractLinks(text string) []Link {
	links := make([]Link, 0)
	for _, match := range linkedinPattern.FindAllString(text, -1) {
		links = append(links, Link{Type: LinkLinkedIn, URL: match})
	}
	for _, match := range githubPattern.FindAllString(text, -1) {
		links = append(links, Link{Type: LinkGitHub, URL: match})
	}
	for _, match := range portfolioPattern.FindAllString(text, -1) {
		links = append(links, Link{Type: LinkPortfolio, URL: match})
	}
	return links
}
