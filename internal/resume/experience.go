package resume

import (
	"regexp"
	"strings"
)

// JobRecord is one structured employment entry. When no date range is found
// in a chunk, title/company/dates stay absent and the whole chunk becomes
// the description.
type JobRecord struct {
	Title       string   `json:"title,omitempty"`
	Company     string   `json:"company,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	Description []string `json:"description"`
}

var (
	// chunkStart marks lines that look like the beginning of a new entry:
	// a capitalized word sequence, the usual shape of a job title.
	chunkStart = regexp.MustCompile(`^[A-Z][a-z\s]+`)

	// DateRangePattern anchors on month-name + 4-digit-year tokens joined by
	// a dash or "to", with an open end spelled "Present" or "Current".
	// Dates are the most reliable anchor once formatting is flattened away.
	DateRangePattern = regexp.MustCompile(`(?i)((?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4})\s*(?:–|—|-|to)\s*((?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}|present|current)`)
)

// StructureExperience decomposes the experience section lines into an
// ordered sequence of job records.
func StructureExperience(lines []string) []JobRecord {
	records := make([]JobRecord, 0)

	for _, chunk := range splitChunks(lines) {
		text := strings.Join(chunk, "\n")
		if strings.TrimSpace(text) == "" {
			continue
		}

		records = append(records, structureChunk(text))
	}

	return records
}

// headerWindow is how many lines past a candidate boundary may separate a
// title from its date range (title, company, date).
const headerWindow = 3

// splitChunks groups lines into per-job chunks. A capitalized line starts a
// new chunk only once the current entry's date range has been seen and a
// date range follows within the header window; plain capitalized bullet
// lines inside a description never split an entry.
func splitChunks(lines []string) [][]string {
	chunks := make([][]string, 0)
	var current []string
	currentHasDate := false

	for i, line := range lines {
		if len(current) > 0 && currentHasDate &&
			chunkStart.MatchString(line) && dateWithin(lines, i, headerWindow) {
			chunks = append(chunks, current)
			current = nil
			currentHasDate = false
		}

		current = append(current, line)
		if DateRangePattern.MatchString(line) {
			currentHasDate = true
		}
	}
	if len(current) > 0 {
		chunks = append(chunks, current)
	}

	return chunks
}

func dateWithin(lines []string, start, window int) bool {
	for i := start; i < len(lines) && i < start+window; i++ {
		if DateRangePattern.MatchString(lines[i]) {
			return true
		}
	}
	return false
}

func structureChunk(text string) JobRecord {
	loc := DateRangePattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return JobRecord{Description: nonEmptyLines(text)}
	}

	record := JobRecord{
		StartDate:   text[loc[2]:loc[3]],
		EndDate:     text[loc[4]:loc[5]],
		Description: nonEmptyLines(text[loc[1]:]),
	}

	headerLines := nonEmptyLines(text[:loc[0]])
	if len(headerLines) > 0 {
		record.Title = headerLines[0]
	}
	if len(headerLines) > 1 {
		record.Company = headerLines[1]
	}

	return record
}

func nonEmptyLines(text string) []string {
	lines := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// Lines flattens the record back into the lines scoring operates on.
func (r JobRecord) Lines() []string {
	lines := make([]string, 0, len(r.Description)+2)
	if r.Title != "" {
		lines = append(lines, r.Title)
	}
	if r.Company != "" {
		lines = append(lines, r.Company)
	}
	lines = append(lines, r.Description...)
	return lines
}
