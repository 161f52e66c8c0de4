package scoring

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/resufit/resufit/internal/resume"
)

var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// DateRange is one recognized employment span. End is zero when the range
// is open (its raw end token was "Present" or "Current").
type DateRange struct {
	Start  time.Time
	End    time.Time
	RawEnd string
}

// Open reports whether the range has no concrete end date.
func (r DateRange) Open() bool {
	return r.End.IsZero()
}

// Months returns the whole-month span of the range, with now standing in
// for the end of an open range.
func (r DateRange) Months(now time.Time) int {
	end := r.End
	if r.Open() {
		end = now
	}
	months := (end.Year()-r.Start.Year())*12 + int(end.Month()) - int(r.Start.Month())
	if months < 0 {
		return 0
	}
	return months
}

// parseMonthYear turns a "Mar 2019" style token into the first day of
// that month. Month names may be full or abbreviated, with or without a
// trailing dot.
func parseMonthYear(token string) (time.Time, bool) {
	fields := strings.Fields(strings.TrimSpace(token))
	if len(fields) != 2 {
		return time.Time{}, false
	}

	name := strings.ToLower(strings.TrimSuffix(fields[0], "."))
	if len(name) < 3 {
		return time.Time{}, false
	}
	month, ok := monthsByPrefix[name[:3]]
	if !ok {
		return time.Time{}, false
	}

	year, err := strconv.Atoi(fields[1])
	if err != nil {
		return time.Time{}, false
	}

	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), true
}

// ExtractDateRanges scans the whole text for employment spans. Unparsable
// matches are skipped.
func ExtractDateRanges(text string) []DateRange {
	ranges := make([]DateRange, 0)
	for _, match := range resume.DateRangePattern.FindAllStringSubmatch(text, -1) {
		start, ok := parseMonthYear(match[1])
		if !ok {
			continue
		}

		r := DateRange{Start: start, RawEnd: match[2]}
		lowered := strings.ToLower(match[2])
		if lowered != "present" && lowered != "current" {
			end, ok := parseMonthYear(match[2])
			if !ok {
				continue
			}
			r.End = end
		}
		ranges = append(ranges, r)
	}
	return ranges
}

// TotalMonths sums the month spans of every range.
func TotalMonths(ranges []DateRange, now time.Time) int {
	total := 0
	for _, r := range ranges {
		total += r.Months(now)
	}
	return total
}

// TotalYears converts the summed months into years, rounded to one
// decimal place.
func TotalYears(ranges []DateRange, now time.Time) float64 {
	months := TotalMonths(ranges, now)
	return math.Round(float64(months)/12*10) / 10
}

// LatestEnd returns the most recent concrete end date among the ranges
// and whether any concrete end exists.
func LatestEnd(ranges []DateRange) (time.Time, bool) {
	var latest time.Time
	found := false
	for _, r := range ranges {
		if r.Open() {
			continue
		}
		if !found || r.End.After(latest) {
			latest = r.End
			found = true
		}
	}
	return latest, found
}
