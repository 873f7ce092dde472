// Package artrange parses human-authored article-range strings such as
// "Art. 6–16, 32–39, 105–108" into inclusive numeric interval sets.
//
// Range strings are a serialization format inside catalog data, so parsing
// has defined failure behavior: segments that match nothing are dropped at
// runtime but reported as warnings for catalog linting.
package artrange

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Interval is one inclusive [Start, End] article range.
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains reports whether n falls inside the interval, inclusively.
func (iv Interval) Contains(n int) bool { return n >= iv.Start && n <= iv.End }

// Warning records a segment that could not be parsed.
type Warning struct {
	Input   string `json:"input"`
	Segment string `json:"segment"`
	Reason  string `json:"reason"`
}

func (w Warning) String() string {
	return fmt.Sprintf("range %q: segment %q %s", w.Input, w.Segment, w.Reason)
}

// Accepts "6–16" (en dash), "6-16" (hyphen), or a single number. Leading
// labels like "Art." or "s." are stripped per segment.
var (
	rangePattern  = regexp.MustCompile(`^(\d+)\s*[–-]\s*(\d+)$`)
	singlePattern = regexp.MustCompile(`^(\d+)$`)
	labelPattern  = regexp.MustCompile(`^[^\d]*`)
)

// Parse splits text on commas and converts each segment to an interval.
// Malformed segments are silently dropped; use ParseStrict when warnings
// matter (catalog lint).
func Parse(text string) []Interval {
	ivs, _ := ParseStrict(text)
	return ivs
}

// ParseStrict parses like Parse but also returns a warning per dropped
// segment, including inverted ranges.
func ParseStrict(text string) ([]Interval, []Warning) {
	var (
		intervals []Interval
		warnings  []Warning
	)

	for _, seg := range strings.Split(text, ",") {
		trimmed := strings.TrimSpace(seg)
		if trimmed == "" {
			continue
		}
		cleaned := labelPattern.ReplaceAllString(trimmed, "")

		if m := rangePattern.FindStringSubmatch(cleaned); m != nil {
			start, _ := strconv.Atoi(m[1])
			end, _ := strconv.Atoi(m[2])
			if start > end {
				warnings = append(warnings, Warning{Input: text, Segment: trimmed, Reason: "is inverted"})
				continue
			}
			intervals = append(intervals, Interval{Start: start, End: end})
			continue
		}
		if m := singlePattern.FindStringSubmatch(cleaned); m != nil {
			n, _ := strconv.Atoi(m[1])
			intervals = append(intervals, Interval{Start: n, End: n})
			continue
		}
		warnings = append(warnings, Warning{Input: text, Segment: trimmed, Reason: "matches no range or number pattern"})
	}

	return intervals, warnings
}

// InRanges reports whether n falls inside any of the intervals.
func InRanges(n int, intervals []Interval) bool {
	for _, iv := range intervals {
		if iv.Contains(n) {
			return true
		}
	}
	return false
}
