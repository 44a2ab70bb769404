package analysis

import (
	"regexp"
	"strconv"
)

// The model is asked to start with "Match percentage: XX%"; it sometimes wraps
// the line in markdown emphasis or a heading.
var reMatchPercentage = regexp.MustCompile(`(?i)^[\s#*_]*match percentage[*_]*\s*:\s*[*_]*\s*(\d{1,3})\s*%`)

// ParseMatchPercentage extracts the leading match score from an ATS result.
// It returns nil when the text does not start with a score in 0..100.
func ParseMatchPercentage(text string) *int {
	m := reMatchPercentage.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n > 100 {
		return nil
	}
	return &n
}
