package filter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// The natural-language filter is a closed grammar: an ordered list of
// (pattern, builder) pairs evaluated over the lower-cased query, first match
// wins. There is no general language understanding.
type phrasePattern struct {
	re    *regexp.Regexp
	build func(groups []string) (Filter, error)
}

var phrasePatterns = []phrasePattern{
	{
		re: regexp.MustCompile(`^all single word palindromic strings$`),
		build: func(_ []string) (Filter, error) {
			return New(boolPtr(true), nil, nil, intPtr(1), "")
		},
	},
	{
		// "longer than N" is exclusive, hence the inclusive bound N+1.
		re: regexp.MustCompile(`^strings (?:longer|more) than (\d+) characters?$`),
		build: func(groups []string) (Filter, error) {
			n, err := strconv.Atoi(groups[1])
			if err != nil {
				return Filter{}, fmt.Errorf("parse length %q: %w", groups[1], err)
			}
			return New(nil, intPtr(n+1), nil, nil, "")
		},
	},
	{
		re: regexp.MustCompile(`^strings containing the letter ([a-z])$`),
		build: func(groups []string) (Filter, error) {
			return New(nil, nil, nil, nil, groups[1])
		},
	},
	{
		re: regexp.MustCompile(`^strings containing the first vowel$`),
		build: func(_ []string) (Filter, error) {
			return New(nil, nil, nil, nil, "a")
		},
	},
	{
		re: regexp.MustCompile(`^(?:all )?palindromic strings$`),
		build: func(_ []string) (Filter, error) {
			return New(boolPtr(true), nil, nil, nil, "")
		},
	},
	{
		re: regexp.MustCompile(`^(?:all )?(?:single|one) word strings$`),
		build: func(_ []string) (Filter, error) {
			return New(nil, nil, nil, intPtr(1), "")
		},
	},
}

// ParsePhrase maps a recognized natural-language query to a Filter.
// Matching is case-insensitive and ignores surrounding whitespace. Queries
// outside the grammar fail.
func ParsePhrase(query string) (Filter, error) {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return Filter{}, fmt.Errorf("query is empty")
	}

	for _, p := range phrasePatterns {
		groups := p.re.FindStringSubmatch(normalized)
		if groups == nil {
			continue
		}
		f, err := p.build(groups)
		if err != nil {
			return Filter{}, fmt.Errorf("build filter for %q: %w", query, err)
		}
		return f, nil
	}

	return Filter{}, fmt.Errorf("no recognized phrasing in %q", query)
}

func boolPtr(b bool) *bool { return &b }

func intPtr(n int) *int { return &n }
