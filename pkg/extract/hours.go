package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Quirk overrides for two historic announcements whose wording does not
// follow any of the regular patterns. Matched case sensitively against
// the description only.
var hourOverrides = []struct {
	needle     string
	begin, end int
}{
	// "Stačí si dneska 23. 11. mezi pátou a osmou hodinou dobít..."
	{needle: "mezi pátou a osmou", begin: 17, end: 20},
	// "... NEJdelší dobíječku ever - od 10 ráno do 10 večer. ..."
	{needle: "od 10 ráno do 10 večer", begin: 10, end: 22},
}

type hourRule struct {
	re      *regexp.Regexp
	extract func(m []string) (int, int, bool)
}

func hourPair(m []string) (int, int, bool) {
	begin, _ := strconv.Atoi(m[1])
	end, _ := strconv.Atoi(m[2])
	return begin, end, true
}

// Rules are tried in order, each first against the title and then
// against the description. Strict HH:00 forms go before the loose ones
// so that "mezi 9.00 až 12.00" is not cut short by the loose rule.
var hourRules = []hourRule{
	{
		re:      regexp.MustCompile(`(?i)(?:mezi|v\s+čase)\s+(\d{1,2})[.:]00\s+až?\s+(\d{1,2})[.:]00`),
		extract: hourPair,
	},
	{
		re:      regexp.MustCompile(`(?i)(?:mezi|v\s+čase)\s+(\d{1,2})\.?\s+až?\s+(\d{1,2})\.?`),
		extract: hourPair,
	},
	{
		re:      regexp.MustCompile(`(?i)od\s+(\d{1,2})[.:]00\s+do\s+(\d{1,2})[.:]00`),
		extract: hourPair,
	},
	{
		re: regexp.MustCompile(`(?i)od\s+(\d{1,2})\.?\s+do\s+(\d{1,2})\.?(\s+stovek)?`),
		extract: func(m []string) (int, int, bool) {
			// "od 2 do 3 stovek" is an amount of money, not a time range
			if m[3] != "" {
				return 0, 0, false
			}
			return hourPair(m)
		},
	},
}

// ResolveHours extracts the begin/end hour pair from the title or the
// description. The pair is in the description in most cases, very
// rarely in the title. ok=false means the article is not a dobijecka
// announcement.
func ResolveHours(title, description string) (int, int, bool) {
	for _, override := range hourOverrides {
		if strings.Contains(description, override.needle) {
			return override.begin, override.end, true
		}
	}

	for _, rule := range hourRules {
		for _, field := range []string{title, description} {
			for _, m := range rule.re.FindAllStringSubmatch(field, -1) {
				if begin, end, ok := rule.extract(m); ok {
					return begin, end, true
				}
			}
		}
	}

	return 0, 0, false
}
