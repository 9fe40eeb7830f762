package extract

import (
	"regexp"
	"strconv"
	"time"
)

var reDate = regexp.MustCompile(`(\d{1,2})\.\s*(\d{1,2})\.\s*(\d{4})?`)

// ResolveDate finds the first "day. month. year?" pattern in the
// description and resolves it to a full date. A missing description
// date means the article is not a dobijecka announcement (ok=false).
// When the year is missing it is taken from baseDate - the announcement
// must lie in the past, so a month after the base date's month rolls
// back to the previous year.
func ResolveDate(description string, baseDate time.Time) (time.Time, bool, error) {
	m := reDate.FindStringSubmatch(description)
	if m == nil {
		return time.Time{}, false, nil
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])

	var year int
	switch {
	case m[3] != "":
		year, _ = strconv.Atoi(m[3])
	case month > int(baseDate.Month()):
		year = baseDate.Year() - 1
	default:
		year = baseDate.Year()
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		// time.Date silently normalizes overflowing components
		return time.Time{}, false, Errorf("invalid calendar date %d. %d. %d in %q", day, month, year, description)
	}

	return date, true, nil
}
