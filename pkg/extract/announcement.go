package extract

import "time"

// Announcement is one parsed dobijecka promo record. The date is always
// a midnight UTC timestamp so it can be used directly as a map key.
type Announcement struct {
	Date        time.Time
	HourBegin   int
	HourEnd     int
	Title       string
	Description string
}

// DatetimeMatches reports whether the scheduling data of both
// announcements is identical. Titles and descriptions may differ
// slightly between sources, the scheduling data must not.
func (a Announcement) DatetimeMatches(other Announcement) bool {
	return a.Date.Equal(other.Date) &&
		a.HourBegin == other.HourBegin &&
		a.HourEnd == other.HourEnd
}
