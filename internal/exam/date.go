package exam

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Swedish month abbreviations as they appear in syllabus date cells.
var sweMonths = map[string]time.Month{
	"jan": time.January,
	"feb": time.February,
	"mar": time.March,
	"apr": time.April,
	"maj": time.May,
	"jun": time.June,
	"jul": time.July,
	"aug": time.August,
	"sep": time.September,
	"okt": time.October,
	"nov": time.November,
	"dec": time.December,
}

// Morning sittings start at 08:30, everything else at 14:00.
const (
	morningHour     = 8
	morningMinute   = 30
	afternoonHour   = 14
	afternoonMinute = 0
)

// ParseDate parses a syllabus date entry of the form
// "<day> <Swedish month abbreviation> <year> <am|pm>", e.g. "15 jan 2024 am".
// The month abbreviation is matched case-insensitively.
func ParseDate(s string) (time.Time, error) {
	comps := strings.Fields(s)
	if len(comps) < 4 {
		return time.Time{}, fmt.Errorf("malformed date %q: want \"day month year am|pm\"", s)
	}

	day, err := strconv.Atoi(comps[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed day in date %q: %w", s, err)
	}

	month, ok := sweMonths[strings.ToLower(comps[1])]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown month %q in date %q", comps[1], s)
	}

	year, err := strconv.Atoi(comps[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed year in date %q: %w", s, err)
	}

	hour, minute := afternoonHour, afternoonMinute
	if comps[3] == "am" {
		hour, minute = morningHour, morningMinute
	}

	return time.Date(year, month, day, hour, minute, 0, 0, time.Local), nil
}
