package order

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// shipDateRe extracts the first month/day (optionally /year) pattern from
// free text, so "4/1 apparel" yields 4/1.
var shipDateRe = regexp.MustCompile(`(\d{1,2})\s*/\s*(\d{1,2})(?:\s*/\s*(\d{2,4}))?`)

const shipDateLayout = "01/02/2006"

// NormalizeShipDate converts free-text ship-date values into MM/DD/YYYY.
// Blank and "ASAP" mean tomorrow. A bare month/day means its next occurrence
// after now's date. An explicit year is honored as written. Anything
// unparseable falls back to tomorrow. defaulted reports whether the result is
// the tomorrow fallback, so runs heavy on defaults can be audited.
func NormalizeShipDate(raw string, now time.Time) (date string, defaulted bool) {
	tomorrow := now.AddDate(0, 0, 1).Format(shipDateLayout)

	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "ASAP") {
		return tomorrow, true
	}

	m := shipDateRe.FindStringSubmatch(s)
	if m == nil {
		return tomorrow, true
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return tomorrow, true
	}

	if m[3] != "" {
		year, _ := strconv.Atoi(m[3])
		if year < 100 {
			year += 2000
		}
		if !validDate(year, month, day, now.Location()) {
			return tomorrow, true
		}
		return fmt.Sprintf("%02d/%02d/%04d", month, day, year), false
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	candidate := time.Date(now.Year(), time.Month(month), day, 0, 0, 0, 0, now.Location())
	if !validDate(now.Year(), month, day, now.Location()) {
		return tomorrow, true
	}
	if !candidate.After(today) {
		candidate = time.Date(now.Year()+1, time.Month(month), day, 0, 0, 0, 0, now.Location())
	}
	return candidate.Format(shipDateLayout), false
}

// validDate rejects day-of-month overflow like 2/30, which time.Date would
// silently normalize into March.
func validDate(year, month, day int, loc *time.Location) bool {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	return int(t.Month()) == month && t.Day() == day
}
