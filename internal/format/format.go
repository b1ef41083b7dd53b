// Package format holds the pure display helpers shared by the API layer.
// None of these hold state; "now" is always passed in by the caller.
package format

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultExpiryWindowMonths is how far ahead a contract end date counts
// as "expiring soon" when the caller does not say otherwise.
const DefaultExpiryWindowMonths = 6

// datePattern is the fixed display pattern used across the console.
const datePattern = "02 Jan 2006"

var printer = message.NewPrinter(language.English)

// Currency renders a dollar amount compactly: "$1.2M" above a million,
// "$340K" above a thousand, otherwise a grouped integer like "$950".
func Currency(v int64) string {
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("$%.1fM", float64(v)/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("$%.0fK", float64(v)/1_000)
	default:
		return printer.Sprintf("$%d", v)
	}
}

// Date renders a date in the fixed display pattern.
func Date(t time.Time) string {
	return t.Format(datePattern)
}

// Age returns the integer age in whole years at the given instant.
func Age(dob, now time.Time) int {
	if dob.IsZero() {
		return 0
	}
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// ExpiringSoon reports whether end falls within the default expiry window
// forward of now.
func ExpiringSoon(end, now time.Time) bool {
	return ExpiringWithin(end, now, DefaultExpiryWindowMonths)
}

// ExpiringWithin reports whether end falls within the next `months`
// calendar months of now, boundaries inclusive. A date already in the
// past is not "expiring", it is expired.
func ExpiringWithin(end, now time.Time, months int) bool {
	if end.IsZero() {
		return false
	}
	if months <= 0 {
		months = DefaultExpiryWindowMonths
	}
	return !end.Before(now) && !end.After(now.AddDate(0, months, 0))
}
