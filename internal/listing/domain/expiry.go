package domain

import "time"

// IsVisible reports whether the listing should appear on read paths at
// the given moment. The comparison is day-granular: a listing stays
// visible through the whole of its expiry day and disappears the day
// after. A listing without an expiry date never expires.
func IsVisible(l *Listing, now time.Time) bool {
	if l.ExpiryDate == nil || l.ExpiryDate.IsZero() {
		return true
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return !l.ExpiryDate.Before(today)
}
