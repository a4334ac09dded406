package utils

import "time"

// SameDay reports whether a and b fall on the same calendar day in a's
// location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// FormatDate formats t for listings.
func FormatDate(t time.Time) string {
	return t.Local().Format("Mon, 02 Jan 2006")
}

// FormatDateTime formats t for detailed output.
func FormatDateTime(t time.Time) string {
	return t.Local().Format(time.RFC1123)
}
