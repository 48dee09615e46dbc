package dates

import "time"

func EqualDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// FromMillis converts milliseconds since the epoch into a local time.
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).Local()
}
