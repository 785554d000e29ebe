package timezone

import "time"

var Location = time.UTC

// date-window math (since-date filters, event day grouping) must not
// shift depending on where the process happens to run, so all clock
// reads go through a pinned location
func Now() time.Time {
	return time.Now().In(Location)
}
