package helpers

import "time"

// dateTimeLayout is the human-readable timestamp format used in bot replies.
const dateTimeLayout = "02.01.2006 15:04"

// FormatDateTime renders a timestamp for user-facing messages.
// A zero time produces a placeholder instead of the epoch.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(dateTimeLayout)
}
