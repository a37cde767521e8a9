package http

import "time"

// dateLayout is the wire format for reservation dates. Human-facing
// DD-MM-YYYY rendering belongs to the console front end, not here.
const dateLayout = "2006-01-02"

func parseDate(value string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
