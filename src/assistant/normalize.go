package assistant

import (
	"strings"
	"time"

	"github.com/jack-barr3tt/railchat/src/common/types"
)

// NormalizeDateTime maps the free-form date and time tokens produced by the
// query parser onto a concrete search date and time, evaluated against the
// supplied instant. Unrecognized tokens pass through unchanged; they are
// assumed to already be in a form the timetable provider accepts.
func NormalizeDateTime(dateToken, timeToken *string, now time.Time) types.NormalizedDateTime {
	var out types.NormalizedDateTime

	switch token(dateToken) {
	case "", "today":
		out.Date = now.Format("2006-01-02")
	case "tomorrow":
		out.Date = now.AddDate(0, 0, 1).Format("2006-01-02")
	default:
		out.Date = strings.TrimSpace(*dateToken)
	}

	switch token(timeToken) {
	case "", "now":
		out.Time = now.Format("15:04")
	case "morning":
		out.Time = "09:00"
	case "afternoon":
		out.Time = "13:00"
	case "evening":
		out.Time = "17:00"
	default:
		out.Time = strings.TrimSpace(*timeToken)
	}

	return out
}

func token(s *string) string {
	if s == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(*s))
}
