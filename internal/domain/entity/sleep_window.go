package entity

import (
	"slices"
	"time"

	"lifeline/internal/errors"
)

const minutesPerDay = 24 * 60

// SleepWindow is a recurring do-not-disturb range. Minutes are counted from
// local midnight; weekdays use ISO numbering (1 = Monday, 7 = Sunday).
type SleepWindow struct {
	Enabled          bool  `json:"enabled"`
	StartMinuteOfDay int   `json:"start_minute_of_day"`
	EndMinuteOfDay   int   `json:"end_minute_of_day"`
	ActiveWeekdays   []int `json:"active_weekdays"`
}

// ISOWeekday maps time.Weekday (Sunday = 0) onto 1..7.
func ISOWeekday(t time.Time) int {
	if wd := t.Weekday(); wd != time.Sunday {
		return int(wd)
	}

	return 7
}

// IsSuppressed reports whether monitoring is paused at now. now must already be
// in the subject's local time zone. A nil window never suppresses.
//
// A window whose start is after its end crosses midnight; the weekday check
// uses the day of now itself, so the early-morning half of an overnight window
// belongs to the following day's weekday.
func IsSuppressed(now time.Time, window *SleepWindow) bool {
	if window == nil || !window.Enabled {
		return false
	}

	if !slices.Contains(window.ActiveWeekdays, ISOWeekday(now)) {
		return false
	}

	minute := now.Hour()*60 + now.Minute()
	start, end := window.StartMinuteOfDay, window.EndMinuteOfDay

	if start <= end {
		return start <= minute && minute <= end
	}

	return minute >= start || minute <= end
}

// Validate checks minute and weekday ranges.
func (w *SleepWindow) Validate() error {
	if w.StartMinuteOfDay < 0 || w.StartMinuteOfDay >= minutesPerDay {
		return errors.Errorf("sleep window start minute %d out of range", w.StartMinuteOfDay)
	}
	if w.EndMinuteOfDay < 0 || w.EndMinuteOfDay >= minutesPerDay {
		return errors.Errorf("sleep window end minute %d out of range", w.EndMinuteOfDay)
	}
	for _, wd := range w.ActiveWeekdays {
		if wd < 1 || wd > 7 {
			return errors.Errorf("sleep window weekday %d out of range", wd)
		}
	}

	return nil
}
