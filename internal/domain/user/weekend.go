package user

import (
	"sort"
	"strings"
	"time"
)

// WeekendDays is the set of weekdays a user does not work.
type WeekendDays map[time.Weekday]struct{}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekendDays parses the stored comma-separated weekday list,
// e.g. "saturday,sunday". Names are case-insensitive, unknown names
// are rejected. An empty string yields an empty set.
func ParseWeekendDays(choice string) (WeekendDays, error) {
	days := make(WeekendDays)
	if strings.TrimSpace(choice) == "" {
		return days, nil
	}
	for _, part := range strings.Split(choice, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		day, ok := weekdayNames[name]
		if !ok {
			return nil, ErrInvalidWeekendChoice
		}
		days[day] = struct{}{}
	}
	return days, nil
}

// Has reports whether the weekday belongs to the weekend set.
func (w WeekendDays) Has(day time.Weekday) bool {
	_, ok := w[day]
	return ok
}

// String renders the set back to its stored comma-separated form,
// ordered Sunday through Saturday.
func (w WeekendDays) String() string {
	if len(w) == 0 {
		return ""
	}
	days := make([]int, 0, len(w))
	for day := range w {
		days = append(days, int(day))
	}
	sort.Ints(days)
	names := make([]string, 0, len(days))
	for _, day := range days {
		names = append(names, strings.ToLower(time.Weekday(day).String()))
	}
	return strings.Join(names, ",")
}
