// Package timeago renders human-relative elapsed-time labels.
package timeago

import (
	"fmt"
	"time"
)

// Labels holds the unit strings for one language. The *Ago fields are
// fmt format strings taking the integer amount.
type Labels struct {
	JustNow    string
	MinutesAgo string
	HoursAgo   string
	DaysAgo    string
}

var locales = map[string]Labels{
	"en": {
		JustNow:    "just now",
		MinutesAgo: "%d minutes ago",
		HoursAgo:   "%d hours ago",
		DaysAgo:    "%d days ago",
	},
	"ru": {
		JustNow:    "только что",
		MinutesAgo: "%d мин назад",
		HoursAgo:   "%d ч назад",
		DaysAgo:    "%d д назад",
	},
}

// ForLocale returns the label set for the given locale, falling back to
// English for unknown values.
func ForLocale(locale string) Labels {
	if l, ok := locales[locale]; ok {
		return l
	}
	return locales["en"]
}

// Format renders the elapsed time between t and now. Buckets: under a
// minute, under an hour, under a day, days. Amounts use integer division.
func (l Labels) Format(now, t time.Time) string {
	seconds := int64(now.Sub(t).Seconds())
	switch {
	case seconds < 60:
		return l.JustNow
	case seconds < 3600:
		return fmt.Sprintf(l.MinutesAgo, seconds/60)
	case seconds < 86400:
		return fmt.Sprintf(l.HoursAgo, seconds/3600)
	default:
		return fmt.Sprintf(l.DaysAgo, seconds/86400)
	}
}
