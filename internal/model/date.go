package model

import "time"

// Date layouts seen across the upstream providers, most common first.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"20060102",
	"2006-01",
	"2006年01月",
}

// ParseDate extracts a calendar date from a raw cell value. It accepts
// time.Time values and the string layouts providers are known to emit.
// The ok result is false when the value is missing or unparseable.
func ParseDate(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return Day(x), true
	case string:
		if x == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, x); err == nil {
				return Day(t), true
			}
		}
	}
	return time.Time{}, false
}
