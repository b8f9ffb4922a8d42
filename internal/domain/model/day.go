package model

import (
	"fmt"
	"strings"
)

// Day is a day of the planning week.
type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
	Sunday    Day = "Sunday"
)

var week = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var dayAliases = map[string]Day{
	"monday":    Monday,
	"lunedì":    Monday,
	"lunedi":    Monday,
	"tuesday":   Tuesday,
	"martedì":   Tuesday,
	"martedi":   Tuesday,
	"wednesday": Wednesday,
	"mercoledì": Wednesday,
	"mercoledi": Wednesday,
	"thursday":  Thursday,
	"giovedì":   Thursday,
	"giovedi":   Thursday,
	"friday":    Friday,
	"venerdì":   Friday,
	"venerdi":   Friday,
	"saturday":  Saturday,
	"sabato":    Saturday,
	"sunday":    Sunday,
	"domenica":  Sunday,
}

// Week returns the seven days, Monday first.
func Week() []Day {
	out := make([]Day, len(week))
	copy(out, week)
	return out
}

// Valid reports whether d is one of the seven days.
func (d Day) Valid() bool {
	for _, w := range week {
		if d == w {
			return true
		}
	}
	return false
}

// ParseDay parses an English or Italian day name, ignoring case.
func ParseDay(s string) (Day, error) {
	if d, ok := dayAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDay, s)
}
