package model

import (
    "fmt"
    "strings"
    "time"
)

// DayOfWeek enumerates the seven days a weekly availability rule can
// target.  Values match the strings stored in the `weekly_availability`
// table and the keys used in availability payloads.
type DayOfWeek string

const (
    Monday    DayOfWeek = "MONDAY"
    Tuesday   DayOfWeek = "TUESDAY"
    Wednesday DayOfWeek = "WEDNESDAY"
    Thursday  DayOfWeek = "THURSDAY"
    Friday    DayOfWeek = "FRIDAY"
    Saturday  DayOfWeek = "SATURDAY"
    Sunday    DayOfWeek = "SUNDAY"
)

// AllDays lists every day of week in calendar order.  Client creation
// iterates over this slice so that exactly seven rules exist per client.
var AllDays = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// weekdayToDay maps Go's time.Weekday onto our DayOfWeek enumeration.
var weekdayToDay = map[time.Weekday]DayOfWeek{
    time.Monday:    Monday,
    time.Tuesday:   Tuesday,
    time.Wednesday: Wednesday,
    time.Thursday:  Thursday,
    time.Friday:    Friday,
    time.Saturday:  Saturday,
    time.Sunday:    Sunday,
}

// DayOfDate returns the DayOfWeek for a concrete calendar date.
func DayOfDate(date time.Time) DayOfWeek {
    return weekdayToDay[date.Weekday()]
}

// ParseDayOfWeek validates a day name (case-insensitive) and returns the
// canonical enumeration value.
func ParseDayOfWeek(s string) (DayOfWeek, error) {
    d := DayOfWeek(strings.ToUpper(strings.TrimSpace(s)))
    for _, known := range AllDays {
        if d == known {
            return d, nil
        }
    }
    return "", fmt.Errorf("invalid day of week: %q", s)
}

// WeeklyAvailability is the recurring open/close policy for one client on
// one day of the week.  There is always exactly one row per (client, day)
// pair.  When IsAvailable is false the time bounds are meaningless and may
// be nil; when it is true both bounds must be present for the rule to
// produce any open hours.
//
// Fields:
//  AvailabilityID – primary key identifier.
//  ClientID       – owning client.
//  Day            – day of the week this rule applies to.
//  IsAvailable    – whether the venue opens at all on this day.
//  OpeningTime    – opening time of day (nullable).
//  ClosingTime    – closing time of day (nullable).  May be earlier than
//                   OpeningTime, which means the window wraps past
//                   midnight (e.g. 22:00–02:00).
//  CreatedAt      – creation timestamp.
//  UpdatedAt      – last update timestamp.
type WeeklyAvailability struct {
    AvailabilityID uint64     `json:"availability_id"`
    ClientID       uint64     `json:"client_id"`
    Day            DayOfWeek  `json:"day_of_week"`
    IsAvailable    bool       `json:"is_available"`
    OpeningTime    *TimeOfDay `json:"opening_time"`
    ClosingTime    *TimeOfDay `json:"closing_time"`
    CreatedAt      time.Time  `json:"created_at"`
    UpdatedAt      time.Time  `json:"updated_at"`
}

// IsOpenAt reports whether the venue is open during the slot starting at
// the given hour of day.  Both window bounds are inclusive: a rule open
// 09:00–17:00 covers hours 9 through 17.  When the closing hour is
// numerically smaller than the opening hour the window wraps past
// midnight, so 22:00–02:00 covers 22, 23, 0, 1 and 2.  The hour must be
// in [0,23]; anything else is a programming error and panics.
func (w *WeeklyAvailability) IsOpenAt(hour int) bool {
    checkHour(hour)
    if !w.IsAvailable || w.OpeningTime == nil || w.ClosingTime == nil {
        return false
    }
    open := w.OpeningTime.Hour
    close := w.ClosingTime.Hour
    if close < open {
        // Window wraps past midnight.
        return hour >= open || hour <= close
    }
    return hour >= open && hour <= close
}

// AvailableHours returns a coarse count of open hours for this day,
// computed from the hour components only.  It is informational and is not
// used for slot generation.
func (w *WeeklyAvailability) AvailableHours() int {
    if !w.IsAvailable || w.OpeningTime == nil || w.ClosingTime == nil {
        return 0
    }
    open := w.OpeningTime.Hour
    close := w.ClosingTime.Hour
    if close < open {
        return (24 - open) + close
    }
    return close - open
}
