package model

import (
    "encoding/json"
    "fmt"
    "strings"
)

// TimeOfDay is a wall-clock time without a date, as stored in MySQL TIME
// columns and exchanged as "HH:MM" or "HH:MM:SS" strings.  Slot logic
// only looks at the hour; minutes are carried for display.
type TimeOfDay struct {
    Hour   int
    Minute int
}

// ParseTimeOfDay accepts "HH:MM" or "HH:MM:SS" and validates the range.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
    parts := strings.Split(strings.TrimSpace(s), ":")
    if len(parts) != 2 && len(parts) != 3 {
        return TimeOfDay{}, fmt.Errorf("invalid time of day: %q", s)
    }
    var h, m int
    if _, err := fmt.Sscanf(parts[0]+" "+parts[1], "%d %d", &h, &m); err != nil {
        return TimeOfDay{}, fmt.Errorf("invalid time of day: %q", s)
    }
    if h < 0 || h > 23 || m < 0 || m > 59 {
        return TimeOfDay{}, fmt.Errorf("time of day out of range: %q", s)
    }
    return TimeOfDay{Hour: h, Minute: m}, nil
}

// String renders the canonical "HH:MM:SS" form used in the database.
func (t TimeOfDay) String() string {
    return fmt.Sprintf("%02d:%02d:00", t.Hour, t.Minute)
}

// MarshalJSON renders the time as a "HH:MM:SS" string.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
    return json.Marshal(t.String())
}

// UnmarshalJSON accepts "HH:MM" or "HH:MM:SS" strings.
func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
    var s string
    if err := json.Unmarshal(b, &s); err != nil {
        return err
    }
    parsed, err := ParseTimeOfDay(s)
    if err != nil {
        return err
    }
    *t = parsed
    return nil
}
