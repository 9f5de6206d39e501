package model

import (
    "fmt"
    "time"
)

// Token values a slot cell can hold.  Any other non-empty string is an
// opaque booking reference written by the booking flow; this engine never
// interprets such values, it only preserves them.
const (
    SlotOpen   = "none"          // bookable, no booking yet
    SlotClosed = "not_available" // venue closed during this hour
)

// HoursPerDay is the fixed length of a slot vector.
const HoursPerDay = 24

// DefaultHorizonDays is how far ahead slot vectors are materialized when
// a client is created.
const DefaultHorizonDays = 30

// SlotVector is the full hourly booking state for one client on one
// calendar date.  Exactly one vector exists per (client, date) pair; the
// database enforces this with a unique key.  Slots is an ordered array
// indexed by hour of day.
type SlotVector struct {
    ID          uint64
    ClientID    uint64
    BookingDate time.Time // date only, midnight UTC
    Slots       [HoursPerDay]string
    CreatedAt   time.Time
    UpdatedAt   time.Time
}

// checkHour panics when the hour is outside [0,23].  Hour indexes come
// from code, not user input, so a bad value is a bug and must not be
// silently clamped.
func checkHour(hour int) {
    if hour < 0 || hour >= HoursPerDay {
        panic(fmt.Sprintf("hour must be between 0 and 23, got %d", hour))
    }
}

// Slot returns the token stored for the given hour.
func (v *SlotVector) Slot(hour int) string {
    checkHour(hour)
    return v.Slots[hour]
}

// SetSlot stores a token for the given hour.
func (v *SlotVector) SetSlot(hour int, value string) {
    checkHour(hour)
    v.Slots[hour] = value
}

// IsBooked reports whether the hour holds a real booking reference, i.e.
// anything other than the open and closed tokens.
func (v *SlotVector) IsBooked(hour int) bool {
    s := v.Slot(hour)
    return s != SlotOpen && s != SlotClosed
}

// SlotLabel returns the zero-padded wire key for an hour: "slot00".."slot23".
func SlotLabel(hour int) string {
    checkHour(hour)
    return fmt.Sprintf("slot%02d", hour)
}

// Wire converts the vector to the map representation used on the HTTP
// API, keyed "slot00".."slot23".
func (v *SlotVector) Wire() map[string]string {
    out := make(map[string]string, HoursPerDay)
    for h := 0; h < HoursPerDay; h++ {
        out[SlotLabel(h)] = v.Slots[h]
    }
    return out
}

// ProjectSlots projects a weekly rule onto a fresh 24-cell slot array:
// open hours become SlotOpen and everything else SlotClosed.  A nil rule
// (no row for that day of week) projects a fully closed day.
func ProjectSlots(rule *WeeklyAvailability) [HoursPerDay]string {
    var slots [HoursPerDay]string
    for h := 0; h < HoursPerDay; h++ {
        if rule != nil && rule.IsOpenAt(h) {
            slots[h] = SlotOpen
        } else {
            slots[h] = SlotClosed
        }
    }
    return slots
}

// ApplyRule merges a (possibly changed) weekly rule into an existing
// vector without discarding live bookings.  Cells holding a booking
// reference are never touched, whatever the new rule says: an existing
// reservation survives an availability edit even when the new rule would
// have forbidden that hour.  Open cells under a now-closed hour are
// demoted to SlotClosed; closed cells under a now-open hour are promoted
// to SlotOpen.  Applying the same rule a vector was projected from is a
// no-op when no cell is booked.
func (v *SlotVector) ApplyRule(rule *WeeklyAvailability) {
    for h := 0; h < HoursPerDay; h++ {
        open := rule != nil && rule.IsOpenAt(h)
        switch v.Slots[h] {
        case SlotOpen:
            if !open {
                v.Slots[h] = SlotClosed
            }
        case SlotClosed:
            if open {
                v.Slots[h] = SlotOpen
            }
        }
        // Any other value is a booking reference and is preserved.
    }
}
