package service

import (
    "time"

    "github.com/stebi123/dobroz/internal/model"
)

// today returns the current date truncated to midnight UTC. Booking
// dates carry no time component.
func today() time.Time {
    now := time.Now().UTC()
    return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// projectHorizon projects weekly rules onto `days` consecutive calendar
// dates starting at start, producing one fresh slot vector per date.
// Days with no rule in the map project fully closed. The result is
// ordered by date ascending and contains no duplicates.
func projectHorizon(clientID uint64, rules map[model.DayOfWeek]*model.WeeklyAvailability, start time.Time, days int) []*model.SlotVector {
    out := make([]*model.SlotVector, 0, days)
    for i := 0; i < days; i++ {
        date := start.AddDate(0, 0, i)
        rule := rules[model.DayOfDate(date)]
        out = append(out, &model.SlotVector{
            ClientID:    clientID,
            BookingDate: date,
            Slots:       model.ProjectSlots(rule),
        })
    }
    return out
}

// ruleMap indexes a rule slice by day of week for constant-time lookup
// during projection and reconciliation. Fewer than seven entries is
// fine; missing days simply stay absent from the map and are treated as
// closed.
func ruleMap(rules []*model.WeeklyAvailability) map[model.DayOfWeek]*model.WeeklyAvailability {
    m := make(map[model.DayOfWeek]*model.WeeklyAvailability, len(rules))
    for _, r := range rules {
        m[r.Day] = r
    }
    return m
}
