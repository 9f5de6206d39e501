package service

import (
    "testing"
    "time"

    "github.com/stebi123/dobroz/internal/model"
)

func mondayRule(open, close int) *model.WeeklyAvailability {
    return &model.WeeklyAvailability{
        ClientID:    7,
        Day:         model.Monday,
        IsAvailable: true,
        OpeningTime: &model.TimeOfDay{Hour: open},
        ClosingTime: &model.TimeOfDay{Hour: close},
    }
}

func TestProjectHorizon(t *testing.T) {
    // 2026-08-24 is a Monday.
    start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
    rules := map[model.DayOfWeek]*model.WeeklyAvailability{
        model.Monday: mondayRule(9, 17),
    }

    vectors := projectHorizon(7, rules, start, model.DefaultHorizonDays)

    if len(vectors) != model.DefaultHorizonDays {
        t.Fatalf("got %d vectors, want %d", len(vectors), model.DefaultHorizonDays)
    }

    seen := make(map[string]bool, len(vectors))
    for i, v := range vectors {
        if v.ClientID != 7 {
            t.Errorf("vector %d client = %d, want 7", i, v.ClientID)
        }
        wantDate := start.AddDate(0, 0, i)
        if !v.BookingDate.Equal(wantDate) {
            t.Errorf("vector %d date = %s, want %s", i, v.BookingDate, wantDate)
        }
        key := v.BookingDate.Format("2006-01-02")
        if seen[key] {
            t.Errorf("duplicate date %s", key)
        }
        seen[key] = true

        isMonday := model.DayOfDate(v.BookingDate) == model.Monday
        for h := 0; h < model.HoursPerDay; h++ {
            want := model.SlotClosed
            if isMonday && h >= 9 && h <= 17 {
                want = model.SlotOpen
            }
            if v.Slots[h] != want {
                t.Errorf("date %s hour %d = %q, want %q", key, h, v.Slots[h], want)
            }
        }
    }
}

func TestProjectHorizon_NoRules(t *testing.T) {
    start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
    vectors := projectHorizon(1, nil, start, 7)

    if len(vectors) != 7 {
        t.Fatalf("got %d vectors, want 7", len(vectors))
    }
    for _, v := range vectors {
        for h, s := range v.Slots {
            if s != model.SlotClosed {
                t.Errorf("date %s hour %d = %q, want %q", v.BookingDate.Format("2006-01-02"), h, s, model.SlotClosed)
            }
        }
    }
}

func TestRuleMap(t *testing.T) {
    rules := []*model.WeeklyAvailability{
        mondayRule(9, 17),
        {ClientID: 7, Day: model.Friday, IsAvailable: false},
    }

    m := ruleMap(rules)
    if len(m) != 2 {
        t.Fatalf("map has %d entries, want 2", len(m))
    }
    if m[model.Monday] == nil || m[model.Monday].OpeningTime.Hour != 9 {
        t.Errorf("Monday rule missing or wrong: %+v", m[model.Monday])
    }
    if m[model.Friday] == nil || m[model.Friday].IsAvailable {
        t.Errorf("Friday rule missing or wrong: %+v", m[model.Friday])
    }
    if m[model.Sunday] != nil {
        t.Errorf("Sunday should be absent, got %+v", m[model.Sunday])
    }
}
