package model

import (
    "testing"
    "time"
)

func tod(h, m int) *TimeOfDay {
    return &TimeOfDay{Hour: h, Minute: m}
}

func rule(available bool, open, close *TimeOfDay) *WeeklyAvailability {
    return &WeeklyAvailability{
        ClientID:    1,
        Day:         Monday,
        IsAvailable: available,
        OpeningTime: open,
        ClosingTime: close,
    }
}

func TestWeeklyAvailability_IsOpenAt(t *testing.T) {
    tests := []struct {
        name string
        rule *WeeklyAvailability
        hour int
        want bool
    }{
        {"before window", rule(true, tod(9, 0), tod(17, 0)), 8, false},
        {"opening hour inclusive", rule(true, tod(9, 0), tod(17, 0)), 9, true},
        {"inside window", rule(true, tod(9, 0), tod(17, 0)), 12, true},
        {"closing hour inclusive", rule(true, tod(9, 0), tod(17, 0)), 17, true},
        {"after window", rule(true, tod(9, 0), tod(17, 0)), 18, false},
        {"single-hour window", rule(true, tod(10, 0), tod(10, 0)), 10, true},
        {"single-hour window miss", rule(true, tod(10, 0), tod(10, 0)), 11, false},
        {"overnight before wrap", rule(true, tod(22, 0), tod(2, 0)), 22, true},
        {"overnight at midnight", rule(true, tod(22, 0), tod(2, 0)), 0, true},
        {"overnight closing inclusive", rule(true, tod(22, 0), tod(2, 0)), 2, true},
        {"overnight gap", rule(true, tod(22, 0), tod(2, 0)), 12, false},
        {"overnight just after close", rule(true, tod(22, 0), tod(2, 0)), 3, false},
        {"overnight just before open", rule(true, tod(22, 0), tod(2, 0)), 21, false},
        {"unavailable day", rule(false, tod(9, 0), tod(17, 0)), 12, false},
        {"missing opening time", rule(true, nil, tod(17, 0)), 12, false},
        {"missing closing time", rule(true, tod(9, 0), nil), 12, false},
        {"missing both times", rule(true, nil, nil), 12, false},
    }

    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            if got := tt.rule.IsOpenAt(tt.hour); got != tt.want {
                t.Errorf("IsOpenAt(%d) = %v, want %v", tt.hour, got, tt.want)
            }
        })
    }
}

func TestWeeklyAvailability_IsOpenAt_PanicsOnBadHour(t *testing.T) {
    for _, hour := range []int{-1, 24, 100} {
        func() {
            defer func() {
                if recover() == nil {
                    t.Errorf("IsOpenAt(%d) did not panic", hour)
                }
            }()
            rule(true, tod(9, 0), tod(17, 0)).IsOpenAt(hour)
        }()
    }
}

func TestWeeklyAvailability_AvailableHours(t *testing.T) {
    tests := []struct {
        name string
        rule *WeeklyAvailability
        want int
    }{
        {"normal window", rule(true, tod(9, 0), tod(17, 0)), 8},
        {"overnight window", rule(true, tod(22, 0), tod(2, 0)), 4},
        {"zero-length window", rule(true, tod(10, 0), tod(10, 0)), 0},
        {"unavailable", rule(false, tod(9, 0), tod(17, 0)), 0},
        {"missing bounds", rule(true, nil, nil), 0},
    }

    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            if got := tt.rule.AvailableHours(); got != tt.want {
                t.Errorf("AvailableHours() = %d, want %d", got, tt.want)
            }
        })
    }
}

func TestDayOfDate(t *testing.T) {
    tests := []struct {
        date string
        want DayOfWeek
    }{
        {"2026-08-24", Monday},
        {"2026-08-25", Tuesday},
        {"2026-08-26", Wednesday},
        {"2026-08-27", Thursday},
        {"2026-08-28", Friday},
        {"2026-08-29", Saturday},
        {"2026-08-30", Sunday},
    }

    for _, tt := range tests {
        t.Run(tt.date, func(t *testing.T) {
            d, err := time.Parse("2006-01-02", tt.date)
            if err != nil {
                t.Fatalf("parse date: %v", err)
            }
            if got := DayOfDate(d); got != tt.want {
                t.Errorf("DayOfDate(%s) = %s, want %s", tt.date, got, tt.want)
            }
        })
    }
}

func TestParseDayOfWeek(t *testing.T) {
    tests := []struct {
        in      string
        want    DayOfWeek
        wantErr bool
    }{
        {"MONDAY", Monday, false},
        {"sunday", Sunday, false},
        {"  Friday ", Friday, false},
        {"", "", true},
        {"FUNDAY", "", true},
    }

    for _, tt := range tests {
        t.Run(tt.in, func(t *testing.T) {
            got, err := ParseDayOfWeek(tt.in)
            if (err != nil) != tt.wantErr {
                t.Fatalf("ParseDayOfWeek(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
            }
            if got != tt.want {
                t.Errorf("ParseDayOfWeek(%q) = %s, want %s", tt.in, got, tt.want)
            }
        })
    }
}
