package model

import "testing"

func TestProjectSlots(t *testing.T) {
    t.Run("nine to five", func(t *testing.T) {
        slots := ProjectSlots(rule(true, tod(9, 0), tod(17, 0)))
        for h := 0; h < HoursPerDay; h++ {
            want := SlotClosed
            if h >= 9 && h <= 17 {
                want = SlotOpen
            }
            if slots[h] != want {
                t.Errorf("hour %d = %q, want %q", h, slots[h], want)
            }
        }
    })

    t.Run("overnight", func(t *testing.T) {
        slots := ProjectSlots(rule(true, tod(22, 0), tod(2, 0)))
        for h := 0; h < HoursPerDay; h++ {
            want := SlotClosed
            if h >= 22 || h <= 2 {
                want = SlotOpen
            }
            if slots[h] != want {
                t.Errorf("hour %d = %q, want %q", h, slots[h], want)
            }
        }
    })

    t.Run("unavailable day", func(t *testing.T) {
        slots := ProjectSlots(rule(false, tod(9, 0), tod(17, 0)))
        for h, s := range slots {
            if s != SlotClosed {
                t.Errorf("hour %d = %q, want %q", h, s, SlotClosed)
            }
        }
    })

    t.Run("nil rule", func(t *testing.T) {
        slots := ProjectSlots(nil)
        for h, s := range slots {
            if s != SlotClosed {
                t.Errorf("hour %d = %q, want %q", h, s, SlotClosed)
            }
        }
    })
}

func TestSlotVector_ApplyRule(t *testing.T) {
    t.Run("bookings survive a closing rule", func(t *testing.T) {
        v := &SlotVector{Slots: ProjectSlots(rule(true, tod(9, 0), tod(17, 0)))}
        v.SetSlot(10, "order-42")
        v.SetSlot(14, "resv-1")

        // Venue closes entirely.
        v.ApplyRule(rule(false, nil, nil))

        if got := v.Slot(10); got != "order-42" {
            t.Errorf("booked slot 10 = %q, want preserved reference", got)
        }
        if got := v.Slot(14); got != "resv-1" {
            t.Errorf("booked slot 14 = %q, want preserved reference", got)
        }
        for h := 0; h < HoursPerDay; h++ {
            if h == 10 || h == 14 {
                continue
            }
            if got := v.Slot(h); got != SlotClosed {
                t.Errorf("hour %d = %q, want %q", h, got, SlotClosed)
            }
        }
    })

    t.Run("closed hours promote when rule opens", func(t *testing.T) {
        v := &SlotVector{Slots: ProjectSlots(rule(false, nil, nil))}
        v.ApplyRule(rule(true, tod(8, 0), tod(12, 0)))
        for h := 0; h < HoursPerDay; h++ {
            want := SlotClosed
            if h >= 8 && h <= 12 {
                want = SlotOpen
            }
            if got := v.Slot(h); got != want {
                t.Errorf("hour %d = %q, want %q", h, got, want)
            }
        }
    })

    t.Run("open hours demote when window narrows", func(t *testing.T) {
        v := &SlotVector{Slots: ProjectSlots(rule(true, tod(9, 0), tod(17, 0)))}
        v.ApplyRule(rule(true, tod(11, 0), tod(15, 0)))
        for h := 0; h < HoursPerDay; h++ {
            want := SlotClosed
            if h >= 11 && h <= 15 {
                want = SlotOpen
            }
            if got := v.Slot(h); got != want {
                t.Errorf("hour %d = %q, want %q", h, got, want)
            }
        }
    })

    t.Run("same rule is a no-op", func(t *testing.T) {
        r := rule(true, tod(9, 0), tod(17, 0))
        v := &SlotVector{Slots: ProjectSlots(r)}
        before := v.Slots
        v.ApplyRule(r)
        if v.Slots != before {
            t.Errorf("slots changed: %v -> %v", before, v.Slots)
        }
    })
}

func TestSlotVector_IsBooked(t *testing.T) {
    v := &SlotVector{}
    v.SetSlot(0, SlotOpen)
    v.SetSlot(1, SlotClosed)
    v.SetSlot(2, "order-7")

    tests := []struct {
        hour int
        want bool
    }{
        {0, false},
        {1, false},
        {2, true},
    }
    for _, tt := range tests {
        if got := v.IsBooked(tt.hour); got != tt.want {
            t.Errorf("IsBooked(%d) = %v, want %v", tt.hour, got, tt.want)
        }
    }
}

func TestSlotLabel(t *testing.T) {
    tests := []struct {
        hour int
        want string
    }{
        {0, "slot00"},
        {5, "slot05"},
        {10, "slot10"},
        {23, "slot23"},
    }
    for _, tt := range tests {
        if got := SlotLabel(tt.hour); got != tt.want {
            t.Errorf("SlotLabel(%d) = %q, want %q", tt.hour, got, tt.want)
        }
    }
}

func TestSlotVector_Wire(t *testing.T) {
    v := &SlotVector{Slots: ProjectSlots(rule(true, tod(9, 0), tod(10, 0)))}
    v.SetSlot(9, "order-9")

    wire := v.Wire()
    if len(wire) != HoursPerDay {
        t.Fatalf("wire map has %d keys, want %d", len(wire), HoursPerDay)
    }
    if wire["slot09"] != "order-9" {
        t.Errorf("slot09 = %q, want %q", wire["slot09"], "order-9")
    }
    if wire["slot10"] != SlotOpen {
        t.Errorf("slot10 = %q, want %q", wire["slot10"], SlotOpen)
    }
    if wire["slot00"] != SlotClosed {
        t.Errorf("slot00 = %q, want %q", wire["slot00"], SlotClosed)
    }
}

func TestCheckHour_Panics(t *testing.T) {
    v := &SlotVector{}
    for _, hour := range []int{-1, 24} {
        func() {
            defer func() {
                if recover() == nil {
                    t.Errorf("SetSlot(%d) did not panic", hour)
                }
            }()
            v.SetSlot(hour, SlotOpen)
        }()
    }
}
