package model

import "testing"

func TestParseTimeOfDay(t *testing.T) {
    tests := []struct {
        in      string
        want    TimeOfDay
        wantErr bool
    }{
        {"09:00", TimeOfDay{9, 0}, false},
        {"09:30:00", TimeOfDay{9, 30}, false},
        {"00:00", TimeOfDay{0, 0}, false},
        {"23:59", TimeOfDay{23, 59}, false},
        {" 17:00 ", TimeOfDay{17, 0}, false},
        {"24:00", TimeOfDay{}, true},
        {"09:60", TimeOfDay{}, true},
        {"-1:00", TimeOfDay{}, true},
        {"nine", TimeOfDay{}, true},
        {"", TimeOfDay{}, true},
    }

    for _, tt := range tests {
        t.Run(tt.in, func(t *testing.T) {
            got, err := ParseTimeOfDay(tt.in)
            if (err != nil) != tt.wantErr {
                t.Fatalf("ParseTimeOfDay(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
            }
            if !tt.wantErr && got != tt.want {
                t.Errorf("ParseTimeOfDay(%q) = %+v, want %+v", tt.in, got, tt.want)
            }
        })
    }
}

func TestTimeOfDay_String(t *testing.T) {
    tests := []struct {
        in   TimeOfDay
        want string
    }{
        {TimeOfDay{9, 0}, "09:00:00"},
        {TimeOfDay{22, 30}, "22:30:00"},
        {TimeOfDay{0, 5}, "00:05:00"},
    }
    for _, tt := range tests {
        if got := tt.in.String(); got != tt.want {
            t.Errorf("String() = %q, want %q", got, tt.want)
        }
    }
}

func TestTimeOfDay_JSONRoundTrip(t *testing.T) {
    in := TimeOfDay{Hour: 17, Minute: 30}
    b, err := in.MarshalJSON()
    if err != nil {
        t.Fatalf("marshal: %v", err)
    }
    if string(b) != `"17:30:00"` {
        t.Fatalf("marshal = %s, want %q", b, `"17:30:00"`)
    }
    var out TimeOfDay
    if err := out.UnmarshalJSON(b); err != nil {
        t.Fatalf("unmarshal: %v", err)
    }
    if out != in {
        t.Errorf("round trip = %+v, want %+v", out, in)
    }
}
