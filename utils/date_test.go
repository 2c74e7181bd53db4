package utils

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCustomDateUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid date", `"2026-03-14"`, "2026-03-14", false},
		{"null", `null`, "", false},
		{"wrong layout", `"14/03/2026"`, "", true},
		{"datetime rejected", `"2026-03-14T19:00:00Z"`, "", true},
		{"empty string", `""`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d CustomDate
			err := json.Unmarshal([]byte(tt.input), &d)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if d.String() != tt.want {
				t.Errorf("Unmarshal(%s) = %q, want %q", tt.input, d.String(), tt.want)
			}
		})
	}
}

func TestCustomDateMarshalJSON(t *testing.T) {
	d := CustomDate{time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)}
	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(out) != `"2026-03-14"` {
		t.Errorf("Marshal() = %s, want \"2026-03-14\"", out)
	}

	out, err = json.Marshal(CustomDate{})
	if err != nil {
		t.Fatalf("Marshal(zero) error = %v", err)
	}
	if string(out) != `null` {
		t.Errorf("Marshal(zero) = %s, want null", out)
	}
}

func TestCustomDateValue(t *testing.T) {
	d := CustomDate{time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)}
	v, err := d.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if v != "2026-03-14" {
		t.Errorf("Value() = %v, want 2026-03-14", v)
	}

	v, err = CustomDate{}.Value()
	if err != nil {
		t.Fatalf("Value(zero) error = %v", err)
	}
	if v != nil {
		t.Errorf("Value(zero) = %v, want nil", v)
	}
}

func TestCustomDateScan(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		want    string
		wantErr bool
	}{
		{"time value", time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), "2026-03-14", false},
		{"string value", "2026-03-14", "2026-03-14", false},
		{"bytes value", []byte("2026-03-14"), "2026-03-14", false},
		{"nil value", nil, "", false},
		{"unsupported type", 42, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d CustomDate
			err := d.Scan(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Scan(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if d.String() != tt.want {
				t.Errorf("Scan(%v) = %q, want %q", tt.value, d.String(), tt.want)
			}
		})
	}
}
