package types

import (
	"testing"
	"time"

	json "github.com/goccy/go-json"
)

func TestUnixTimeUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "quoted seconds",
			input: `"1698555026"`,
			want:  time.Date(2023, time.October, 29, 4, 50, 26, 0, time.UTC),
		},
		{
			name:  "bare seconds",
			input: `1698555026`,
			want:  time.Date(2023, time.October, 29, 4, 50, 26, 0, time.UTC),
		},
		{
			name:  "epoch zero",
			input: `"0"`,
			want:  time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{name: "not a number", input: `"soon"`, wantErr: true},
		{name: "fraction", input: `"169.5"`, wantErr: true},
		{name: "object", input: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts UnixTime
			err := json.Unmarshal([]byte(tt.input), &ts)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal %s: %v", tt.input, err)
			}
			if !ts.Time().Equal(tt.want) {
				t.Errorf("got %v, want %v", ts.Time(), tt.want)
			}
		})
	}
}

func TestUnixTimeMarshal(t *testing.T) {
	ts := NewUnixTime(time.Date(2023, time.October, 29, 4, 50, 26, 0, time.UTC))
	encoded, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(encoded) != "1698555026" {
		t.Errorf("encoded %s, want 1698555026", encoded)
	}
}

func TestUnixTimeHelpers(t *testing.T) {
	ts := NewUnixTime(time.Date(2023, time.October, 29, 4, 50, 26, 123456789, time.UTC))
	if ts.Unix() != 1698555026 {
		t.Errorf("Unix() = %d, want 1698555026 (sub-second precision must drop)", ts.Unix())
	}
	if ts.String() != "2023-10-29T04:50:26Z" {
		t.Errorf("String() = %s", ts.String())
	}
	if !ts.Equal(NewUnixTime(time.Unix(1698555026, 0))) {
		t.Error("Equal() = false for same instant")
	}
}

func TestDateRoundTrip(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2021-04-23"`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !d.Equal(NewDate(2021, time.April, 23)) {
		t.Errorf("got %v", d.String())
	}

	encoded, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(encoded) != `"2021-04-23"` {
		t.Errorf("encoded %s, want \"2021-04-23\"", encoded)
	}
}

func TestDateRejectsDatetime(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2021-04-23T10:00:00Z"`), &d); err == nil {
		t.Error("expected error for datetime input")
	}
}
