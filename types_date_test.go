package midinero

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2026-08-31", want: NewDate(2026, time.August, 31)},
		{in: "2026-8-3", want: NewDate(2026, time.August, 3)},
		{in: "2026-08-31T10:30:00Z", want: NewDate(2026, time.August, 31)},
		{in: "31/08/2026", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDate(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestDate_MonthKey(t *testing.T) {
	d := NewDate(2026, time.March, 5)
	if got := d.MonthKey(); got != "2026-03" {
		t.Errorf("MonthKey() = %q, want %q", got, "2026-03")
	}
}

func TestDate_AddMonths(t *testing.T) {
	testCases := []struct {
		name string
		d    Date
		n    int
		want Date
	}{
		{"simple", NewDate(2026, time.January, 15), 1, NewDate(2026, time.February, 15)},
		{"year rollover", NewDate(2026, time.December, 1), 1, NewDate(2027, time.January, 1)},
		{"day overflow normalizes", NewDate(2026, time.January, 31), 1, NewDate(2026, time.March, 3)},
		{"backwards", NewDate(2026, time.March, 15), -2, NewDate(2026, time.January, 15)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.d.AddMonths(tc.n); got != tc.want {
				t.Errorf("%s.AddMonths(%d) = %s, want %s", tc.d, tc.n, got, tc.want)
			}
		})
	}
}

func TestDate_DaysUntil(t *testing.T) {
	a := NewDate(2026, time.August, 31)
	testCases := []struct {
		x    Date
		want int
	}{
		{NewDate(2026, time.September, 7), 7},
		{NewDate(2026, time.August, 31), 0},
		{NewDate(2026, time.August, 28), -3},
	}
	for _, tc := range testCases {
		if got := a.DaysUntil(tc.x); got != tc.want {
			t.Errorf("%s.DaysUntil(%s) = %d, want %d", a, tc.x, got, tc.want)
		}
	}
}

func TestFrequency_Next(t *testing.T) {
	d := NewDate(2026, time.January, 31)
	testCases := []struct {
		f    Frequency
		want Date
	}{
		{Weekly, NewDate(2026, time.February, 7)},
		{Monthly, NewDate(2026, time.March, 3)},
		{Yearly, NewDate(2027, time.January, 31)},
	}
	for _, tc := range testCases {
		if got := tc.f.Next(d); got != tc.want {
			t.Errorf("%s.Next(%s) = %s, want %s", tc.f, d, got, tc.want)
		}
	}
}

func TestParseFrequency(t *testing.T) {
	testCases := []struct {
		in      string
		want    Frequency
		wantErr bool
	}{
		{in: "monthly", want: Monthly},
		{in: "Week", want: Weekly},
		{in: "annual", want: Yearly},
		{in: "daily", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseFrequency(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseFrequency(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("ParseFrequency(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.August, 31)
	data, err := d.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2026-08-31"` {
		t.Errorf("MarshalJSON() = %s, want %q", data, `"2026-08-31"`)
	}
	var back Date
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}
