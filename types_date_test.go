package smartfi

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in   string
		want Date
	}{
		{"2025-01-15", NewDate(2025, time.January, 15)},
		{"2025-7-1", NewDate(2025, time.July, 1)},
		{" 2025-01-15 ", NewDate(2025, time.January, 15)},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if err != nil {
			t.Errorf("ParseDate(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseDate_Relative(t *testing.T) {
	today := Today()
	testCases := []struct {
		in   string
		want Date
	}{
		{"0d", today},
		{"-1d", today.Add(-1)},
		{"+2w", today.Add(14)},
		{"-3m", today.AddMonth(-3)},
		{"+1y", NewDate(today.Year()+1, today.Month(), today.Day())},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if err != nil {
			t.Errorf("ParseDate(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, in := range []string{"", "not-a-date", "15/01/2025", "+d", "2m"} {
		if _, err := ParseDate(in); err == nil {
			t.Errorf("ParseDate(%q) accepted garbage", in)
		}
	}
}

func TestDate_Arithmetic(t *testing.T) {
	d := NewDate(2025, time.January, 31)
	if got := d.Add(1); got != NewDate(2025, time.February, 1) {
		t.Errorf("Add(1) = %s", got)
	}
	if got := d.AddMonth(1); got != NewDate(2025, time.March, 3) {
		// time.Date normalizes Feb 31 to Mar 3
		t.Errorf("AddMonth(1) = %s", got)
	}
	if got := NewDate(2025, time.January, 1).DaysUntil(NewDate(2025, time.February, 1)); got != 31 {
		t.Errorf("DaysUntil = %d, want 31", got)
	}
	if !NewDate(2025, time.January, 1).Before(NewDate(2025, time.January, 2)) {
		t.Error("Before() is wrong")
	}
	if !NewDate(2025, time.January, 2).After(NewDate(2025, time.January, 1)) {
		t.Error("After() is wrong")
	}
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(2025, time.June, 9)
	data, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if string(data) != `"2025-06-09"` {
		t.Errorf("MarshalJSON() = %s", data)
	}
	var back Date
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON() error = %v", err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}
