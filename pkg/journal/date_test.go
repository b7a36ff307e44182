package journal

import "testing"

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		earlier, later string
		want           int
	}{
		{"2025-01-01", "2025-01-02", 1},
		{"2025-01-01", "2025-01-01", 0},
		{"2025-01-01", "2025-01-10", 9},
		// month boundary
		{"2025-01-31", "2025-02-01", 1},
		// non-leap February
		{"2025-02-28", "2025-03-01", 1},
		// leap February
		{"2024-02-28", "2024-03-01", 2},
		// year boundary
		{"2024-12-31", "2025-01-01", 1},
		// reversed arguments go negative
		{"2025-01-02", "2025-01-01", -1},
	}
	for _, tc := range cases {
		e, err := ParseDate(tc.earlier)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.earlier, err)
		}
		l, err := ParseDate(tc.later)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.later, err)
		}
		if got := DaysBetween(e, l); got != tc.want {
			t.Errorf("DaysBetween(%s, %s) = %d, want %d", tc.earlier, tc.later, got, tc.want)
		}
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "2025-13-01", "01/02/2025", "yesterday"} {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) should fail", s)
		}
	}
}
