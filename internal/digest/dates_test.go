package digest

import (
	"testing"
	"time"
)

func TestLongDate(t *testing.T) {
	cases := []struct {
		when time.Time
		want string
	}{
		{time.Date(2026, 8, 31, 7, 0, 0, 0, time.UTC), "lunes, 31 de agosto de 2026"},
		{time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC), "miércoles, 3 de enero de 2024"},
		{time.Date(2025, 12, 6, 23, 59, 0, 0, time.UTC), "sábado, 6 de diciembre de 2025"},
	}
	for _, tc := range cases {
		if got := LongDate(tc.when); got != tc.want {
			t.Fatalf("LongDate(%v) = %q, want %q", tc.when, got, tc.want)
		}
	}
}
