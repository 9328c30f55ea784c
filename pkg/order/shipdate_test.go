package order

import (
	"testing"
	"time"
)

// Fixed clock: Friday 2026-08-28.
var testNow = time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)

func TestNormalizeShipDate(t *testing.T) {
	tests := []struct {
		raw       string
		want      string
		defaulted bool
	}{
		{"", "08/29/2026", true},
		{"ASAP", "08/29/2026", true},
		{"asap", "08/29/2026", true},
		{"  Asap  ", "08/29/2026", true},
		{"9/2", "09/02/2026", false},          // later this year
		{"3/15", "03/15/2027", false},         // already passed, next year
		{"8/28", "08/28/2027", false},         // today rolls to next year
		{"4/1 apparel", "04/01/2027", false},  // trailing words discarded
		{"ship 10/01 please", "10/01/2026", false},
		{"12/15/2025", "12/15/2025", false},   // explicit year honored
		{"1/5/27", "01/05/2027", false},       // 2-digit year
		{"whenever", "08/29/2026", true},
		{"13/40", "08/29/2026", true},         // impossible month/day
		{"2/30", "08/29/2026", true},          // day overflow
	}
	for _, tc := range tests {
		got, defaulted := NormalizeShipDate(tc.raw, testNow)
		if got != tc.want || defaulted != tc.defaulted {
			t.Errorf("NormalizeShipDate(%q) = %q, %v; want %q, %v", tc.raw, got, defaulted, tc.want, tc.defaulted)
		}
	}
}
