package summary

import (
	"testing"

	"milkman/pkg/apperr"
)

func TestParseMonthBounds(t *testing.T) {
	cases := []struct {
		token, first, last string
	}{
		{"2024-03", "2024-03-01", "2024-03-31"},
		{"2024-04", "2024-04-01", "2024-04-30"},
		{"2024-02", "2024-02-01", "2024-02-29"},
		{"2023-02", "2023-02-01", "2023-02-28"},
		{"2023-12", "2023-12-01", "2023-12-31"},
		{" 2025-01 ", "2025-01-01", "2025-01-31"},
	}
	for _, tc := range cases {
		m, err := ParseMonth(tc.token)
		if err != nil {
			t.Fatalf("%q: %v", tc.token, err)
		}
		if m.First != tc.first || m.Last != tc.last {
			t.Fatalf("%q: got [%s, %s] want [%s, %s]", tc.token, m.First, m.Last, tc.first, tc.last)
		}
	}
}

func TestParseMonthRejectsMalformed(t *testing.T) {
	for _, tok := range []string{"", "2024", "2024-3", "2024-13", "24-03", "2024-03-01", "march", "2024/03"} {
		if _, err := ParseMonth(tok); !apperr.Is(err, apperr.KindValidation) {
			t.Fatalf("%q: expected validation error, got %v", tok, err)
		}
	}
}
