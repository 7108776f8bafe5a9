package enum

import "testing"

func TestMonthIndex(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"January", 0},
		{"February", 1},
		{"December", 11},
		{"january", -1},
		{"Jan", -1},
		{"", -1},
	}

	for _, tt := range tests {
		if got := MonthIndex(tt.name); got != tt.want {
			t.Errorf("MonthIndex(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	for _, m := range Months {
		if !IsValidMonth(m) {
			t.Errorf("IsValidMonth(%q) = false", m)
		}
	}
	for _, m := range []string{"", "Smarch", "JANUARY"} {
		if IsValidMonth(m) {
			t.Errorf("IsValidMonth(%q) = true", m)
		}
	}
}

func TestPreviousMonth(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"February", "January", true},
		{"December", "November", true},
		{"January", "", false},
		{"NotAMonth", "", false},
	}

	for _, tt := range tests {
		got, ok := PreviousMonth(tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("PreviousMonth(%q) = (%q, %v), want (%q, %v)", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}
