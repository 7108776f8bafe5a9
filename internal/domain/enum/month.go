package enum

// Months is the canonical ordered list of calendar month names used to key
// fee ledgers. Fee receipts resolve "the month before" against this table,
// never against store iteration order.
var Months = [12]string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// MonthIndex returns the zero-based index of a month name in the canonical
// sequence, or -1 if the name is not a valid month.
func MonthIndex(name string) int {
	for i, m := range Months {
		if m == name {
			return i
		}
	}
	return -1
}

// IsValidMonth reports whether name is one of the twelve canonical month names.
func IsValidMonth(name string) bool {
	return MonthIndex(name) >= 0
}

// PreviousMonth returns the month preceding name in the canonical sequence.
// It returns false for January (no preceding month) and for invalid names.
func PreviousMonth(name string) (string, bool) {
	idx := MonthIndex(name)
	if idx <= 0 {
		return "", false
	}
	return Months[idx-1], true
}
