package validation

import (
	"strings"
	"unicode/utf8"
)

// MaxPlaceLength bounds free-text place names accepted from clients
const MaxPlaceLength = 100

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}

// IsValidPlace reports whether s, once trimmed, is usable as a place query: at most
// MaxPlaceLength runes and free of control characters. Blank input is valid here; blank
// queries are a silent no-op handled by the pipeline.
func IsValidPlace(s string) bool {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > MaxPlaceLength {
		return false
	}
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			return false
		}
	}
	return true
}
