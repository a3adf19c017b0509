// Package normalize cleans candidate contact fields before they reach storage.
//
// Both functions are total: they never fail and return "" for input that has
// nothing worth keeping.
package normalize

import "strings"

// CleanPhone returns phone with every non-digit character removed.
// Digits keep their relative order.
//
// Only ASCII 0-9 count as digits. Other Unicode digits, such as Arabic-Indic
// "٣" or superscript "²", are dropped like any other character.
func CleanPhone(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for i := 0; i < len(phone); i++ {
		if c := phone[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
