package ir

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ParsePad validates a caller-supplied pad string and returns its single rune.
//
// The string is NFC normalized first, so a combining sequence such as
// "é" counts as the one character it displays as.
func ParsePad(s string) (rune, error) {
	n := norm.NFC.String(s)
	if utf8.RuneCountInString(n) != 1 {
		return 0, Errorf(ErrCodeInvalidPad, s, "invalid pad, must be single character")
	}
	r, _ := utf8.DecodeRuneInString(n)
	return r, nil
}

// NormalizeText returns s in NFC form. Separators pass through this so that
// rendered output is composed consistently with pad characters.
func NormalizeText(s string) string {
	return norm.NFC.String(s)
}
