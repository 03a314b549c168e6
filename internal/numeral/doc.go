// Package numeral converts between integers and the textual forms of each
// notation sequ understands.
//
// Everything here is pure: no function keeps state between calls or
// writes output. Failures are reported as *ir.Error values.
//
// Notations:
//   - arabic: base-10 integers
//   - floating: decimals rendered through a single printf-style directive
//   - alpha/ALPHA: one letter, mapped to its code point
//   - roman/ROMAN: classical numerals in [1, 3999], canonical form only
package numeral
