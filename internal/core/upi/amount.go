package upi

import "strings"

// SanitizeAmount reduces free-form input to a decimal string with at most
// one point and at most two fractional digits. It never fails; input with
// no digits yields "" or ".".
//
//	"007.1"   -> "7.1"
//	"0.5"     -> "0.5"
//	"12.3456" -> "12.34"
//	"1.2.3"   -> "1.2"
//	"₹ 1,299" -> "1299"
func SanitizeAmount(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; isDigit(c) || c == '.' {
			b.WriteByte(c)
		}
	}

	parts := strings.Split(b.String(), ".")
	if len(parts) > 2 {
		parts = parts[:2]
	}
	if len(parts) == 2 && len(parts[1]) > 2 {
		parts[1] = parts[1][:2]
	}

	return trimLeadingZeros(strings.Join(parts, "."))
}

// FormatAmount sanitizes raw and renders it with exactly two decimals.
// ok is false when the result is not a number strictly greater than zero,
// in which case the link must not carry an amount. A minus sign anywhere
// in raw counts as negative ("-5", "₹-5", "5-").
func FormatAmount(raw string) (formatted string, ok bool) {
	if isNegative(raw) {
		return "", false
	}

	whole, frac, _ := strings.Cut(SanitizeAmount(raw), ".")
	if whole == "" && frac == "" {
		return "", false
	}
	if strings.Trim(whole+frac, "0") == "" {
		return "", false
	}

	whole = strings.TrimLeft(whole, "0")
	if whole == "" {
		whole = "0"
	}
	frac = (frac + "00")[:2]
	return whole + "." + frac, true
}

// EchoAmount is the value to show back in the amount field: the sanitized
// input, or "" for a negative amount so that resubmitting it cannot turn
// into a positive one.
func EchoAmount(raw string) string {
	if isNegative(raw) {
		return ""
	}
	return SanitizeAmount(raw)
}

func isNegative(raw string) bool {
	return strings.ContainsRune(raw, '-')
}

// trimLeadingZeros drops zeros that are followed by another digit, so the
// zero in front of the decimal point survives.
func trimLeadingZeros(s string) string {
	i := 0
	for i+1 < len(s) && s[i] == '0' && isDigit(s[i+1]) {
		i++
	}
	return s[i:]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
