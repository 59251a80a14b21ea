package auth

import "strings"

// NormalizeUSPhone renders 10-digit US numbers, with or without a leading 1,
// as E.164. Anything else is returned trimmed and otherwise untouched.
func NormalizeUSPhone(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) == 11 && digits[0] == '1' {
		digits = digits[1:]
	}
	if len(digits) == 10 {
		return "+1" + digits
	}
	return raw
}
