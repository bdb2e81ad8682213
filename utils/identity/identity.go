// Package identity canonicalizes guest contact details so that repeated
// submissions by the same person resolve to one record.
package identity

import "strings"

// NormalizeEmail trims and lowercases. Format validation happens upstream.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizePhone trims, keeps a single leading '+' and strips every
// non-digit from the remainder.
func NormalizePhone(s string) string {
	trimmed := strings.TrimSpace(s)
	hasPlus := strings.HasPrefix(trimmed, "+")

	var b strings.Builder
	for _, r := range trimmed {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	if hasPlus {
		return "+" + b.String()
	}
	return b.String()
}
