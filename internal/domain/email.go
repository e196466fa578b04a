package domain

import "strings"

// NormalizeEmail trims and lower-cases an email address. Normalization is
// applied on every path that touches the allowlist so that membership
// checks never depend on how the caller typed the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail is the minimal shape check used by the allowlist and the
// authorization gate. Anything without an @ can never be allowlisted.
func ValidEmail(email string) bool {
	return email != "" && strings.Contains(email, "@")
}
