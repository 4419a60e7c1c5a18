package utils

import "strings"

// NormalizeEmail lowercases and trims an address. Every email comparison and
// every write of the email column must go through here, otherwise the unique
// index and the application-level duplicate check disagree about identity.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
