package common

import "strings"

type Email string

// NewEmail canonicalizes the raw address for storage and comparison.
// Callers that must preserve the submitted spelling convert directly instead.
func NewEmail(rawEmail string) Email {
	return Email(strings.ToLower(strings.TrimSpace(rawEmail)))
}
