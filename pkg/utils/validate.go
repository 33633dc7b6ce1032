package utils

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,30}$`)

// ValidateUsername checks if username contains only allowed characters.
// Alphanumeric, underscores, hyphens, 3-30 characters.
func ValidateUsername(username string) bool {
	return usernameRe.MatchString(username)
}

// IsUUID checks if the string is a valid UUID
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// TruncateString safely truncates a string to max length
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}

// NormalizeNotes trims free-text notes and caps their length so a single
// Pomodoro entry cannot blow up the row size.
func NormalizeNotes(notes string) string {
	return TruncateString(strings.TrimSpace(notes), 2000)
}
