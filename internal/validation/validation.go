// Package validation provides input validation utilities.
package validation

import (
	"fmt"
	"strings"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 50
	minPasswordLen = 6
)

// Username trims the input and checks the length bounds. It returns the
// trimmed value.
func Username(username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", fmt.Errorf("username is required")
	}
	if n := len([]rune(username)); n < minUsernameLen || n > maxUsernameLen {
		return "", fmt.Errorf("username must be between %d and %d characters", minUsernameLen, maxUsernameLen)
	}
	return username, nil
}

// Password checks the minimum password length.
func Password(password string) error {
	if password == "" {
		return fmt.Errorf("password is required")
	}
	if len([]rune(password)) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}
	return nil
}
