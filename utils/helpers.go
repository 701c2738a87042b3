package utils

import "regexp"

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// IsValidUsername reports whether a username contains only letters,
// numbers, underscores, and hyphens. Length bounds are enforced by the
// request binding tags.
func IsValidUsername(username string) bool {
	return usernameRegex.MatchString(username)
}
