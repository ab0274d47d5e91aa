package registration

import "regexp"

// identifiers look like REG-001, zero-padded to at least three digits
var idPattern = regexp.MustCompile(`^REG-\d{3,}$`)

func IsID(s string) bool {
	return idPattern.MatchString(s)
}
