package schema

import "regexp"

var validFieldNameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// IsValidFieldName reports whether name is a non-empty run of ASCII letters,
// digits and underscores.
func IsValidFieldName(name string) bool {
	return validFieldNameRe.MatchString(name)
}
