package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// team numbers are digits with an optional trailing letter, e.g. "1234A".
// they are case-insensitive everywhere, so the uppercase form is the only
// one allowed as a map key or set member.
var teamNumberRegex = regexp.MustCompile(`^[0-9]{1,5}[A-Z]?$`)

func CanonicalTeamNumber(raw string) string {
	return strings.ToUpper(strings.Trim(raw, " \n\t"))
}

func IsTeamNumber(raw string) bool {
	return teamNumberRegex.MatchString(CanonicalTeamNumber(raw))
}

func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, " ")
	return name
}
