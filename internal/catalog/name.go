package catalog

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	upperCaser = cases.Upper(language.Und)
	lowerCaser = cases.Lower(language.Und)
)

// NormalizeJobName converts a job name to title case: the first character is
// upper-cased and the remainder lower-cased ("MINER" -> "Miner").
func NormalizeJobName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(name)
	return upperCaser.String(name[:size]) + lowerCaser.String(name[size:])
}

// ParseJobList splits the comma separated display list
func ParseJobList(raw string) []string {
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if n := strings.TrimSpace(p); n != "" {
			names = append(names, n)
		}
	}
	return names
}
