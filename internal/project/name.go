// Package project derives the on-disk target and the package name of a new project.
package project

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	whitespaceRun = regexp.MustCompile(`[\t\n\v\f\r \x{00a0}\x{feff}\p{Z}]+`)
	leadingHidden = regexp.MustCompile(`^[._]`)
	disallowedRun = regexp.MustCompile(`[^a-z0-9\-~]+`)
)

// Normalize turns arbitrary input into a token that is safe both as a
// directory name and as a package.json name.
//
// The steps run in order: trim, lowercase, collapse whitespace runs to "-",
// drop one leading "." or "_", then replace each run of characters outside
// [a-z0-9-~] with a single "-". The result may be empty.
func Normalize(name string) string {
	s := strings.TrimFunc(name, isTrimmable)
	s = lower.String(s)
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = leadingHidden.ReplaceAllString(s, "")
	return disallowedRun.ReplaceAllString(s, "-")
}

// lower applies full Unicode lowercasing, so "İ" becomes "i" plus a
// combining dot rather than a bare "i".
var lower = cases.Lower(language.Und)

// isTrimmable matches the characters stripped from both ends of a name: the
// Unicode white space set plus U+FEFF, without U+0085.
func isTrimmable(r rune) bool {
	return r == '\ufeff' || (unicode.IsSpace(r) && r != '\u0085')
}

// TrimTrailingSlashes trims surrounding whitespace and any trailing "/".
func TrimTrailingSlashes(dir string) string {
	return strings.TrimRight(strings.TrimFunc(dir, isTrimmable), "/")
}
