package utils

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

/*
CleanText collapses every whitespace run (spaces, tabs, newlines, carriage
returns) into a single space and trims the result. The output never contains
two consecutive whitespace characters.
*/
func CleanText(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}
