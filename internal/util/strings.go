// Package util provides small formatting helpers shared by the commands.
package util

import (
	"fmt"
	"strings"
)

// JoinOrNone joins names with ", " or returns "(none)" for an empty list.
func JoinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}

// Pluralize returns singular if count is 1, otherwise plural.
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}

// Count formats a count with the matching noun, e.g. "1 name" or "3 names".
func Count(count int, singular, plural string) string {
	return fmt.Sprintf("%d %s", count, Pluralize(count, singular, plural))
}
