package utils

import "github.com/microcosm-cc/bluemonday"

var textPolicy = bluemonday.StrictPolicy()

// SanitizeText strips all markup from user-supplied free text (display names,
// invite notes, coach messages) before it is stored or relayed.
func SanitizeText(input string) string {
	return textPolicy.Sanitize(input)
}
