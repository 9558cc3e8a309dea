// internal/app/system/sanitize/sanitize.go
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Donor messages and campaign text are plain text on the wire and in the
// database; any markup a client smuggles in is stripped, not escaped.
var strict = bluemonday.StrictPolicy()

// Text strips all HTML from s, decodes the entities bluemonday escapes,
// and trims surrounding whitespace.
func Text(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
