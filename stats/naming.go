package stats

import (
	"strings"

	"github.com/mozillazg/go-unidecode"
)

// SanitizeName maps any label (category names included) to an
// identifier-safe ASCII string for file names.
func SanitizeName(s string) string {
	s = unidecode.Unidecode(s)
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
