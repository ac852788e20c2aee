package services

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
	reservedDeviceNames = map[string]struct{}{
		"CON": {}, "AUX": {}, "COM1": {}, "COM2": {}, "COM3": {}, "COM4": {},
		"LPT1": {}, "LPT2": {}, "LPT3": {}, "PRN": {}, "NUL": {},
	}
)

// SanitizeFilename flattens a client supplied name into a safe storage key.
// Anything outside [A-Za-z0-9_.-] that survives NFKD folding is dropped, so
// the result may be empty.
func SanitizeFilename(name string) string {
	name = norm.NFKD.String(name)
	name = toASCII(name)

	name = strings.NewReplacer("/", " ", "\\", " ").Replace(name)
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	name = strings.Trim(name, "._")

	base := strings.ToUpper(strings.SplitN(name, ".", 2)[0])
	if _, reserved := reservedDeviceNames[base]; reserved && name != "" {
		name = "_" + name
	}

	return name
}

func toASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
		}
	}
	return b.String()
}
