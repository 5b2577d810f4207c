// Package names implements player-name normalization and fuzzy guess
// validation. It has no knowledge of puzzles or game state — everything
// here is pure string work.
package names

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, drops combining marks, and recomposes.
// "Özil" → "Ozil", "Ibrahimović" → "Ibrahimovic".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases s, strips diacritical marks, and collapses runs of
// whitespace to single spaces. Whitespace-only input normalizes to "".
func Normalize(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		// Malformed UTF-8; fall back to the raw input rather than fail.
		out = s
	}
	out = strings.ToLower(out)
	return strings.Join(strings.Fields(out), " ")
}

// LastToken returns the final whitespace-delimited token of a normalized
// name, or "" if the name is empty.
func LastToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
