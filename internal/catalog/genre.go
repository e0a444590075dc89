package catalog

import (
	"strings"

	"github.com/goccy/go-json"
)

// UnknownGenre is the primary genre of a track with no recoverable genre.
const UnknownGenre = "Unknown"

const emptyListToken = "[]"

// ResolveGenre picks the primary genre of a track.
//
// The structured genres column wins whenever it decodes to a usable first
// element. Otherwise the singular genre column is cleaned of stray quotes and
// brackets and used if anything is left. UnknownGenre is the last resort.
func ResolveGenre(genres, genre string) string {
	if list := ParseGenreList(genres); len(list) > 0 && list[0] != UnknownGenre {
		return list[0]
	}
	if g, ok := CleanGenre(genre); ok {
		return g
	}
	return UnknownGenre
}

// ParseGenreList decodes the genres column. A bracket-delimited value is
// split on commas; anything else is read as a list literal after turning
// single quotes into double quotes. Values that decode to nothing yield nil.
func ParseGenreList(s string) []string {
	if s == "" || s == emptyListToken {
		return nil
	}
	if len(s) >= 2 && strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		return splitBracketList(s[1 : len(s)-1])
	}
	return decodeListLiteral(s)
}

func splitBracketList(body string) []string {
	var out []string
	for _, part := range strings.Split(body, ",") {
		g := stripQuoteLayer(strings.TrimSpace(part))
		if g != "" {
			out = append(out, g)
		}
	}
	return out
}

// stripQuoteLayer removes at most one quote character from each end.
func stripQuoteLayer(s string) string {
	if s != "" && isQuote(s[0]) {
		s = s[1:]
	}
	if s != "" && isQuote(s[len(s)-1]) {
		s = s[:len(s)-1]
	}
	return s
}

func isQuote(c byte) bool {
	return c == '\'' || c == '"'
}

func decodeListLiteral(s string) []string {
	var decoded []string
	if err := json.Unmarshal([]byte(strings.ReplaceAll(s, "'", `"`)), &decoded); err != nil {
		return nil
	}
	var out []string
	for _, g := range decoded {
		if g != "" {
			out = append(out, g)
		}
	}
	return out
}

var genreDebris = strings.NewReplacer(`]"`, "", `'`, "", `"`, "", "[", "", "]", "")

// CleanGenre strips quote and bracket debris from the singular genre column.
// It reports false when nothing usable remains.
func CleanGenre(s string) (string, bool) {
	if s == "" || s == UnknownGenre {
		return "", false
	}
	g := strings.TrimSpace(genreDebris.Replace(s))
	if g == "" || g == UnknownGenre {
		return "", false
	}
	return g, true
}
