// Package authorname normalizes, splits, and classifies author name strings
// drawn from heterogeneous bibliographic sources.
//
// Source data mixes "First Last" and "Last, First" ordering, HTML-entity
// encoding, diacritics, and initial-only given names. NormalizeKey reduces
// all of that to a locale-insensitive comparison key; Parse splits a raw
// authors field into individual name strings. Merging variants into
// canonical identities is the canonical package's job.
package authorname

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/alps-papers/alpstool/internal/paper"
)

// entityReplacer decodes the fixed, minimal set of HTML entities that occur
// in the dataset. Unknown entities pass through unchanged; a general HTML
// entity table would decode strings the upstream sources never produce.
var entityReplacer = strings.NewReplacer(
	"&apos;", "'",
	"&#39;", "'",
	"&quot;", `"`,
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
)

// Apostrophes covers the apostrophe-like characters seen in scraped names.
// They are removed outright during keying: "O'Brien" keys as "obrien".
const Apostrophes = "'’`´"

// hyphens covers ASCII hyphen plus the Unicode dash variants U+2010..U+2014.
const hyphens = "-‐‑‒–—"

// combiningMarks is the Unicode combining diacritical marks block.
var combiningMarks = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

// markStripper decomposes via NFKD and drops the combining marks, so that
// "Dürr" and "Durr" compare equal.
var markStripper = transform.Chain(norm.NFKD, runes.Remove(runes.In(combiningMarks)))

// andRe matches the word "and" used as a list separator: case-insensitive
// and surrounded by whitespace, so "Anderson" is never split.
var andRe = regexp.MustCompile(`(?i)\s+and\s+`)

// DecodeEntities decodes the minimal HTML entity set.
func DecodeEntities(s string) string {
	return entityReplacer.Replace(s)
}

// normalizeSpace collapses runs of whitespace to single spaces and trims.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ReorderLastFirst rewrites "Last, First" as "First Last". The input is
// entity-decoded and whitespace-normalized first; a string without a comma
// is returned in that cleaned form unchanged.
//
// Only the first comma is a split point: "Last" is the text before it and
// "First" is everything after, with any further commas dropped when the
// remainder is joined back. If either side is empty the original cleaned
// string is returned rather than producing a dangling half-name.
func ReorderLastFirst(s string) string {
	s = normalizeSpace(DecodeEntities(s))
	if !strings.Contains(s, ",") {
		return s
	}

	parts := strings.Split(s, ",")
	last := strings.TrimSpace(parts[0])
	first := normalizeSpace(strings.Join(parts[1:], " "))
	if last == "" || first == "" {
		return s
	}
	return normalizeSpace(first + " " + last)
}

// NormalizeKey reduces an author name to its comparison key. The key is
// never shown to a user.
//
// Steps, in order: decode the minimal entity set; reorder "Last, First" to
// "First Last"; lowercase; strip combining diacritics (NFKD); remove
// apostrophe-like characters; turn periods, commas, and hyphen-like
// characters into spaces; drop everything outside [a-z0-9 ]; collapse
// whitespace. "Smith, John", "JOHN SMITH", and "John  Smith" all key
// identically.
func NormalizeKey(name string) string {
	s := ReorderLastFirst(name)
	s = strings.ToLower(s)
	if out, _, err := transform.String(markStripper, s); err == nil {
		s = out
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case strings.ContainsRune(Apostrophes, r):
			// removed entirely, no replacement
		case r == '.' || r == ',' || strings.ContainsRune(hyphens, r):
			b.WriteByte(' ')
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == ' ':
			b.WriteRune(r)
		}
	}
	return normalizeSpace(b.String())
}

// Parse splits a paper's raw authors field into individual author name
// strings. It never fails: a missing field yields nil, and empty fragments
// are dropped. Duplicates are preserved; deduplication happens during
// canonicalization, not parsing.
//
// For a list-valued field each element is parsed independently and the
// results are flattened in order.
func Parse(f paper.AuthorsField) []string {
	switch f.Kind() {
	case paper.AuthorsSingle:
		return parseOne(f.Single())
	case paper.AuthorsList:
		var names []string
		for _, s := range f.List() {
			names = append(names, parseOne(s)...)
		}
		return names
	default:
		return nil
	}
}

// parseOne splits a single raw authors string.
//
// Separator precedence: semicolon beats comma beats the word "and", and
// "and" is only consulted when the string has no comma at all. That keeps
// "Smith, John; Doe, Jane" intact and stops "A, B, and C" from being
// split on both separators at once — the trailing token comes out as
// "and C", a known quirk preserved for compatibility with existing data.
func parseOne(value string) []string {
	s := normalizeSpace(DecodeEntities(value))
	if s == "" {
		return nil
	}

	var parts []string
	switch {
	case strings.Contains(s, ";"):
		parts = strings.Split(s, ";")
	case !strings.Contains(s, ",") && andRe.MatchString(s):
		parts = andRe.Split(s, -1)
	default:
		parts = strings.Split(s, ",")
	}

	names := make([]string, 0, len(parts))
	for _, part := range parts {
		name := normalizeSpace(ReorderLastFirst(part))
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// NameForm classifies the shape of a display name.
type NameForm int

const (
	// FullName is a name whose first token is a spelled-out given name
	// (or a single-token name).
	FullName NameForm = iota
	// InitialForm is a name whose first token is a single letter, such as
	// "C. Dürr".
	InitialForm
)

// Meta holds the derived metadata the canonicalizer merges on.
type Meta struct {
	Form         NameForm
	FirstInitial string // lowercased first rune of the first token, diacritics intact
	LastNameKey  string // comparison key of the last token
}

// Classify reports whether a display name is initial-only or full. A name
// is initial-only when it has at least two tokens and the first token is
// exactly one alphabetic character once dots are removed.
func Classify(display string) NameForm {
	tokens := tokenize(display)
	if len(tokens) < 2 {
		return FullName
	}
	first := tokens[0]
	if utf8.RuneCountInString(first) != 1 {
		return FullName
	}
	r, _ := utf8.DecodeRuneInString(first)
	if !unicode.IsLetter(r) {
		return FullName
	}
	return InitialForm
}

// DeriveMeta computes the merge metadata for a display name. The zero Meta
// is returned for an empty name.
func DeriveMeta(display string) Meta {
	tokens := tokenize(display)
	if len(tokens) == 0 {
		return Meta{}
	}
	first, _ := utf8.DecodeRuneInString(tokens[0])
	initial := string(unicode.ToLower(first))
	return Meta{
		Form:         Classify(display),
		FirstInitial: initial,
		LastNameKey:  NormalizeKey(tokens[len(tokens)-1]),
	}
}

// tokenize splits a display name into tokens with dots removed, so "C."
// and "C" tokenize the same way.
func tokenize(display string) []string {
	return strings.Fields(strings.ReplaceAll(display, ".", " "))
}
