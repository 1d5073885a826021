// Package canonical merges author-name variants observed across the paper
// corpus into canonical author identities.
//
// Merging is corpus-dependent and runs in two phases: exact comparison-key
// matches collapse trivially, then an initial-only name ("C. Dürr") is
// promoted to a full name ("Christoph Dürr") when exactly one full name in
// the corpus shares its last name and first initial. Ambiguity always
// under-merges: an initial-only name with zero or several full-name
// candidates stays its own canonical identity. Merges hold within one
// build only; rebuilding on a different corpus may decide differently.
package canonical

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alps-papers/alpstool/internal/authorname"
	"github.com/alps-papers/alpstool/internal/paper"
)

// Canonicalizer maps observed author-name variants to canonical keys and
// canonical keys to display names. It is immutable after Build: construct
// it once per corpus snapshot, share it by pointer, and rebuild from
// scratch if the corpus changes.
type Canonicalizer struct {
	merges       map[string]string   // initial-only key -> full-name key
	displayByKey map[string]string   // comparison key -> preferred display string
	variantByKey map[string][]string // canonical key -> distinct observed displays
}

// initialMeta records the merge coordinates of the first initial-only
// occurrence of a comparison key.
type initialMeta struct {
	lastNameKey  string
	firstInitial string
}

// Build scans the corpus and constructs the merge and display tables.
// Malformed or missing authors fields contribute nothing; Build never
// fails.
func Build(papers []paper.Paper) *Canonicalizer {
	displayByKey := make(map[string]string)
	scoreByKey := make(map[string]float64)
	variantsByKey := make(map[string][]string)
	seenVariant := make(map[string]map[string]bool)

	initialOnly := make(map[string]initialMeta)
	var initialOrder []string
	// lastNameKey -> firstInitial -> set of full-name keys
	fullNameBuckets := make(map[string]map[string]map[string]bool)

	for _, p := range papers {
		for _, name := range authorname.Parse(p.Authors) {
			display := authorname.ReorderLastFirst(name)
			key := authorname.NormalizeKey(display)
			if key == "" {
				continue
			}

			// Higher-scoring display wins; the first occurrence seeds the
			// entry and keeps it on ties.
			score := preferenceScore(display)
			if prev, ok := scoreByKey[key]; !ok || score > prev {
				displayByKey[key] = display
				scoreByKey[key] = score
			}
			if seenVariant[key] == nil {
				seenVariant[key] = make(map[string]bool)
			}
			if !seenVariant[key][display] {
				seenVariant[key][display] = true
				variantsByKey[key] = append(variantsByKey[key], display)
			}

			meta := authorname.DeriveMeta(display)
			if meta.LastNameKey == "" || meta.FirstInitial == "" {
				continue
			}
			if meta.Form == authorname.InitialForm {
				if _, seen := initialOnly[key]; !seen {
					initialOnly[key] = initialMeta{meta.LastNameKey, meta.FirstInitial}
					initialOrder = append(initialOrder, key)
				}
			} else {
				byInitial := fullNameBuckets[meta.LastNameKey]
				if byInitial == nil {
					byInitial = make(map[string]map[string]bool)
					fullNameBuckets[meta.LastNameKey] = byInitial
				}
				bucket := byInitial[meta.FirstInitial]
				if bucket == nil {
					bucket = make(map[string]bool)
					byInitial[meta.FirstInitial] = bucket
				}
				bucket[key] = true
			}
		}
	}

	// Phase two: promote an initial-only key when its (last name, first
	// initial) bucket holds exactly one full-name key.
	merges := make(map[string]string)
	for _, key := range initialOrder {
		meta := initialOnly[key]
		bucket := fullNameBuckets[meta.lastNameKey][meta.firstInitial]
		if len(bucket) != 1 {
			continue
		}
		for full := range bucket {
			if full != key {
				merges[key] = full
			}
		}
	}

	// Fold the variants of merged keys into their targets so Variants
	// reports everything a canonical identity absorbed, in first-seen
	// order.
	for _, from := range initialOrder {
		to, ok := merges[from]
		if !ok {
			continue
		}
		for _, v := range variantsByKey[from] {
			if !seenVariant[to][v] {
				if seenVariant[to] == nil {
					seenVariant[to] = make(map[string]bool)
				}
				seenVariant[to][v] = true
				variantsByKey[to] = append(variantsByKey[to], v)
			}
		}
		delete(variantsByKey, from)
	}

	return &Canonicalizer{
		merges:       merges,
		displayByKey: displayByKey,
		variantByKey: variantsByKey,
	}
}

// Key returns the canonical key for an author-name variant: its comparison
// key, redirected through the initial-to-full merge table when a merge was
// decided at build time.
func (c *Canonicalizer) Key(name string) string {
	key := authorname.NormalizeKey(name)
	if target, ok := c.merges[key]; ok {
		return target
	}
	return key
}

// DisplayName returns the preferred display string for a canonical key.
// An unknown key is returned as-is rather than failing.
func (c *Canonicalizer) DisplayName(key string) string {
	if display, ok := c.displayByKey[key]; ok {
		return display
	}
	return key
}

// Variants returns the distinct observed display strings that resolve to
// the given canonical key, in first-seen order.
func (c *Canonicalizer) Variants(key string) []string {
	return c.variantByKey[key]
}

// preferenceScore ranks candidate display strings for one key. Fuller,
// properly-cased, accented spellings win over flattened ASCII ones.
func preferenceScore(s string) float64 {
	var score float64
	if strings.IndexFunc(s, unicode.IsUpper) >= 0 {
		score++
	}
	if strings.ContainsAny(s, authorname.Apostrophes) {
		score++
	}
	for _, r := range s {
		if r > 127 {
			score += 2
			break
		}
	}
	length := float64(utf8.RuneCountInString(s)) / 40
	if length > 2 {
		length = 2
	}
	return score + length
}
