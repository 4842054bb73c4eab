package parser

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Match is one scored vocabulary hit.
type Match struct {
	Canonical string
	Alias     string
	Score     float64
	Source    string
}

type vocabEntry struct {
	canonical string
	alias     string
	primary   bool
}

// Vocabulary matches free-form user input against a fixed set of terms,
// tolerating typos, prefixes and aliases. Element tags, minigame names and
// similar closed name sets all resolve through one of these.
type Vocabulary struct {
	entries []vocabEntry
}

// NewVocabulary builds a vocabulary where each term is its own canonical
// form.
func NewVocabulary(terms ...string) *Vocabulary {
	v := &Vocabulary{}
	for _, term := range terms {
		v.Register(term)
	}
	return v
}

// Register adds a canonical term and optional aliases that resolve to it.
func (v *Vocabulary) Register(canonical string, aliases ...string) {
	primary := normaliseInput(canonical)
	if primary == "" {
		return
	}
	v.entries = append(v.entries, vocabEntry{canonical: canonical, alias: primary, primary: true})
	for _, a := range aliases {
		n := normaliseInput(a)
		if n == "" || n == primary {
			continue
		}
		v.entries = append(v.entries, vocabEntry{canonical: canonical, alias: n})
	}
}

// MatchAll scores raw against every term and returns hits sorted best first,
// one per canonical term.
func (v *Vocabulary) MatchAll(raw string) []Match {
	token := normaliseInput(raw)
	if token == "" {
		return nil
	}

	matches := make([]Match, 0, len(v.entries))
	for _, entry := range v.entries {
		var score float64
		var source string
		switch {
		case token == entry.alias:
			score, source = 1.0, "exact"
			if !entry.primary {
				score, source = 0.97, "alias"
			}
		case strings.HasPrefix(entry.alias, token) && len(token) >= 2:
			score, source = 0.9, "prefix"
		default:
			dist := levenshtein.ComputeDistance(token, entry.alias)
			if dist > levenshteinLimit(len(entry.alias)) {
				continue
			}
			score, source = 0.72-(0.08*float64(dist)), "lev"
			if !entry.primary {
				score += 0.03
			}
		}
		matches = append(matches, Match{
			Canonical: entry.canonical,
			Alias:     entry.alias,
			Score:     score,
			Source:    source,
		})
	}
	if len(matches) == 0 {
		return nil
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score == matches[j].Score {
			return matches[i].Canonical < matches[j].Canonical
		}
		return matches[i].Score > matches[j].Score
	})

	deduped := matches[:0]
	seen := make(map[string]bool, len(matches))
	for _, m := range matches {
		if seen[m.Canonical] {
			continue
		}
		seen[m.Canonical] = true
		deduped = append(deduped, m)
	}
	return deduped
}

// Resolve maps raw to a single canonical term. It reports false when nothing
// scores well enough or when the two best hits are too close to call.
func (v *Vocabulary) Resolve(raw string) (string, bool) {
	matches := v.MatchAll(raw)
	if len(matches) == 0 || matches[0].Score < 0.5 {
		return "", false
	}
	if len(matches) > 1 && (matches[0].Score-matches[1].Score) < 0.05 && matches[1].Score > 0.6 {
		return "", false
	}
	return matches[0].Canonical, true
}

// Suggest returns up to max canonical terms worth offering as corrections
// for raw.
func (v *Vocabulary) Suggest(raw string, max int) []string {
	if max <= 0 {
		return nil
	}
	matches := v.MatchAll(raw)
	suggestions := make([]string, 0, max)
	for _, m := range matches {
		suggestions = append(suggestions, m.Canonical)
		if len(suggestions) >= max {
			break
		}
	}
	return suggestions
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
