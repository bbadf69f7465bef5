package career

import (
	"strings"
	"unicode"
)

const maxPhraseWords = 4

// ExtractSkills finds catalog skills mentioned in free text such as a resume.
// A skill matches when a run of up to four words normalizes to its canonical
// form, so "JS", "k8s" and "machine-learning" are reported under their catalog
// names. Matches are whole words only. The result follows Skills order.
func (e *Engine) ExtractSkills(text string) []string {
	c := e.catalog
	vocab := e.Skills()
	wanted := make(map[string]struct{}, len(vocab))
	for _, s := range vocab {
		wanted[c.Normalize(s)] = struct{}{}
	}

	words := skillTokens(text)
	found := make(map[string]struct{})
	for i := range words {
		for n := 1; n <= maxPhraseWords && i+n <= len(words); n++ {
			key := c.Normalize(strings.Join(words[i:i+n], " "))
			if _, ok := wanted[key]; ok {
				found[key] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(found))
	for _, s := range vocab {
		key := c.Normalize(s)
		if _, ok := found[key]; ok {
			out = append(out, s)
			delete(found, key)
		}
	}
	return out
}

// skillTokens splits folded text into words. Characters that appear inside
// skill names ("c++", "node.js", "ci/cd", "scikit-learn") stay in the word;
// sentence punctuation at either end is dropped.
func skillTokens(text string) []string {
	fields := strings.FieldsFunc(fold(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !strings.ContainsRune("+#./-", r)
	})
	out := fields[:0]
	for _, f := range fields {
		if f = strings.Trim(f, ".-/"); f != "" {
			out = append(out, f)
		}
	}
	return out
}
