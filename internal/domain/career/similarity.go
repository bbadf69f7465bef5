package career

import "strings"

const (
	scoreExact     = 100
	scoreCanonical = 95
	scoreContains  = 85
)

// Similarity scores a and b on a 0..100 scale. The first matching tier wins:
//
//  1. equal ignoring case and surrounding space: 100
//  2. same canonical skill: 95
//  3. one contains the other: 85
//  4. otherwise Jaccard overlap of the whitespace-separated word sets
//
// Blank input scores 0. Every tier is symmetric in a and b.
func (c *Catalog) Similarity(a, b string) int {
	fa, fb := fold(a), fold(b)
	if fa == "" || fb == "" {
		return 0
	}
	if fa == fb {
		return scoreExact
	}
	if c.Normalize(fa) == c.Normalize(fb) {
		return scoreCanonical
	}
	if strings.Contains(fa, fb) || strings.Contains(fb, fa) {
		return scoreContains
	}
	return tokenJaccard(fa, fb)
}

func tokenJaccard(a, b string) int {
	ta := tokenSet(a)
	tb := tokenSet(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	inter := 0
	for t := range ta {
		if _, ok := tb[t]; ok {
			inter++
		}
	}
	union := len(ta) + len(tb) - inter
	return int(100 * float64(inter) / float64(union))
}

func tokenSet(s string) map[string]struct{} {
	fields := strings.Fields(s)
	out := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		out[f] = struct{}{}
	}
	return out
}
