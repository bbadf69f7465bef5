package career

// DegreeMatchThreshold is the similarity a degree must exceed to adopt a category.
const DegreeMatchThreshold = 70

// ClassifyDegree soft-matches free-text degree input to a category. Ties go to
// the category listed first; anything at or below the threshold is Other.
func (c *Catalog) ClassifyDegree(degree string) DegreeCategory {
	best := DegreeOther
	bestScore := -1
	for _, cat := range c.degrees {
		s := c.Similarity(degree, string(cat))
		if s > bestScore {
			bestScore = s
			best = cat
		}
	}
	if bestScore > DegreeMatchThreshold {
		return best
	}
	return DegreeOther
}
