package career

import "math"

const (
	// SkillMatchThreshold is the minimum similarity for a required skill to count as held.
	SkillMatchThreshold = 70

	degreeBonus        = 2.0
	experienceBonusPer = 0.3
	experienceBonusCap = 3.0
)

// RoleScore is the per-request result of scoring one role.
type RoleScore struct {
	Role           Role    `json:"role"`
	Score          float64 `json:"score"`
	MatchedSkills  int     `json:"matchedSkills"`
	RequiredSkills int     `json:"requiredSkills"`
}

// PositionWeight is the importance of the required skill at index i.
func PositionWeight(i int) float64 {
	switch {
	case i < 5:
		return 2.5
	case i < 10:
		return 1.8
	case i < 15:
		return 1.2
	default:
		return 1.0
	}
}

// ExperienceBonus is min(years*0.3, 3.0); negative years earn nothing.
func ExperienceBonus(years int) float64 {
	if years <= 0 {
		return 0
	}
	return math.Min(float64(years)*experienceBonusPer, experienceBonusCap)
}

// ScoreRole computes the weighted skill match of userSkills against role. The
// degree bonus applies when role is a candidate of category. The result is
// normalized against the total requirement weight and clamped to 0..100; a
// role without requirements scores 0.
func (c *Catalog) ScoreRole(role Role, userSkills []string, experience int, category DegreeCategory) RoleScore {
	required := c.requirements[role]
	out := RoleScore{Role: role, RequiredSkills: len(required)}
	if len(required) == 0 {
		return out
	}

	skills := dedupeSkills(userSkills)

	var acc, totalWeight float64
	for i, req := range required {
		w := PositionWeight(i)
		totalWeight += w

		best := 0
		for _, us := range skills {
			s := c.Similarity(req, us)
			if s > best {
				best = s
			}
			if best == scoreExact {
				break
			}
		}
		if best >= SkillMatchThreshold {
			acc += float64(best) / 100 * w
			out.MatchedSkills++
		}
	}

	if c.isCandidate(category, role) {
		acc += degreeBonus
	}
	acc += ExperienceBonus(experience)

	out.Score = clampFloat(100*acc/totalWeight, 0, 100)
	return out
}

// dedupeSkills drops blanks and case-insensitive duplicates, keeping first spellings.
func dedupeSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		k := fold(s)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, s)
	}
	return out
}

func clampFloat(v, minV, maxV float64) float64 {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
