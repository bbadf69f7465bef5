package career

import "fmt"

// Importance tiers for missing skills.
type Importance string

const (
	ImportanceCritical   Importance = "Critical"
	ImportanceImportant  Importance = "Important"
	ImportanceNiceToHave Importance = "Nice-to-have"
)

const (
	gapRequiredLimit  = 12
	gapRecommendLimit = 5
	gapImpactBase     = 20.0
	gapImpactStep     = 1.5
	gapCriticalCount  = 3
	gapImportantCount = 3
)

type MissingSkill struct {
	Skill           string     `json:"skill"`
	Importance      Importance `json:"importance"`
	ImpactOnSuccess float64    `json:"impactOnSuccess"`
}

type RecommendedSkill struct {
	Skill    string `json:"skill"`
	Reason   string `json:"reason"`
	Priority int    `json:"priority"`
}

// SkillGapReport compares a user's skills with the leading requirements of a role.
type SkillGapReport struct {
	MatchingSkills    []string           `json:"matchingSkills"`
	MissingSkills     []MissingSkill     `json:"missingSkills"`
	RecommendedSkills []RecommendedSkill `json:"recommendedSkills"`
	OverallMatch      int                `json:"overallMatch"`
}

// AnalyzeSkillGap checks the first twelve requirements of role against
// userSkills. Unlike ScoreRole, a requirement only counts as held on an exact
// case-insensitive match: synonyms and partial matches are reported as gaps.
func (c *Catalog) AnalyzeSkillGap(role Role, userSkills []string) SkillGapReport {
	return analyzeSkillGap(role, c.requirements[role], userSkills)
}

func analyzeSkillGap(role Role, required []string, userSkills []string) SkillGapReport {
	out := SkillGapReport{
		MatchingSkills:    make([]string, 0),
		MissingSkills:     make([]MissingSkill, 0),
		RecommendedSkills: make([]RecommendedSkill, 0),
	}

	if len(required) > gapRequiredLimit {
		required = required[:gapRequiredLimit]
	}

	held := make(map[string]struct{}, len(userSkills))
	for _, s := range userSkills {
		if k := fold(s); k != "" {
			held[k] = struct{}{}
		}
	}

	for _, req := range required {
		if _, ok := held[fold(req)]; ok {
			out.MatchingSkills = append(out.MatchingSkills, req)
			continue
		}
		idx := len(out.MissingSkills)
		out.MissingSkills = append(out.MissingSkills, MissingSkill{
			Skill:           req,
			Importance:      importanceAt(idx),
			ImpactOnSuccess: gapImpactBase - gapImpactStep*float64(idx),
		})
	}

	for i, ms := range out.MissingSkills {
		if i == gapRecommendLimit {
			break
		}
		out.RecommendedSkills = append(out.RecommendedSkills, RecommendedSkill{
			Skill:    ms.Skill,
			Reason:   fmt.Sprintf("Essential for %s role", role),
			Priority: gapRecommendLimit - i,
		})
	}

	out.OverallMatch = 100 * len(out.MatchingSkills) / max(len(required), 1)
	return out
}

func importanceAt(idx int) Importance {
	switch {
	case idx < gapCriticalCount:
		return ImportanceCritical
	case idx < gapCriticalCount+gapImportantCount:
		return ImportanceImportant
	default:
		return ImportanceNiceToHave
	}
}
