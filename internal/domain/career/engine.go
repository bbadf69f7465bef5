package career

import (
	"slices"
	"sort"
)

// Input is one prediction request. Callers validate presence of fields; the
// engine accepts any value.
type Input struct {
	Degree     string   `json:"degree"`
	Skills     []string `json:"skills"`
	Experience int      `json:"experience"`
}

type Prediction struct {
	CareerRole         Role            `json:"careerRole"`
	Probability        float64         `json:"probability"`
	Confidence         ConfidenceLabel `json:"confidence"`
	DegreeCategory     DegreeCategory  `json:"degreeCategory"`
	MatchScore         int             `json:"matchScore"`
	SalaryRange        SalaryRange     `json:"salaryRange"`
	AlternativeCareers []Alternative   `json:"alternativeCareers"`
}

// Result is everything the engine reports for one Input.
type Result struct {
	Prediction Prediction     `json:"prediction"`
	SkillGap   SkillGapReport `json:"skillGap"`
	Insights   Insights       `json:"insights"`
}

// Engine runs predictions against one Catalog. It holds no mutable state and
// is safe for concurrent use.
type Engine struct {
	catalog *Catalog
}

func NewEngine(catalog *Catalog) *Engine {
	if catalog == nil {
		catalog, _ = NewCatalog(CatalogData{})
	}
	return &Engine{catalog: catalog}
}

func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Predict scores every catalog role, picks the best one and derives salary,
// skill gap and insights for it. It never fails: an empty catalog yields the
// Generalist prediction.
func (e *Engine) Predict(in Input) Result {
	experience := max(in.Experience, 0)
	c := e.catalog
	category := c.ClassifyDegree(in.Degree)

	ranked := e.rank(in.Skills, experience, category)
	if len(ranked) == 0 {
		return e.generalist(in, experience, category)
	}

	top := ranked[0]
	conf := Calibrate(top, experience)

	gap := c.AnalyzeSkillGap(top.Role, in.Skills)
	return Result{
		Prediction: Prediction{
			CareerRole:         top.Role,
			Probability:        conf,
			Confidence:         LabelConfidence(conf),
			DegreeCategory:     category,
			MatchScore:         int(top.Score),
			SalaryRange:        c.EstimateSalary(top.Role, experience),
			AlternativeCareers: Alternatives(ranked),
		},
		SkillGap: gap,
		Insights: GenerateInsights(top.Role, experience, gap.OverallMatch),
	}
}

func (e *Engine) generalist(in Input, experience int, category DegreeCategory) Result {
	gap := analyzeSkillGap(RoleGeneralist, nil, in.Skills)
	return Result{
		Prediction: Prediction{
			CareerRole:         RoleGeneralist,
			Probability:        GeneralistConfidence,
			Confidence:         LabelConfidence(GeneralistConfidence),
			DegreeCategory:     category,
			SalaryRange:        e.catalog.EstimateSalary(RoleGeneralist, experience),
			AlternativeCareers: make([]Alternative, 0),
		},
		SkillGap: gap,
		Insights: GenerateInsights(RoleGeneralist, experience, gap.OverallMatch),
	}
}

// ScoreAll returns every role's score for in, ranked.
func (e *Engine) ScoreAll(in Input) []RoleScore {
	return e.rank(in.Skills, max(in.Experience, 0), e.catalog.ClassifyDegree(in.Degree))
}

// rank scores the full catalog. Degree candidates only earn a bonus; no role
// is skipped.
func (e *Engine) rank(skills []string, experience int, category DegreeCategory) []RoleScore {
	c := e.catalog
	scores := make([]RoleScore, 0, len(c.roles))
	for _, r := range c.roles {
		scores = append(scores, c.ScoreRole(r, skills, experience, category))
	}
	return Rank(scores)
}

// Skills lists every required skill in the catalog once, sorted
// case-insensitively.
func (e *Engine) Skills() []string {
	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, r := range e.catalog.roles {
		for _, s := range e.catalog.requirements[r] {
			k := fold(s)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return fold(out[i]) < fold(out[j]) })
	return out
}

// RoleSummary describes a catalog role.
type RoleSummary struct {
	Role           Role       `json:"role"`
	SalaryBand     SalaryBand `json:"salaryBand"`
	RequiredSkills []string   `json:"requiredSkills"`
}

// Roles lists the catalog roles in catalog order.
func (e *Engine) Roles() []RoleSummary {
	out := make([]RoleSummary, 0, len(e.catalog.roles))
	for _, r := range e.catalog.roles {
		out = append(out, RoleSummary{
			Role:           r,
			SalaryBand:     e.catalog.SalaryBand(r),
			RequiredSkills: slices.Clone(e.catalog.requirements[r]),
		})
	}
	return out
}
