package career

const compareSkillLimit = 5

type CareerProfile struct {
	Role            Role       `json:"role"`
	SalaryBand      SalaryBand `json:"salaryBand"`
	MarketDemand    string     `json:"marketDemand"`
	GrowthPotential string     `json:"growthPotential"`
	RequiredSkills  []string   `json:"requiredSkills"`
}

// Comparison sets two roles side by side.
type Comparison struct {
	First            CareerProfile `json:"career1"`
	Second           CareerProfile `json:"career2"`
	SalaryDifference int           `json:"salaryDifference"`
	HigherPaying     Role          `json:"higherPaying"`
	SharedSkills     []string      `json:"sharedSkills"`
}

// Compare contrasts two roles by salary, demand, growth and leading
// requirements. Growth is rated as for a newcomer with no matched skills. On
// equal average salary the first role is reported as higher paying.
func (e *Engine) Compare(a, b Role) Comparison {
	pa := e.profile(a)
	pb := e.profile(b)

	diff := pa.SalaryBand.Avg - pb.SalaryBand.Avg
	higher := a
	if diff < 0 {
		higher = b
		diff = -diff
	}

	return Comparison{
		First:            pa,
		Second:           pb,
		SalaryDifference: diff,
		HigherPaying:     higher,
		SharedSkills:     sharedSkills(e.catalog.requirements[a], e.catalog.requirements[b]),
	}
}

func (e *Engine) profile(r Role) CareerProfile {
	skills := e.catalog.RequiredSkills(r)
	if len(skills) > compareSkillLimit {
		skills = skills[:compareSkillLimit]
	}
	if skills == nil {
		skills = make([]string, 0)
	}
	return CareerProfile{
		Role:            r,
		SalaryBand:      e.catalog.SalaryBand(r),
		MarketDemand:    MarketDemand(r),
		GrowthPotential: GrowthPotential(r, 0, 0),
		RequiredSkills:  skills,
	}
}

func sharedSkills(a, b []string) []string {
	inB := make(map[string]struct{}, len(b))
	for _, s := range b {
		inB[fold(s)] = struct{}{}
	}
	out := make([]string, 0)
	for _, s := range a {
		if _, ok := inB[fold(s)]; ok {
			out = append(out, s)
		}
	}
	return out
}
