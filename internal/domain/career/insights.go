package career

// Demand and growth labels.
const (
	LevelVeryHigh = "Very High"
	LevelHigh     = "High"
	LevelMedium   = "Medium"
)

type Insights struct {
	MarketDemand    string   `json:"marketDemand"`
	GrowthPotential string   `json:"growthPotential"`
	Recommendations []string `json:"recommendations"`
	IndustryTrends  []string `json:"industryTrends"`
}

var highDemandRoles = map[Role]struct{}{
	RoleSoftwareEngineer:     {},
	RoleDataScientist:        {},
	RoleMLEngineer:           {},
	RoleAIEngineer:           {},
	RoleDevOpsEngineer:       {},
	RoleDataEngineer:         {},
	RoleCloudArchitect:       {},
	RoleCybersecurityAnalyst: {},
}

var emergingRoles = map[Role]struct{}{
	RoleAIEngineer:          {},
	RoleMLEngineer:          {},
	RoleBlockchainDeveloper: {},
}

var industryTrends = []string{
	"AI and Machine Learning integration is rapidly growing",
	"Cloud computing skills are in high demand",
	"Remote work opportunities continue to expand",
	"Emphasis on full-stack and cross-functional skills",
}

// MarketDemand is High for roles in the high-demand set, Medium otherwise.
func MarketDemand(role Role) string {
	if _, ok := highDemandRoles[role]; ok {
		return LevelHigh
	}
	return LevelMedium
}

// GrowthPotential rates how far a person can go from here in role.
func GrowthPotential(role Role, experience, skillMatch int) string {
	if _, ok := emergingRoles[role]; ok {
		return LevelVeryHigh
	}
	if experience < 3 && skillMatch > 60 {
		return LevelHigh
	}
	return LevelMedium
}

// GenerateInsights derives qualitative labels and advice for the predicted role.
// skillMatch is the skill gap's overall match percentage.
func GenerateInsights(role Role, experience, skillMatch int) Insights {
	recs := make([]string, 0, 5)
	if skillMatch < 70 {
		recs = append(recs, "Focus on acquiring missing critical skills")
	}
	if experience < 2 {
		recs = append(recs,
			"Build a strong portfolio of projects",
			"Contribute to open-source projects",
		)
	}
	recs = append(recs,
		"Network with professionals in your target role",
		"Stay updated with industry trends and technologies",
	)

	trends := make([]string, len(industryTrends))
	copy(trends, industryTrends)

	return Insights{
		MarketDemand:    MarketDemand(role),
		GrowthPotential: GrowthPotential(role, experience, skillMatch),
		Recommendations: recs,
		IndustryTrends:  trends,
	}
}
