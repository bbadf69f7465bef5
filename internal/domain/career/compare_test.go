package career

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	e := NewEngine(DefaultCatalog())

	got := e.Compare(RoleDataAnalyst, RoleAIEngineer)

	assert.Equal(t, RoleDataAnalyst, got.First.Role)
	assert.Equal(t, RoleAIEngineer, got.Second.Role)
	assert.Equal(t, 67500, got.SalaryDifference)
	assert.Equal(t, RoleAIEngineer, got.HigherPaying)
	assert.Equal(t, []string{"Python"}, got.SharedSkills)

	assert.Equal(t, LevelMedium, got.First.MarketDemand)
	assert.Equal(t, LevelMedium, got.First.GrowthPotential)
	assert.Equal(t, []string{"SQL", "Excel", "Python", "Tableau", "Statistics"}, got.First.RequiredSkills)

	assert.Equal(t, LevelHigh, got.Second.MarketDemand)
	assert.Equal(t, LevelVeryHigh, got.Second.GrowthPotential)
	assert.Equal(t, SalaryBand{Min: 100000, Max: 200000, Avg: 150000}, got.Second.SalaryBand)
}

func TestCompare_TieFavoursFirst(t *testing.T) {
	e := NewEngine(DefaultCatalog())

	got := e.Compare(RoleDataScientist, RoleResearchScientist)

	assert.Equal(t, 0, got.SalaryDifference)
	assert.Equal(t, RoleDataScientist, got.HigherPaying)
	assert.Equal(t, []string{"Python", "Machine Learning", "Statistics", "Deep Learning", "NLP"}, got.SharedSkills)
}

func TestCompare_UnpricedRole(t *testing.T) {
	e := NewEngine(DefaultCatalog())

	got := e.Compare(RoleGeneralist, RoleDataAnalyst)

	assert.Equal(t, DefaultSalaryBand, got.First.SalaryBand)
	assert.NotNil(t, got.First.RequiredSkills)
	assert.Empty(t, got.First.RequiredSkills)
	assert.Empty(t, got.SharedSkills)
	assert.Equal(t, RoleGeneralist, got.HigherPaying)
	assert.Equal(t, 7500, got.SalaryDifference)
}
