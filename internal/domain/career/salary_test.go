package career

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExperienceMultiplier(t *testing.T) {
	tests := []struct {
		years int
		want  float64
	}{
		{0, 0.8}, {1, 0.8}, {2, 1.0}, {3, 1.0}, {4, 1.5}, {6, 1.5}, {7, 2.2}, {10, 2.2}, {11, 3.0}, {30, 3.0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExperienceMultiplier(tt.years), "years %d", tt.years)
	}
}

func TestEstimateSalary(t *testing.T) {
	c := DefaultCatalog()

	assert.Equal(t,
		SalaryRange{Min: 80000, Max: 180000, Average: 130000, Currency: "USD"},
		c.EstimateSalary(RoleDataScientist, 2))

	assert.Equal(t,
		SalaryRange{Min: 154000, Max: 330000, Average: 242000, Currency: "USD"},
		c.EstimateSalary(RoleSoftwareEngineer, 8))
}

func TestEstimateSalary_UnknownRoleUsesDefaultBand(t *testing.T) {
	c := DefaultCatalog()

	assert.Equal(t,
		SalaryRange{Min: 48000, Max: 96000, Average: 72000, Currency: "USD"},
		c.EstimateSalary(RoleGeneralist, 0))
}
