package career

// SalaryRange is an experience-adjusted salary estimate.
type SalaryRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Average  int    `json:"average"`
	Currency string `json:"currency"`
}

// ExperienceMultiplier steps the salary band by years of experience.
func ExperienceMultiplier(years int) float64 {
	switch {
	case years <= 1:
		return 0.8
	case years <= 3:
		return 1.0
	case years <= 6:
		return 1.5
	case years <= 10:
		return 2.2
	default:
		return 3.0
	}
}

// EstimateSalary scales the role's band by ExperienceMultiplier. Roles the
// catalog does not price use DefaultSalaryBand.
func (c *Catalog) EstimateSalary(role Role, experience int) SalaryRange {
	band := c.SalaryBand(role)
	m := ExperienceMultiplier(experience)
	return SalaryRange{
		Min:      int(float64(band.Min) * m),
		Max:      int(float64(band.Max) * m),
		Average:  int(float64(band.Avg) * m),
		Currency: Currency,
	}
}
