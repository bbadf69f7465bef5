package dto

import "career-compass/internal/domain/career"

type PredictRequest struct {
	Degree     string   `json:"degree" validate:"required"`
	Skills     []string `json:"skills" validate:"required,max=200,dive,max=100"`
	Experience *int     `json:"experience" validate:"required,min=0"`
}

func (r PredictRequest) ToInput() career.Input {
	in := career.Input{Degree: r.Degree, Skills: r.Skills}
	if r.Experience != nil {
		in.Experience = *r.Experience
	}
	return in
}

type CompareRequest struct {
	Career1 string `json:"career1" validate:"required"`
	Career2 string `json:"career2" validate:"required"`
}

type ExtractSkillsRequest struct {
	Text string `json:"text" validate:"required,max=100000"`
}

// FieldError describes one failed validation rule.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

type SkillsResponse struct {
	Skills []string `json:"skills"`
	Total  int      `json:"total"`
}

type RolesResponse struct {
	Roles []career.RoleSummary `json:"roles"`
	Total int                  `json:"total"`
}

type HealthResponse struct {
	Status         string `json:"status"`
	Timestamp      string `json:"timestamp"`
	CatalogSource  string `json:"catalog_source"`
	Roles          int    `json:"roles"`
	CacheAvailable bool   `json:"cache_available"`
}
