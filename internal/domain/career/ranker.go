package career

import (
	"cmp"
	"math"
	"slices"
)

// ConfidenceLabel is the human-readable bucket of a confidence value.
type ConfidenceLabel string

const (
	ConfidenceVeryHigh ConfidenceLabel = "Very High"
	ConfidenceHigh     ConfidenceLabel = "High"
	ConfidenceMedium   ConfidenceLabel = "Medium"
	ConfidenceLow      ConfidenceLabel = "Low"
)

const (
	confidenceFloor     = 0.20
	confidenceCeil      = 0.95
	seniorConfidenceCap = 0.99
	juniorConfidenceMin = 0.15

	// GeneralistConfidence is reported when there are no roles to rank.
	GeneralistConfidence = 0.1

	maxAlternatives     = 3
	alternativeMinScore = 20
	alternativeFloor    = 0.10
	alternativeCeil     = 0.80
)

// Alternative is a runner-up role.
type Alternative struct {
	Role        Role    `json:"role"`
	Probability float64 `json:"probability"`
	MatchScore  int     `json:"matchScore"`
}

// Rank returns scores ordered by Score descending. Ties keep their input order.
func Rank(scores []RoleScore) []RoleScore {
	out := slices.Clone(scores)
	slices.SortStableFunc(out, func(a, b RoleScore) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return out
}

// RawConfidence is match strength times requirement coverage.
func RawConfidence(s RoleScore) float64 {
	return (s.Score / 100) * (float64(s.MatchedSkills) / float64(max(s.RequiredSkills, 1)))
}

// Calibrate turns the top score into a confidence in 0.15..0.99. The raw value is
// clamped to 0.20..0.95, then boosted for seniors with a strong match or
// discounted for beginners with a weak one.
func Calibrate(top RoleScore, experience int) float64 {
	conf := clampFloat(RawConfidence(top), confidenceFloor, confidenceCeil)
	switch {
	case experience >= 5 && top.Score > 60:
		conf = math.Min(conf*1.1, seniorConfidenceCap)
	case experience < 1 && top.Score < 40:
		conf = math.Max(conf*0.8, juniorConfidenceMin)
	}
	return conf
}

// LabelConfidence buckets a confidence value.
func LabelConfidence(conf float64) ConfidenceLabel {
	switch {
	case conf > 0.85:
		return ConfidenceVeryHigh
	case conf > 0.70:
		return ConfidenceHigh
	case conf > 0.40:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// Alternatives picks up to three runners-up from ranked (top entry excluded)
// whose score exceeds 20.
func Alternatives(ranked []RoleScore) []Alternative {
	out := make([]Alternative, 0, maxAlternatives)
	if len(ranked) < 2 {
		return out
	}
	for _, s := range ranked[1:] {
		if len(out) == maxAlternatives {
			break
		}
		if s.Score <= alternativeMinScore {
			continue
		}
		p := clampFloat(RawConfidence(s), alternativeFloor, alternativeCeil)
		out = append(out, Alternative{
			Role:        s.Role,
			Probability: round2(p),
			MatchScore:  int(s.Score),
		})
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
