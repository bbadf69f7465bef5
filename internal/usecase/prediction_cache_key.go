package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"

	"career-compass/internal/domain/career"
)

const predictionKeyPrefix = "predict:"

type predictionCacheKeyInput struct {
	Catalog    string   `json:"catalog"`
	Degree     string   `json:"degree"`
	Skills     []string `json:"skills"`
	Experience int      `json:"experience"`
}

// PredictionCacheKey hashes the catalog fingerprint and the parts of in that
// affect the result. Skill order, case and duplicates never change a
// prediction, so they do not change the key either.
func PredictionCacheKey(catalog string, in career.Input) string {
	seen := make(map[string]struct{}, len(in.Skills))
	skills := make([]string, 0, len(in.Skills))
	for _, s := range in.Skills {
		s = career.Fold(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		skills = append(skills, s)
	}
	sort.Strings(skills)

	k := predictionCacheKeyInput{
		Catalog:    catalog,
		Degree:     career.Fold(in.Degree),
		Skills:     skills,
		Experience: max(in.Experience, 0),
	}

	b, _ := json.Marshal(k)
	sum := sha256.Sum256(b)
	return predictionKeyPrefix + hex.EncodeToString(sum[:])
}
