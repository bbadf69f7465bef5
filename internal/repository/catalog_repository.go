package repository

import (
	"context"
	"errors"
	"fmt"

	"career-compass/internal/database"
	"career-compass/internal/domain/career"
)

var ErrCatalogEmpty = errors.New("catalog tables are empty")

type CatalogRepository interface {
	Load(ctx context.Context) (career.CatalogData, error)
}

type PostgresCatalogRepository struct {
	db database.DB
}

func NewPostgresCatalogRepository(db database.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: db}
}

// Load reads every catalog table in its stored order. The result is raw data;
// career.NewCatalog validates it.
func (r *PostgresCatalogRepository) Load(ctx context.Context) (career.CatalogData, error) {
	if r == nil || r.db == nil {
		return career.CatalogData{}, database.ErrNilDB
	}

	roles, err := r.loadRoles(ctx)
	if err != nil {
		return career.CatalogData{}, fmt.Errorf("load roles: %w", err)
	}
	if len(roles) == 0 {
		return career.CatalogData{}, ErrCatalogEmpty
	}

	skills := map[string][]string{}
	err = r.queryPairs(ctx, `SELECT role, skill FROM career_role_skills ORDER BY role, position`, func(role, skill string) {
		skills[role] = append(skills[role], skill)
	})
	if err != nil {
		return career.CatalogData{}, fmt.Errorf("load role skills: %w", err)
	}
	for i := range roles {
		roles[i].RequiredSkills = skills[string(roles[i].Role)]
	}

	synonyms, err := r.loadSynonyms(ctx)
	if err != nil {
		return career.CatalogData{}, fmt.Errorf("load synonyms: %w", err)
	}

	degrees, err := r.loadDegrees(ctx)
	if err != nil {
		return career.CatalogData{}, fmt.Errorf("load degrees: %w", err)
	}

	return career.CatalogData{Roles: roles, Synonyms: synonyms, Degrees: degrees}, nil
}

func (r *PostgresCatalogRepository) loadRoles(ctx context.Context) ([]career.RoleProfile, error) {
	rows, err := r.db.Query(ctx, `SELECT name, salary_min, salary_max, salary_avg FROM career_roles ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]career.RoleProfile, 0)
	for rows.Next() {
		var name string
		var band career.SalaryBand
		if err := rows.Scan(&name, &band.Min, &band.Max, &band.Avg); err != nil {
			return nil, err
		}
		out = append(out, career.RoleProfile{Role: career.Role(name), Salary: band})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCatalogRepository) loadSynonyms(ctx context.Context) ([]career.SynonymClass, error) {
	var canonicals []string
	err := r.queryStrings(ctx, `SELECT canonical FROM skill_synonyms ORDER BY position`, func(s string) {
		canonicals = append(canonicals, s)
	})
	if err != nil {
		return nil, err
	}

	variants := map[string][]string{}
	err = r.queryPairs(ctx, `SELECT canonical, variant FROM skill_synonym_variants ORDER BY canonical, position`, func(canonical, variant string) {
		variants[canonical] = append(variants[canonical], variant)
	})
	if err != nil {
		return nil, err
	}

	out := make([]career.SynonymClass, 0, len(canonicals))
	for _, c := range canonicals {
		out = append(out, career.SynonymClass{Canonical: c, Variants: variants[c]})
	}
	return out, nil
}

func (r *PostgresCatalogRepository) loadDegrees(ctx context.Context) ([]career.DegreeProfile, error) {
	var names []string
	err := r.queryStrings(ctx, `SELECT name FROM degree_categories ORDER BY position`, func(s string) {
		names = append(names, s)
	})
	if err != nil {
		return nil, err
	}

	roles := map[string][]career.Role{}
	err = r.queryPairs(ctx, `SELECT category, role FROM degree_category_roles ORDER BY category, position`, func(category, role string) {
		roles[category] = append(roles[category], career.Role(role))
	})
	if err != nil {
		return nil, err
	}

	out := make([]career.DegreeProfile, 0, len(names))
	for _, n := range names {
		out = append(out, career.DegreeProfile{Category: career.DegreeCategory(n), Roles: roles[n]})
	}
	return out, nil
}

func (r *PostgresCatalogRepository) queryStrings(ctx context.Context, query string, fn func(string)) error {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return err
		}
		fn(s)
	}
	return rows.Err()
}

func (r *PostgresCatalogRepository) queryPairs(ctx context.Context, query string, fn func(a, b string)) error {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var a, b string
		if err := rows.Scan(&a, &b); err != nil {
			return err
		}
		fn(a, b)
	}
	return rows.Err()
}
