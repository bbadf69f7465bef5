package seeder

import (
	"context"
	"fmt"

	"career-compass/internal/database"
	"career-compass/internal/domain/career"
)

var catalogSchema = []struct {
	table   string
	columns []string
}{
	{"career_roles", []string{"name", "position", "salary_min", "salary_max", "salary_avg"}},
	{"career_role_skills", []string{"role", "position", "skill"}},
	{"skill_synonyms", []string{"canonical", "position"}},
	{"skill_synonym_variants", []string{"canonical", "position", "variant"}},
	{"degree_categories", []string{"name", "position"}},
	{"degree_category_roles", []string{"category", "role", "position"}},
}

// Children first so foreign keys never block the wipe.
var catalogWipeOrder = []string{
	"degree_category_roles",
	"degree_categories",
	"skill_synonym_variants",
	"skill_synonyms",
	"career_role_skills",
	"career_roles",
}

// CatalogSeeder replaces the stored catalog with Data in one transaction.
// Data is validated first so storage never holds a catalog the engine rejects.
type CatalogSeeder struct {
	Data career.CatalogData
}

func (CatalogSeeder) Name() string { return "catalog" }

func (s CatalogSeeder) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return database.ErrNilDB
	}
	if _, err := career.NewCatalog(s.Data); err != nil {
		return err
	}
	for _, t := range catalogSchema {
		if err := EnsureTableColumns(ctx, db, t.table, t.columns...); err != nil {
			return err
		}
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, table := range catalogWipeOrder {
		if _, err := tx.Exec(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for i, rp := range s.Data.Roles {
		if _, err := tx.Exec(ctx,
			`INSERT INTO career_roles (name, position, salary_min, salary_max, salary_avg) VALUES ($1, $2, $3, $4, $5)`,
			string(rp.Role), i, rp.Salary.Min, rp.Salary.Max, rp.Salary.Avg,
		); err != nil {
			return fmt.Errorf("insert role %s: %w", rp.Role, err)
		}
		for j, skill := range rp.RequiredSkills {
			if _, err := tx.Exec(ctx,
				`INSERT INTO career_role_skills (role, position, skill) VALUES ($1, $2, $3)`,
				string(rp.Role), j, skill,
			); err != nil {
				return fmt.Errorf("insert skill %s for %s: %w", skill, rp.Role, err)
			}
		}
	}

	for i, sc := range s.Data.Synonyms {
		if _, err := tx.Exec(ctx,
			`INSERT INTO skill_synonyms (canonical, position) VALUES ($1, $2)`,
			career.Fold(sc.Canonical), i,
		); err != nil {
			return fmt.Errorf("insert synonym %s: %w", sc.Canonical, err)
		}
		for j, v := range sc.Variants {
			if career.Fold(v) == "" {
				continue
			}
			if _, err := tx.Exec(ctx,
				`INSERT INTO skill_synonym_variants (canonical, position, variant) VALUES ($1, $2, $3)`,
				career.Fold(sc.Canonical), j, career.Fold(v),
			); err != nil {
				return fmt.Errorf("insert variant %s: %w", v, err)
			}
		}
	}

	for i, dp := range s.Data.Degrees {
		if _, err := tx.Exec(ctx,
			`INSERT INTO degree_categories (name, position) VALUES ($1, $2)`,
			string(dp.Category), i,
		); err != nil {
			return fmt.Errorf("insert degree %s: %w", dp.Category, err)
		}
		for j, r := range dp.Roles {
			if _, err := tx.Exec(ctx,
				`INSERT INTO degree_category_roles (category, role, position) VALUES ($1, $2, $3)`,
				string(dp.Category), string(r), j,
			); err != nil {
				return fmt.Errorf("insert degree role %s/%s: %w", dp.Category, r, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
