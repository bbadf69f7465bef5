package repository

import (
	"context"
	"errors"
	"testing"

	"career-compass/internal/database/dbtest"
	"career-compass/internal/database/seeder"
	"career-compass/internal/domain/career"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storedCatalog seeds the default catalog into a fake and serves the written
// rows back the way the tables would return them.
func storedCatalog(t *testing.T) *dbtest.FakeDB {
	t.Helper()

	var columns [][]any
	for _, c := range []string{"name", "position", "salary_min", "salary_max", "salary_avg", "role", "skill", "canonical", "variant", "category"} {
		columns = append(columns, []any{c})
	}
	writer := (&dbtest.FakeDB{}).On("information_schema", columns...)
	require.NoError(t, seeder.CatalogSeeder{Data: career.DefaultCatalogData()}.Run(context.Background(), writer))

	pick := func(match string, idx ...int) [][]any {
		var out [][]any
		for _, e := range writer.ExecsMatching(match) {
			row := make([]any, 0, len(idx))
			for _, i := range idx {
				row = append(row, e.Args[i])
			}
			out = append(out, row)
		}
		return out
	}

	return (&dbtest.FakeDB{}).
		On("FROM career_roles", pick("INSERT INTO career_roles", 0, 2, 3, 4)...).
		On("FROM career_role_skills", pick("INSERT INTO career_role_skills", 0, 2)...).
		On("FROM skill_synonyms ", pick("INSERT INTO skill_synonyms ", 0)...).
		On("FROM skill_synonym_variants", pick("INSERT INTO skill_synonym_variants", 0, 2)...).
		On("FROM degree_categories", pick("INSERT INTO degree_categories", 0)...).
		On("FROM degree_category_roles", pick("INSERT INTO degree_category_roles", 0, 1)...)
}

func TestCatalogRepository_LoadRoundTrip(t *testing.T) {
	repo := NewPostgresCatalogRepository(storedCatalog(t))

	data, err := repo.Load(context.Background())
	require.NoError(t, err)

	loaded, err := career.NewCatalog(data)
	require.NoError(t, err)
	assert.Equal(t, career.DefaultCatalog().Data(), loaded.Data())
}

func TestCatalogRepository_Empty(t *testing.T) {
	repo := NewPostgresCatalogRepository(&dbtest.FakeDB{})

	_, err := repo.Load(context.Background())
	require.ErrorIs(t, err, ErrCatalogEmpty)
}

func TestCatalogRepository_QueryError(t *testing.T) {
	db := storedCatalog(t)
	db.QueryErr = map[string]error{"skill_synonym_variants": errors.New("relation does not exist")}

	_, err := NewPostgresCatalogRepository(db).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load synonyms")
}

func TestCatalogRepository_NilDB(t *testing.T) {
	_, err := NewPostgresCatalogRepository(nil).Load(context.Background())
	require.Error(t, err)
}
