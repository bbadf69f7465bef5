package seeder

import "career-compass/internal/domain/career"

// Defaults seeds the built-in catalog.
func Defaults() []Seeder {
	return []Seeder{
		CatalogSeeder{Data: career.DefaultCatalogData()},
	}
}
