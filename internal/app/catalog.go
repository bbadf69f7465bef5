package app

import (
	"context"
	"fmt"

	"career-compass/internal/config"
	"career-compass/internal/database"
	"career-compass/internal/domain/career"
	"career-compass/internal/repository"
)

// LoadCatalog builds the catalog for source. The postgres source reads the
// tables once through db; the static source ignores db.
func LoadCatalog(ctx context.Context, source config.CatalogSource, db database.DB) (*career.Catalog, error) {
	switch source {
	case "", config.CatalogSourceStatic:
		return career.DefaultCatalog(), nil
	case config.CatalogSourcePostgres:
		data, err := repository.NewPostgresCatalogRepository(db).Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load catalog from postgres: %w", err)
		}
		c, err := career.NewCatalog(data)
		if err != nil {
			return nil, fmt.Errorf("load catalog from postgres: %w", err)
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", source)
	}
}
