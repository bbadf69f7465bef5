package handler

import (
	"context"
	"time"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	catalogSource string
	roles         int
	cache         Pinger
	now           func() time.Time
}

// NewHealthHandler reports on the loaded catalog and, when cache is non-nil,
// on cache reachability. The service is healthy without a cache.
func NewHealthHandler(catalogSource string, roles int, cache Pinger) *HealthHandler {
	return &HealthHandler{catalogSource: catalogSource, roles: roles, cache: cache, now: time.Now}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	cacheOK := false
	if h.cache != nil {
		ctx, cancel := context.WithTimeout(c.Context(), time.Second)
		cacheOK = h.cache.Ping(ctx) == nil
		cancel()
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.HealthResponse{
		Status:         "healthy",
		Timestamp:      h.now().UTC().Format(time.RFC3339),
		CatalogSource:  h.catalogSource,
		Roles:          h.roles,
		CacheAvailable: cacheOK,
	})
}
