package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"career-compass/internal/domain/career"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	items   map[string][]byte
	getErr  error
	setErr  error
	gets    int
	sets    int
	lastTTL time.Duration
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[string][]byte{}}
}

func (m *memoryCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.gets++
	if m.getErr != nil {
		return false, m.getErr
	}
	b, ok := m.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *memoryCache) SetJSON(_ context.Context, key string, value any, ttl time.Duration) error {
	m.sets++
	m.lastTTL = ttl
	if m.setErr != nil {
		return m.setErr
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.items[key] = b
	return nil
}

func sampleInput() career.Input {
	return career.Input{
		Degree:     "Computer Science",
		Skills:     []string{"JavaScript", "React", "HTML", "CSS", "TypeScript"},
		Experience: 2,
	}
}

func TestPrediction_CachesResult(t *testing.T) {
	engine := career.NewEngine(career.DefaultCatalog())
	cache := newMemoryCache()
	uc := NewPredictionUsecase(engine, cache, time.Minute, nil)
	ctx := context.Background()

	first, err := uc.Predict(ctx, sampleInput())
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, time.Minute, cache.lastTTL)

	second, err := uc.Predict(ctx, sampleInput())
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets, "second call must be served from cache")
	assert.Equal(t, 2, cache.gets)
	assert.Equal(t, first, second)
	assert.Equal(t, engine.Predict(sampleInput()), second)
}

func TestPrediction_CacheFailuresFallBackToEngine(t *testing.T) {
	engine := career.NewEngine(career.DefaultCatalog())
	cache := newMemoryCache()
	cache.getErr = errors.New("connection refused")
	cache.setErr = errors.New("connection refused")
	uc := NewPredictionUsecase(engine, cache, 0, nil)

	got, err := uc.Predict(context.Background(), sampleInput())
	require.NoError(t, err)
	assert.Equal(t, engine.Predict(sampleInput()), got)
}

func TestPrediction_WithoutCache(t *testing.T) {
	engine := career.NewEngine(career.DefaultCatalog())
	uc := NewPredictionUsecase(engine, nil, 0, nil)

	got, err := uc.Predict(context.Background(), career.Input{Degree: "Business"})
	require.NoError(t, err)
	assert.NotEmpty(t, got.Prediction.CareerRole)
}

func TestPrediction_InvalidInput(t *testing.T) {
	uc := NewPredictionUsecase(career.NewEngine(career.DefaultCatalog()), nil, 0, nil)

	_, err := uc.Predict(context.Background(), career.Input{Degree: "Business", Experience: -1})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestPrediction_NilEngine(t *testing.T) {
	uc := NewPredictionUsecase(nil, nil, 0, nil)

	_, err := uc.Predict(context.Background(), sampleInput())
	require.ErrorIs(t, err, ErrInternal)
}

func TestPredictionCacheKey(t *testing.T) {
	fp := career.DefaultCatalog().Fingerprint()
	base := PredictionCacheKey(fp, sampleInput())
	assert.True(t, strings.HasPrefix(base, "predict:"))
	assert.Len(t, base, len("predict:")+64)

	shuffled := career.Input{
		Degree:     "  computer science ",
		Skills:     []string{"css", "TypeScript", "react", "HTML", "JavaScript", "CSS", ""},
		Experience: 2,
	}
	assert.Equal(t, base, PredictionCacheKey(fp, shuffled))

	older := sampleInput()
	older.Experience = 3
	assert.NotEqual(t, base, PredictionCacheKey(fp, older))

	fewer := sampleInput()
	fewer.Skills = fewer.Skills[:4]
	assert.NotEqual(t, base, PredictionCacheKey(fp, fewer))
	assert.NotEqual(t, base, PredictionCacheKey("other-catalog", sampleInput()))

	assert.Equal(t,
		PredictionCacheKey(fp, career.Input{Degree: "Other", Experience: -5}),
		PredictionCacheKey(fp, career.Input{Degree: "Other"}))
}

func catalogWithout(t *testing.T, role career.Role) *career.Catalog {
	t.Helper()
	data := career.DefaultCatalogData()
	roles := data.Roles[:0]
	for _, rp := range data.Roles {
		if rp.Role != role {
			roles = append(roles, rp)
		}
	}
	data.Roles = roles
	for i, dp := range data.Degrees {
		kept := make([]career.Role, 0, len(dp.Roles))
		for _, r := range dp.Roles {
			if r != role {
				kept = append(kept, r)
			}
		}
		data.Degrees[i].Roles = kept
	}
	c, err := career.NewCatalog(data)
	require.NoError(t, err)
	return c
}

func TestPrediction_SharedCacheIsScopedToCatalog(t *testing.T) {
	cache := newMemoryCache()
	ctx := context.Background()
	in := career.Input{
		Degree:     "Computer Science",
		Skills:     []string{"Solidity", "Smart Contracts", "Ethereum", "JavaScript"},
		Experience: 2,
	}

	full := NewPredictionUsecase(career.NewEngine(career.DefaultCatalog()), cache, time.Minute, nil)
	got, err := full.Predict(ctx, in)
	require.NoError(t, err)
	require.Equal(t, career.RoleBlockchainDeveloper, got.Prediction.CareerRole)

	smaller := catalogWithout(t, career.RoleBlockchainDeveloper)
	engine := career.NewEngine(smaller)
	partial := NewPredictionUsecase(engine, cache, time.Minute, nil)
	got, err = partial.Predict(ctx, in)
	require.NoError(t, err)

	assert.Equal(t, 2, cache.sets, "each catalog must compute and store its own result")
	assert.True(t, smaller.HasRole(got.Prediction.CareerRole))
	assert.Equal(t, engine.Predict(in), got)
}
