package usecase

import (
	"context"
	"time"

	"career-compass/internal/domain/career"
	"career-compass/internal/logger"

	"go.uber.org/zap"
)

type PredictionUsecase interface {
	Predict(ctx context.Context, in career.Input) (career.Result, error)
}

type Prediction struct {
	engine *career.Engine
	cache  PredictionCache
	ttl    time.Duration
	logger *zap.Logger
}

// NewPredictionUsecase wires the engine to an optional cache. A nil cache
// computes every request.
func NewPredictionUsecase(engine *career.Engine, cache PredictionCache, ttl time.Duration, log *zap.Logger) *Prediction {
	return &Prediction{engine: engine, cache: cache, ttl: ttl, logger: logger.OrNop(log)}
}

func (u *Prediction) Predict(ctx context.Context, in career.Input) (career.Result, error) {
	if u.engine == nil {
		return career.Result{}, ErrInternal
	}
	if in.Experience < 0 {
		return career.Result{}, ErrInvalidInput
	}
	if in.Skills == nil {
		in.Skills = []string{}
	}

	key := PredictionCacheKey(u.engine.Catalog().Fingerprint(), in)
	if u.cache != nil {
		var cached career.Result
		found, err := u.cache.GetJSON(ctx, key, &cached)
		switch {
		case err != nil:
			u.logger.Debug("prediction cache read failed", zap.String("key", key), zap.Error(err))
		case found:
			u.logger.Debug("prediction cache hit", zap.String("key", key))
			return cached, nil
		}
	}

	res := u.engine.Predict(in)
	u.logger.Debug("prediction computed",
		zap.String("role", res.Prediction.CareerRole.String()),
		zap.Float64("probability", res.Prediction.Probability),
		zap.Int("skills", len(in.Skills)),
	)

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, res, u.ttl); err != nil {
			u.logger.Debug("prediction cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return res, nil
}
