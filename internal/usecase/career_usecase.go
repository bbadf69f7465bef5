package usecase

import (
	"context"
	"strings"

	"career-compass/internal/domain/career"
)

type CareerUsecase interface {
	Compare(ctx context.Context, first, second string) (career.Comparison, error)
	ListSkills(ctx context.Context) ([]string, error)
	ListRoles(ctx context.Context) ([]career.RoleSummary, error)
	ExtractSkills(ctx context.Context, text string) ([]string, error)
}

type Career struct {
	engine *career.Engine
}

func NewCareerUsecase(engine *career.Engine) *Career {
	return &Career{engine: engine}
}

func (u *Career) Compare(_ context.Context, first, second string) (career.Comparison, error) {
	if u.engine == nil {
		return career.Comparison{}, ErrInternal
	}
	a, err := u.resolveRole(first)
	if err != nil {
		return career.Comparison{}, err
	}
	b, err := u.resolveRole(second)
	if err != nil {
		return career.Comparison{}, err
	}
	return u.engine.Compare(a, b), nil
}

func (u *Career) resolveRole(name string) (career.Role, error) {
	if career.Fold(name) == "" {
		return "", ErrInvalidInput
	}
	r, ok := career.ParseRole(name)
	if !ok || !u.engine.Catalog().HasRole(r) {
		return "", ErrUnknownRole
	}
	return r, nil
}

func (u *Career) ListSkills(_ context.Context) ([]string, error) {
	if u.engine == nil {
		return nil, ErrInternal
	}
	return u.engine.Skills(), nil
}

func (u *Career) ListRoles(_ context.Context) ([]career.RoleSummary, error) {
	if u.engine == nil {
		return nil, ErrInternal
	}
	return u.engine.Roles(), nil
}

// ExtractSkills lists the catalog skills mentioned in text.
func (u *Career) ExtractSkills(_ context.Context, text string) ([]string, error) {
	if u.engine == nil {
		return nil, ErrInternal
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrInvalidInput
	}
	return u.engine.ExtractSkills(text), nil
}
