package handler

import (
	"errors"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type CareerHandler struct {
	uc       usecase.CareerUsecase
	validate *validator.Validate
}

func NewCareerHandler(uc usecase.CareerUsecase) *CareerHandler {
	return &CareerHandler{uc: uc, validate: newValidator()}
}

func (h *CareerHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/careers/compare", h.Compare)
	r.Get("/skills", h.Skills)
	r.Post("/skills/extract", h.ExtractSkills)
	r.Get("/roles", h.Roles)
}

func (h *CareerHandler) Compare(c fiber.Ctx) error {
	var req dto.CompareRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badBody(err)
	}
	if err := validate(h.validate, req); err != nil {
		return err
	}

	cmp, err := h.uc.Compare(c.Context(), req.Career1, req.Career2)
	switch {
	case errors.Is(err, usecase.ErrUnknownRole):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageUnknownRole, nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	case err != nil:
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, cmp)
}

func (h *CareerHandler) Skills(c fiber.Ctx) error {
	skills, err := h.uc.ListSkills(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SkillsResponse{Skills: skills, Total: len(skills)})
}

func (h *CareerHandler) ExtractSkills(c fiber.Ctx) error {
	var req dto.ExtractSkillsRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badBody(err)
	}
	if err := validate(h.validate, req); err != nil {
		return err
	}

	skills, err := h.uc.ExtractSkills(c.Context(), req.Text)
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	case err != nil:
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SkillsResponse{Skills: skills, Total: len(skills)})
}

func (h *CareerHandler) Roles(c fiber.Ctx) error {
	roles, err := h.uc.ListRoles(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.RolesResponse{Roles: roles, Total: len(roles)})
}
