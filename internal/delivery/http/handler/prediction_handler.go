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

type PredictionHandler struct {
	uc       usecase.PredictionUsecase
	validate *validator.Validate
}

func NewPredictionHandler(uc usecase.PredictionUsecase) *PredictionHandler {
	return &PredictionHandler{uc: uc, validate: newValidator()}
}

func (h *PredictionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/predict", h.Predict)
}

func (h *PredictionHandler) Predict(c fiber.Ctx) error {
	var req dto.PredictRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badBody(err)
	}
	if err := validate(h.validate, req); err != nil {
		return err
	}

	res, err := h.uc.Predict(c.Context(), req.ToInput())
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}

	return response.Success(c, fiber.StatusOK, "prediction generated", res)
}
