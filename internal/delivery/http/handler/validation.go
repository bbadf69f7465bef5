package handler

import (
	"errors"
	"reflect"
	"strings"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	return v
}

// validate runs struct validation and converts failures into a 400 AppError
// listing each offending field by its JSON name.
func validate(v *validator.Validate, req any) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	details := make([]dto.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, dto.FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return middleware.NewAppError(fiber.StatusBadRequest, response.MessageValidationFailed, details, err)
}

func badBody(err error) error {
	return middleware.NewAppError(fiber.StatusBadRequest, "invalid request body", nil, err)
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}
