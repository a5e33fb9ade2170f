package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
)

// localsErrorKey guarda en c.Locals la causa de un 500 para que RequestLogger la registre.
const localsErrorKey = "request_error"

// writeError traduce un error a la respuesta HTTP: entrada inválida -> 400, resto -> 500.
func writeError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: err.Error()})
	}
	c.Locals(localsErrorKey, err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// writeAbsent responde a un recurso inexistente: 200 sin cuerpo.
func writeAbsent(c *fiber.Ctx) error {
	c.Status(fiber.StatusOK)
	return nil
}
