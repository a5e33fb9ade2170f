package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP para Category.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Success      200  {array}   dto.CategoryResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out := make([]dto.CategoryResponse, 0)
	for item, err := range h.uc.List(c.UserContext()) {
		if err != nil {
			return writeError(c, err)
		}
		out = append(out, *item)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener categoría por ID
// @Description  Responde 200 sin cuerpo si la categoría no existe.
// @Tags         categories
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), pathID(c))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return writeAbsent(c)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear una o varias categorías
// @Description  Acepta un objeto o un array; el ID enviado se ignora. Responde 201 sin cuerpo.
// @Tags         categories
// @Accept       json
// @Param        body  body  []dto.CategoryRequest  true  "Categoría o lista de categorías"
// @Success      201
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/v1/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	in, _, err := decodeOneOrMany[dto.CategoryRequest](c.Body())
	if err != nil {
		return writeError(c, err)
	}
	for _, err := range h.uc.Create(c.UserContext(), in) {
		if err != nil {
			return writeError(c, err)
		}
	}
	c.Status(fiber.StatusCreated)
	return nil
}

// Update godoc
// @Summary      Reemplazar categoría
// @Description  Upsert: el ID de la ruta sustituye al del cuerpo.
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID de la categoría"
// @Param        body  body  dto.CategoryRequest  true  "Categoría completa"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/v1/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	in, err := decodeOne[dto.CategoryRequest](c.Body())
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), pathID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Patch godoc
// @Summary      Actualizar parcialmente una categoría
// @Description  Solo se aplican los campos presentes. Responde 200 sin cuerpo si no existe.
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID de la categoría"
// @Param        body  body  dto.CategoryRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/v1/categories/{id} [patch]
func (h *CategoryHandler) Patch(c *fiber.Ctx) error {
	in, err := decodeOne[dto.CategoryRequest](c.Body())
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Patch(c.UserContext(), pathID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return writeAbsent(c)
	}
	return c.JSON(out)
}
