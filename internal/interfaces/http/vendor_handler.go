package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
)

// VendorHandler maneja las peticiones HTTP para Vendor.
type VendorHandler struct {
	uc *usecase.VendorUseCase
}

// NewVendorHandler construye el handler.
func NewVendorHandler(uc *usecase.VendorUseCase) *VendorHandler {
	return &VendorHandler{uc: uc}
}

// List godoc
// @Summary      Listar proveedores
// @Tags         vendors
// @Produce      json
// @Success      200  {array}   dto.VendorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/vendors [get]
func (h *VendorHandler) List(c *fiber.Ctx) error {
	out := make([]dto.VendorResponse, 0)
	for item, err := range h.uc.List(c.UserContext()) {
		if err != nil {
			return writeError(c, err)
		}
		out = append(out, *item)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener proveedor por ID
// @Tags         vendors
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.VendorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/vendors/{id} [get]
func (h *VendorHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Crear proveedor
// @Description  Con un objeto responde el proveedor persistido; con un array, la lista persistida.
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VendorRequest  true  "Proveedor o lista de proveedores"
// @Success      201   {object}  dto.VendorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/v1/vendors [post]
func (h *VendorHandler) Create(c *fiber.Ctx) error {
	in, many, err := decodeOneOrMany[dto.VendorRequest](c.Body())
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.VendorResponse, 0, 1)
	for item, err := range h.uc.Create(c.UserContext(), in) {
		if err != nil {
			return writeError(c, err)
		}
		out = append(out, *item)
	}
	c.Status(fiber.StatusCreated)
	if many || len(out) == 0 {
		return c.JSON(out)
	}
	return c.JSON(out[0])
}

// Update godoc
// @Summary      Reemplazar proveedor
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID del proveedor"
// @Param        body  body  dto.VendorRequest  true  "Proveedor completo"
// @Success      200   {object}  dto.VendorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/v1/vendors/{id} [put]
func (h *VendorHandler) Update(c *fiber.Ctx) error {
	in, err := decodeOne[dto.VendorRequest](c.Body())
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
// @Summary      Actualizar parcialmente un proveedor
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID del proveedor"
// @Param        body  body  dto.VendorRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.VendorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/v1/vendors/{id} [patch]
func (h *VendorHandler) Patch(c *fiber.Ctx) error {
	in, err := decodeOne[dto.VendorRequest](c.Body())
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
