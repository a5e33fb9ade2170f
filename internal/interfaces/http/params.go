package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// pathID devuelve el :id de la ruta. Fiber entrega los parámetros apuntando al buffer de la
// petición, que fasthttp reutiliza; el valor se copia antes de que llegue al almacén.
func pathID(c *fiber.Ctx) string {
	return utils.CopyString(c.Params("id"))
}
