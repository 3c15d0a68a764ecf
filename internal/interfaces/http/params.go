package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// parseIDParam parsea un parámetro de ruta como entero positivo.
// Devuelve 0 y false para valores malformados o no positivos.
func parseIDParam(c *fiber.Ctx, name string) (int64, bool) {
	raw := c.Params(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
