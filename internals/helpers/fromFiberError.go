package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// FromFiberError renders any handler error with the standard error shape.
// *fiber.Error keeps its code and message; anything else becomes a 500.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
	return JsonError(c, fiber.StatusInternalServerError, "")
}
