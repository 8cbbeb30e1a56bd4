package middleware

import (
	"errors"

	"github.com/arzan03/BloodDonorNepal/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// ErrorHandler maps errors returned by handlers to a JSON body with a
// human-readable "detail". Validation errors also list the failing fields.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"detail": verr.Error(),
			"errors": verr.Fields,
		})
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"detail": fe.Message})
	}

	log.Errorf("%s %s [%s]: %v", c.Method(), c.Path(), RequestID(c), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": err.Error()})
}
