package handlers

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/arzan03/BloodDonorNepal/internal/config"
	"github.com/arzan03/BloodDonorNepal/internal/db"
	"github.com/arzan03/BloodDonorNepal/internal/models"
	"github.com/arzan03/BloodDonorNepal/internal/services"
	"github.com/gofiber/fiber/v2"
)

// Handler serves the HTTP API. It holds the services built around the
// single store handle created at startup.
type Handler struct {
	donors   *services.DonorService
	requests *services.RequestService
	health   *services.HealthService
	timeout  time.Duration
}

// New wires handlers to store. store may be nil when no database is configured.
func New(store db.Store, cfg config.Config) *Handler {
	return &Handler{
		donors:   services.NewDonorService(store),
		requests: services.NewRequestService(store),
		health:   services.NewHealthService(store, cfg.URIConfigured()),
		timeout:  cfg.QueryTimeout,
	}
}

func (h *Handler) requestContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.UserContext())
	}
	return context.WithTimeout(c.UserContext(), h.timeout)
}

// parseBody decodes a JSON body, reporting decode failures as validation errors.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return models.NewValidationError("body", fe.Message)
		}
		return models.ParseError(err)
	}
	return nil
}

// queryLimit reads the optional "limit" query parameter.
func queryLimit(c *fiber.Ctx) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return services.DefaultLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, models.NewValidationError("limit", "must be a positive integer")
	}
	return n, nil
}

// Root is the liveness endpoint.
func (h *Handler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Blood Donor Nepal API running"})
}

// Health reports database diagnostics and always answers 200.
func (h *Handler) Health(c *fiber.Ctx) error {
	ctx, cancel := h.requestContext(c)
	defer cancel()
	return c.JSON(h.health.Probe(ctx))
}
