package handlers

import (
	"github.com/arzan03/BloodDonorNepal/internal/models"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) CreateRequest(c *fiber.Ctx) error {
	var input models.BloodRequestInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	id, err := h.requests.SubmitRequest(ctx, input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"id": id, "message": "Blood request submitted"})
}

func (h *Handler) ListRequests(c *fiber.Ctx) error {
	limit, err := queryLimit(c)
	if err != nil {
		return err
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	requests, err := h.requests.ListRequests(ctx, limit)
	if err != nil {
		return err
	}
	return c.JSON(requests)
}
