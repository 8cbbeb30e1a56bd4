package handlers

import (
	"errors"

	"github.com/arzan03/BloodDonorNepal/internal/models"
	"github.com/arzan03/BloodDonorNepal/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) CreateDonor(c *fiber.Ctx) error {
	var input models.DonorInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	id, err := h.donors.RegisterDonor(ctx, input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"id": id, "message": "Donor registered successfully"})
}

// ListDonors filters by exact blood group and case-insensitive city.
func (h *Handler) ListDonors(c *fiber.Ctx) error {
	limit, err := queryLimit(c)
	if err != nil {
		return err
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	donors, err := h.donors.ListDonors(ctx, services.DonorQuery{
		BloodGroup: c.Query("blood_group"),
		City:       c.Query("city"),
		Limit:      limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(donors)
}

// SearchDonors returns only contact fields; blood_group and city are mandatory.
func (h *Handler) SearchDonors(c *fiber.Ctx) error {
	q := services.DonorQuery{
		BloodGroup: c.Query("blood_group"),
		City:       c.Query("city"),
	}
	if q.BloodGroup == "" || q.City == "" {
		return fiber.NewError(fiber.StatusBadRequest, services.ErrSearchCriteria.Error())
	}

	limit, err := queryLimit(c)
	if err != nil {
		return err
	}
	q.Limit = limit

	ctx, cancel := h.requestContext(c)
	defer cancel()

	donors, err := h.donors.SearchDonors(ctx, q)
	if errors.Is(err, services.ErrSearchCriteria) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err != nil {
		return err
	}
	return c.JSON(donors)
}
