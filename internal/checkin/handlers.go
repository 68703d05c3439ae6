package checkin

import (
	"errors"

	"backend-rutacorrentina/internal/shared/geo"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/position", authMiddleware, func(c *fiber.Ctx) error {
		var body geo.Coordinate
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		userID, _ := c.Locals("user_id").(string)
		return c.JSON(svc.ReportPosition(c.Context(), userID, body))
	})

	r.Post("/select", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			PlaceName string `json:"place_name"`
		}
		if err := c.BodyParser(&body); err != nil || body.PlaceName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "place_name required")
		}
		userID, _ := c.Locals("user_id").(string)
		eval, err := svc.SelectPlace(c.Context(), userID, body.PlaceName)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return c.JSON(eval)
	})

	r.Get("/state", authMiddleware, func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		eval, err := svc.State(c.Context(), userID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(eval)
	})

	r.Post("/confirm", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			Photo string `json:"photo"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		userID, _ := c.Locals("user_id").(string)
		result, err := svc.Confirm(c.Context(), userID, body.Photo)
		if err != nil {
			switch {
			case errors.Is(err, ErrPhotoRequired), errors.Is(err, ErrNoPlaceSelected):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			case errors.Is(err, ErrAlreadyVisited), errors.Is(err, ErrNotReady):
				return fiber.NewError(fiber.StatusConflict, err.Error())
			default:
				return fiber.NewError(fiber.StatusInternalServerError, err.Error())
			}
		}
		return c.Status(fiber.StatusCreated).JSON(result)
	})
}
