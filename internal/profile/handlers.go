package profile

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/", authMiddleware, func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		p, _, err := svc.Get(c.Context(), userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(p)
	})

	r.Put("/name", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			DisplayName string `json:"display_name"`
		}
		if err := c.BodyParser(&body); err != nil || body.DisplayName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "display_name required")
		}
		userID, _ := c.Locals("user_id").(string)
		if err := svc.SaveDisplayName(c.Context(), userID, body.DisplayName); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{"display_name": body.DisplayName})
	})

	r.Post("/favorites/toggle", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			PlaceName string `json:"place_name"`
		}
		if err := c.BodyParser(&body); err != nil || body.PlaceName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "place_name required")
		}
		userID, _ := c.Locals("user_id").(string)
		favorite, err := svc.ToggleFavorite(c.Context(), userID, body.PlaceName)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{"place_name": body.PlaceName, "favorite": favorite})
	})
}
