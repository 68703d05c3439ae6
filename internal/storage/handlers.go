package storage

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/photos/:id", authMiddleware, func(c *fiber.Ctx) error {
		data, err := svc.Photo(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "photo not found")
		}
		return c.JSON(fiber.Map{"id": c.Params("id"), "data": data})
	})
}
