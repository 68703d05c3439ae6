package gamification

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/stats", authMiddleware, func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		stats, err := svc.StatsFor(c.Context(), userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(stats)
	})

	r.Get("/badges", authMiddleware, func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		stats, err := svc.StatsFor(c.Context(), userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(Badges(stats.VisitCount))
	})

	r.Get("/coupons", authMiddleware, func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		stats, err := svc.StatsFor(c.Context(), userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(Coupons(stats.RewardPoints))
	})

	r.Post("/coupons/:id/redeem", authMiddleware, func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid coupon id")
		}
		coupon, ok := FindCoupon(id)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "coupon not found")
		}
		userID, _ := c.Locals("user_id").(string)
		stats, err := svc.StatsFor(c.Context(), userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if stats.RewardPoints < coupon.CostPoints {
			return fiber.NewError(fiber.StatusForbidden, "not enough points")
		}
		return c.JSON(fiber.Map{
			"coupon":  coupon,
			"message": "Muestra este mensaje en el taller para validar tu descuento",
		})
	})

	r.Get("/leaderboard", func(c *fiber.Ctx) error {
		limit, _ := strconv.Atoi(c.Query("limit"))
		entries, err := svc.Leaderboard(c.Context(), limit)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(entries)
	})
}
