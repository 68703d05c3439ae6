package review

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			PlaceName string `json:"place_name"`
			Author    string `json:"author"`
			Text      string `json:"text"`
		}
		if err := c.BodyParser(&body); err != nil || body.PlaceName == "" || body.Text == "" {
			return fiber.NewError(fiber.StatusBadRequest, "place_name and text required")
		}
		if body.Author == "" {
			body.Author = "Viajero"
		}
		userID, _ := c.Locals("user_id").(string)
		status, err := svc.Submit(c.Context(), Review{
			PlaceName: body.PlaceName,
			Author:    body.Author,
			AuthorID:  userID,
			Text:      body.Text,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		code := fiber.StatusCreated
		if status == StatusQueued {
			code = fiber.StatusAccepted
		}
		return c.Status(code).JSON(fiber.Map{"status": status})
	})

	r.Get("/:place", func(c *fiber.Ctx) error {
		placeName, err := url.PathUnescape(c.Params("place"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid place name")
		}
		reviews, err := svc.ListByPlace(c.Context(), placeName)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(reviews)
	})

	r.Post("/connectivity", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			Online bool `json:"online"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		result, err := svc.SetOnline(c.Context(), body.Online)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(result)
	})
}
