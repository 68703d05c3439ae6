package chat

import (
	"log"

	"backend-rutacorrentina/internal/place"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, client *Client, catalog *place.Catalog) {
	r.Post("/", func(c *fiber.Ctx) error {
		var body struct {
			Message string `json:"message"`
		}
		if err := c.BodyParser(&body); err != nil || body.Message == "" {
			return fiber.NewError(fiber.StatusBadRequest, "message required")
		}

		var names []string
		for _, p := range catalog.All() {
			names = append(names, p.Name)
		}

		reply, err := client.Ask(c.Context(), names, body.Message)
		if err != nil {
			log.Printf("chat reply failed: %v", err)
			reply = FallbackReply
		}
		return c.JSON(fiber.Map{"reply": reply})
	})
}
