package place

import (
	"net/url"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, catalog *Catalog) {
	r.Get("/", func(c *fiber.Ctx) error {
		category := c.Query("category")
		search := c.Query("q")
		hour, err := strconv.Atoi(c.Query("hour"))
		if err != nil {
			hour = time.Now().Hour()
		}
		if category == "" && search == "" {
			return c.JSON(catalog.All())
		}
		return c.JSON(catalog.Filter(category, search, hour))
	})

	r.Get("/random", func(c *fiber.Ctx) error {
		p, ok := catalog.Random()
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "catalog is empty")
		}
		return c.JSON(p)
	})

	r.Get("/:name", func(c *fiber.Ctx) error {
		name, err := url.PathUnescape(c.Params("name"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid place name")
		}
		p, ok := catalog.FindByName(name)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "place not found")
		}
		return c.JSON(p)
	})
}
