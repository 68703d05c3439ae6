package server

import (
	"context"

	"backend-rutacorrentina/internal/auth"
	"backend-rutacorrentina/internal/chat"
	"backend-rutacorrentina/internal/checkin"
	"backend-rutacorrentina/internal/config"
	"backend-rutacorrentina/internal/gamification"
	"backend-rutacorrentina/internal/place"
	"backend-rutacorrentina/internal/profile"
	"backend-rutacorrentina/internal/review"
	"backend-rutacorrentina/internal/storage"
	"backend-rutacorrentina/internal/stream"
	"backend-rutacorrentina/internal/weather"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App     *fiber.App
	Cfg     config.Config
	DB      *pgxpool.Pool
	Redis   *redis.Client
	Stream  *stream.Hub
	Catalog *place.Catalog
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:     app,
		Cfg:     cfg,
		DB:      db,
		Redis:   redisClient,
		Stream:  stream.NewHub(redisClient),
		Catalog: place.FetchCatalog(context.Background(), cfg.CatalogURL),
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	jwtMiddleware := auth.JWTMiddleware(s.Cfg.JWTSecret)

	profiles := profile.NewService(s.DB)
	photos := storage.NewService(s.DB)

	auth.RegisterRoutes(s.App.Group("/auth"), auth.NewService(s.Cfg.JWTSecret, s.DB))
	place.RegisterRoutes(s.App.Group("/places"), s.Catalog)
	profile.RegisterRoutes(s.App.Group("/profile"), profiles, jwtMiddleware)
	checkin.RegisterRoutes(s.App.Group("/checkin"), checkin.NewService(s.Cfg, s.Catalog, profiles, photos, s.Stream), jwtMiddleware)
	gamification.RegisterRoutes(s.App.Group("/game"), gamification.NewService(s.Cfg, s.DB), jwtMiddleware)
	review.RegisterRoutes(s.App.Group("/reviews"), review.NewService(s.DB, review.NewQueue(s.Redis)), jwtMiddleware)
	storage.RegisterRoutes(s.App.Group("/storage"), photos, jwtMiddleware)
	stream.RegisterRoutes(s.App.Group("/stream"), s.Stream)
	weather.RegisterRoutes(s.App.Group("/weather"), weather.NewClient(s.Cfg.WeatherURL))
	chat.RegisterRoutes(s.App.Group("/chat"), chat.NewClient(chat.Config{BaseURL: s.Cfg.ChatURL, APIKey: s.Cfg.ChatAPIKey}), s.Catalog)
}
