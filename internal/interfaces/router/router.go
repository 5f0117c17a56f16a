package router

import (
	catalogsvc "funeraria-backend/internal/application/catalog"
	contractsvc "funeraria-backend/internal/application/contracts"
	"funeraria-backend/internal/application/numbering"
	"funeraria-backend/internal/config"
	"funeraria-backend/internal/infrastructure/database"
	cataloghandler "funeraria-backend/internal/interfaces/handlers/catalog"
	contracthandler "funeraria-backend/internal/interfaces/handlers/contracts"
	healthhandler "funeraria-backend/internal/interfaces/handlers/health"
	"funeraria-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type gormDBPinger struct {
	db *gorm.DB
}

func (g *gormDBPinger) Ping() error {
	if g == nil || g.db == nil {
		return nil
	}
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
		DevPassword:   cfg.DevPassword,
	}))

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, nil, err
		}
		rdb = redis.NewClient(opt)
		app.Use(middleware.HealthMarker(rdb))
	}

	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	hh := &healthhandler.Handlers{
		Rdb:            rdb,
		DB:             nil,
		HealthAdminKey: cfg.HealthAdminKey,
	}
	app.Get("/", hh.JSON)
	app.Get("/reset", hh.Reset)
	app.Get("/health/json", hh.JSON)
	app.Get("/health/errors", hh.Errors)

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		var errDB error
		db, errDB = database.Open(cfg.DatabaseURL)
		if errDB != nil {
			return nil, nil, nil, errDB
		}
		hh.DB = &gormDBPinger{db: db}
	}

	if db != nil {
		cs := &contractsvc.Service{
			DB:      db,
			Numbers: &numbering.Allocator{Prefix: cfg.ContractPrefix},
		}
		ch := &contracthandler.Handlers{Service: cs}
		cg := app.Group("/api/v1/contracts", middleware.RequireActor())
		cg.Post("/", ch.Create)
		cg.Get("/:id", ch.Get)
		cg.Put("/:id", ch.Update)
		cg.Post("/:id/convert", ch.Convert)
		cg.Patch("/:id/status", ch.ChangeStatus)
		cg.Delete("/:id", ch.Delete)

		cats := &catalogsvc.Service{DB: db}
		cath := &cataloghandler.Handlers{Service: cats}
		catg := app.Group("/api/v1/catalog")
		catg.Get("/services", cath.GetServices)
		catg.Get("/products", cath.GetProducts)
	}

	return app, db, rdb, nil
}
