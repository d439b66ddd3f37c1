package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/louis5103/st-booking-system/internal/config"
	"github.com/louis5103/st-booking-system/internal/database"
	"github.com/louis5103/st-booking-system/internal/handler"
	"github.com/louis5103/st-booking-system/internal/middleware"
	"github.com/louis5103/st-booking-system/internal/queue"
	"github.com/louis5103/st-booking-system/internal/repository"
	"github.com/louis5103/st-booking-system/internal/router"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient() // nil when Redis is unreachable
	if rdb == nil {
		log.Println("redis unavailable: response cache, rate limiting and save guard disabled")
	}
	cacheCfg := config.LoadCacheConfig()
	rateCfg := config.LoadRateLimitConfig()

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	venues := repository.NewVenueRepo(db)
	layouts := repository.NewLayoutRepo(db)

	auth := handler.NewAuthHandler(cfg, users, tokens)
	venueH := handler.NewVenueHandler(venues, layouts)
	layoutH := handler.NewLayoutHandler(cfg, cacheCfg, venues, layouts, rdb)

	e := echo.New()
	e.HideBanner = true

	router.RegisterRoutes(e)
	router.RegisterAuth(e, auth, cfg.JWTSecret)
	router.RegisterVenues(e, venueH, layoutH, cfg.JWTSecret,
		middleware.NewRedisCache(cacheCfg, rdb),
		middleware.NewTokenBucket(rateCfg, rdb),
	)

	// Audit consumer runs for the life of the process and reconnects on
	// its own; failures must never take the API down.
	go func() {
		if err := queue.StartLayoutConsumer(); err != nil {
			log.Printf("layout consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
