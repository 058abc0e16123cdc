package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"

	"github.com/moodfood/restaurant-floor/internal/catalog"
	"github.com/moodfood/restaurant-floor/internal/config"
	"github.com/moodfood/restaurant-floor/internal/handler"
	"github.com/moodfood/restaurant-floor/internal/queue"
	"github.com/moodfood/restaurant-floor/internal/router"
	"github.com/moodfood/restaurant-floor/internal/snapshot"
	"github.com/moodfood/restaurant-floor/internal/state"
)

func main() {
	cfg := config.Load()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	store := state.New(cat, openSnapshotStore(cfg))
	store.Load(context.Background())

	if cfg.AMQPURL != "" {
		go queue.StartKitchenConsumer(cfg.AMQPURL)
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, router.Handlers{
		Auth:         handler.NewAuthHandler(store, cfg.JWTSecret, cfg.AccessTTLMin, cfg.BcryptCost),
		Menu:         handler.NewMenuHandler(cat),
		Tables:       handler.NewTableHandler(store),
		Orders:       handler.NewOrderHandler(store, cfg.AMQPURL),
		Payments:     handler.NewPaymentHandler(store),
		Reservations: handler.NewReservationHandler(store),
		Loyalty:      handler.NewLoyaltyHandler(store),
		Schedule:     handler.NewScheduleHandler(store),
	}, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, snapshot=%s)", addr, cfg.Env, cfg.SnapshotBackend)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// openSnapshotStore picks the snapshot backend from configuration. Backends
// that need an external service fall back to the file store when the service
// is unreachable, so the app always comes up.
func openSnapshotStore(cfg config.Config) snapshot.Store {
	switch cfg.SnapshotBackend {
	case "redis":
		if client := config.NewRedisClient(); client != nil {
			return snapshot.NewRedisStore(client)
		}
		log.Printf("snapshot: redis unavailable, falling back to file store")
	case "mysql":
		st, err := snapshot.OpenMySQL(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err == nil {
			return st
		}
		log.Printf("snapshot: mysql unavailable, falling back to file store: %v", err)
	case "memory":
		return snapshot.NewMemoryStore()
	}
	return snapshot.NewFileStore(cfg.SnapshotPath)
}
