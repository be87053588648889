// file: main.go
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"schooltrans_backend/internals/configs"
	database "schooltrans_backend/internals/databases"
	"schooltrans_backend/internals/events"
	"schooltrans_backend/internals/metrics"
	"schooltrans_backend/internals/middlewares"
	"schooltrans_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	database.ConnectDB()
	database.TunePool()

	if configs.GetEnv("DB_AUTOMIGRATE", "false") == "true" {
		if err := database.MigrateAll(database.DB); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
	}

	publisher, err := events.NewPublisher(configs.NatsURL)
	if err != nil {
		// events are best-effort; the API still serves without a broker
		log.Printf("[WARN] NATS connect failed, events disabled: %v", err)
		publisher = nil
	}
	defer publisher.Close()

	collector := metrics.NewCollector()

	app := fiber.New(fiber.Config{
		AppName:     "schooltrans-backend",
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})

	middlewares.SetupMiddlewares(app)
	app.Use(collector.Middleware())

	route.SetupRoutes(app, database.DB, collector, publisher)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("[INFO] shutting down...")
		_ = app.Shutdown()
	}()

	port := configs.GetEnv("PORT", "8080")
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
