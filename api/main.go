package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"tmf-backend/bootstrap"
	"tmf-backend/internal/application/outbox"
	"tmf-backend/internal/interfaces/router"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/rs/zerolog/log"
)

var app *router.App

func init() {
	var err error
	app, err = bootstrap.New()
	if err != nil {
		panic("app create: " + err.Error())
	}
	// Drain certificate jobs while the instance stays warm.
	if app.DB != nil && app.Certs != nil {
		worker := &outbox.Worker{
			DB:       app.DB,
			Certs:    app.Certs,
			Sender:   app.Sender,
			Interval: 10 * time.Second,
			Log:      log.Logger,
		}
		go worker.Run(context.Background())
	}
}

// Handler is the serverless entrypoint.
func Handler(w http.ResponseWriter, r *http.Request) {
	adaptor.FiberApp(app.Fiber)(w, r)
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Fiber.Listen(":" + port); err != nil {
		panic(err)
	}
}
