package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tmf-backend/internal/application/outbox"
	"tmf-backend/internal/config"
	"tmf-backend/internal/interfaces/router"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("config load: " + err.Error())
	}

	app, err := router.CreateApp(cfg)
	if err != nil {
		panic("app create: " + err.Error())
	}

	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err != nil {
			panic("Postgres: get DB: " + err.Error())
		}
		if err := sqlDB.Ping(); err != nil {
			panic("Postgres connection failed: " + err.Error())
		}
		fmt.Println("Postgres connected")
	}
	if app.Rdb != nil {
		if err := app.Rdb.Ping(context.Background()).Err(); err != nil {
			panic("Redis connection failed: " + err.Error())
		}
		fmt.Println("Redis connected")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if app.DB != nil && app.Certs != nil {
		worker := &outbox.Worker{
			DB:       app.DB,
			Certs:    app.Certs,
			Sender:   app.Sender,
			Interval: 5 * time.Second,
			Log:      log.Logger,
		}
		go worker.Run(ctx)
	}

	go func() {
		<-ctx.Done()
		_ = app.Fiber.ShutdownWithTimeout(10 * time.Second)
	}()

	fmt.Printf("Server running at http://localhost:%s\n", cfg.Port)
	fmt.Printf("Health check: http://localhost:%s/health/json\n", cfg.Port)
	fmt.Println("---")

	if err := app.Fiber.Listen(":" + cfg.Port); err != nil {
		panic(err)
	}
}
