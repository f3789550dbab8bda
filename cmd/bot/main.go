package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"factory-backend/internal/cache"
	"factory-backend/internal/config"
	"factory-backend/internal/database"
	"factory-backend/internal/db"
	"factory-backend/internal/dialog"
	"factory-backend/internal/monitoring"
	"factory-backend/internal/notify"
	"factory-backend/internal/repositories"
	"factory-backend/internal/session"
	"factory-backend/internal/store"
	"factory-backend/internal/telegram"
)

func main() {
	cfg := config.Load()

	pool := db.Connect(cfg)
	defer pool.Close()

	migrator := database.NewMigrator(pool)
	if err := migrator.RunMigrations(context.Background()); err != nil {
		log.Fatalf("[Database] migrations failed: %v", err)
	}

	// Redis is optional; the store falls back to direct queries.
	if err := cache.Init(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password); err != nil {
		log.Printf("[Cache] redis unavailable, continuing without cache: %v", err)
	}

	st := store.NewPostgres(
		&repositories.AccountRepository{DB: pool},
		&repositories.ProductionRepository{DB: pool},
		&repositories.CategoryRepository{DB: pool},
	)

	registry := session.NewRegistry()

	bot, err := telegram.NewBot(cfg.Bot.Token, cfg.Bot.PollTimeout, nil)
	if err != nil {
		log.Fatalf("[Bot] %v", err)
	}

	notifier := notify.New(registry, bot)
	machine := dialog.NewMachine(st, registry, notifier)
	bot.SetMachine(machine)

	go func() {
		srv := monitoring.NewServer(pool, registry, cfg.Bot.MonitoringPort)
		if err := srv.Run(); err != nil {
			log.Printf("[Monitoring] server stopped: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Println("[Bot] starting update loop")
	bot.Run(ctx)
	log.Println("[Bot] shut down")
}
