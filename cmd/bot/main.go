package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/dutybot/slack-duty-bot/internal/config"
	"github.com/dutybot/slack-duty-bot/internal/database"
	"github.com/dutybot/slack-duty-bot/internal/domain/service"
	"github.com/dutybot/slack-duty-bot/internal/handlers"
	"github.com/dutybot/slack-duty-bot/internal/mailer"
	"github.com/dutybot/slack-duty-bot/internal/storage/jsonstore"
	"github.com/dutybot/slack-duty-bot/migrator/sqlite"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn(".env file not found")
	}

	cfg := config.Load()

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	db, err := database.New(cfg.HistoryDBPath)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.Close()

	log.Info("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}
	log.Info("Migrations completed successfully")

	store := jsonstore.New(cfg.ConfigPath, cfg.RosterPath)
	historyRepo := database.NewHistoryRepo(db)

	instance, err := service.NewInstance(store, historyRepo)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize duty service")
	}
	instance.SetMailer(mailer.New(instance.EmailConfig()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	instance.Start(ctx)
	defer instance.Stop()

	handler := handlers.New(instance.Roster, cfg.SlackSigningSecret, cfg.AdminUserIDs)

	http.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	server := &http.Server{Addr: ":" + cfg.Port}
	go func() {
		<-ctx.Done()
		log.Info("Shutting down...")
		server.Shutdown(context.Background())
	}()

	log.WithField("port", cfg.Port).Info("Server starting")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("Failed to start server")
	}
}
