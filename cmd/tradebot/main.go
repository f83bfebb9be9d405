package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/omarshaarawi/tradebot/internal/api/espn"
	"github.com/omarshaarawi/tradebot/internal/api/fantasy"
	"github.com/omarshaarawi/tradebot/internal/bot"
	"github.com/omarshaarawi/tradebot/internal/config"
	"github.com/omarshaarawi/tradebot/internal/repository/memory"
	"github.com/omarshaarawi/tradebot/internal/scheduler"
	"github.com/omarshaarawi/tradebot/internal/service"
	"github.com/omarshaarawi/tradebot/internal/store"
	"github.com/omarshaarawi/tradebot/internal/trade"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file loaded", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	var leagueAPI service.LeagueAPI
	if !cfg.Snapshot.Offline {
		espnClient := espn.NewClient(cfg.ESPNAPI)
		espnAPI := espn.NewAPI(espnClient)
		leagueAPI = fantasy.NewAPI(espnAPI)
	}

	evaluator := trade.NewEvaluator(
		trade.WithWorkers(cfg.Trade.Workers),
		trade.WithSamePosition(cfg.Trade.SamePositionOnly),
	)

	repo := memory.NewRepository()
	tradeService := service.NewTradeService(leagueAPI, store.NewJSONStore(cfg.Snapshot.Dir), repo, evaluator, service.Options{
		MyTeam:  cfg.Trade.MyTeam,
		Limit:   cfg.Trade.Limit,
		TTL:     cfg.Snapshot.TTL,
		Offline: cfg.Snapshot.Offline,
	})

	if !cfg.BotEnabled() {
		report, err := tradeService.SuggestTrades()
		if err != nil {
			return err
		}
		fmt.Println(report)
		return nil
	}

	telegramBot, err := bot.NewTelegramBot(cfg.TelegramBot.Token, cfg.TelegramBot.ChatID, tradeService)
	if err != nil {
		return err
	}

	sched, err := scheduler.NewScheduler(tradeService, telegramBot.SendMessage, cfg.Schedule)
	if err != nil {
		return err
	}

	if err := sched.Start(); err != nil {
		return err
	}
	defer func() {
		err := sched.Stop()
		if err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	http.HandleFunc("/", healthCheckHandler)

	go func() {
		if err := http.ListenAndServe(cfg.HTTPAddr, nil); err != nil {
			slog.Error("Error starting HTTP server", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := telegramBot.Start(ctx); err != nil {
			slog.Error("Error running telegram bot", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	return nil
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
