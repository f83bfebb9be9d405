package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/omarshaarawi/tradebot/internal/config"
	"github.com/omarshaarawi/tradebot/internal/service"
	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	s            gocron.Scheduler
	location     *time.Location
	tradeService *service.TradeService
	sendMessage  func(string) error
	cfg          config.Schedule
}

func NewScheduler(tradeService *service.TradeService, sendMessage func(string) error, cfg config.Schedule) (*Scheduler, error) {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		slog.Error("Failed to load location, using UTC", "timezone", cfg.Timezone, "error", err)
		location = time.UTC
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:            s,
		location:     location,
		tradeService: tradeService,
		sendMessage:  sendMessage,
		cfg:          cfg,
	}, nil
}

func (s *Scheduler) Start() error {
	schedule, err := cron.ParseStandard(s.cfg.Report)
	if err != nil {
		return fmt.Errorf("invalid report schedule %q: %w", s.cfg.Report, err)
	}

	// Trade suggestions - REPORT_SCHEDULE (default Tuesday 7:30)
	_, err = s.s.NewJob(
		gocron.CronJob(s.cfg.Report, false),
		gocron.NewTask(s.sendTrades),
	)
	if err != nil {
		return fmt.Errorf("failed to create trades job: %w", err)
	}

	// Current standings - Wednesday 7:30
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Wednesday), gocron.NewAtTimes(gocron.NewAtTime(7, 30, 0))),
		gocron.NewTask(s.sendStandings),
	)
	if err != nil {
		return fmt.Errorf("failed to create standings job: %w", err)
	}

	s.s.Start()
	slog.Info("Scheduler started", "next_trade_report", schedule.Next(time.Now().In(s.location)))
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) Jobs() int {
	return len(s.s.Jobs())
}

func (s *Scheduler) sendTrades() {
	report, err := s.tradeService.SuggestTrades()
	if err != nil {
		slog.Error("Failed to suggest trades", "error", err)
		return
	}
	if err := s.sendMessage(report); err != nil {
		slog.Error("Failed to send trades", "error", err)
	}
}

func (s *Scheduler) sendStandings() {
	standings, err := s.tradeService.GetStandings()
	if err != nil {
		slog.Error("Failed to get standings", "error", err)
		return
	}
	if err := s.sendMessage(standings); err != nil {
		slog.Error("Failed to send standings", "error", err)
	}
}
