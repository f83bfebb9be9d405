package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Reporter interface {
	SuggestTrades() (string, error)
	GetLineup(teamName string) (string, error)
	GetStandings() (string, error)
	GetTeamRoster(teamName string) (string, error)
}

type Handler struct {
	reporter Reporter
}

func NewHandler(reporter Reporter) *Handler {
	return &Handler{reporter: reporter}
}

const helpText = "Available commands:\n" +
	"/trades - Suggest trades for my team\n" +
	"/lineup [team] - Best lineup for my team or another team\n" +
	"/standings - Get league standings\n" +
	"/team <team> - View a team's roster and projections"

func (h *Handler) HandleCommand(update tgbotapi.Update) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	command := strings.ToLower(update.Message.Command())
	args := update.Message.CommandArguments()
	msg.ParseMode = "Markdown"

	switch command {
	case "start":
		msg.Text = "Welcome to TradeBot! Use /help to see available commands."
	case "help":
		msg.Text = helpText
	case "trades":
		h.handleTrades(&msg)
	case "lineup":
		h.handleLineup(&msg, args)
	case "standings":
		h.handleStandings(&msg)
	case "team":
		h.handleTeam(&msg, args)
	default:
		msg.Text = "Unknown command. Use /help to see available commands."
	}

	return msg
}

func (h *Handler) handleTrades(msg *tgbotapi.MessageConfig) {
	report, err := h.reporter.SuggestTrades()
	if err != nil {
		msg.Text = fmt.Sprintf("Error suggesting trades: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleLineup(msg *tgbotapi.MessageConfig, args string) {
	report, err := h.reporter.GetLineup(args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error building lineup: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleStandings(msg *tgbotapi.MessageConfig) {
	standings, err := h.reporter.GetStandings()
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching standings: %v", err)
	} else {
		msg.Text = standings
	}
}

func (h *Handler) handleTeam(msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a team name. Usage: /team <team name>"
		return
	}
	result, err := h.reporter.GetTeamRoster(args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error getting team roster: %v", err)
	} else {
		msg.Text = result
	}
}
