package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"
)

type Config struct {
	TelegramBot TelegramBot
	ESPNAPI     ESPNAPI
	Trade       Trade
	Snapshot    Snapshot
	Schedule    Schedule
	HTTPAddr    string `envconfig:"HTTP_ADDR" default:":80"`
}

// TelegramBot is optional. Without a token the report is printed once.
type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN"`
	ChatID int64  `envconfig:"CHAT_ID"`
}

type ESPNAPI struct {
	Year     string `envconfig:"YEAR"`
	LeagueID string `envconfig:"LEAGUE_ID"`
	SWID     string `envconfig:"SWID"`
	ESPNS2   string `envconfig:"ESPN_S2"`
	BaseURL  string `envconfig:"ESPN_BASE_URL" default:"https://lm-api-reads.fantasy.espn.com/apis/v3/games/ffl"`
}

type Trade struct {
	// MyTeam is a team ID or team name.
	MyTeam           string `envconfig:"MY_TEAM" required:"true"`
	Limit            int    `envconfig:"TRADE_LIMIT" default:"10"`
	Workers          int    `envconfig:"TRADE_WORKERS" default:"4"`
	SamePositionOnly bool   `envconfig:"SAME_POSITION_ONLY" default:"false"`
}

type Snapshot struct {
	Dir     string        `envconfig:"SNAPSHOT_DIR" default:"snapshots"`
	Offline bool          `envconfig:"OFFLINE" default:"false"`
	TTL     time.Duration `envconfig:"SNAPSHOT_TTL" default:"1h"`
}

type Schedule struct {
	Report   string `envconfig:"REPORT_SCHEDULE" default:"30 7 * * 2"`
	Timezone string `envconfig:"TIMEZONE" default:"America/Chicago"`
}

func (c *Config) BotEnabled() bool {
	return c.TelegramBot.Token != ""
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Trade.MyTeam) == "" {
		return fmt.Errorf("MY_TEAM must not be empty")
	}
	if !c.Snapshot.Offline {
		if c.ESPNAPI.Year == "" || c.ESPNAPI.LeagueID == "" {
			return fmt.Errorf("YEAR and LEAGUE_ID are required unless OFFLINE is set")
		}
	}
	if c.BotEnabled() && c.TelegramBot.ChatID == 0 {
		return fmt.Errorf("CHAT_ID is required when TELEGRAM_TOKEN is set")
	}
	if _, err := cron.ParseStandard(c.Schedule.Report); err != nil {
		return fmt.Errorf("invalid REPORT_SCHEDULE %q: %w", c.Schedule.Report, err)
	}
	return nil
}
