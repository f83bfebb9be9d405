// Package trade simulates one-for-one trades between my team and every other
// team in a league and ranks them by how much they improve both lineups.
package trade

import (
	"log/slog"
	"runtime"

	"github.com/omarshaarawi/tradebot/internal/lineup"
	"github.com/omarshaarawi/tradebot/internal/models"
	"golang.org/x/sync/errgroup"
)

type Evaluator struct {
	slots        lineup.Config
	workers      int
	samePosition bool
	logger       *slog.Logger
}

type Option func(*Evaluator)

func WithSlots(slots lineup.Config) Option {
	return func(e *Evaluator) { e.slots = slots }
}

// WithWorkers bounds how many (team, player) jobs run at once. Values below
// one run everything on the calling goroutine.
func WithWorkers(n int) Option {
	return func(e *Evaluator) { e.workers = n }
}

// WithSamePosition only considers swaps between players of the same position.
func WithSamePosition(only bool) Option {
	return func(e *Evaluator) { e.samePosition = only }
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Evaluator) { e.logger = logger }
}

func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		slots:   lineup.Standard,
		workers: runtime.GOMAXPROCS(0),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type job struct {
	team     *models.TeamRoster
	baseline float64
	mine     int
}

// Evaluate returns every trade that improves at least one side, in
// generation order: other teams in league order, then my players in roster
// order, then their players in roster order. The league is not modified.
func (e *Evaluator) Evaluate(league *models.League) ([]models.TradeCandidate, error) {
	myTeam, err := league.MyTeam()
	if err != nil {
		return nil, err
	}

	myBaseline := e.slots.Optimize(myTeam.Players).Total
	e.logger.Debug("Baseline computed", "team", myTeam.TeamName, "score", myBaseline)

	var jobs []job
	for i := range league.Teams {
		team := &league.Teams[i]
		if team.IsMine {
			continue
		}
		baseline := e.slots.Optimize(team.Players).Total
		e.logger.Debug("Baseline computed", "team", team.TeamName, "score", baseline)

		for m, p := range myTeam.Players {
			if p.Scored() {
				jobs = append(jobs, job{team: team, baseline: baseline, mine: m})
			}
		}
	}

	results := make([][]models.TradeCandidate, len(jobs))
	run := func(i int) {
		results[i] = e.evaluateJob(myTeam.Players, myBaseline, jobs[i])
	}

	if e.workers <= 1 {
		for i := range jobs {
			run(i)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(e.workers)
		for i := range jobs {
			i := i
			g.Go(func() error {
				run(i)
				return nil
			})
		}
		_ = g.Wait()
	}

	var candidates []models.TradeCandidate
	for _, r := range results {
		candidates = append(candidates, r...)
	}

	e.logger.Debug("Trades evaluated", "jobs", len(jobs), "candidates", len(candidates))
	return candidates, nil
}

func (e *Evaluator) evaluateJob(myPlayers []models.RosterPlayer, myBaseline float64, j job) []models.TradeCandidate {
	var out []models.TradeCandidate
	mine := myPlayers[j.mine]

	for o, theirs := range j.team.Players {
		if !theirs.Scored() {
			continue
		}
		if e.samePosition && mine.Position != theirs.Position {
			continue
		}

		myScore := e.slots.Optimize(swap(myPlayers, j.mine, theirs)).Total
		otherScore := e.slots.Optimize(swap(j.team.Players, o, mine)).Total

		myGain := myScore - myBaseline
		otherGain := otherScore - j.baseline
		if myGain <= 0 && otherGain <= 0 {
			continue
		}

		out = append(out, models.TradeCandidate{
			MyPlayer:            mine,
			OtherPlayer:         theirs,
			OtherTeam:           j.team.TeamName,
			MyImprovement:       myGain,
			OtherImprovement:    otherGain,
			CombinedImprovement: myGain + otherGain,
		})
	}
	return out
}

// swap returns a copy of roster with the player at idx replaced by incoming.
func swap(roster []models.RosterPlayer, idx int, incoming models.RosterPlayer) []models.RosterPlayer {
	out := make([]models.RosterPlayer, len(roster))
	copy(out, roster)
	out[idx] = incoming
	return out
}
