package models

import "fmt"

type TradeCandidate struct {
	MyPlayer            RosterPlayer
	OtherPlayer         RosterPlayer
	OtherTeam           string
	MyImprovement       float64
	OtherImprovement    float64
	CombinedImprovement float64
}

func (c TradeCandidate) String() string {
	return fmt.Sprintf("%s(%.2f) -> %s - %s(%.2f) (%.2f) - %.2f - %.2f",
		c.MyPlayer.Name, c.MyPlayer.Points(),
		c.OtherTeam,
		c.OtherPlayer.Name, c.OtherPlayer.Points(),
		c.MyImprovement, c.OtherImprovement, c.CombinedImprovement)
}
