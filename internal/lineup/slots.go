package lineup

const (
	SlotQB   = "QB"
	SlotRB   = "RB"
	SlotWR   = "WR"
	SlotTE   = "TE"
	SlotFLEX = "FLEX"
)

// Slot is a fixed starting slot filled only by players of one position.
type Slot struct {
	Position string
	Count    int
}

// FlexSlot takes the best leftovers from several positions once the fixed
// slots are filled. Positions also sets the order of the leftover pool before
// sorting, so it decides ties.
type FlexSlot struct {
	Label     string
	Count     int
	Positions []string
}

type Config struct {
	Fixed []Slot
	Flex  FlexSlot
}

// Standard is the QB/2RB/2WR/TE/FLEX lineup.
var Standard = Config{
	Fixed: []Slot{
		{Position: SlotQB, Count: 1},
		{Position: SlotWR, Count: 2},
		{Position: SlotRB, Count: 2},
		{Position: SlotTE, Count: 1},
	},
	Flex: FlexSlot{
		Label:     SlotFLEX,
		Count:     1,
		Positions: []string{SlotWR, SlotRB, SlotTE},
	},
}

// Labels returns slot labels in lineup order.
func (c Config) Labels() []string {
	labels := make([]string, 0, len(c.Fixed)+1)
	for _, s := range c.Fixed {
		labels = append(labels, s.Position)
	}
	if c.Flex.Count > 0 {
		labels = append(labels, c.Flex.Label)
	}
	return labels
}

func (c Config) recognizes(position string) bool {
	for _, s := range c.Fixed {
		if s.Position == position {
			return true
		}
	}
	for _, p := range c.Flex.Positions {
		if p == position {
			return true
		}
	}
	return false
}
