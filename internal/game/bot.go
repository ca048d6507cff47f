package game

import (
	"errors"
	"math/rand"
)

var ErrNoTargets = errors.New("no cells left to fire at")

// BotPlayer places ships and fires uniformly at random.
type BotPlayer struct {
	rng *rand.Rand
}

func NewBotPlayer(rng *rand.Rand) *BotPlayer {
	return &BotPlayer{rng: rng}
}

func (b *BotPlayer) ShipParams(size int) (Placement, error) {
	return Placement{
		Origin:      Cell{X: b.rng.Intn(Width) + 1, Y: b.rng.Intn(Height) + 1},
		Orientation: Orientation(b.rng.Intn(2)),
	}, nil
}

func (b *BotPlayer) Target(remaining []int) (int, error) {
	if len(remaining) == 0 {
		return 0, ErrNoTargets
	}
	return remaining[b.rng.Intn(len(remaining))], nil
}

// RestartAfter bounds the rejected candidates for one ship. Past that the
// fleet so far leaves no room and is laid out again.
func (b *BotPlayer) RestartAfter() int {
	return 1000
}

func (b *BotPlayer) ReportError(error)  {}
func (b *BotPlayer) ShowFleet(ShipList) {}
