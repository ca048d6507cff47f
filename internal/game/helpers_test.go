package game_test

import (
	"errors"

	"github.com/krishanu7/battleship-console/internal/game"
)

var errScriptExhausted = errors.New("script exhausted")

// scriptedPlayer replays fixed placements and targets.
type scriptedPlayer struct {
	placements []game.Placement
	targets    []int
	reported   []error
	shown      int
}

func (p *scriptedPlayer) ShipParams(size int) (game.Placement, error) {
	if len(p.placements) == 0 {
		return game.Placement{}, errScriptExhausted
	}
	next := p.placements[0]
	p.placements = p.placements[1:]
	return next, nil
}

func (p *scriptedPlayer) Target(remaining []int) (int, error) {
	if len(p.targets) == 0 {
		return 0, errScriptExhausted
	}
	next := p.targets[0]
	p.targets = p.targets[1:]
	return next, nil
}

func (p *scriptedPlayer) ReportError(err error) {
	p.reported = append(p.reported, err)
}

func (p *scriptedPlayer) ShowFleet(game.ShipList) {
	p.shown++
}

func h(x, y int) game.Placement {
	return game.Placement{Origin: game.Cell{X: x, Y: y}, Orientation: game.Horizontal}
}

func v(x, y int) game.Placement {
	return game.Placement{Origin: game.Cell{X: x, Y: y}, Orientation: game.Vertical}
}

// fleetPlacements is a valid layout for game.ShipSizes.
func fleetPlacements() []game.Placement {
	return []game.Placement{h(1, 1), h(5, 1), v(1, 3), h(3, 3), h(5, 3), h(3, 5), h(5, 5)}
}

// fleetIndices are the flat indices of every cell of fleetPlacements.
var fleetIndices = []int{0, 1, 2, 4, 5, 12, 18, 14, 16, 26, 28}

// waterIndices are flat indices that hold no ship in fleetPlacements.
var waterIndices = []int{3, 6, 7, 8, 9, 10, 11, 13, 15, 17, 19, 20}

func newCombatant(targets []int, showShips bool) (*game.Combatant, *scriptedPlayer) {
	p := &scriptedPlayer{placements: fleetPlacements(), targets: targets}
	c, err := game.NewCombatant(p, showShips)
	if err != nil {
		panic(err)
	}
	return c, p
}
