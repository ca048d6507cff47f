package game

import "errors"

var errFleetStuck = errors.New("no room left for the fleet")

// Player supplies the decisions for one side of a match.
type Player interface {
	// ShipParams proposes a placement for a ship of the given size.
	ShipParams(size int) (Placement, error)
	// Target picks a flat grid index to fire at from the ones not fired at yet.
	Target(remaining []int) (int, error)
	ReportError(err error)
	ShowFleet(ships ShipList)
}

// restarter is implemented by players that lay out their fleet again from
// scratch after RestartAfter rejected candidates in a row.
type restarter interface {
	RestartAfter() int
}

// PlaceFleet asks p for placements until every size in sizes is placed.
// Recoverable errors are reported to p and the same size is retried; any
// other error aborts placement.
func PlaceFleet(p Player, width, height int, sizes []int) (ShipList, error) {
	return placeFleet(p, width, height, sizes, 0)
}

func placeFleet(p Player, width, height int, sizes []int, limit int) (ShipList, error) {
	ships := make(ShipList, 0, len(sizes))
	for _, size := range sizes {
		for rejected := 0; ; {
			ship, err := proposeShip(p, size, ships, width, height)
			if err != nil {
				if !IsRecoverable(err) {
					return nil, err
				}
				rejected++
				if limit > 0 && rejected >= limit {
					return nil, errFleetStuck
				}
				p.ReportError(err)
				p.ShowFleet(ships)
				continue
			}
			ships = append(ships, ship)
			p.ShowFleet(ships)
			break
		}
	}
	return ships, nil
}

func proposeShip(p Player, size int, placed ShipList, width, height int) (*Ship, error) {
	params, err := p.ShipParams(size)
	if err != nil {
		return nil, err
	}
	ship, err := NewShip(size, params.Orientation, params.Origin)
	if err != nil {
		return nil, err
	}
	if err := placed.Fits(ship, width, height); err != nil {
		return nil, err
	}
	return ship, nil
}

// Combatant is a player together with its own board and the record of
// cells it has fired at on the opponent's board.
type Combatant struct {
	Player Player
	Board  *Board
	fired  []bool
	shots  int
}

// NewCombatant places p's fleet and builds its board.
func NewCombatant(p Player, showShips bool) (*Combatant, error) {
	limit := 0
	if r, ok := p.(restarter); ok {
		limit = r.RestartAfter()
	}

	var ships ShipList
	for {
		var err error
		ships, err = placeFleet(p, Width, Height, ShipSizes, limit)
		if errors.Is(err, errFleetStuck) {
			continue
		}
		if err != nil {
			return nil, err
		}
		break
	}
	return &Combatant{
		Player: p,
		Board:  NewBoard(ships, showShips),
		fired:  make([]bool, Width*Height),
	}, nil
}

// HitVariants returns the flat indices not fired at yet.
func (c *Combatant) HitVariants() []int {
	variants := make([]int, 0, len(c.fired))
	for i, fired := range c.fired {
		if !fired {
			variants = append(variants, i)
		}
	}
	return variants
}

func (c *Combatant) Shots() int {
	return c.shots
}

// Fire takes one shot at enemy and reports whether its whole fleet is sunk.
// A rejected shot leaves both sides untouched.
func (c *Combatant) Fire(enemy *Combatant) (bool, error) {
	idx, err := c.Player.Target(c.HitVariants())
	if err != nil {
		return false, err
	}
	if idx < 0 || idx >= len(c.fired) {
		return false, Violation("target %d is outside the board", idx)
	}
	cell := CellAt(idx, Width)
	if c.fired[idx] {
		return false, Violation("you have already fired at %s", cell)
	}
	c.fired[idx] = true
	c.shots++

	enemy.Board.Hit(cell)
	return enemy.Board.Killed(), nil
}
