package game

type Ship struct {
	size        int
	orientation Orientation
	cells       []Cell
	hits        []bool
}

// NewShip lays out a ship of the given size from origin.
func NewShip(size int, orientation Orientation, origin Cell) (*Ship, error) {
	if size < 1 || size > 3 {
		return nil, Violation("invalid ship size: %d", size)
	}
	if !orientation.IsValid() {
		return nil, Violation("invalid ship orientation: %d", orientation)
	}

	cells := make([]Cell, size)
	pos := origin
	for i := 0; i < size; i++ {
		cells[i] = pos
		pos = pos.Add(orientation.unit())
	}
	return &Ship{
		size:        size,
		orientation: orientation,
		cells:       cells,
		hits:        make([]bool, size),
	}, nil
}

func (s *Ship) Size() int                { return s.size }
func (s *Ship) Orientation() Orientation { return s.orientation }
func (s *Ship) Origin() Cell             { return s.cells[0] }

// Cells returns a copy of the ship's cells in order from the origin.
func (s *Ship) Cells() []Cell {
	out := make([]Cell, len(s.cells))
	copy(out, s.cells)
	return out
}

func (s *Ship) Killed() bool {
	for _, hit := range s.hits {
		if !hit {
			return false
		}
	}
	return true
}

// Area is the exclusion area around the ship: its bounding box grown by one
// cell on every side.
func (s *Ship) Area() Area {
	return Area{
		Min: s.cells[0].Add(Cell{X: -1, Y: -1}),
		Max: s.cells[len(s.cells)-1].Add(Cell{X: 1, Y: 1}),
	}
}

func (s *Ship) OnBoard(width, height int) error {
	for _, c := range s.cells {
		if c.X < 1 || c.Y < 1 || c.X > width || c.Y > height {
			return Violation("ship is outside the board")
		}
	}
	return nil
}

// CheckArea fails when one of the ship's cells is inside area. The four
// corners of area are allowed: ships may touch diagonally.
func (s *Ship) CheckArea(area Area) error {
	for _, c := range s.cells {
		if area.Contains(c) && !area.IsCorner(c) {
			return Violation("another ship is in an adjacent cell")
		}
	}
	return nil
}

// Hit marks the segment at cell and reports whether the ship occupies it.
func (s *Ship) Hit(cell Cell) bool {
	for i, c := range s.cells {
		if c == cell {
			s.hits[i] = true
			return true
		}
	}
	return false
}

// ShipList is a fleet in placement order.
type ShipList []*Ship

func (l ShipList) Hit(cell Cell) bool {
	for _, ship := range l {
		if ship.Hit(cell) {
			return true
		}
	}
	return false
}

func (l ShipList) Killed() bool {
	for _, ship := range l {
		if !ship.Killed() {
			return false
		}
	}
	return true
}

// Fits checks a candidate against the board bounds and then against the
// exclusion area of every ship already in the list.
func (l ShipList) Fits(candidate *Ship, width, height int) error {
	if err := candidate.OnBoard(width, height); err != nil {
		return err
	}
	for _, ship := range l {
		if err := candidate.CheckArea(ship.Area()); err != nil {
			return err
		}
	}
	return nil
}
