package game_test

import (
	"testing"

	"github.com/krishanu7/battleship-console/internal/game"
)

func TestCell_Add(t *testing.T) {
	c := game.Cell{X: 2, Y: 3}.Add(game.Cell{X: -1, Y: 1})
	if want, have := (game.Cell{X: 1, Y: 4}), c; want != have {
		t.Errorf("want=%v, have=%v", want, have)
	}
}

func TestCell_IndexRoundTrip(t *testing.T) {
	for i := 0; i < game.Width*game.Height; i++ {
		if have := game.CellAt(i, game.Width).Index(game.Width); have != i {
			t.Errorf("index %d came back as %d", i, have)
		}
	}
	if want, have := (game.Cell{X: 1, Y: 2}), game.CellAt(6, game.Width); want != have {
		t.Errorf("want=%v, have=%v", want, have)
	}
}

func TestNewShip_Cells(t *testing.T) {
	for size := 1; size <= 3; size++ {
		for _, o := range []game.Orientation{game.Horizontal, game.Vertical} {
			ship, err := game.NewShip(size, o, game.Cell{X: 2, Y: 2})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			cells := ship.Cells()
			if want, have := size, len(cells); want != have {
				t.Errorf("size=%d %s: want %d cells, have %d", size, o, want, have)
			}
			for i := 1; i < len(cells); i++ {
				dx, dy := cells[i].X-cells[i-1].X, cells[i].Y-cells[i-1].Y
				if o == game.Horizontal && (dx != 1 || dy != 0) {
					t.Errorf("horizontal ship step (%d, %d)", dx, dy)
				}
				if o == game.Vertical && (dx != 0 || dy != 1) {
					t.Errorf("vertical ship step (%d, %d)", dx, dy)
				}
			}
		}
	}
}

func TestNewShip_InvalidOrientation(t *testing.T) {
	_, err := game.NewShip(2, game.Orientation(2), game.Cell{X: 1, Y: 1})
	if err == nil {
		t.Fatal("expected error but got nil")
	}
	if !game.IsRecoverable(err) {
		t.Errorf("expected a recoverable error, have %v", err)
	}
}

func TestShip_Killed(t *testing.T) {
	ship, _ := game.NewShip(2, game.Vertical, game.Cell{X: 3, Y: 3})
	if ship.Hit(game.Cell{X: 4, Y: 3}) {
		t.Error("hit reported for a cell outside the ship")
	}
	if !ship.Hit(game.Cell{X: 3, Y: 3}) {
		t.Error("miss reported for the first segment")
	}
	if ship.Killed() {
		t.Error("ship killed after one of two hits")
	}
	ship.Hit(game.Cell{X: 3, Y: 4})
	if !ship.Killed() {
		t.Error("ship not killed after every segment was hit")
	}
}

func TestShip_Area(t *testing.T) {
	ship, _ := game.NewShip(3, game.Horizontal, game.Cell{X: 2, Y: 2})
	want := game.Area{Min: game.Cell{X: 1, Y: 1}, Max: game.Cell{X: 5, Y: 3}}
	if have := ship.Area(); want != have {
		t.Errorf("want=%v, have=%v", want, have)
	}
}

func TestShipList_Fits(t *testing.T) {
	single, _ := game.NewShip(1, game.Horizontal, game.Cell{X: 2, Y: 2})
	long, _ := game.NewShip(3, game.Horizontal, game.Cell{X: 3, Y: 5})
	placed := game.ShipList{single, long}

	tests := []struct {
		name    string
		size    int
		at      game.Placement
		wantErr string
	}{
		{"overlap", 2, v(3, 4), "another ship is in an adjacent cell"},
		{"same cell", 1, h(2, 2), "another ship is in an adjacent cell"},
		{"edge adjacent", 1, h(3, 2), "another ship is in an adjacent cell"},
		{"corner of single", 1, h(3, 3), ""},
		{"corner of long ship", 2, v(6, 3), ""},
		{"diagonal into corner", 2, h(3, 3), ""},
		{"far away", 1, h(6, 1), ""},
		{"off board", 3, h(5, 1), "ship is outside the board"},
		{"off board checked first", 3, v(2, 5), "ship is outside the board"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ship, err := game.NewShip(tt.size, tt.at.Orientation, tt.at.Origin)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			err = placed.Fits(ship, game.Width, game.Height)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error but got nil")
			}
			if want, have := tt.wantErr, err.Error(); want != have {
				t.Errorf("unexpected error: want=%q, have=%q", want, have)
			}
			if !game.IsRecoverable(err) {
				t.Errorf("expected a recoverable error, have %v", err)
			}
		})
	}
}

func TestShipList_Killed(t *testing.T) {
	a, _ := game.NewShip(1, game.Horizontal, game.Cell{X: 1, Y: 1})
	b, _ := game.NewShip(2, game.Horizontal, game.Cell{X: 4, Y: 4})
	ships := game.ShipList{a, b}

	if !ships.Hit(game.Cell{X: 1, Y: 1}) {
		t.Error("expected a hit")
	}
	if ships.Hit(game.Cell{X: 6, Y: 6}) {
		t.Error("expected a miss")
	}
	if ships.Killed() {
		t.Error("fleet killed while a ship is afloat")
	}
	ships.Hit(game.Cell{X: 4, Y: 4})
	ships.Hit(game.Cell{X: 5, Y: 4})
	if !ships.Killed() {
		t.Error("fleet not killed after every ship was sunk")
	}
}
