package game

import (
	"fmt"
	"strings"
)

type Marker string

const (
	MarkerEmpty Marker = "0"
	MarkerShip  Marker = "■"
	MarkerHit   Marker = "X"
	MarkerMiss  Marker = "T"
)

type Board struct {
	grid  [Height][Width]Marker // grid[row][column]
	ships ShipList
}

// NewBoard builds a board for ships. Ship markers are painted only when
// showShips is set; the ships take hits either way.
func NewBoard(ships ShipList, showShips bool) *Board {
	b := &Board{ships: ships}
	for y := range b.grid {
		for x := range b.grid[y] {
			b.grid[y][x] = MarkerEmpty
		}
	}
	if showShips {
		for _, ship := range ships {
			for _, c := range ship.cells {
				b.grid[c.Y-1][c.X-1] = MarkerShip
			}
		}
	}
	return b
}

func (b *Board) Ships() ShipList {
	return b.ships
}

func (b *Board) At(cell Cell) Marker {
	return b.grid[cell.Y-1][cell.X-1]
}

// Hit applies a shot at cell and paints the result.
func (b *Board) Hit(cell Cell) bool {
	hit := b.ships.Hit(cell)
	if hit {
		b.grid[cell.Y-1][cell.X-1] = MarkerHit
	} else {
		b.grid[cell.Y-1][cell.X-1] = MarkerMiss
	}
	return hit
}

func (b *Board) Killed() bool {
	return b.ships.Killed()
}

func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("   |")
	for x := 1; x <= Width; x++ {
		fmt.Fprintf(&sb, " %d |", x)
	}
	for y := range b.grid {
		fmt.Fprintf(&sb, "\n %d |", y+1)
		for x := range b.grid[y] {
			fmt.Fprintf(&sb, " %s |", b.grid[y][x])
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

// SideBySide renders two titled boards in two columns.
func SideBySide(leftTitle string, left *Board, rightTitle string, right *Board) string {
	w := (Width+1)*4 + 5
	l := append([]string{leftTitle}, strings.Split(left.String(), "\n")...)
	r := append([]string{rightTitle}, strings.Split(right.String(), "\n")...)

	var sb strings.Builder
	for i := 0; i < len(l) && i < len(r); i++ {
		fmt.Fprintf(&sb, "%-*s%s\n", w, l[i], r[i])
	}
	return sb.String()
}
