package game

import (
	"errors"
	"fmt"
)

const (
	Width  = 6
	Height = 6
)

// ShipSizes is the fleet composition in placement order.
var ShipSizes = []int{3, 2, 2, 1, 1, 1, 1}

// RuleError is a recoverable error: a placement violation or bad input.
// The step that produced it is retried.
type RuleError struct {
	Msg string
}

func (e *RuleError) Error() string {
	return e.Msg
}

func Violation(format string, args ...any) error {
	return &RuleError{Msg: fmt.Sprintf(format, args...)}
}

// IsRecoverable reports whether err should be retried at the current step.
func IsRecoverable(err error) bool {
	var ruleErr *RuleError
	return errors.As(err, &ruleErr)
}

type Cell struct {
	X int
	Y int
}

func (c Cell) Add(delta Cell) Cell {
	return Cell{X: c.X + delta.X, Y: c.Y + delta.Y}
}

// Index converts c to a flat grid index, row by row.
func (c Cell) Index(width int) int {
	return (c.Y-1)*width + (c.X - 1)
}

func (c Cell) String() string {
	return fmt.Sprintf("%d:%d", c.X, c.Y)
}

func CellAt(index, width int) Cell {
	return Cell{X: index%width + 1, Y: index/width + 1}
}

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		return "Unknown"
	}
}

func (o Orientation) IsValid() bool {
	return o == Horizontal || o == Vertical
}

func (o Orientation) unit() Cell {
	if o == Vertical {
		return Cell{X: 0, Y: 1}
	}
	return Cell{X: 1, Y: 0}
}

// Placement is a candidate position for a ship: its first cell and direction.
type Placement struct {
	Origin      Cell
	Orientation Orientation
}

// Area is a rectangle given by its top-left and bottom-right cells.
type Area struct {
	Min Cell
	Max Cell
}

func (a Area) Contains(c Cell) bool {
	return a.Min.X <= c.X && c.X <= a.Max.X && a.Min.Y <= c.Y && c.Y <= a.Max.Y
}

func (a Area) IsCorner(c Cell) bool {
	return c == a.Min || c == a.Max ||
		c == (Cell{X: a.Min.X, Y: a.Max.Y}) ||
		c == (Cell{X: a.Max.X, Y: a.Min.Y})
}
