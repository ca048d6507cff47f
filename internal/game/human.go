package game

import (
	"strconv"

	"github.com/krishanu7/battleship-console/internal/console"
)

// HumanPlayer takes its decisions from a console.
type HumanPlayer struct {
	con *console.Console
}

func NewHumanPlayer(con *console.Console) *HumanPlayer {
	return &HumanPlayer{con: con}
}

func (h *HumanPlayer) ShipParams(size int) (Placement, error) {
	word := "cells"
	if size == 1 {
		word = "cell"
	}
	h.con.Printf("Place a ship of %d %s\n", size, word)
	h.con.Println("Allowed values:")
	h.con.Printf("X: from 1 to %d,\n", Width)
	h.con.Printf("Y: from 1 to %d\n", Height)
	prompt := "Enter 'X' and 'Y' of its first cell: "
	if size > 1 {
		h.con.Println("Type: 0 - horizontal, 1 - vertical")
		prompt = "Enter 'X' and 'Y' of its first cell and the ship 'Type', separated by spaces: "
	}

	fields, err := h.con.Prompt(prompt)
	if err != nil {
		return Placement{}, err
	}
	if size == 1 {
		fields = append(fields, "0")
	}
	if len(fields) != 3 {
		return Placement{}, Violation("wrong number of parameters")
	}
	nums, err := atoiAll(fields)
	if err != nil {
		return Placement{}, Violation("one of the parameters is not a number")
	}
	return Placement{
		Origin:      Cell{X: nums[0], Y: nums[1]},
		Orientation: Orientation(nums[2]),
	}, nil
}

func (h *HumanPlayer) Target(remaining []int) (int, error) {
	fields, err := h.con.Prompt("Enter the X and Y of your shot separated by a space: ")
	if err != nil {
		return 0, err
	}
	if len(fields) != 2 {
		return 0, Violation("wrong number of coordinates")
	}
	nums, err := atoiAll(fields)
	if err != nil {
		return 0, Violation("one of the coordinates is not a number")
	}
	x, y := nums[0], nums[1]
	if x < 1 || x > Width {
		return 0, Violation("X is outside the board, use 1 to %d", Width)
	}
	if y < 1 || y > Height {
		return 0, Violation("Y is outside the board, use 1 to %d", Height)
	}
	return Cell{X: x, Y: y}.Index(Width), nil
}

func (h *HumanPlayer) ReportError(err error) {
	h.con.Printf("\n %v \n\n", err)
}

func (h *HumanPlayer) ShowFleet(ships ShipList) {
	h.con.Println(NewBoard(ships, true))
}

func atoiAll(fields []string) ([]int, error) {
	nums := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		nums[i] = n
	}
	return nums, nil
}
