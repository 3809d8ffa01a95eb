package portfolio

import (
	"fmt"
	"strings"
)

// Direction is the neighbour a block swaps with in MoveBlock.
type Direction int

const (
	Earlier Direction = iota
	Later
)

// ParseDirection accepts "earlier"/"prev" and "later"/"next".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "earlier", "prev":
		return Earlier, nil
	case "later", "next":
		return Later, nil
	}
	return 0, fmt.Errorf("invalid direction %q", s)
}

// Axis selects the span a resize changes.
type Axis int

const (
	Width Axis = iota
	Height
)

// ParseAxis accepts "width" and "height".
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(s) {
	case "width":
		return Width, nil
	case "height":
		return Height, nil
	}
	return 0, fmt.Errorf("invalid axis %q", s)
}

// Resize is the direction of a resize step.
type Resize int

const (
	Grow Resize = iota
	Shrink
)

// ParseResize accepts "grow"/"increase" and "shrink"/"decrease".
func ParseResize(s string) (Resize, error) {
	switch strings.ToLower(s) {
	case "grow", "increase":
		return Grow, nil
	case "shrink", "decrease":
		return Shrink, nil
	}
	return 0, fmt.Errorf("invalid resize action %q", s)
}
