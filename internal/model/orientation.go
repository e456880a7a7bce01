package model

// Orientation is the direction a ship extends from its origin cell.
// Only used while placing; boards do not remember it.
type Orientation int

const (
	OrientationUp Orientation = iota
	OrientationRight
	OrientationDown
	OrientationLeft
)

// Orientations lists all directions in the order placement tries them
var Orientations = [4]Orientation{OrientationUp, OrientationRight, OrientationDown, OrientationLeft}

// Delta returns the row and column step for one cell along the orientation
func (o Orientation) Delta() (dRow, dCol int) {
	switch o {
	case OrientationUp:
		return -1, 0
	case OrientationRight:
		return 0, 1
	case OrientationDown:
		return 1, 0
	case OrientationLeft:
		return 0, -1
	default:
		return 0, 0
	}
}

// Step returns the position i cells from origin along the orientation
func (o Orientation) Step(origin Position, i int) Position {
	dRow, dCol := o.Delta()
	return origin.Add(dRow*i, dCol*i)
}

func (o Orientation) String() string {
	switch o {
	case OrientationUp:
		return "up"
	case OrientationRight:
		return "right"
	case OrientationDown:
		return "down"
	case OrientationLeft:
		return "left"
	default:
		return "unknown"
	}
}
