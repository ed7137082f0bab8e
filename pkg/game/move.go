package game

import (
	"fmt"
	"strings"
)

// Direction names the end of the row or column where an extracted piece is
// pushed back in.
type Direction int

const (
	Top Direction = iota
	Bottom
	Left
	Right
)

// Directions lists every slide in the order the agents try them.
var Directions = [4]Direction{Top, Bottom, Left, Right}

var directionNames = [...]string{Top: "top", Bottom: "bottom", Left: "left", Right: "right"}

func (d Direction) String() string {
	if d < Top || d > Right {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// MarshalText keeps battle logs readable.
func (d Direction) MarshalText() ([]byte, error) {
	if d < Top || d > Right {
		return nil, fmt.Errorf("invalid direction %d", int(d))
	}
	return []byte(directionNames[d]), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	s := strings.ToLower(string(text))
	for i, name := range directionNames {
		if name == s {
			*d = Direction(i)
			return nil
		}
	}
	return fmt.Errorf("unknown direction %q", s)
}

// Move is one take-and-slide: the border cell to extract and where to
// reinsert it.
type Move struct {
	Position  Position  `json:"position"`
	Direction Direction `json:"direction"`
}

func (m Move) String() string {
	return fmt.Sprintf("%s->%s", m.Position, m.Direction)
}
