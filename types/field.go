package types

import (
	"fmt"
	"strings"
)

/*
FIELD selects one scalar of a control point: a position axis or a color channel.
The set is closed, each member projects a control point to the scalar that feeds
a patch coefficient matrix.
*/
type FIELD uint8

const (
	FIELD_X FIELD = iota
	FIELD_Y
	FIELD_R
	FIELD_G
	FIELD_B
)

var (
	PositionFields = [2]FIELD{FIELD_X, FIELD_Y}
	ColorFields    = [3]FIELD{FIELD_R, FIELD_G, FIELD_B}
	AllFields      = [5]FIELD{FIELD_X, FIELD_Y, FIELD_R, FIELD_G, FIELD_B}
)

var FieldNameMap = map[string]FIELD{
	"x":     FIELD_X,
	"y":     FIELD_Y,
	"r":     FIELD_R,
	"red":   FIELD_R,
	"g":     FIELD_G,
	"green": FIELD_G,
	"b":     FIELD_B,
	"blue":  FIELD_B,
}

// NewField looks a field up by its short or long name, case insensitive
func NewField(name string) (f FIELD, err error) {
	var ok bool
	if f, ok = FieldNameMap[strings.ToLower(strings.TrimSpace(name))]; !ok {
		err = fmt.Errorf("unknown field %q: %w", name, ErrInvalidInput)
	}
	return
}

func (f FIELD) String() string {
	switch f {
	case FIELD_X:
		return "X"
	case FIELD_Y:
		return "Y"
	case FIELD_R:
		return "R"
	case FIELD_G:
		return "G"
	case FIELD_B:
		return "B"
	}
	return fmt.Sprintf("FIELD(%d)", uint8(f))
}

// IsPosition is true for the position axes, false for color channels
func (f FIELD) IsPosition() bool {
	return f == FIELD_X || f == FIELD_Y
}

// Component is the index of the field within its position or color vector
func (f FIELD) Component() (i int) {
	switch f {
	case FIELD_X, FIELD_R:
		i = 0
	case FIELD_Y, FIELD_G:
		i = 1
	case FIELD_B:
		i = 2
	default:
		panic(fmt.Errorf("unknown field %d: %w", uint8(f), ErrInvalidInput))
	}
	return
}
