package utils

import (
	"image/color"
	"math"
	"time"

	graphics2D "github.com/notargets/avs/geometry"
)

type ColorName uint8

const (
	White ColorName = iota
	Blue
	Red
	Green
	Black
)

func GetColor(name ColorName) (c color.RGBA) {
	switch name {
	case White:
		c = color.RGBA{R: 255, G: 255, B: 255, A: 0}
	case Blue:
		c = color.RGBA{R: 50, G: 0, B: 255, A: 0}
	case Red:
		c = color.RGBA{R: 255, G: 0, B: 50, A: 0}
	case Green:
		c = color.RGBA{R: 25, G: 255, B: 25, A: 0}
	case Black:
		c = color.RGBA{R: 0, G: 0, B: 0, A: 0}
	}
	return
}

// RGBA8 converts a [0,1] color to 8 bits per channel by truncation, opaque
func (v Vec3) RGBA8() (c color.RGBA) {
	toByte := func(f float64) uint8 {
		f *= 255
		switch {
		case f <= 0 || math.IsNaN(f):
			return 0
		case f >= 255:
			return 255
		}
		return uint8(f)
	}
	c = color.RGBA{R: toByte(v[0]), G: toByte(v[1]), B: toByte(v[2]), A: 255}
	return
}

func SleepFor(milliseconds int) {
	time.Sleep(time.Duration(milliseconds) * time.Millisecond)
}

func ArraysToPoints(r1, r2 []float64) (points []graphics2D.Point) {
	points = make([]graphics2D.Point, len(r1))
	for i := range r1 {
		points[i].X[0] = float32(r1[i])
		points[i].X[1] = float32(r2[i])
	}
	return
}
