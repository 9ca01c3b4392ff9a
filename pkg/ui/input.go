package ui

import "github.com/hajimehoshi/ebiten/v2"

// Input is the pointer state the widgets react to during one update.
type Input struct {
	X, Y    float64
	Pressed bool
	WheelY  float64
}

// ReadInput samples the ebiten cursor, left button and wheel.
func ReadInput() Input {
	mx, my := ebiten.CursorPosition()
	_, dy := ebiten.Wheel()
	return Input{
		X:       float64(mx),
		Y:       float64(my),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		WheelY:  dy,
	}
}

func inside(x, y, rx, ry, rw, rh float64) bool {
	return x >= rx && x <= rx+rw && y >= ry && y <= ry+rh
}
