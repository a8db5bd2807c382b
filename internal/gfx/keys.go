//go:build ebiten

package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/roadrush/internal/input"
)

var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyH}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyL}
	gasKeys   = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyK}
	brakeKeys = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyJ}
	digitKeys = []ebiten.Key{
		ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
		ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
	}
)

// pollInput reads the keyboard into the same Input the terminal parser
// produces. Lane changes are edge-triggered, gas and brake are held.
func pollInput() input.Input {
	in := input.Input{Number: -1}
	for _, k := range leftKeys {
		if inpututil.IsKeyJustPressed(k) {
			in.LeftTaps++
		}
	}
	for _, k := range rightKeys {
		if inpututil.IsKeyJustPressed(k) {
			in.RightTaps++
		}
	}
	in.Accelerate = anyPressed(gasKeys)
	in.Brake = anyPressed(brakeKeys)
	in.Space = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.Enter = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
	in.Escape = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	in.Options = inpututil.IsKeyJustPressed(ebiten.KeyO)
	in.Quit = inpututil.IsKeyJustPressed(ebiten.KeyQ)
	for i, k := range digitKeys {
		if inpututil.IsKeyJustPressed(k) {
			in.Number = i
		}
	}
	return in
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
