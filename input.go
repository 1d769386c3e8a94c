package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/jumpking/input"
)

// longest frame fed to the simulation, e.g. after dragging the window
const maxFrameDelta = 0.25

var keyBindings = map[input.Key][]ebiten.Key{
	input.Left:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	input.Right: {ebiten.KeyD, ebiten.KeyArrowRight},
	input.Jump:  {ebiten.KeySpace},
}

// keyboardSource reads the keyboard through ebiten. Poll must be called once
// per Update before the source is handed to the session.
type keyboardSource struct {
	last  time.Time
	delta float64
}

func newKeyboardSource() *keyboardSource {
	return &keyboardSource{}
}

func (k *keyboardSource) Poll() {
	now := time.Now()
	if !k.last.IsZero() {
		k.delta = min(now.Sub(k.last).Seconds(), maxFrameDelta)
	}
	k.last = now
}

// Reset forgets the last poll time so a pause does not become one long frame.
func (k *keyboardSource) Reset() {
	k.last = time.Time{}
	k.delta = 0
}

func (k *keyboardSource) IsDown(key input.Key) bool {
	for _, b := range keyBindings[key] {
		if ebiten.IsKeyPressed(b) {
			return true
		}
	}
	return false
}

func (k *keyboardSource) WasPressed(key input.Key) bool {
	for _, b := range keyBindings[key] {
		if inpututil.IsKeyJustPressed(b) {
			return true
		}
	}
	return false
}

func (k *keyboardSource) WasReleased(key input.Key) bool {
	if k.IsDown(key) {
		return false
	}
	for _, b := range keyBindings[key] {
		if inpututil.IsKeyJustReleased(b) {
			return true
		}
	}
	return false
}

func (k *keyboardSource) Delta() float64 {
	return k.delta
}
