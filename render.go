package main

import (
	"cmp"
	"fmt"
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/jumpking/physics"
	"github.com/milk9111/jumpking/sim"
	"golang.org/x/image/colornames"
)

var (
	backgroundColor = colornames.White
	platformColor   = color.RGBA{R: 0x33, G: 0x4c, B: 0x66, A: 0xff}
	wallColor       = colornames.Darkslategray
	chargeBgColor   = color.RGBA{A: 0x60}
	chargeColor     = colornames.Orange
)

const chargeBarHeight = 6

// drawBodies draws colliders by ascending z, then the player on top at its
// position interpolated between the last two fixed ticks.
func drawBodies(screen *ebiten.Image, cam *camera, bodies []sim.BodyView, player sim.PlayerView, alpha float64, playerColor color.Color) {
	slices.SortStableFunc(bodies, func(a, b sim.BodyView) int {
		if a.Kind != b.Kind {
			// static first
			return -cmp.Compare(a.Kind, b.Kind)
		}
		return cmp.Compare(a.Z, b.Z)
	})

	for _, b := range bodies {
		clr := playerColor
		if b.Kind == physics.Dynamic {
			b.Position = player.Lerp(alpha)
		} else {
			clr = platformColor
			if b.Orientation == physics.Wall {
				clr = wallColor
			}
		}
		x, y := cam.ToScreen(physics.Vec{X: b.Position.X - b.HalfExtent.X, Y: b.Position.Y + b.HalfExtent.Y})
		vector.FillRect(screen, x, y, float32(b.HalfExtent.X*2), float32(b.HalfExtent.Y*2), clr, false)
	}
}

// drawCharge draws the jump charge as a bar above the player.
func drawCharge(screen *ebiten.Image, cam *camera, p sim.PlayerView, maxCharge float64) {
	if p.JumpCharge <= 0 || maxCharge <= 0 {
		return
	}
	x, y := cam.ToScreen(physics.Vec{X: p.Position.X - p.HalfExtent.X, Y: p.Position.Y + p.HalfExtent.Y})
	w := float32(p.HalfExtent.X * 2)
	y -= chargeBarHeight * 2
	vector.FillRect(screen, x, y, w, chargeBarHeight, chargeBgColor, false)
	vector.FillRect(screen, x, y, w*float32(p.JumpCharge/maxCharge), chargeBarHeight, chargeColor, false)
}

func drawDebug(screen *ebiten.Image, s *sim.Session) {
	p := s.PlayerState()
	msg := fmt.Sprintf("FPS: %.1f  TPS: %.1f  ticks: %d\npos: (%.1f, %.1f)  vel: (%.2f, %.2f)\ngrounded: %t  charge: %.0f",
		ebiten.ActualFPS(), ebiten.ActualTPS(), s.Ticks(),
		p.Position.X, p.Position.Y, p.Velocity.X, p.Velocity.Y,
		p.CanJump, p.JumpCharge)
	ebitenutil.DebugPrint(screen, msg)
}
