package main

import (
	"math"

	"github.com/milk9111/jumpking/common"
	"github.com/milk9111/jumpking/physics"
)

// camera follows the player vertically; world x = 0 stays centered.
type camera struct {
	Y float64
	// smoothing factor (0..1). higher -> faster follow
	smooth float64
	// lowest world y the view center may reach
	floor float64
}

func newCamera(floor float64) *camera {
	return &camera{Y: floor, smooth: 0.1, floor: floor}
}

func (c *camera) Follow(target physics.Vec) {
	y := common.Clamp(target.Y, c.floor, math.Inf(1))
	c.Y = common.Lerp(c.Y, y, c.smooth)
}

// ToScreen maps a world point (y up) to screen pixels (y down).
func (c *camera) ToScreen(p physics.Vec) (float32, float32) {
	return float32(p.X + baseWidth/2), float32(baseHeight/2 - (p.Y - c.Y))
}
