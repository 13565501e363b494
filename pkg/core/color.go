package core

import "image/color"

// RGB converts 8-bit channel values into a color with channels in [0, 1]
func RGB(r, g, b uint8) Vec3 {
	return Vec3{
		X: float64(r) / 255.0,
		Y: float64(g) / 255.0,
		Z: float64(b) / 255.0,
	}
}

// ToRGBA clamps a color to [0, 1] and scales it to 8-bit RGBA.
// No gamma is applied; colors are written as computed.
func ToRGBA(c Vec3) color.RGBA {
	c = c.Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255*c.X + 0.5),
		G: uint8(255*c.Y + 0.5),
		B: uint8(255*c.Z + 0.5),
		A: 255,
	}
}
