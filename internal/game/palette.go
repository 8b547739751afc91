package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Hex builds an RGB from a 0xRRGGBB literal.
func Hex(v uint32) RGB {
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// Floats returns the colour as normalised components for shader uniforms.
func (c RGB) Floats() (float32, float32, float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

// RandomColor draws a uniformly random 24-bit colour.
func RandomColor(r *Rand) RGB {
	return Hex(uint32(r.Float64() * 0xffffff))
}

var Palette = struct {
	Sky      RGB
	Track    RGB
	Obstacle RGB
	Player   RGB
}{
	Sky:      Hex(0x87ceeb),
	Track:    Hex(0x333333),
	Obstacle: Hex(0x00ff00),
	Player:   Hex(0xff0000),
}
