package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// TopDown maps the XZ plane onto a W x H grid, -Z pointing up the grid.
type TopDown struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
	W, H       int
}

// FitTopDown frames the given points with margin world units of padding.
func FitTopDown(points []mgl64.Vec3, w, h int, margin float64) TopDown {
	td := TopDown{
		MinX: math.Inf(1), MaxX: math.Inf(-1),
		MinZ: math.Inf(1), MaxZ: math.Inf(-1),
		W: w, H: h,
	}
	for _, p := range points {
		td.MinX = math.Min(td.MinX, p.X())
		td.MaxX = math.Max(td.MaxX, p.X())
		td.MinZ = math.Min(td.MinZ, p.Z())
		td.MaxZ = math.Max(td.MaxZ, p.Z())
	}
	if len(points) == 0 {
		td.MinX, td.MaxX, td.MinZ, td.MaxZ = -1, 1, -1, 1
	}
	td.MinX -= margin
	td.MaxX += margin
	td.MinZ -= margin
	td.MaxZ += margin
	return td
}

// Project returns the grid cell for p and whether it falls inside the grid.
func (td TopDown) Project(p mgl64.Vec3) (int, int, bool) {
	if td.W <= 0 || td.H <= 0 {
		return 0, 0, false
	}
	fx := (p.X() - td.MinX) / (td.MaxX - td.MinX)
	fz := (td.MaxZ - p.Z()) / (td.MaxZ - td.MinZ)
	col := cell(fx, td.W)
	row := td.H - 1 - cell(fz, td.H)
	if col < 0 || col >= td.W || row < 0 || row >= td.H {
		return col, row, false
	}
	return col, row, true
}

// Scale is grid cells per world unit along X.
func (td TopDown) Scale() float64 {
	return float64(td.W) / (td.MaxX - td.MinX)
}

// cell buckets a [0,1] fraction into n cells; exactly 1 lands in the last cell.
func cell(f float64, n int) int {
	if f == 1 {
		return n - 1
	}
	return int(math.Floor(f * float64(n)))
}
