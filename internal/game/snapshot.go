package game

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

func rgba(c RGB) color.RGBA { return color.RGBA{c.R, c.G, c.B, 0xff} }

// RenderSnapshot draws a top-down picture of the race's current stage:
// track, obstacles, AI racers and the player, with the stage name.
func RenderSnapshot(race *Race, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(rgba(Palette.Sky)), image.Point{}, draw.Src)

	curve := race.Stages.Curve
	td := FitTopDown(curve.ControlPoints(), w, h, TubeRadius+2)
	stamp := func(r *Renderable, radius float64, c color.RGBA) {
		col, row, _ := td.Project(r.Position)
		fillDisc(img, col, row, radius, c)
	}

	trackR := TubeRadius * td.Scale()
	for i := 0; i <= TubeSegments; i++ {
		col, row, _ := td.Project(curve.PointAt(float64(i) / TubeSegments))
		fillDisc(img, col, row, trackR, rgba(Palette.Track))
	}
	for _, o := range race.Stages.Obstacles.Items {
		stamp(o, 0.5*td.Scale()+1, rgba(Palette.Obstacle))
	}
	for _, ai := range race.AI {
		stamp(ai.Body, 0.7*td.Scale()+1, rgba(ai.Body.Color))
	}
	stamp(race.Player.Body, 0.7*td.Scale()+1, rgba(Palette.Player))

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(6, 16),
	}
	d.DrawString(race.Stages.Current().Name)
	return img
}

// SaveSnapshot writes RenderSnapshot as a PNG file.
func SaveSnapshot(race *Race, w, h int, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer f.Close()
	if err := png.Encode(f, RenderSnapshot(race, w, h)); err != nil {
		return errors.Wrapf(err, "encode %s", path)
	}
	return nil
}

func fillDisc(img *image.RGBA, cx, cy int, radius float64, c color.RGBA) {
	r := int(radius + 0.5)
	if r < 1 {
		r = 1
	}
	r2 := r * r
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r2 {
				img.SetRGBA(x, y, c)
			}
		}
	}
}
