package icongen

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/julius-app/icongen/utils"
	"github.com/pkg/errors"
)

// designSpace is the normalized coordinate system the procedural artwork is
// authored in. Shape coordinates are multiplied by size/designSpace at render
// time, so the same description rasterizes correctly at any requested size.
const designSpace = 64

// Artwork produces the foreground graphic which gets composited over the
// rounded-rectangle background plate. Two implementations exist: SVG
// rasterizes a vector source file, Snake draws the built-in design
// procedurally.
type Artwork interface {
	// Rasterize returns the artwork on a transparent size×size canvas.
	Rasterize(size int) (*image.NRGBA, error)
}

// Composer holds the immutable design parameters of the icon and produces the
// master raster from which all the bundled icon sizes are derived. The zero
// value is not usable, use DefaultComposer to obtain the production design.
type Composer struct {
	// Background is the opaque fill color of the rounded-rectangle plate.
	Background color.NRGBA
	// PadRatio is the transparent inset around the plate,
	// expressed as a fraction of the icon size.
	PadRatio float64
	// RadiusRatio is the plate corner radius as a fraction of the icon size.
	RadiusRatio float64
	// FitRatio bounds the larger dimension of the artwork
	// as a fraction of the icon size.
	FitRatio float64
	Artwork  Artwork
}

// DefaultComposer returns a Composer carrying the production icon design:
// a dark plate with the artwork fit into 82% of the canvas.
func DefaultComposer(art Artwork) *Composer {
	return &Composer{
		Background:  color.NRGBA{R: 42, G: 36, B: 32, A: 255},
		PadRatio:    4.0 / designSpace,
		RadiusRatio: 12.0 / designSpace,
		FitRatio:    0.82,
		Artwork:     art,
	}
}

// Render composites the icon at the requested size: it fills the background
// plate, rasterizes the artwork supersampled at twice the target size, crops
// it to its opaque bounding box, scales it down to fit the canvas and blends
// it centered over the plate. Two invocations with the same inputs produce
// pixel identical rasters.
func (c *Composer) Render(size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, errors.Errorf("the icon size must be a positive integer, got %d", size)
	}

	pad := c.PadRatio * float64(size)
	radius := c.RadiusRatio * float64(size)
	side := float64(size) - 2*pad

	dc := gg.NewContext(size, size)
	dc.DrawRoundedRectangle(pad, pad, side, side, radius)
	dc.SetColor(c.Background)
	dc.FillPreserve()

	// Everything composited from now on is confined to the plate,
	// the border outside of it stays fully transparent.
	dc.Clip()

	art, err := c.Artwork.Rasterize(2 * size)
	if err != nil {
		return nil, errors.Wrap(err, "unable to rasterize the icon artwork")
	}

	if bbox, ok := opaqueBounds(art); ok {
		cropped := imaging.Crop(art, bbox)
		w, h := c.fit(cropped.Bounds(), size)
		scaled := imaging.Resize(cropped, w, h, imaging.Lanczos)
		dc.DrawImageAnchored(scaled, size/2, size/2, 0.5, 0.5)
	}
	dc.ResetClip()

	return imgToNRGBA(dc.Image()), nil
}

// fit computes the scaled artwork dimensions so that the larger one does not
// exceed FitRatio of the icon size, preserving the aspect ratio.
func (c *Composer) fit(b image.Rectangle, size int) (int, int) {
	maxDim := c.FitRatio * float64(size)
	scale := utils.Min(maxDim/float64(b.Dx()), maxDim/float64(b.Dy()))

	w := int(float64(b.Dx()) * scale)
	h := int(float64(b.Dy()) * scale)

	return utils.Max(w, 1), utils.Max(h, 1)
}
