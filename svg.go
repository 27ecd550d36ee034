package icongen

import (
	"image"
	"io"
	"math"

	"github.com/pkg/errors"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"
)

// SVG rasterizes a vector source asset into the icon artwork.
type SVG struct {
	icon *oksvg.SvgIcon
}

// LoadSVG parses the vector source file at path.
func LoadSVG(path string) (*SVG, error) {
	icon, err := oksvg.ReadIcon(path, oksvg.StrictErrorMode)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read the vector source %s", path)
	}
	return &SVG{icon: icon}, nil
}

// ParseSVG parses a vector source from r.
func ParseSVG(r io.Reader) (*SVG, error) {
	icon, err := oksvg.ReadIconStream(r, oksvg.StrictErrorMode)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse the vector source")
	}
	return &SVG{icon: icon}, nil
}

// Rasterize renders the vector source scaled to fit the requested size,
// preserving the view box aspect ratio. The paths are rasterized at twice
// the requested size and scaled back down, which keeps the edges crisp.
func (s *SVG) Rasterize(size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, errors.Errorf("the artwork size must be a positive integer, got %d", size)
	}

	w, h := s.icon.ViewBox.W, s.icon.ViewBox.H
	if w <= 0 || h <= 0 {
		w, h = float64(size), float64(size)
	}
	scale := float64(2*size) / math.Max(w, h)
	outW := int(math.Round(w * scale))
	outH := int(math.Round(h * scale))

	rgba := image.NewRGBA(image.Rect(0, 0, outW, outH))
	s.icon.SetTarget(0, 0, float64(outW), float64(outH))
	scanner := rasterx.NewScannerGV(outW, outH, rgba, rgba.Bounds())
	s.icon.Draw(rasterx.NewDasher(outW, outH, scanner), 1.0)

	dst := image.NewNRGBA(image.Rect(0, 0, (outW+1)/2, (outH+1)/2))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), rgba, rgba.Bounds(), xdraw.Over, nil)

	return dst, nil
}
