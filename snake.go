package icongen

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// ellipseSegments is the number of polygon vertices used to approximate a
// rotated ellipse. Kept fixed so repeated renders stay pixel identical.
const ellipseSegments = 36

// Snake procedurally draws the built-in snake mark, used when no vector
// source is available. All shape coordinates are authored in the 0..64
// design space.
type Snake struct {
	Body      color.NRGBA
	Pattern   color.NRGBA
	Highlight color.NRGBA
	Eye       color.NRGBA
	Iris      color.NRGBA
	Tongue    color.NRGBA
}

// NewSnake returns the snake artwork with the production palette.
func NewSnake() *Snake {
	return &Snake{
		Body:      color.NRGBA{R: 0x57, G: 0xa6, B: 0x4a, A: 0xff},
		Pattern:   color.NRGBA{R: 0x2f, G: 0x6b, B: 0x2a, A: 0x96},
		Highlight: color.NRGBA{R: 0xa8, G: 0xd8, B: 0x9b, A: 0x6e},
		Eye:       color.NRGBA{R: 0xf5, G: 0xf5, B: 0xef, A: 0xff},
		Iris:      color.NRGBA{R: 0x20, G: 0x20, B: 0x1c, A: 0xff},
		Tongue:    color.NRGBA{R: 0xd6, G: 0x3c, B: 0x3c, A: 0xff},
	}
}

// patch is one rotated ellipse of the design, in design space units.
type patch struct {
	cx, cy, rx, ry, angle float64
}

// patternPatches are the darker scale patches laid over the snake body.
var patternPatches = []patch{
	{38, 20.5, 2.6, 1.5, 0.35},
	{38, 25.5, 2.4, 1.4, -0.3},
	{38, 30.5, 2.6, 1.5, 0.25},
	{31.5, 36.2, 2.4, 1.4, 1.25},
	{25.5, 35.2, 2.0, 1.2, 1.9},
}

// highlightPatches are the lighter sheen strips along the left flank.
var highlightPatches = []patch{
	{36.3, 18.5, 1.2, 2.2, 0.15},
	{36.3, 23.5, 1.1, 2.0, 0.1},
	{36.3, 28.5, 1.2, 2.1, 0.2},
}

// Rasterize draws the snake layers in back-to-front order: body stroke,
// pattern and highlight patches, head, face and tongue, tapering tail tip.
func (s *Snake) Rasterize(size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, errors.Errorf("the artwork size must be a positive integer, got %d", size)
	}

	dc := gg.NewContext(size, size)
	u := float64(size) / designSpace

	s.drawBody(dc, u)
	s.drawPatches(dc, u)
	s.drawHead(dc, u)
	s.drawFace(dc, u)
	s.drawTongue(dc, u)
	s.drawTail(dc, u)

	return imgToNRGBA(dc.Image()), nil
}

// drawBody renders the body stroke as overlapping filled discs along the
// interpolated centerline points, approximating a thick round-capped stroke.
func (s *Snake) drawBody(dc *gg.Context, u float64) {
	dc.SetColor(s.Body)
	for _, p := range bodyPath() {
		dc.DrawCircle(p[0]*u, p[1]*u, 3.5*u)
		dc.Fill()
	}
}

// bodyPath interpolates the body centerline: a straight vertical run from the
// head down the spine, followed by a half-sine hook sweeping to the left.
func bodyPath() [][2]float64 {
	const steps = 60

	pts := make([][2]float64, 0, 2*(steps+1))
	for i := 0; i <= steps; i++ {
		t := float64(i) / steps
		pts = append(pts, [2]float64{38, 16 + 18*t})
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / steps
		pts = append(pts, [2]float64{38 - 16*t, 34 + 6*math.Sin(math.Pi*t)})
	}
	return pts
}

func (s *Snake) drawPatches(dc *gg.Context, u float64) {
	dc.SetColor(s.Pattern)
	for _, p := range patternPatches {
		fillEllipse(dc, p, u)
	}

	dc.SetColor(s.Highlight)
	for _, p := range highlightPatches {
		fillEllipse(dc, p, u)
	}
}

func (s *Snake) drawHead(dc *gg.Context, u float64) {
	dc.SetColor(s.Body)
	fillEllipse(dc, patch{38, 13, 6.5, 5.5, 0}, u)

	dc.SetColor(s.Pattern)
	fillEllipse(dc, patch{38, 11.5, 4.5, 3.2, 0}, u)
}

// drawFace renders the eye stack (sclera, iris, specular dot) and the nostril.
func (s *Snake) drawFace(dc *gg.Context, u float64) {
	dc.SetColor(s.Eye)
	dc.DrawCircle(41.2*u, 11.6*u, 2.0*u)
	dc.Fill()

	dc.SetColor(s.Iris)
	dc.DrawCircle(41.6*u, 11.8*u, 1.1*u)
	dc.Fill()

	dc.SetColor(s.Eye)
	dc.DrawCircle(42.1*u, 11.1*u, 0.45*u)
	dc.Fill()

	dc.SetColor(s.Iris)
	dc.DrawCircle(43.6*u, 14.4*u, 0.55*u)
	dc.Fill()
}

// drawTongue renders the forked tongue as three short round-capped segments.
func (s *Snake) drawTongue(dc *gg.Context, u float64) {
	dc.SetColor(s.Tongue)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineWidth(0.9 * u)

	dc.DrawLine(44.2*u, 15.6*u, 47.2*u, 17.4*u)
	dc.Stroke()
	dc.DrawLine(47.2*u, 17.4*u, 48.8*u, 16.8*u)
	dc.Stroke()
	dc.DrawLine(47.2*u, 17.4*u, 48.4*u, 18.8*u)
	dc.Stroke()
}

// drawTail renders the tail tip as discs with linearly decreasing radius.
func (s *Snake) drawTail(dc *gg.Context, u float64) {
	const steps = 30

	dc.SetColor(s.Body)
	for i := 0; i <= steps; i++ {
		t := float64(i) / steps
		r := 2.6 - 2.0*t
		dc.DrawCircle((22-5*t)*u, (34-7*t)*u, r*u)
		dc.Fill()
	}
}

// fillEllipse fills a rotated ellipse approximated as a closed polygon of
// ellipseSegments vertices, using the color currently set on the context.
func fillEllipse(dc *gg.Context, p patch, scale float64) {
	pts := ellipseVertices(p.cx, p.cy, p.rx, p.ry, p.angle)

	dc.MoveTo(pts[0][0]*scale, pts[0][1]*scale)
	for _, pt := range pts[1:] {
		dc.LineTo(pt[0]*scale, pt[1]*scale)
	}
	dc.ClosePath()
	dc.Fill()
}

// ellipseVertices samples the ellipse outline uniformly in angle, rotates
// each vertex by the ellipse angle and translates it to the center.
func ellipseVertices(cx, cy, rx, ry, angle float64) [][2]float64 {
	sin, cos := math.Sincos(angle)

	pts := make([][2]float64, ellipseSegments)
	for i := 0; i < ellipseSegments; i++ {
		theta := 2 * math.Pi * float64(i) / ellipseSegments
		px := rx * math.Cos(theta)
		py := ry * math.Sin(theta)

		pts[i] = [2]float64{
			cx + px*cos - py*sin,
			cy + px*sin + py*cos,
		}
	}
	return pts
}
