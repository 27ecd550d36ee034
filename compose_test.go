package icongen

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

var masterSizes = []int{16, 32, 64, 128, 256, 512}

// fullCanvas is a test artwork covering its whole canvas with opaque pixels.
type fullCanvas struct{}

func (fullCanvas) Rasterize(size int) (*image.NRGBA, error) {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for i := 0; i < len(img.Pix); i++ {
		img.Pix[i] = 0xff
	}
	return img, nil
}

func TestRender_OutputIsSquare(t *testing.T) {
	c := DefaultComposer(NewSnake())

	for _, size := range masterSizes {
		img, err := c.Render(size)
		if err != nil {
			t.Fatalf("Render(%d) returned an error: %v", size, err)
		}
		if img.Bounds().Dx() != size || img.Bounds().Dy() != size {
			t.Errorf("Render(%d) bounds expected to be %dx%d. Got %dx%d",
				size, size, size, img.Bounds().Dx(), img.Bounds().Dy())
		}
	}
}

func TestRender_Deterministic(t *testing.T) {
	c := DefaultComposer(NewSnake())

	first, err := c.Render(64)
	if err != nil {
		t.Fatalf("first render returned an error: %v", err)
	}
	second, err := c.Render(64)
	if err != nil {
		t.Fatalf("second render returned an error: %v", err)
	}

	if !bytes.Equal(first.Pix, second.Pix) {
		t.Errorf("two renders with identical inputs expected to be pixel identical")
	}
}

func TestRender_TransparentOutsideBackground(t *testing.T) {
	const size = 128
	c := DefaultComposer(NewSnake())

	img, err := c.Render(size)
	if err != nil {
		t.Fatalf("Render(%d) returned an error: %v", size, err)
	}

	pad := c.PadRatio * size
	radius := c.RadiusRatio * size

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !outsideRoundedRect(x, y, size, pad, radius, 1.5) {
				continue
			}
			if a := img.Pix[img.PixOffset(x, y)+3]; a != 0 {
				t.Fatalf("pixel (%d,%d) outside the background expected to be transparent. Got alpha %d", x, y, a)
			}
		}
	}
}

// outsideRoundedRect reports whether the pixel center lies at least margin
// pixels outside the rounded-rectangle background region.
func outsideRoundedRect(x, y, size int, pad, radius, margin float64) bool {
	fx, fy := float64(x)+0.5, float64(y)+0.5
	lo, hi := pad-margin, float64(size)-pad+margin
	if fx < lo || fy < lo || fx > hi || fy > hi {
		return true
	}

	// The remaining excluded region is around the corner circle centers.
	near, far := pad+radius, float64(size)-pad-radius
	cx, cornerX := 0.0, false
	if fx < near {
		cx, cornerX = near, true
	} else if fx > far {
		cx, cornerX = far, true
	}
	cy, cornerY := 0.0, false
	if fy < near {
		cy, cornerY = near, true
	} else if fy > far {
		cy, cornerY = far, true
	}
	if cornerX && cornerY {
		dx, dy := fx-cx, fy-cy
		r := radius + margin
		return dx*dx+dy*dy > r*r
	}
	return false
}

func TestRender_ArtworkFitBound(t *testing.T) {
	for _, size := range masterSizes {
		c := &Composer{
			Background:  color.NRGBA{},
			PadRatio:    4.0 / designSpace,
			RadiusRatio: 12.0 / designSpace,
			FitRatio:    0.82,
			Artwork:     fullCanvas{},
		}

		img, err := c.Render(size)
		if err != nil {
			t.Fatalf("Render(%d) returned an error: %v", size, err)
		}
		bbox, ok := opaqueBounds(img)
		if !ok {
			t.Fatalf("Render(%d) expected to contain opaque artwork pixels", size)
		}

		limit := int(0.82*float64(size)) + 1
		if bbox.Dx() > limit || bbox.Dy() > limit {
			t.Errorf("artwork bounds at size %d expected to fit within %dpx. Got %dx%d",
				size, limit, bbox.Dx(), bbox.Dy())
		}
	}
}

func TestRender_InvalidSize(t *testing.T) {
	c := DefaultComposer(NewSnake())

	if _, err := c.Render(0); err == nil {
		t.Errorf("rendering at size 0 expected to fail")
	}
	if _, err := c.Render(-4); err == nil {
		t.Errorf("rendering at a negative size expected to fail")
	}
}
