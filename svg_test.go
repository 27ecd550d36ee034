package icongen

import (
	"strings"
	"testing"
)

const rectSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="64" height="64" viewBox="0 0 64 64">
	<rect x="8" y="8" width="48" height="48" fill="#57a64a"/>
</svg>`

func TestParseSVG_Rasterize(t *testing.T) {
	art, err := ParseSVG(strings.NewReader(rectSVG))
	if err != nil {
		t.Fatalf("parsing the vector source returned an error: %v", err)
	}

	const size = 64
	img, err := art.Rasterize(size)
	if err != nil {
		t.Fatalf("Rasterize(%d) returned an error: %v", size, err)
	}
	if img.Bounds().Dx() != size || img.Bounds().Dy() != size {
		t.Fatalf("artwork bounds expected to be %dx%d. Got %dx%d",
			size, size, img.Bounds().Dx(), img.Bounds().Dy())
	}

	bbox, ok := opaqueBounds(img)
	if !ok {
		t.Fatal("rasterized vector source expected to contain opaque pixels")
	}

	// The 48x48 rectangle at offset 8 in the 64 unit view box should map
	// onto the same pixel coordinates, within resampling tolerance.
	const tolerance = 2
	if abs(bbox.Min.X-8) > tolerance || abs(bbox.Min.Y-8) > tolerance ||
		abs(bbox.Max.X-56) > tolerance || abs(bbox.Max.Y-56) > tolerance {
		t.Errorf("rectangle bounds expected to be close to (8,8)-(56,56). Got %v", bbox)
	}

	if a := img.Pix[img.PixOffset(size/2, size/2)+3]; a != 0xff {
		t.Errorf("rectangle center expected to be opaque. Got alpha %d", a)
	}
}

func TestLoadSVG_MissingSource(t *testing.T) {
	if _, err := LoadSVG("testdata/missing.svg"); err == nil {
		t.Errorf("loading a missing vector source expected to fail")
	}
}

func TestParseSVG_Malformed(t *testing.T) {
	if _, err := ParseSVG(strings.NewReader("<svg><rect")); err == nil {
		t.Errorf("parsing a malformed vector source expected to fail")
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
