package icongen

import (
	"fmt"
	"image"
	"io"

	"github.com/julius-app/icongen/utils"
	"github.com/pkg/errors"
)

// Format identifies one of the supported icon container formats.
type Format int

const (
	ICO Format = iota
	ICNS
)

func (f Format) String() string {
	switch f {
	case ICO:
		return "ICO"
	case ICNS:
		return "ICNS"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Sizes returns the pixel sizes bundled into a container of the given format,
// in the order they are emitted.
func Sizes(f Format) []int {
	switch f {
	case ICO:
		return append([]int(nil), icoSizes...)
	case ICNS:
		sizes := make([]int, 0, len(icnsEntries))
		for _, e := range icnsEntries {
			sizes = append(sizes, e.size)
		}
		return sizes
	}
	return nil
}

// MaxSize returns the largest pixel size required by the given format.
// A master raster smaller than this yields degraded entries for the sizes
// above its native resolution.
func MaxSize(f Format) int {
	var max int
	for _, s := range Sizes(f) {
		max = utils.Max(max, s)
	}
	return max
}

// Encode resamples the master raster to each size required by the container
// format f and serializes the results into w. The output is byte
// deterministic for a fixed master image. Passing a Format outside the
// declared constants is a caller bug and yields an error.
func Encode(w io.Writer, master image.Image, f Format) error {
	switch f {
	case ICO:
		return encodeICO(w, master)
	case ICNS:
		return encodeICNS(w, master)
	}
	return errors.Errorf("unsupported container format: %s", f)
}
