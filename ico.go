package icongen

import (
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	ico "github.com/sergeymakinen/go-ico"
)

// icoSizes are the resolutions bundled into the ICO container.
var icoSizes = []int{16, 32, 48, 64, 128, 256}

// encodeICO resamples the master raster to each required resolution and packs
// them into a single indexed multi-image ICO resource, each image stored at
// its native resolution with the alpha channel preserved.
func encodeICO(w io.Writer, master image.Image) error {
	images := make([]image.Image, 0, len(icoSizes))
	for _, size := range icoSizes {
		images = append(images, imaging.Resize(master, size, size, imaging.Lanczos))
	}

	if err := ico.EncodeAll(w, images); err != nil {
		return errors.Wrap(err, "unable to encode the ICO container")
	}
	return nil
}
