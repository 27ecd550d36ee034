package icongen

import (
	"image"
	"io"
)

// Processor ties the pipeline together for a single run: it renders the
// master raster once and encodes it into each requested output. It keeps no
// state across runs, the same inputs always reproduce the same bytes.
type Processor struct {
	Size     int
	Composer *Composer
}

// NewProcessor returns a Processor rendering the given artwork at the
// requested master size with the default design parameters.
func NewProcessor(art Artwork, size int) *Processor {
	return &Processor{
		Size:     size,
		Composer: DefaultComposer(art),
	}
}

// Master renders the master raster from which every icon size is derived.
func (p *Processor) Master() (*image.NRGBA, error) {
	return p.Composer.Render(p.Size)
}

// WritePNG losslessly encodes the master raster into w.
func (p *Processor) WritePNG(w io.Writer, master image.Image) error {
	return encodePNG(w, master)
}
