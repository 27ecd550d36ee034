package icongen

import (
	"bytes"
	"encoding/binary"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// icnsEntries lists the bundled slots with their OSType codes, in the order
// they are emitted into the container.
var icnsEntries = []struct {
	code string
	size int
}{
	{"icp4", 16},
	{"icp5", 32},
	{"icp6", 64},
	{"ic07", 128},
	{"ic08", 256},
	{"ic09", 512},
}

// encodeICNS serializes the master raster into an ICNS container. The layout
// is the "icns" magic followed by a big-endian uint32 total file length, then
// one entry per slot: a 4-byte type code, a big-endian uint32 entry length
// counting its own 8-byte header, and a PNG compressed payload.
func encodeICNS(w io.Writer, master image.Image) error {
	var body bytes.Buffer
	for _, e := range icnsEntries {
		resized := imaging.Resize(master, e.size, e.size, imaging.Lanczos)

		var payload bytes.Buffer
		if err := encodePNG(&payload, resized); err != nil {
			return errors.Wrapf(err, "unable to encode the %s entry", e.code)
		}

		body.WriteString(e.code)
		if err := binary.Write(&body, binary.BigEndian, uint32(8+payload.Len())); err != nil {
			return err
		}
		body.Write(payload.Bytes())
	}

	if _, err := io.WriteString(w, "icns"); err != nil {
		return errors.Wrap(err, "unable to write the container header")
	}
	if err := binary.Write(w, binary.BigEndian, uint32(8+body.Len())); err != nil {
		return errors.Wrap(err, "unable to write the container length")
	}
	if _, err := w.Write(body.Bytes()); err != nil {
		return errors.Wrap(err, "unable to write the container entries")
	}
	return nil
}
