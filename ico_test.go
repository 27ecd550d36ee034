package icongen

import (
	"bytes"
	"encoding/binary"
	"testing"

	ico "github.com/sergeymakinen/go-ico"
)

func TestEncode_ICOHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testMaster(512), ICO); err != nil {
		t.Fatalf("encoding the container returned an error: %v", err)
	}
	data := buf.Bytes()

	if got := binary.LittleEndian.Uint16(data[0:2]); got != 0 {
		t.Errorf("reserved field expected to be 0. Got %d", got)
	}
	if got := binary.LittleEndian.Uint16(data[2:4]); got != 1 {
		t.Errorf("resource type expected to be 1 (icon). Got %d", got)
	}
	if got := binary.LittleEndian.Uint16(data[4:6]); got != uint16(len(icoSizes)) {
		t.Errorf("image count expected to be %d. Got %d", len(icoSizes), got)
	}
}

func TestEncode_ICORoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testMaster(512), ICO); err != nil {
		t.Fatalf("encoding the container returned an error: %v", err)
	}

	images, err := ico.DecodeAll(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("decoding the container returned an error: %v", err)
	}
	if len(images) != len(icoSizes) {
		t.Fatalf("container expected to hold %d images. Got %d", len(icoSizes), len(images))
	}

	for i, img := range images {
		if img.Bounds().Dx() != icoSizes[i] || img.Bounds().Dy() != icoSizes[i] {
			t.Errorf("image %d expected to be %dpx square. Got %dx%d",
				i, icoSizes[i], img.Bounds().Dx(), img.Bounds().Dy())
		}
	}
}
