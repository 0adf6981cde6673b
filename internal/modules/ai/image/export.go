package image

import (
	"bytes"
	stdimage "image"

	"github.com/disintegration/imaging"
	"github.com/reusedev/imagen-studio/tools"
)

// EncodePNG renders img in the fixed download format.
func EncodePNG(img stdimage.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DownloadPNG returns the decoded bytes unchanged when they are already PNG.
func (d *DecodedImage) DownloadPNG() ([]byte, error) {
	if d.Format == tools.ImageTypePNG {
		return d.Bytes, nil
	}
	return EncodePNG(d.Image)
}
