package tools

import "bytes"

type ImageType string

const (
	ImageTypePNG     ImageType = "png"
	ImageTypeJPEG    ImageType = "jpeg"
	ImageTypeGIF     ImageType = "gif"
	ImageTypeWEBP    ImageType = "webp"
	ImageTypeBMP     ImageType = "bmp"
	ImageTypeTIFF    ImageType = "tiff"
	ImageTypeUnknown ImageType = "unknown"
)

func (i ImageType) String() string {
	return string(i)
}

func (i ImageType) MIMEType() string {
	switch i {
	case ImageTypeUnknown:
		return "application/octet-stream"
	default:
		return "image/" + string(i)
	}
}

// DetectImageType sniffs magic bytes only; it does not validate the image.
func DetectImageType(b []byte) ImageType {
	switch {
	case bytes.HasPrefix(b, []byte("\x89PNG\r\n\x1a\n")):
		return ImageTypePNG
	case bytes.HasPrefix(b, []byte{0xFF, 0xD8, 0xFF}):
		return ImageTypeJPEG
	case bytes.HasPrefix(b, []byte("GIF87a")), bytes.HasPrefix(b, []byte("GIF89a")):
		return ImageTypeGIF
	case len(b) >= 12 && bytes.Equal(b[0:4], []byte("RIFF")) && bytes.Equal(b[8:12], []byte("WEBP")):
		return ImageTypeWEBP
	case bytes.HasPrefix(b, []byte("BM")):
		return ImageTypeBMP
	case bytes.HasPrefix(b, []byte("II*\x00")), bytes.HasPrefix(b, []byte("MM\x00*")):
		return ImageTypeTIFF
	default:
		return ImageTypeUnknown
	}
}
