package image

import (
	"bytes"
	"errors"
	"fmt"
	stdimage "image"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/reusedev/imagen-studio/tools"
	_ "golang.org/x/image/webp"
)

var ErrDecode = errors.New("inline image could not be decoded")

// DecodedImage is a payload that parsed as a raster image.
type DecodedImage struct {
	Bytes  []byte
	Image  stdimage.Image
	Format tools.ImageType
	Source DecodeSource
	Width  int
	Height int
}

func (d *DecodedImage) MIMEType() string {
	return d.Format.MIMEType()
}

// DecodeError reports an image facet whose bytes did not parse as any
// supported raster format after every decode stage.
type DecodeError struct {
	PartIndex    int
	PayloadLen   int
	MIMEType     string
	ApparentType string
	Attempts     []DecodeAttempt
}

type DecodeAttempt struct {
	Source DecodeSource
	Err    error
}

func (e *DecodeError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "decode part %d: payload_len=%d mime=%q apparent=%s", e.PartIndex, e.PayloadLen, e.MIMEType, e.ApparentType)
	for _, a := range e.Attempts {
		fmt.Fprintf(&sb, "; %s: %v", a.Source, a.Err)
	}
	return sb.String()
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

type Decoder struct {
	strategies []PayloadStrategy
}

func NewDecoder(strategies ...PayloadStrategy) *Decoder {
	if len(strategies) == 0 {
		strategies = DefaultStrategies()
	}
	return &Decoder{strategies: strategies}
}

var defaultDecoder = NewDecoder()

// DecodePayload runs the default base64-then-raw decode.
func DecodePayload(payload []byte) (*DecodedImage, error) {
	return defaultDecoder.Decode(payload)
}

func (d *Decoder) Decode(payload []byte) (*DecodedImage, error) {
	decodeErr := &DecodeError{
		PayloadLen:   len(payload),
		ApparentType: apparentType(payload),
	}
	for _, s := range d.strategies {
		data, err := s.Decode(payload)
		if err != nil {
			decodeErr.Attempts = append(decodeErr.Attempts, DecodeAttempt{Source: s.Name(), Err: err})
			continue
		}
		img, err := parseRaster(data)
		if err != nil {
			decodeErr.Attempts = append(decodeErr.Attempts, DecodeAttempt{Source: s.Name(), Err: err})
			continue
		}
		b := img.Bounds()
		return &DecodedImage{
			Bytes:  data,
			Image:  img,
			Format: tools.DetectImageType(data),
			Source: s.Name(),
			Width:  b.Dx(),
			Height: b.Dy(),
		}, nil
	}
	return nil, decodeErr
}

func parseRaster(data []byte) (stdimage.Image, error) {
	if tools.DetectImageType(data) == tools.ImageTypeUnknown {
		return nil, errors.New("unrecognized image header")
	}
	return imaging.Decode(bytes.NewReader(data))
}

func apparentType(payload []byte) string {
	if t := tools.DetectImageType(payload); t != tools.ImageTypeUnknown {
		return t.String()
	}
	if data, err := (&Base64Strategy{}).Decode(payload); err == nil {
		return "base64/" + tools.DetectImageType(data).String()
	}
	return tools.ImageTypeUnknown.String()
}
