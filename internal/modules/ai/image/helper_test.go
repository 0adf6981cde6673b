package image

import (
	"bytes"
	"encoding/base64"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

// redOnWhitePNG is a 2x2 white PNG with a red top-left pixel.
func redOnWhitePNG(t *testing.T) []byte {
	t.Helper()
	img := imaging.New(2, 2, color.White)
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))
	return buf.Bytes()
}

func jpegOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := imaging.New(w, h, color.NRGBA{B: 200, A: 255})
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.JPEG))
	return buf.Bytes()
}

func b64(data []byte) []byte {
	return []byte(base64.StdEncoding.EncodeToString(data))
}

func response(parts ...Part) *GenerationResponse {
	return &GenerationResponse{Candidates: []Candidate{{Parts: parts}}}
}
