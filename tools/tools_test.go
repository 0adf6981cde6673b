package tools

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFullURL(t *testing.T) {
	require.Equal(t, "https://a.b/v1beta/models", FullURL("https://a.b/", "/v1beta/models"))
	require.Equal(t, "https://a.b/x", FullURL("https://a.b", "x"))
	require.Equal(t, "https://a.b", FullURL("https://a.b/", ""))
	require.Equal(t, "", FullURL("", "x"))
	require.Equal(t, "https://proxy.local/gemini/v1beta/models", FullURL(" https://proxy.local/gemini// ", "//v1beta/models"))
}

func TestDetectImageType(t *testing.T) {
	require.Equal(t, ImageTypePNG, DetectImageType([]byte("\x89PNG\r\n\x1a\nrest")))
	require.Equal(t, ImageTypeJPEG, DetectImageType([]byte{0xFF, 0xD8, 0xFF, 0xE0}))
	require.Equal(t, ImageTypeGIF, DetectImageType([]byte("GIF89a...")))
	require.Equal(t, ImageTypeWEBP, DetectImageType([]byte("RIFF\x00\x00\x00\x00WEBPVP8 ")))
	require.Equal(t, ImageTypeUnknown, DetectImageType([]byte("hello")))
	require.Equal(t, ImageTypeUnknown, DetectImageType(nil))
	require.Equal(t, "image/png", ImageTypePNG.MIMEType())
	require.Equal(t, "application/octet-stream", ImageTypeUnknown.MIMEType())
}

func TestDownloadFileName(t *testing.T) {
	require.Equal(t, "imagen_a_red_circle_on_whit.png", DownloadFileName("a red circle on white background", "png"))
	require.Equal(t, "imagen_cat.png", DownloadFileName("  cat!  ", ""))
	require.Equal(t, "imagen_image.png", DownloadFileName("???", ".png"))
}

func TestReadOptionalFile(t *testing.T) {
	data, err := ReadOptionalFile(t.TempDir() + "/missing.yml")
	require.NoError(t, err)
	require.Nil(t, data)
}
