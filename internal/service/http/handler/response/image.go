package response

import (
	"encoding/base64"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/reusedev/imagen-studio/internal/modules/ai/image"
	"github.com/reusedev/imagen-studio/internal/modules/gallery"
	"github.com/reusedev/imagen-studio/internal/modules/studio"
	"github.com/reusedev/imagen-studio/tools"
)

type GenerateImage struct {
	TaskID  string      `json:"task_id"`
	Found   bool        `json:"found"`
	Outcome string      `json:"outcome"`
	Note    string      `json:"note,omitempty"`
	Hint    *image.Hint `json:"hint,omitempty"`
	Entry   *ImageEntry `json:"entry,omitempty"`
}

type ImageEntry struct {
	ID           string    `json:"id"`
	Prompt       string    `json:"prompt"`
	Note         string    `json:"note,omitempty"`
	Model        string    `json:"model"`
	MIMEType     string    `json:"mime_type"`
	Width        int       `json:"width"`
	Height       int       `json:"height"`
	DownloadName string    `json:"download_name"`
	B64PNG       string    `json:"b64_png,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewImageEntry(e gallery.Entry, withData bool) *ImageEntry {
	ret := &ImageEntry{
		ID:           e.ID,
		Prompt:       e.Prompt,
		Note:         e.Note,
		Model:        e.Model,
		MIMEType:     e.MIMEType,
		Width:        e.Width,
		Height:       e.Height,
		DownloadName: tools.DownloadFileName(e.Prompt, "png"),
		CreatedAt:    e.CreatedAt,
	}
	if withData {
		ret.B64PNG = base64.StdEncoding.EncodeToString(e.PNG)
	}
	return ret
}

func NewGenerateImage(r studio.Result, withData bool) *GenerateImage {
	ret := &GenerateImage{
		TaskID:  r.TaskID,
		Found:   r.Extraction.Found,
		Outcome: r.Extraction.Outcome.String(),
		Note:    r.Extraction.Note,
		Hint:    r.Hint,
	}
	if r.Entry != nil {
		ret.Entry = NewImageEntry(*r.Entry, withData)
	}
	return ret
}

func (g *GenerateImage) Marsh() (string, error) {
	return jsoniter.MarshalToString(g)
}
