package gemini

import (
	"github.com/reusedev/imagen-studio/internal/modules/ai/image"
)

// GenerateContentRequest is the REST body of models/{model}:generateContent.
type GenerateContentRequest struct {
	Contents         []Content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

type GenerationConfig struct {
	ResponseModalities []string `json:"responseModalities,omitempty"`
}

type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part accepts both the camelCase REST spelling and the snake_case spelling
// some proxies emit.
type Part struct {
	Text            string      `json:"text,omitempty"`
	InlineData      *InlineData `json:"inlineData,omitempty"`
	InlineDataSnake *InlineData `json:"inline_data,omitempty"`
}

type InlineData struct {
	MimeType      string `json:"mimeType,omitempty"`
	MimeTypeSnake string `json:"mime_type,omitempty"`
	Data          string `json:"data"`
}

func (p Part) inline() *InlineData {
	if p.InlineData != nil {
		return p.InlineData
	}
	return p.InlineDataSnake
}

func (d *InlineData) mime() string {
	if d.MimeType != "" {
		return d.MimeType
	}
	return d.MimeTypeSnake
}

type GenerateContentResponse struct {
	Candidates     []Candidate     `json:"candidates"`
	ModelVersion   string          `json:"modelVersion"`
	ResponseID     string          `json:"responseId"`
	PromptFeedback *PromptFeedback `json:"promptFeedback,omitempty"`
}

type Candidate struct {
	Content      *Content `json:"content"`
	FinishReason string   `json:"finishReason"`
}

type PromptFeedback struct {
	BlockReason string `json:"blockReason"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func NewGenerateContentRequest(prompt string, modalities []string) *GenerateContentRequest {
	r := &GenerateContentRequest{
		Contents: []Content{{
			Role:  "user",
			Parts: []Part{{Text: prompt}},
		}},
	}
	if len(modalities) > 0 {
		r.GenerationConfig = &GenerationConfig{ResponseModalities: modalities}
	}
	return r
}

func (r *GenerateContentResponse) ToGenerationResponse() *image.GenerationResponse {
	ret := &image.GenerationResponse{ModelVersion: r.ModelVersion}
	if r.PromptFeedback != nil {
		ret.BlockReason = r.PromptFeedback.BlockReason
	}
	for _, c := range r.Candidates {
		candidate := image.Candidate{FinishReason: c.FinishReason}
		if c.Content != nil {
			for _, p := range c.Content.Parts {
				var mime string
				var data []byte
				if d := p.inline(); d != nil {
					mime = d.mime()
					data = []byte(d.Data)
				}
				candidate.Parts = append(candidate.Parts, image.WirePart(mime, data, p.Text)...)
			}
		}
		ret.Candidates = append(ret.Candidates, candidate)
	}
	return ret
}
