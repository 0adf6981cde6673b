package image

// GenerationResponse is the backend-neutral shape of a generation call:
// candidates made of ordered parts.
type GenerationResponse struct {
	Candidates   []Candidate `json:"candidates"`
	ModelVersion string      `json:"model_version"`
	BlockReason  string      `json:"block_reason,omitempty"` // prompt rejected before any candidate
}

type Candidate struct {
	Parts        []Part `json:"parts"`
	FinishReason string `json:"finish_reason"`
}

type PartKind int

const (
	PartEmpty PartKind = iota
	PartImage
	PartText
)

func (k PartKind) String() string {
	switch k {
	case PartImage:
		return "image"
	case PartText:
		return "text"
	default:
		return "empty"
	}
}

// Part holds exactly one of an inline image or a text fragment, selected by
// Kind. Build parts with ImagePart, TextPart and EmptyPart.
type Part struct {
	Kind  PartKind     `json:"kind"`
	Image *InlineImage `json:"image,omitempty"`
	Text  string       `json:"text,omitempty"`
}

// InlineImage carries the payload as the upstream delivered it: base64 text
// for the REST API, raw bytes for the SDK.
type InlineImage struct {
	MIMEType string `json:"mime_type"`
	Data     []byte `json:"data"`
}

func ImagePart(mimeType string, data []byte) Part {
	return Part{Kind: PartImage, Image: &InlineImage{MIMEType: mimeType, Data: data}}
}

func TextPart(text string) Part {
	return Part{Kind: PartText, Text: text}
}

func EmptyPart() Part {
	return Part{Kind: PartEmpty}
}

// WirePart converts an optional-facet wire part into tagged parts. A wire
// part carrying both facets becomes an image part followed by a text part.
func WirePart(mimeType string, data []byte, text string) []Part {
	var parts []Part
	if len(data) > 0 {
		parts = append(parts, ImagePart(mimeType, data))
	}
	if text != "" {
		parts = append(parts, TextPart(text))
	}
	if len(parts) == 0 {
		parts = append(parts, EmptyPart())
	}
	return parts
}
