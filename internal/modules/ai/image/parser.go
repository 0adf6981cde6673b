package image

import (
	"strings"
)

type Extractor struct {
	decoder *Decoder
}

func NewExtractor(decoder *Decoder) *Extractor {
	if decoder == nil {
		decoder = defaultDecoder
	}
	return &Extractor{decoder: decoder}
}

var defaultExtractor = NewExtractor(nil)

// Extract uses the default base64-then-raw decoder.
func Extract(resp *GenerationResponse) (ExtractionResult, error) {
	return defaultExtractor.Extract(resp)
}

// Extract scans the first candidate. The first image facet that decodes wins;
// the first non-empty text seen before that image becomes the note. A non-nil
// error is always a *DecodeError and is only returned when no image was accepted.
func (e *Extractor) Extract(resp *GenerationResponse) (ExtractionResult, error) {
	ret := ExtractionResult{Outcome: OutcomeEmptyResponse, PartIndex: -1}
	if resp == nil || len(resp.Candidates) == 0 || len(resp.Candidates[0].Parts) == 0 {
		return ret, nil
	}
	for i, part := range resp.Candidates[0].Parts {
		switch part.Kind {
		case PartImage:
			if ret.Found || part.Image == nil || len(part.Image.Data) == 0 {
				continue
			}
			decoded, err := e.decoder.Decode(part.Image.Data)
			if err != nil {
				if de, ok := err.(*DecodeError); ok {
					de.PartIndex = i
					de.MIMEType = part.Image.MIMEType
					ret.DecodeErrors = append(ret.DecodeErrors, de)
				}
				continue
			}
			ret.Found = true
			ret.Image = decoded
			ret.PartIndex = i
		case PartText:
			if !ret.Found && ret.Note == "" && strings.TrimSpace(part.Text) != "" {
				ret.Note = part.Text
			}
		}
	}
	switch {
	case ret.Found:
		ret.Outcome = OutcomeImage
	case len(ret.DecodeErrors) > 0:
		ret.Outcome = OutcomeDecodeFailed
		return ret, ret.DecodeErrors[0]
	default:
		ret.Outcome = OutcomeNoImagePresent
	}
	return ret, nil
}
