package image

type Outcome string

const (
	OutcomeImage          Outcome = "image"
	OutcomeEmptyResponse  Outcome = "empty_response"
	OutcomeNoImagePresent Outcome = "no_image_present"
	OutcomeDecodeFailed   Outcome = "decode_failed"
)

func (o Outcome) String() string {
	return string(o)
}

// ExtractionResult is built fresh for every Extract call and owned by the caller.
type ExtractionResult struct {
	Found     bool
	Outcome   Outcome
	Image     *DecodedImage
	Note      string
	PartIndex int // index of the accepted image part, -1 when none
	// DecodeErrors lists image facets that were skipped, in part order.
	DecodeErrors []*DecodeError
}

func (r ExtractionResult) HasNote() bool {
	return r.Note != ""
}
