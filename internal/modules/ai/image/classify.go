package image

import (
	"errors"
	"strings"
)

type HintKind string

const (
	HintQuota         HintKind = "quota_limit"
	HintCredential    HintKind = "credential"
	HintUnsupported   HintKind = "unsupported_model"
	HintGeneric       HintKind = "generic"
	HintEmptyResponse HintKind = "empty_response"
	HintNoImage       HintKind = "no_image"
	HintDecode        HintKind = "decode_error"
)

func (h HintKind) String() string {
	return string(h)
}

type Hint struct {
	Kind    HintKind `json:"kind"`
	Message string   `json:"message"`
}

// Classifier picks a user-facing hint for a failed generation call.
type Classifier interface {
	Classify(err error) Hint
}

type KeywordRule struct {
	Kind     HintKind
	Keywords []string // lower case
	Message  string
}

// KeywordClassifier matches the error text against Rules in order; the first
// rule with any keyword present wins. Unmatched errors get Fallback.
type KeywordClassifier struct {
	Rules    []KeywordRule
	Fallback Hint
}

var (
	QuotaHint = Hint{
		Kind:    HintQuota,
		Message: "The generation quota or rate limit was reached. Wait a moment or check the project's billing and quota settings.",
	}
	CredentialHint = Hint{
		Kind:    HintCredential,
		Message: "The API key was rejected. Check that GOOGLE_API_KEY is set and valid for this project.",
	}
	UnsupportedHint = Hint{
		Kind:    HintUnsupported,
		Message: "The configured model is not available for image generation. Pick another model.",
	}
	GenericHint = Hint{
		Kind:    HintGeneric,
		Message: "Something went wrong while generating the image. Try again later.",
	}
	EmptyResponseHint = Hint{
		Kind:    HintEmptyResponse,
		Message: "Could not generate image, the response was empty. Try a different prompt.",
	}
	NoImageHint = Hint{
		Kind:    HintNoImage,
		Message: "The model didn't return an image. Try a different prompt.",
	}
	DecodeHint = Hint{
		Kind:    HintDecode,
		Message: "The model returned an image that could not be read. Try generating again.",
	}
)

func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{
		Rules: []KeywordRule{
			{Kind: QuotaHint.Kind, Keywords: []string{"quota", "limit", "resource_exhausted"}, Message: QuotaHint.Message},
			{Kind: CredentialHint.Kind, Keywords: []string{"api key", "api_key", "invalid", "permission_denied", "unauthenticated"}, Message: CredentialHint.Message},
			{Kind: UnsupportedHint.Kind, Keywords: []string{"not supported", "not found"}, Message: UnsupportedHint.Message},
		},
		Fallback: GenericHint,
	}
}

var DefaultClassifier Classifier = NewKeywordClassifier()

func (k *KeywordClassifier) Classify(err error) Hint {
	if err == nil {
		return k.Fallback
	}
	msg := strings.ToLower(err.Error())
	for _, rule := range k.Rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(msg, kw) {
				return Hint{Kind: rule.Kind, Message: rule.Message}
			}
		}
	}
	return k.Fallback
}

// OutcomeHint maps an extraction that produced no image to its hint. It
// returns false when the result holds an image.
func OutcomeHint(result ExtractionResult, err error) (Hint, bool) {
	if errors.Is(err, ErrDecode) {
		return DecodeHint, true
	}
	switch result.Outcome {
	case OutcomeImage:
		return Hint{}, false
	case OutcomeEmptyResponse:
		return EmptyResponseHint, true
	case OutcomeDecodeFailed:
		return DecodeHint, true
	default:
		return NoImageHint, true
	}
}
