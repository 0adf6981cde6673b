package image

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeywordClassifier(t *testing.T) {
	cases := []struct {
		msg  string
		want HintKind
	}{
		{"Quota exceeded for this project", HintQuota},
		{"429 RESOURCE_EXHAUSTED", HintQuota},
		{"rate limit reached", HintQuota},
		{"API key not valid. Please pass a valid API key.", HintCredential},
		{"400 INVALID_ARGUMENT", HintCredential},
		{"models/foo is not found for API version v1beta", HintUnsupported},
		{"Image generation is not supported for this model", HintUnsupported},
		{"connection reset by peer", HintGeneric},
		{"", HintGeneric},
	}
	c := NewKeywordClassifier()
	for _, tc := range cases {
		t.Run(tc.msg, func(t *testing.T) {
			require.Equal(t, tc.want, c.Classify(errors.New(tc.msg)).Kind)
		})
	}
	require.Equal(t, HintGeneric, c.Classify(nil).Kind)
}

func TestKeywordClassifier_Wrapped(t *testing.T) {
	err := fmt.Errorf("generate: %w", errors.New("Quota exceeded for this project"))
	hint := DefaultClassifier.Classify(err)
	require.Equal(t, QuotaHint, hint)
}

func TestKeywordClassifier_Swappable(t *testing.T) {
	c := &KeywordClassifier{
		Rules:    []KeywordRule{{Kind: "safety", Keywords: []string{"blocked"}, Message: "blocked"}},
		Fallback: GenericHint,
	}
	require.Equal(t, HintKind("safety"), c.Classify(errors.New("Prompt BLOCKED")).Kind)
	require.Equal(t, HintGeneric, c.Classify(errors.New("quota")).Kind)
}

func TestOutcomeHint(t *testing.T) {
	_, ok := OutcomeHint(ExtractionResult{Found: true, Outcome: OutcomeImage}, nil)
	require.False(t, ok)

	h, ok := OutcomeHint(ExtractionResult{Outcome: OutcomeEmptyResponse}, nil)
	require.True(t, ok)
	require.Equal(t, HintEmptyResponse, h.Kind)

	h, _ = OutcomeHint(ExtractionResult{Outcome: OutcomeNoImagePresent}, nil)
	require.Equal(t, HintNoImage, h.Kind)

	h, _ = OutcomeHint(ExtractionResult{Outcome: OutcomeDecodeFailed}, &DecodeError{})
	require.Equal(t, HintDecode, h.Kind)
}
