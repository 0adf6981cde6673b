package image

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
)

// PayloadStrategy turns an inline payload into candidate raster bytes.
type PayloadStrategy interface {
	Name() DecodeSource
	Decode(payload []byte) ([]byte, error)
}

type DecodeSource string

const (
	SourceBase64 DecodeSource = "base64"
	SourceRaw    DecodeSource = "raw"
)

var errEmptyPayload = errors.New("empty payload")

type Base64Strategy struct{}

func (b *Base64Strategy) Name() DecodeSource { return SourceBase64 }

// Decode accepts padded or unpadded standard base64, optionally behind a
// data URL prefix.
func (b *Base64Strategy) Decode(payload []byte) ([]byte, error) {
	input := strings.TrimSpace(string(payload))
	if strings.HasPrefix(input, "data:") {
		prefix := "base64,"
		index := strings.Index(input, prefix)
		if index == -1 {
			return nil, errors.New("data url without base64 marker")
		}
		input = input[index+len(prefix):]
	}
	if input == "" {
		return nil, errEmptyPayload
	}
	out, err := base64.StdEncoding.DecodeString(input)
	if err == nil {
		return out, nil
	}
	if out, rawErr := base64.RawStdEncoding.DecodeString(input); rawErr == nil {
		return out, nil
	}
	return nil, err
}

type RawStrategy struct{}

func (r *RawStrategy) Name() DecodeSource { return SourceRaw }

func (r *RawStrategy) Decode(payload []byte) ([]byte, error) {
	if len(bytes.TrimSpace(payload)) == 0 {
		return nil, errEmptyPayload
	}
	return bytes.Clone(payload), nil
}

// DefaultStrategies is the order the decoder tries: base64 first, raw bytes
// second. Upstreams disagree on whether inline data arrives encoded.
func DefaultStrategies() []PayloadStrategy {
	return []PayloadStrategy{&Base64Strategy{}, &RawStrategy{}}
}
