package gemini

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/reusedev/imagen-studio/internal/consts"
	"github.com/reusedev/imagen-studio/internal/modules/ai/image"
	"github.com/reusedev/imagen-studio/internal/modules/logs"
)

type ResponseParser struct {
	model string
	// errorBodyTimeout bounds reading a failed response body, which some
	// gateways keep open for minutes.
	errorBodyTimeout time.Duration
}

func NewResponseParser(model string) *ResponseParser {
	return &ResponseParser{model: model, errorBodyTimeout: 90 * time.Second}
}

func (p *ResponseParser) Parse(resp *http.Response) (*image.GenerationResponse, error) {
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, err := p.readWithTimeout(resp.Body)
		e := p.upstreamError(resp, body)
		if err != nil {
			logs.Logger.Warn().Err(err).Str("model", p.model).Int("status", resp.StatusCode).
				Msg("read generateContent error body failed")
			e.Message = fmt.Sprintf("%s (error body unread: %v)", e.Message, err)
			e.Err = err
		}
		return nil, e
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var wire GenerateContentResponse
	if err := jsoniter.Unmarshal(body, &wire); err != nil {
		logs.Logger.Warn().Err(err).Str("model", p.model).Int("body_len", len(body)).
			Msg("generateContent response is not json")
		return nil, fmt.Errorf("decode generateContent response: %w", err)
	}
	return wire.ToGenerationResponse(), nil
}

func (p *ResponseParser) readWithTimeout(r io.Reader) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), p.errorBodyTimeout)
	defer cancel()
	type result struct {
		data []byte
		err  error
	}
	resultCh := make(chan result, 1)
	go func() {
		data, err := io.ReadAll(r)
		resultCh <- result{data: data, err: err}
	}()
	select {
	case res := <-resultCh:
		return res.data, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (p *ResponseParser) upstreamError(resp *http.Response, body []byte) *UpstreamError {
	e := &UpstreamError{
		Backend:    consts.BackendREST.String(),
		Model:      p.model,
		StatusCode: resp.StatusCode,
		Status:     http.StatusText(resp.StatusCode),
	}
	var envelope errorResponse
	if err := jsoniter.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		e.Message = envelope.Error.Message
		if envelope.Error.Status != "" {
			e.Status = envelope.Error.Status
		}
		return e
	}
	e.Message = strings.TrimSpace(string(body))
	if e.Message == "" {
		e.Message = e.Status
	}
	return e
}
