package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image/color"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	jsoniter "github.com/json-iterator/go"
	"github.com/reusedev/imagen-studio/config"
	"github.com/reusedev/imagen-studio/internal/consts"
	"github.com/reusedev/imagen-studio/internal/modules/ai/image"
	"github.com/stretchr/testify/require"
)

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := imaging.New(2, 2, color.White)
	img.Set(1, 1, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))
	return buf.Bytes()
}

func testConfig(baseURL string) config.Gemini {
	c := config.Default().Gemini
	c.BaseURL = baseURL
	c.APIKey = "test-key"
	return c
}

func TestRESTGenerator_Generate(t *testing.T) {
	png := testPNG(t)
	var gotBody GenerateContentRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1beta/models/gemini-2.5-flash-image:generateContent", r.URL.Path)
		require.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, jsoniter.Unmarshal(body, &gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
  "candidates": [{
    "content": {"role": "model", "parts": [
      {"text": "A red dot on white."},
      {"inlineData": {"mimeType": "image/png", "data": "` + base64.StdEncoding.EncodeToString(png) + `"}}
    ]},
    "finishReason": "STOP"
  }],
  "modelVersion": "gemini-2.5-flash-image"
}`))
	}))
	defer srv.Close()

	g := NewRESTGenerator(testConfig(srv.URL))
	resp, err := g.Generate(context.Background(), "a red circle on white background")
	require.NoError(t, err)
	require.Equal(t, "a red circle on white background", gotBody.Contents[0].Parts[0].Text)
	require.Equal(t, []string{"TEXT", "IMAGE"}, gotBody.GenerationConfig.ResponseModalities)

	require.Equal(t, "gemini-2.5-flash-image", resp.ModelVersion)
	require.Len(t, resp.Candidates, 1)
	require.Equal(t, "STOP", resp.Candidates[0].FinishReason)
	require.Len(t, resp.Candidates[0].Parts, 2)
	require.Equal(t, image.PartText, resp.Candidates[0].Parts[0].Kind)
	require.Equal(t, image.PartImage, resp.Candidates[0].Parts[1].Kind)

	ret, err := image.Extract(resp)
	require.NoError(t, err)
	require.True(t, ret.Found)
	require.Equal(t, image.SourceBase64, ret.Image.Source)
	require.Equal(t, png, ret.Image.Bytes)
	require.Equal(t, "A red dot on white.", ret.Note)
}

func TestRESTGenerator_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":429,"message":"Quota exceeded for this project","status":"RESOURCE_EXHAUSTED"}}`))
	}))
	defer srv.Close()

	_, err := NewRESTGenerator(testConfig(srv.URL)).Generate(context.Background(), "x")
	var ue *UpstreamError
	require.True(t, errors.As(err, &ue))
	require.Equal(t, http.StatusTooManyRequests, ue.StatusCode)
	require.Equal(t, "RESOURCE_EXHAUSTED", ue.Status)
	require.Equal(t, "Quota exceeded for this project", ue.Message)
	require.Equal(t, image.HintQuota, image.DefaultClassifier.Classify(err).Kind)
}

func TestRESTGenerator_PlainTextError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream gateway exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewRESTGenerator(testConfig(srv.URL)).Generate(context.Background(), "x")
	var ue *UpstreamError
	require.True(t, errors.As(err, &ue))
	require.Equal(t, "upstream gateway exploded", ue.Message)
	require.Equal(t, image.HintGeneric, image.DefaultClassifier.Classify(err).Kind)
}

func TestResponseParser_ErrorBodyTimeout(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })
	p := NewResponseParser("gemini-2.5-flash-image")
	p.errorBodyTimeout = 20 * time.Millisecond

	_, err := p.Parse(&http.Response{StatusCode: http.StatusServiceUnavailable, Body: io.NopCloser(pr)})
	var ue *UpstreamError
	require.True(t, errors.As(err, &ue))
	require.Equal(t, http.StatusServiceUnavailable, ue.StatusCode)
	require.Contains(t, ue.Message, "Service Unavailable")
	require.Contains(t, ue.Message, "error body unread")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRESTGenerator_NotJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>"))
	}))
	defer srv.Close()

	_, err := NewRESTGenerator(testConfig(srv.URL)).Generate(context.Background(), "x")
	require.Error(t, err)
}

func TestNewGenerator_NoKey(t *testing.T) {
	cfg := config.Default().Gemini
	cfg.APIKey = ""

	g, err := NewGenerator(context.Background(), cfg)
	require.NoError(t, err)
	_, err = g.Generate(context.Background(), "x")
	require.ErrorIs(t, err, ErrNoAPIKey)

	cfg.Backend = consts.BackendSDK.String()
	_, err = NewGenerator(context.Background(), cfg)
	require.ErrorIs(t, err, ErrNoAPIKey)
}

func TestToGenerationResponse(t *testing.T) {
	t.Run("snake case inline data", func(t *testing.T) {
		var wire GenerateContentResponse
		require.NoError(t, jsoniter.Unmarshal([]byte(`{"candidates":[{"content":{"parts":[
			{"inline_data":{"mime_type":"image/jpeg","data":"abc"}}]}}]}`), &wire))
		resp := wire.ToGenerationResponse()
		p := resp.Candidates[0].Parts[0]
		require.Equal(t, image.PartImage, p.Kind)
		require.Equal(t, "image/jpeg", p.Image.MIMEType)
		require.Equal(t, []byte("abc"), p.Image.Data)
	})

	t.Run("blocked prompt", func(t *testing.T) {
		var wire GenerateContentResponse
		require.NoError(t, jsoniter.Unmarshal([]byte(`{"promptFeedback":{"blockReason":"SAFETY"}}`), &wire))
		resp := wire.ToGenerationResponse()
		require.Empty(t, resp.Candidates)
		require.Equal(t, "SAFETY", resp.BlockReason)
	})

	t.Run("candidate without content", func(t *testing.T) {
		var wire GenerateContentResponse
		require.NoError(t, jsoniter.Unmarshal([]byte(`{"candidates":[{"finishReason":"IMAGE_SAFETY"}]}`), &wire))
		ret, err := image.Extract(wire.ToGenerationResponse())
		require.NoError(t, err)
		require.Equal(t, image.OutcomeEmptyResponse, ret.Outcome)
	})
}
