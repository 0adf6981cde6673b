package gemini

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/reusedev/imagen-studio/config"
	"github.com/reusedev/imagen-studio/internal/consts"
	"github.com/reusedev/imagen-studio/internal/modules/ai/image"
	"github.com/reusedev/imagen-studio/internal/modules/http_client"
	"github.com/reusedev/imagen-studio/internal/modules/logs"
	"github.com/reusedev/imagen-studio/tools"
)

// Generator performs one generation call for a prompt. No retries.
type Generator interface {
	Generate(ctx context.Context, prompt string) (*image.GenerationResponse, error)
	Name() string
	Model() string
}

func NewGenerator(ctx context.Context, cfg config.Gemini) (Generator, error) {
	switch consts.Backend(cfg.Backend) {
	case consts.BackendSDK:
		return NewSDKGenerator(ctx, cfg)
	default:
		return NewRESTGenerator(cfg), nil
	}
}

type RESTGenerator struct {
	baseURL    string
	apiKey     string
	model      string
	modalities []string
	client     *http_client.HttpClient
	parser     *ResponseParser
}

func NewRESTGenerator(cfg config.Gemini) *RESTGenerator {
	return &RESTGenerator{
		baseURL:    cfg.BaseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		model:      cfg.Model,
		modalities: cfg.ResponseModalities,
		client:     http_client.NewWithTimeout(cfg.RequestTimeout()),
		parser:     NewResponseParser(cfg.Model),
	}
}

func (g *RESTGenerator) Name() string  { return consts.BackendREST.String() }
func (g *RESTGenerator) Model() string { return g.model }

func (g *RESTGenerator) Path() string {
	return "v1beta/models/" + g.model + ":generateContent"
}

func (g *RESTGenerator) Generate(ctx context.Context, prompt string) (*image.GenerationResponse, error) {
	if g.apiKey == "" {
		return nil, ErrNoAPIKey
	}
	req, err := g.client.NewRequest(
		http.MethodPost,
		tools.FullURL(g.baseURL, g.Path()),
		http_client.WithHeader("x-goog-api-key", g.apiKey),
		http_client.WithHeader("Content-Type", "application/json"),
		http_client.WithBody(NewGenerateContentRequest(prompt, g.modalities)),
		http_client.WithContext(ctx),
	)
	if err != nil {
		return nil, err
	}
	reqAt := time.Now()
	resp, err := g.client.Do(req)
	respAt := time.Now()
	if err != nil {
		return nil, &UpstreamError{Backend: g.Name(), Model: g.model, Message: err.Error(), Err: err}
	}
	logs.Logger.Info().
		Str("backend", g.Name()).
		Str("model", g.model).
		Str("path", g.Path()).
		Int("status_code", resp.StatusCode).
		Dur("req_consume_ms", respAt.Sub(reqAt)).
		Msg("generate request")
	return g.parser.Parse(resp)
}
