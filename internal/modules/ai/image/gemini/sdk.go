package gemini

import (
	"context"
	"strings"
	"time"

	"github.com/reusedev/imagen-studio/config"
	"github.com/reusedev/imagen-studio/internal/consts"
	"github.com/reusedev/imagen-studio/internal/modules/ai/image"
	"github.com/reusedev/imagen-studio/internal/modules/logs"
	"google.golang.org/genai"
)

type SDKGenerator struct {
	client     *genai.Client
	model      string
	modalities []string
	timeout    time.Duration
}

func NewSDKGenerator(ctx context.Context, cfg config.Gemini) (*SDKGenerator, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	cc := &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI}
	if cfg.BaseURL != "" && cfg.BaseURL != config.DefaultBaseURL {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, err
	}
	return &SDKGenerator{
		client:     client,
		model:      cfg.Model,
		modalities: cfg.ResponseModalities,
		timeout:    cfg.RequestTimeout(),
	}, nil
}

func (g *SDKGenerator) Name() string  { return consts.BackendSDK.String() }
func (g *SDKGenerator) Model() string { return g.model }

func (g *SDKGenerator) Generate(ctx context.Context, prompt string) (*image.GenerationResponse, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	reqAt := time.Now()
	res, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseModalities: g.modalities,
	})
	respAt := time.Now()
	if err != nil {
		logs.Logger.Info().Err(err).Str("backend", g.Name()).Str("model", g.model).
			Dur("req_consume_ms", respAt.Sub(reqAt)).Msg("generate request failed")
		return nil, &UpstreamError{Backend: g.Name(), Model: g.model, Message: err.Error(), Err: err}
	}
	logs.Logger.Info().Str("backend", g.Name()).Str("model", g.model).
		Dur("req_consume_ms", respAt.Sub(reqAt)).Msg("generate request")
	return fromSDKResponse(res), nil
}

// fromSDKResponse maps the SDK shape; inline data arrives already decoded
// and goes through the raw stage of the extractor.
func fromSDKResponse(res *genai.GenerateContentResponse) *image.GenerationResponse {
	ret := &image.GenerationResponse{}
	if res == nil {
		return ret
	}
	ret.ModelVersion = res.ModelVersion
	if res.PromptFeedback != nil {
		ret.BlockReason = string(res.PromptFeedback.BlockReason)
	}
	for _, c := range res.Candidates {
		if c == nil {
			ret.Candidates = append(ret.Candidates, image.Candidate{})
			continue
		}
		candidate := image.Candidate{FinishReason: string(c.FinishReason)}
		if c.Content != nil {
			for _, p := range c.Content.Parts {
				if p == nil {
					candidate.Parts = append(candidate.Parts, image.EmptyPart())
					continue
				}
				var mime string
				var data []byte
				if p.InlineData != nil {
					mime = p.InlineData.MIMEType
					data = p.InlineData.Data
				}
				candidate.Parts = append(candidate.Parts, image.WirePart(mime, data, p.Text)...)
			}
		}
		ret.Candidates = append(ret.Candidates, candidate)
	}
	return ret
}
