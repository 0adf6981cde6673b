package main

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/reusedev/imagen-studio/config"
	"github.com/reusedev/imagen-studio/internal/modules/ai/image"
	"github.com/reusedev/imagen-studio/internal/modules/ai/image/gemini"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	resp *image.GenerationResponse
	err  error
}

func (f *fakeGenerator) Generate(context.Context, string) (*image.GenerationResponse, error) {
	return f.resp, f.err
}

func (f *fakeGenerator) Name() string  { return "fake" }
func (f *fakeGenerator) Model() string { return "fake-model" }

func runGenerate(t *testing.T, gen *fakeGenerator, args ...string) (string, string, error) {
	t.Helper()
	config.GConfig = config.Default()
	orig := newGenerator
	newGenerator = func(context.Context) (gemini.Generator, error) { return gen, nil }
	t.Cleanup(func() { newGenerator = orig })

	var stdout, stderr bytes.Buffer
	cmd := newGenerateCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestGenerateCommand(t *testing.T) {
	t.Run("writes the png", func(t *testing.T) {
		img := imaging.New(2, 2, color.White)
		img.Set(0, 0, color.NRGBA{R: 255, A: 255})
		var buf bytes.Buffer
		require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))
		png := buf.Bytes()

		out := filepath.Join(t.TempDir(), "out", "circle.png")
		gen := &fakeGenerator{resp: &image.GenerationResponse{Candidates: []image.Candidate{{Parts: []image.Part{
			image.ImagePart("image/png", png),
		}}}}}
		stdout, _, err := runGenerate(t, gen, "--prompt", "a red circle on white", "--output", out)
		require.NoError(t, err)
		require.Contains(t, stdout, `"found":true`)
		require.Contains(t, stdout, "saved "+out)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		require.Equal(t, png, data)
	})

	t.Run("upstream failure prints the hint", func(t *testing.T) {
		cause := errors.New("Quota exceeded for this project")
		_, stderr, err := runGenerate(t, &fakeGenerator{err: cause}, "--prompt", "cat")
		require.ErrorIs(t, err, cause)
		require.Contains(t, stderr, image.QuotaHint.Message)
	})

	t.Run("no image returns the hint", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "none.png")
		gen := &fakeGenerator{resp: &image.GenerationResponse{Candidates: []image.Candidate{{Parts: []image.Part{
			image.TextPart("I can't draw that."),
		}}}}}
		stdout, _, err := runGenerate(t, gen, "--prompt", "cat", "--output", out)
		require.EqualError(t, err, image.NoImageHint.Message)
		require.Contains(t, stdout, `"found":false`)
		require.NoFileExists(t, out)
	})

	t.Run("prompt is required", func(t *testing.T) {
		_, _, err := runGenerate(t, &fakeGenerator{}, "--prompt", "   ")
		require.EqualError(t, err, "--prompt is required")
	})

	t.Run("unknown backend is rejected", func(t *testing.T) {
		_, _, err := runGenerate(t, &fakeGenerator{}, "--prompt", "cat", "--backend", "grpc")
		require.Error(t, err)
		require.Contains(t, err.Error(), "gemini.backend")
	})
}
