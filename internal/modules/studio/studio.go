// Package studio runs one prompt through a generator, extracts the image and
// records it in the session gallery.
package studio

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/reusedev/imagen-studio/internal/consts"
	"github.com/reusedev/imagen-studio/internal/modules/ai/image"
	"github.com/reusedev/imagen-studio/internal/modules/ai/image/gemini"
	"github.com/reusedev/imagen-studio/internal/modules/gallery"
	"github.com/reusedev/imagen-studio/internal/modules/logs"
	"github.com/reusedev/imagen-studio/internal/modules/model"
	"github.com/reusedev/imagen-studio/internal/modules/observer"
)

var ErrEmptyPrompt = errors.New("prompt must not be empty")

// UpstreamFailure wraps a failed generation call together with its hint.
type UpstreamFailure struct {
	Err  error
	Hint image.Hint
}

func (e *UpstreamFailure) Error() string {
	return fmt.Sprintf("generate image: %v", e.Err)
}

func (e *UpstreamFailure) Unwrap() error {
	return e.Err
}

type Result struct {
	TaskID     string
	Entry      *gallery.Entry // nil when no image was found
	Extraction image.ExtractionResult
	Hint       *image.Hint // nil when an image was found
}

type Studio struct {
	generator  gemini.Generator
	extractor  *image.Extractor
	classifier image.Classifier
	gallery    *gallery.Gallery
	observers  []observer.Observer
}

type Option func(*Studio)

func WithClassifier(c image.Classifier) Option {
	return func(s *Studio) { s.classifier = c }
}

func WithExtractor(e *image.Extractor) Option {
	return func(s *Studio) { s.extractor = e }
}

func New(generator gemini.Generator, g *gallery.Gallery, opts ...Option) *Studio {
	s := &Studio{
		generator:  generator,
		extractor:  image.NewExtractor(nil),
		classifier: image.DefaultClassifier,
		gallery:    g,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ observer.Subject = (*Studio)(nil)

func (s *Studio) AddObserver(o observer.Observer) {
	s.observers = append(s.observers, o)
}

func (s *Studio) Notify(event string, data interface{}) {
	for _, o := range s.observers {
		o.Update(event, data)
	}
}

func (s *Studio) Gallery() *gallery.Gallery {
	return s.gallery
}

// Generate asks the generator for an image. A response without a usable
// image is a Result with a Hint, not an error.
func (s *Studio) Generate(ctx context.Context, sessionID, prompt string) (Result, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return Result{}, ErrEmptyPrompt
	}
	start := time.Now()
	event := &observer.GenerationEvent{
		TaskID:    uuid.NewString(),
		SessionID: sessionID,
		Backend:   s.generator.Name(),
		Model:     s.generator.Model(),
		Prompt:    prompt,
	}
	result := Result{TaskID: event.TaskID}

	resp, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		hint := s.classifier.Classify(err)
		event.Outcome = model.OutcomeUpstreamError.String()
		event.HintKind = hint.Kind.String()
		event.Err = err
		event.Duration = time.Since(start)
		s.Notify(consts.EventGenerateFailed, event)
		return result, &UpstreamFailure{Err: err, Hint: hint}
	}

	extraction, extractErr := s.extractor.Extract(resp)
	result.Extraction = extraction
	event.Outcome = extraction.Outcome.String()
	event.Duration = time.Since(start)
	if hint, ok := image.OutcomeHint(extraction, extractErr); ok {
		result.Hint = &hint
		event.HintKind = hint.Kind.String()
		event.Err = extractErr
		s.Notify(consts.EventGenerateFailed, event)
		return result, nil
	}

	png, err := extraction.Image.DownloadPNG()
	if err != nil {
		hint := image.DecodeHint
		result.Hint = &hint
		event.HintKind = hint.Kind.String()
		event.Err = err
		s.Notify(consts.EventGenerateFailed, event)
		return result, nil
	}
	for _, de := range extraction.DecodeErrors {
		logs.Logger.Warn().Err(de).Str("task_id", event.TaskID).Msg("skipped undecodable image part")
	}
	entry, err := s.gallery.Add(sessionID, gallery.Entry{
		ID:       event.TaskID,
		Prompt:   prompt,
		Note:     extraction.Note,
		Model:    s.generator.Model(),
		MIMEType: "image/png",
		Width:    extraction.Image.Width,
		Height:   extraction.Image.Height,
		PNG:      png,
	})
	if err != nil {
		return result, err
	}
	result.Entry = &entry
	event.Width = entry.Width
	event.Height = entry.Height
	s.Notify(consts.EventGenerateSucceed, event)
	return result, nil
}
