package observer

import (
	"time"

	"github.com/reusedev/imagen-studio/internal/consts"
	"github.com/reusedev/imagen-studio/internal/modules/logs"
	"github.com/reusedev/imagen-studio/internal/modules/model"
)

type Observer interface {
	Update(event string, data interface{})
}

type Subject interface {
	Notify(event string, data interface{})
}

// GenerationEvent is the payload of EventGenerateSucceed and EventGenerateFailed.
type GenerationEvent struct {
	TaskID    string
	SessionID string
	Backend   string
	Model     string
	Prompt    string
	Outcome   string
	HintKind  string
	Err       error
	Width     int
	Height    int
	Duration  time.Duration
}

type LogObserver struct{}

func (LogObserver) Update(event string, data interface{}) {
	e, ok := data.(*GenerationEvent)
	if !ok {
		return
	}
	l := logs.Logger.Info()
	if event == consts.EventGenerateFailed {
		l = logs.Logger.Warn().Err(e.Err)
	}
	l.Str("event", event).
		Str("task_id", e.TaskID).
		Str("session_id", e.SessionID).
		Str("backend", e.Backend).
		Str("model", e.Model).
		Str("outcome", e.Outcome).
		Str("hint", e.HintKind).
		Int64("duration_ms", e.Duration.Milliseconds()).
		Msg("generation finished")
}

// HistoryRecorder writes call metadata through save, normally dao.CreateHistory.
type HistoryRecorder struct {
	save func(*model.GenerationHistory) error
}

func NewHistoryRecorder(save func(*model.GenerationHistory) error) *HistoryRecorder {
	return &HistoryRecorder{save: save}
}

func (h *HistoryRecorder) Update(event string, data interface{}) {
	e, ok := data.(*GenerationEvent)
	if !ok {
		return
	}
	record := &model.GenerationHistory{
		TaskId:      e.TaskID,
		SessionId:   e.SessionID,
		Backend:     e.Backend,
		ModelName:   e.Model,
		Prompt:      e.Prompt,
		Outcome:     e.Outcome,
		HintKind:    e.HintKind,
		ImageWidth:  e.Width,
		ImageHeight: e.Height,
		DurationMs:  e.Duration.Milliseconds(),
		CreatedAt:   time.Now(),
	}
	if e.Err != nil {
		record.ErrorMessage = truncate(e.Err.Error(), 2000)
	}
	if err := h.save(record); err != nil {
		logs.Logger.Error().Err(err).Str("task_id", e.TaskID).Str("event", event).Msg("save generation history failed")
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
