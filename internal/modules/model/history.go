package model

import "time"

// GenerationHistory records one generation call. Image bytes are never stored.
type GenerationHistory struct {
	Id           int       `json:"id" gorm:"primaryKey"`
	TaskId       string    `json:"task_id" gorm:"column:task_id;type:varchar(50);index"`
	SessionId    string    `json:"session_id" gorm:"column:session_id;type:varchar(50);index"`
	Backend      string    `json:"backend" gorm:"column:backend;type:varchar(10)"`
	ModelName    string    `json:"model_name" gorm:"column:model_name;type:varchar(60)"`
	Prompt       string    `json:"prompt" gorm:"column:prompt;type:varchar(5000)"`
	Outcome      string    `json:"outcome" gorm:"column:outcome;type:varchar(30)"`
	HintKind     string    `json:"hint_kind" gorm:"column:hint_kind;type:varchar(30)"`
	ErrorMessage string    `json:"error_message" gorm:"column:error_message;type:varchar(2000)"`
	ImageWidth   int       `json:"image_width" gorm:"column:image_width;type:int"`
	ImageHeight  int       `json:"image_height" gorm:"column:image_height;type:int"`
	DurationMs   int64     `json:"duration_ms" gorm:"column:duration_ms;type:int"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at;type:datetime;not null;default:CURRENT_TIMESTAMP"`
}

func (*GenerationHistory) TableName() string {
	return "generation_history"
}

type GenerationOutcome string

const (
	OutcomeUpstreamError GenerationOutcome = "upstream_error"
)

func (o GenerationOutcome) String() string {
	return string(o)
}
