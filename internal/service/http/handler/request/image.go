package request

import (
	"fmt"
	"strings"
)

const (
	promptMaxRunes      = 5000
	historyLimitDefault = 20
	historyLimitMax     = 100
)

type GenerateImage struct {
	Prompt string `json:"prompt" form:"prompt"`
}

// Valid only bounds the length; an empty prompt is rejected by the studio.
func (g *GenerateImage) Valid() error {
	if n := len([]rune(strings.TrimSpace(g.Prompt))); n > promptMaxRunes {
		return fmt.Errorf("prompt is too long: %d runes, must be at most %d", n, promptMaxRunes)
	}
	return nil
}

type ListGallery struct {
	ExcludeLatest bool `form:"exclude_latest"`
}

type ListHistory struct {
	Limit int `form:"limit"`
}

func (l *ListHistory) Valid() error {
	if l.Limit < 0 || l.Limit > historyLimitMax {
		return fmt.Errorf("invalid limit: %d, must be between 0 and %d", l.Limit, historyLimitMax)
	}
	return nil
}

func (l *ListHistory) FullWithDefault() {
	if l.Limit == 0 {
		l.Limit = historyLimitDefault
	}
}
