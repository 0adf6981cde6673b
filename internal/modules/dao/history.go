package dao

import (
	"github.com/reusedev/imagen-studio/internal/components/mysql"
	"github.com/reusedev/imagen-studio/internal/modules/model"
)

func CreateHistory(h *model.GenerationHistory) error {
	return mysql.DB.Model(&model.GenerationHistory{}).Create(h).Error
}

func HistoryBySession(sessionId string, limit int) ([]model.GenerationHistory, error) {
	var records []model.GenerationHistory
	err := mysql.DB.Model(&model.GenerationHistory{}).
		Where("session_id = ?", sessionId).
		Order("id desc").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
