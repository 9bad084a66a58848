package storage

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"samwad/backend/internal/models"
)

// SaveGrievance persists a new grievance. The caller surfaces a generic
// submission error to the citizen when this fails; no partial record is
// left behind because the write is a single insert.
func (s *Service) SaveGrievance(g *models.Grievance) error {
	if err := s.DB.Create(g).Error; err != nil {
		return fmt.Errorf("save grievance: %w", err)
	}
	return nil
}

// UpdateGrievance applies a partial update: only non-nil fields change.
// Unknown IDs are a silent no-op.
func (s *Service) UpdateGrievance(id string, remark, status *string) error {
	updates := map[string]any{}
	if remark != nil {
		updates["remark"] = *remark
	}
	if status != nil {
		updates["status"] = *status
	}
	if len(updates) == 0 {
		return nil
	}

	res := s.DB.Model(&models.Grievance{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("update grievance %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		log.Debug().Str("grievance_id", id).Msg("update for unknown grievance ignored")
	}
	return nil
}

// GetAllGrievances returns every grievance, newest first. The official's
// dashboard always receives the full list, never deltas.
func (s *Service) GetAllGrievances() ([]models.Grievance, error) {
	var grievances []models.Grievance
	if err := s.DB.Order("timestamp desc").Find(&grievances).Error; err != nil {
		return nil, fmt.Errorf("get all grievances: %w", err)
	}
	return grievances, nil
}
