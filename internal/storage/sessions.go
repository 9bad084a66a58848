package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"samwad/backend/internal/config"
	"samwad/backend/internal/models"
)

// SaveSession persists a completed call with its transcript.
func (s *Service) SaveSession(session *models.SessionRecord) error {
	if err := s.DB.Create(session).Error; err != nil {
		return fmt.Errorf("save session %s: %w", session.SessionID, err)
	}
	return nil
}

// GetSessionByID returns the session or (nil, nil) when unknown.
func (s *Service) GetSessionByID(id string) (*models.SessionRecord, error) {
	var rec models.SessionRecord
	err := s.DB.Preload("Messages").First(&rec, "session_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}
	return &rec, nil
}

// AttachRating sets one of the two independent rating fields. Unknown
// session IDs are a silent no-op; re-submission overwrites (last write
// wins).
func (s *Service) AttachRating(sessionID, role string, rating int) error {
	var rec models.SessionRecord
	err := s.DB.First(&rec, "session_id = ?", sessionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Debug().Str("session_id", sessionID).Msg("rating for unknown session ignored")
		return nil
	}
	if err != nil {
		return fmt.Errorf("attach rating to %s: %w", sessionID, err)
	}

	column := "citizen_rating"
	if role == models.RoleOfficial {
		column = "dm_rating"
	}
	if err := s.DB.Model(&rec).Update(column, rating).Error; err != nil {
		return fmt.Errorf("attach rating to %s: %w", sessionID, err)
	}

	s.invalidateRatingCache(rec.CitizenMobile)
	return nil
}

// GetAllSessions returns the full history, newest first.
func (s *Service) GetAllSessions() ([]models.SessionRecord, error) {
	var records []models.SessionRecord
	err := s.DB.Preload("Messages").Order("end_time desc").Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("get all sessions: %w", err)
	}
	return records, nil
}

// GetSessionsByMobile returns one citizen's history, newest first.
func (s *Service) GetSessionsByMobile(mobile string) ([]models.SessionRecord, error) {
	var records []models.SessionRecord
	err := s.DB.Preload("Messages").
		Where("citizen_mobile = ?", mobile).
		Order("end_time desc").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("get sessions for %s: %w", mobile, err)
	}
	return records, nil
}

// GetSessionsByLocation filters history for reporting/export. Empty
// arguments match everything at that level.
func (s *Service) GetSessionsByLocation(district, block, village string) ([]models.SessionRecord, error) {
	q := s.DB.Preload("Messages").Order("end_time desc")
	if district != "" {
		q = q.Where("district = ?", district)
	}
	if block != "" {
		q = q.Where("block = ?", block)
	}
	if village != "" {
		q = q.Where("village = ?", village)
	}

	var records []models.SessionRecord
	if err := q.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("get sessions by location: %w", err)
	}
	return records, nil
}

// lastRatings is the cached shape of a citizen's most recent ratings.
type lastRatings struct {
	Citizen  *int `json:"citizen"`
	Official *int `json:"official"`
}

// LastRatingsByMobile looks up the most recent session where the citizen
// left a rating and returns both that self-rating and the official's
// rating of them. Used to enrich the official's queue view, so results
// are cached briefly in Redis.
func (s *Service) LastRatingsByMobile(mobile string) (*int, *int, error) {
	if cached := s.cachedRatings(mobile); cached != nil {
		return cached.Citizen, cached.Official, nil
	}

	var rec models.SessionRecord
	err := s.DB.
		Where("citizen_mobile = ? AND citizen_rating IS NOT NULL", mobile).
		Order("end_time desc").
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.cacheRatings(mobile, lastRatings{})
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("last ratings for %s: %w", mobile, err)
	}

	s.cacheRatings(mobile, lastRatings{Citizen: rec.CitizenRating, Official: rec.DMRating})
	return rec.CitizenRating, rec.DMRating, nil
}

func (s *Service) cachedRatings(mobile string) *lastRatings {
	if s.Redis == nil {
		return nil
	}
	raw, err := s.Redis.Get(s.Ctx, keyLastRatingPref+mobile).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		log.Warn().Err(err).Msg("rating cache read failed")
		return nil
	}
	var lr lastRatings
	if err := json.Unmarshal([]byte(raw), &lr); err != nil {
		return nil
	}
	return &lr
}

func (s *Service) cacheRatings(mobile string, lr lastRatings) {
	if s.Redis == nil {
		return
	}
	raw, err := json.Marshal(lr)
	if err != nil {
		return
	}
	if err := s.Redis.Set(s.Ctx, keyLastRatingPref+mobile, raw, config.LastRatingCacheTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("rating cache write failed")
	}
}

func (s *Service) invalidateRatingCache(mobile string) {
	if s.Redis == nil || mobile == "" {
		return
	}
	if err := s.Redis.Del(s.Ctx, keyLastRatingPref+mobile).Err(); err != nil {
		log.Warn().Err(err).Msg("rating cache invalidation failed")
	}
}
