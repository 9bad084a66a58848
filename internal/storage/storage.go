package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"samwad/backend/internal/models"
)

// Storage is the durable record store boundary the hub talks through.
// Sessions and grievances are the only durable collections; everything
// else the hub owns lives in process memory.
type Storage interface {
	SaveSession(session *models.SessionRecord) error
	GetSessionByID(id string) (*models.SessionRecord, error)
	AttachRating(sessionID, role string, rating int) error
	GetAllSessions() ([]models.SessionRecord, error)
	GetSessionsByMobile(mobile string) ([]models.SessionRecord, error)
	GetSessionsByLocation(district, block, village string) ([]models.SessionRecord, error)
	LastRatingsByMobile(mobile string) (citizen *int, official *int, err error)

	SaveGrievance(g *models.Grievance) error
	UpdateGrievance(id string, remark, status *string) error
	GetAllGrievances() ([]models.Grievance, error)

	SaveLastOnline(t time.Time) error
	LoadLastOnline() (*time.Time, error)
	SaveWaitOverride(minutes *int) error
	LoadWaitOverride() (*int, error)
}

// Redis keys. The Redis side carries only small operational state and
// caches; the source of truth for records is PostgreSQL.
const (
	keyLastOnline     = "presence:last_online"
	keyWaitOverride   = "queue:wait_override"
	keyLastRatingPref = "rating:last:"
)

// Service implements Storage over GORM/PostgreSQL with an optional
// Redis client. A nil Redis client degrades gracefully: operational
// state is not persisted and rating lookups always hit the database.
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

func NewService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// Migrate creates the record tables.
func (s *Service) Migrate() error {
	return s.DB.AutoMigrate(
		&models.SessionRecord{},
		&models.SessionMessage{},
		&models.Grievance{},
	)
}
