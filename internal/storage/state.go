package storage

import (
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Operational state that should survive a process restart: the
// official's last-seen timestamp and the manual queue estimate. Kept in
// Redis rather than PostgreSQL because it is a pair of scalar values
// with no history. All of these are best-effort when Redis is absent.

func (s *Service) SaveLastOnline(t time.Time) error {
	if s.Redis == nil {
		return nil
	}
	return s.Redis.Set(s.Ctx, keyLastOnline, t.UTC().Format(time.RFC3339), 0).Err()
}

func (s *Service) LoadLastOnline() (*time.Time, error) {
	if s.Redis == nil {
		return nil, nil
	}
	raw, err := s.Redis.Get(s.Ctx, keyLastOnline).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Service) SaveWaitOverride(minutes *int) error {
	if s.Redis == nil {
		return nil
	}
	if minutes == nil {
		return s.Redis.Del(s.Ctx, keyWaitOverride).Err()
	}
	return s.Redis.Set(s.Ctx, keyWaitOverride, strconv.Itoa(*minutes), 0).Err()
}

func (s *Service) LoadWaitOverride() (*int, error) {
	if s.Redis == nil {
		return nil, nil
	}
	raw, err := s.Redis.Get(s.Ctx, keyWaitOverride).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	m, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
