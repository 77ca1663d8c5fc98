package service

import (
	"context"
	"encoding/json"
	"fmt"
	"geometriks_backend/internal/config"
	"geometriks_backend/internal/repository"
	"geometriks_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// LeaderboardService ranks students by points. Rankings are served from a
// short-lived redis cache so the hot path does not hit the database on every
// page view; a cold or unavailable cache falls through to the database.
type LeaderboardService struct {
	UserRepo *repository.UserRepository
	Redis    *redis.Client
	Cfg      *config.Config
}

func NewLeaderboardService(userRepo *repository.UserRepository, rdb *redis.Client, cfg *config.Config) *LeaderboardService {
	return &LeaderboardService{
		UserRepo: userRepo,
		Redis:    rdb,
		Cfg:      cfg,
	}
}

type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	UserID uint   `json:"userId"`
	Name   string `json:"name"`
	School string `json:"school,omitempty"`
	Points int    `json:"points"`
}

func (s *LeaderboardService) cacheKey(schoolID *uint) string {
	if schoolID != nil {
		return fmt.Sprintf("leaderboard:school:%d", *schoolID)
	}
	return "leaderboard:global"
}

func (s *LeaderboardService) Top(ctx context.Context, schoolID *uint) ([]LeaderboardEntry, error) {
	key := s.cacheKey(schoolID)

	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, key).Result()
		if err == nil {
			var entries []LeaderboardEntry
			if err := json.Unmarshal([]byte(cached), &entries); err == nil {
				return entries, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("leaderboard cache read failed", zap.Error(err))
		}
	}

	users, err := s.UserRepo.TopByPoints(schoolID, s.Cfg.Leaderboard.Size)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, len(users))
	for i, u := range users {
		entry := LeaderboardEntry{
			Rank:   i + 1,
			UserID: u.ID,
			Name:   u.Name,
			Points: u.Points,
		}
		if u.School != nil {
			entry.School = u.School.Name
		}
		entries[i] = entry
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(entries); err == nil {
			ttl := time.Duration(s.Cfg.Leaderboard.CacheTTLSeconds) * time.Second
			if err := s.Redis.Set(ctx, key, payload, ttl).Err(); err != nil {
				logger.Log.Warn("leaderboard cache write failed", zap.Error(err))
			}
		}
	}

	return entries, nil
}
