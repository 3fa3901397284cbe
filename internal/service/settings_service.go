package service

import (
	"context"
	"encoding/json"
	"time"

	"classsync/internal/logging"
	"classsync/internal/model"

	"go.uber.org/zap"
)

const settingsCacheKey = "classsync:settings"

type SettingsService struct {
	callers
	settings SettingsRepository
	cache    Cache
	ttl      time.Duration
}

func NewSettingsService(settings SettingsRepository, profiles ProfileRepository, cache Cache, ttl time.Duration) *SettingsService {
	return &SettingsService{callers: callers{profiles: profiles}, settings: settings, cache: cache, ttl: ttl}
}

func (s *SettingsService) GetSettings(ctx context.Context) (*model.AppSettings, error) {
	if _, err := s.current(ctx); err != nil {
		return nil, err
	}
	return s.load(ctx)
}

func (s *SettingsService) SetModeration(ctx context.Context, input *model.SetModerationInput) (*model.AppSettings, error) {
	if _, err := s.admin(ctx); err != nil {
		return nil, err
	}
	settings, err := s.settings.SetModeration(ctx, input.Enabled)
	if err != nil {
		return nil, err
	}
	s.cache.Delete(ctx, settingsCacheKey)
	return settings, nil
}

// load reads through the cache. A corrupt cache entry is ignored.
func (s *SettingsService) load(ctx context.Context) (*model.AppSettings, error) {
	if data, ok := s.cache.Get(ctx, settingsCacheKey); ok {
		var cached model.AppSettings
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(settings); err == nil {
		s.cache.Set(ctx, settingsCacheKey, data, s.ttl)
	} else if logger, ok := logging.GetFromContext(ctx); ok {
		logger.Warn(ctx, "Failed to cache settings", zap.Error(err))
	}
	return settings, nil
}
