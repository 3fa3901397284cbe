package data

import (
	"context"

	"classsync/internal/model"

	"github.com/georgysavva/scany/v2/pgxscan"
)

type SettingsRepository struct {
	db Querier
}

func NewSettingsRepository(db Querier) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) GetSettings(ctx context.Context) (*model.AppSettings, error) {
	settings := &model.AppSettings{}
	if err := pgxscan.Get(ctx, r.db, settings, `SELECT moderation_enabled FROM app_settings WHERE id = 1`); err != nil {
		return nil, handleError(err)
	}
	return settings, nil
}

func (r *SettingsRepository) SetModeration(ctx context.Context, enabled bool) (*model.AppSettings, error) {
	query := `
INSERT INTO app_settings (id, moderation_enabled) VALUES (1, $1)
ON CONFLICT (id) DO UPDATE SET moderation_enabled = EXCLUDED.moderation_enabled
RETURNING moderation_enabled`
	settings := &model.AppSettings{}
	if err := pgxscan.Get(ctx, r.db, settings, query, enabled); err != nil {
		return nil, handleError(err)
	}
	return settings, nil
}
