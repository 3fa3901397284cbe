package service

import (
	"context"
	"errors"

	"classsync/internal/ctxdata"
	"classsync/internal/errdefs"
	"classsync/internal/model"
)

// callers resolves the authenticated profile behind a request.
type callers struct {
	profiles ProfileRepository
}

func (c callers) current(ctx context.Context) (*model.Profile, error) {
	userID, ok := ctxdata.GetUserID(ctx)
	if !ok {
		return nil, errdefs.ErrAuthentication
	}
	profile, err := c.profiles.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, errdefs.ErrNotFound) {
			return nil, errdefs.ErrAuthentication
		}
		return nil, err
	}
	return profile, nil
}

// writer returns the caller if they may write at all.
func (c callers) writer(ctx context.Context) (*model.Profile, error) {
	profile, err := c.current(ctx)
	if err != nil {
		return nil, err
	}
	if profile.IsBanned {
		return nil, errdefs.ErrBanned
	}
	return profile, nil
}

func (c callers) admin(ctx context.Context) (*model.Profile, error) {
	profile, err := c.writer(ctx)
	if err != nil {
		return nil, err
	}
	if !profile.IsAdmin {
		return nil, errdefs.ErrPermissionDenied
	}
	return profile, nil
}
