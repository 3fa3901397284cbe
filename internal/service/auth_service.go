package service

import (
	"context"
	"errors"
	"strings"

	"classsync/internal/auth"
	"classsync/internal/errdefs"
	"classsync/internal/model"

	"github.com/google/uuid"
)

type AuthService struct {
	accounts AccountRepository
	issuer   TokenIssuer
}

func NewAuthService(accounts AccountRepository, issuer TokenIssuer) *AuthService {
	return &AuthService{accounts: accounts, issuer: issuer}
}

func (s *AuthService) SignUp(ctx context.Context, input *model.SignUpInput) (*model.Session, error) {
	name := strings.TrimSpace(input.FullName)
	if name == "" {
		return nil, errdefs.ErrValidation
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	profile, err := s.accounts.CreateAccount(ctx, &model.RepositoryCreateAccountInput{
		ID:           id,
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hash,
		FullName:     name,
	})
	if err != nil {
		return nil, err
	}

	return s.session(profile.ID)
}

// SignIn succeeds for banned accounts too; the client shows them the
// banned screen and every write is refused server side.
func (s *AuthService) SignIn(ctx context.Context, input *model.SignInInput) (*model.Session, error) {
	account, err := s.accounts.GetAccountByEmail(ctx, strings.TrimSpace(input.Email))
	if err != nil {
		if errors.Is(err, errdefs.ErrNotFound) {
			return nil, errdefs.ErrAuthentication
		}
		return nil, err
	}

	if err := auth.CheckPassword(account.PasswordHash, input.Password); err != nil {
		return nil, err
	}

	return s.session(account.ID)
}

func (s *AuthService) session(userID uuid.UUID) (*model.Session, error) {
	token, expiresAt, err := s.issuer.Issue(userID)
	if err != nil {
		return nil, err
	}
	return &model.Session{AccessToken: token, UserID: userID, ExpiresAt: expiresAt}, nil
}
