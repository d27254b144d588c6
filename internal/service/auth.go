package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"gameshelf-backend/internal/domain"
	"gameshelf-backend/internal/logger"
	"gameshelf-backend/internal/repository"
	"gameshelf-backend/internal/security"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type authService struct {
	repo       repository.StateRepository
	tokens     security.TokenManager
	onboarding OnboardingService
}

func NewAuthService(repo repository.StateRepository, tokens security.TokenManager, onboarding OnboardingService) AuthService {
	return &authService{
		repo:       repo,
		tokens:     tokens,
		onboarding: onboarding,
	}
}

// SignIn is demo auth: the first sign-in for an email registers it, later
// sign-ins must present the same password. On success the stage machine is
// advanced and a session token issued.
func (s *authService) SignIn(ctx context.Context, email, password string) (string, domain.AppStage, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", s.onboarding.Stage(), ErrInvalidCredentials
	}

	creds, err := s.repo.LoadCredentials(ctx)
	if err != nil {
		logger.Warn("Failed to load credentials record, treating as empty", "error", err)
		creds = domain.Credentials{}
	}

	if hash, ok := creds[email]; ok {
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
			return "", s.onboarding.Stage(), ErrInvalidCredentials
		}
	} else {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return "", s.onboarding.Stage(), fmt.Errorf("failed to hash password: %w", err)
		}
		creds[email] = string(hashed)
		if err := s.repo.SaveCredentials(ctx, creds); err != nil {
			return "", s.onboarding.Stage(), fmt.Errorf("failed to save credentials: %w", err)
		}
		logger.Info("Registered new credential", "email", email)
	}

	stage := s.onboarding.SignedIn(ctx, email)

	token, err := s.tokens.GenerateSessionToken(email)
	if err != nil {
		return "", stage, fmt.Errorf("failed to issue session token: %w", err)
	}
	return token, stage, nil
}
