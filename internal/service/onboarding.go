package service

import (
	"context"
	"time"

	"gameshelf-backend/internal/catalog"
	"gameshelf-backend/internal/domain"
	"gameshelf-backend/internal/logger"
	"gameshelf-backend/internal/utils"
)

type onboardingService struct {
	state            *AppState
	supportedCity    string
	celebrationDelay time.Duration
	currentFact      string
}

func NewOnboardingService(state *AppState, supportedCity string, celebrationDelaySeconds int) OnboardingService {
	s := &onboardingService{
		state:            state,
		supportedCity:    supportedCity,
		celebrationDelay: time.Duration(celebrationDelaySeconds) * time.Second,
	}

	// The celebration timer only lives in this process. If the app restarted
	// mid-celebration, re-arm it so the restored stage still advances to MAIN.
	if s.Stage() == domain.StageCelebration {
		s.armCelebrationTimer()
	}
	return s
}

func (s *onboardingService) armCelebrationTimer() {
	time.AfterFunc(s.celebrationDelay, func() {
		s.CompleteCelebration(context.Background())
	})
}

func (s *onboardingService) SignedIn(ctx context.Context, email string) domain.AppStage {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if s.state.stage != domain.StageAuth {
		logger.Debug("SignedIn ignored, not at AUTH", "stage", s.state.stage)
		return s.state.stage
	}

	s.state.profile.Email = email
	// Never trust the identity provider's display name; the user enters it
	// explicitly on the next screen.
	s.state.profile.FirstName = ""
	s.state.profile.LastName = ""
	s.state.stage = domain.StageProfile
	s.state.persist(ctx)

	logger.Info("User signed in", "email", email)
	return s.state.stage
}

func (s *onboardingService) CompleteProfile(ctx context.Context, firstName, lastName, phone string) domain.AppStage {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if s.state.stage != domain.StageProfile {
		logger.Debug("CompleteProfile ignored, not at PROFILE", "stage", s.state.stage)
		return s.state.stage
	}

	// Inputs arrive pre-validated (non-blank after trimming); no re-check.
	s.state.profile.FirstName = firstName
	s.state.profile.LastName = lastName
	s.state.profile.Phone = phone
	s.state.stage = domain.StageLocation
	s.state.persist(ctx)

	return s.state.stage
}

func (s *onboardingService) SetLocation(ctx context.Context, location string) (domain.AppStage, string) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if s.state.stage != domain.StageLocation {
		logger.Debug("SetLocation ignored, not at LOCATION", "stage", s.state.stage)
		return s.state.stage, s.currentFact
	}

	// The rejected text is kept on the profile either way so the unavailable
	// screen can show what was checked.
	s.state.profile.Location = location

	if utils.LocationServiceable(location, s.supportedCity) {
		s.state.stage = domain.StageCelebration
		s.currentFact = catalog.RandomCityFact()
		s.state.persist(ctx)
		logger.Info("Location accepted", "location", location)

		// The celebration screen always advances to MAIN after a fixed
		// delay; there is no cancel path.
		s.armCelebrationTimer()
		return s.state.stage, s.currentFact
	}

	s.state.stage = domain.StageUnavailable
	s.state.persist(ctx)
	logger.Info("Location outside service area", "location", location)
	return s.state.stage, ""
}

func (s *onboardingService) CompleteCelebration(ctx context.Context) domain.AppStage {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if s.state.stage != domain.StageCelebration {
		return s.state.stage
	}

	s.state.stage = domain.StageMain
	s.state.persist(ctx)
	return s.state.stage
}

func (s *onboardingService) ChangeLocation(ctx context.Context) domain.AppStage {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if s.state.stage != domain.StageUnavailable {
		logger.Debug("ChangeLocation ignored, not at UNAVAILABLE", "stage", s.state.stage)
		return s.state.stage
	}

	s.state.stage = domain.StageLocation
	s.state.persist(ctx)
	return s.state.stage
}

func (s *onboardingService) SignOut(ctx context.Context) domain.AppStage {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if s.state.stage != domain.StageMain && s.state.stage != domain.StageUnavailable {
		logger.Debug("SignOut ignored", "stage", s.state.stage)
		return s.state.stage
	}

	s.state.profile = domain.UserProfile{}
	s.state.stage = domain.StageAuth
	s.currentFact = ""
	s.state.persist(ctx)

	logger.Info("User signed out")
	return s.state.stage
}

func (s *onboardingService) Stage() domain.AppStage {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return s.state.stage
}

func (s *onboardingService) Profile() domain.UserProfile {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return s.state.profile
}

func (s *onboardingService) CurrentFact() string {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return s.currentFact
}
