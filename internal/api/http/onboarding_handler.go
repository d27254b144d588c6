package http

import (
	"errors"
	"net/http"
	"strings"

	"gameshelf-backend/internal/domain"
	"gameshelf-backend/internal/logger"
	"gameshelf-backend/internal/service"
)

// OnboardingHandler exposes the auth and stage-machine commands.
type OnboardingHandler struct {
	authSvc       service.AuthService
	onboardingSvc service.OnboardingService
	resolver      service.LocationResolver
}

func NewOnboardingHandler(authSvc service.AuthService, onboardingSvc service.OnboardingService, resolver service.LocationResolver) *OnboardingHandler {
	return &OnboardingHandler{
		authSvc:       authSvc,
		onboardingSvc: onboardingSvc,
		resolver:      resolver,
	}
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInResponse struct {
	Token string          `json:"token"`
	Stage domain.AppStage `json:"stage"`
}

func (h *OnboardingHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, stage, err := h.authSvc.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, err.Error())
			return
		}
		logger.Error("Sign-in failed", "error", err)
		respondError(w, http.StatusInternalServerError, "sign-in failed")
		return
	}

	respondJSON(w, http.StatusOK, signInResponse{Token: token, Stage: stage})
}

type completeProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

type stageResponse struct {
	Stage domain.AppStage `json:"stage"`
}

func (h *OnboardingHandler) CompleteProfile(w http.ResponseWriter, r *http.Request) {
	var req completeProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// The stage machine assumes pre-validated input; the check lives here.
	first := strings.TrimSpace(req.FirstName)
	last := strings.TrimSpace(req.LastName)
	phone := strings.TrimSpace(req.Phone)
	if first == "" || last == "" || phone == "" {
		respondError(w, http.StatusBadRequest, "first name, last name and phone are required")
		return
	}

	stage := h.onboardingSvc.CompleteProfile(r.Context(), first, last, phone)
	respondJSON(w, http.StatusOK, stageResponse{Stage: stage})
}

type setLocationRequest struct {
	Location  string   `json:"location"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type setLocationResponse struct {
	Stage    domain.AppStage `json:"stage"`
	Location string          `json:"location"`
	Fact     string          `json:"fact,omitempty"`
}

func (h *OnboardingHandler) SetLocation(w http.ResponseWriter, r *http.Request) {
	var req setLocationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	location := req.Location
	if location == "" && req.Latitude != nil && req.Longitude != nil {
		resolved, err := h.resolver.Resolve(r.Context(), *req.Latitude, *req.Longitude)
		if err != nil {
			// An unresolved fix is classified, not failed: it lands on the
			// unavailable screen like any unrecognized text.
			logger.Warn("Location resolution failed", "error", err)
		}
		location = resolved
	}

	stage, fact := h.onboardingSvc.SetLocation(r.Context(), location)
	respondJSON(w, http.StatusOK, setLocationResponse{Stage: stage, Location: location, Fact: fact})
}

func (h *OnboardingHandler) ChangeLocation(w http.ResponseWriter, r *http.Request) {
	stage := h.onboardingSvc.ChangeLocation(r.Context())
	respondJSON(w, http.StatusOK, stageResponse{Stage: stage})
}

func (h *OnboardingHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	stage := h.onboardingSvc.SignOut(r.Context())
	respondJSON(w, http.StatusOK, stageResponse{Stage: stage})
}

type statusResponse struct {
	Stage   domain.AppStage    `json:"stage"`
	Profile domain.UserProfile `json:"profile"`
	Fact    string             `json:"fact,omitempty"`
}

func (h *OnboardingHandler) Status(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, statusResponse{
		Stage:   h.onboardingSvc.Stage(),
		Profile: h.onboardingSvc.Profile(),
		Fact:    h.onboardingSvc.CurrentFact(),
	})
}
