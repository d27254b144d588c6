package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"gameshelf-backend/internal/security"
)

// NewRouter assembles the API surface. Everything after sign-in requires a
// session token.
func NewRouter(onboarding *OnboardingHandler, rentals *RentalHandler, tokens security.TokenManager) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public
	api.HandleFunc("/auth/signin", onboarding.SignIn).Methods(http.MethodPost)
	api.HandleFunc("/catalog", rentals.ListCatalog).Methods(http.MethodGet)
	api.HandleFunc("/catalog/{id}", rentals.GetGame).Methods(http.MethodGet)

	// Onboarding
	api.HandleFunc("/onboarding/status", requireAuth(tokens, onboarding.Status)).Methods(http.MethodGet)
	api.HandleFunc("/onboarding/profile", requireAuth(tokens, onboarding.CompleteProfile)).Methods(http.MethodPost)
	api.HandleFunc("/onboarding/location", requireAuth(tokens, onboarding.SetLocation)).Methods(http.MethodPost)
	api.HandleFunc("/onboarding/location/change", requireAuth(tokens, onboarding.ChangeLocation)).Methods(http.MethodPost)
	api.HandleFunc("/onboarding/signout", requireAuth(tokens, onboarding.SignOut)).Methods(http.MethodPost)

	// Rentals
	api.HandleFunc("/quotes", requireAuth(tokens, rentals.Quote)).Methods(http.MethodPost)
	api.HandleFunc("/rentals", requireAuth(tokens, rentals.CreateRental)).Methods(http.MethodPost)
	api.HandleFunc("/rentals/bundle", requireAuth(tokens, rentals.CreateBundle)).Methods(http.MethodPost)
	api.HandleFunc("/rentals/active", requireAuth(tokens, rentals.ListActive)).Methods(http.MethodGet)
	api.HandleFunc("/rentals/past", requireAuth(tokens, rentals.ListPast)).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}/pickup", requireAuth(tokens, rentals.MarkPickedUp)).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id}/return", requireAuth(tokens, rentals.MarkReturned)).Methods(http.MethodPost)

	return r
}
