package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"gameshelf-backend/internal/catalog"
	"gameshelf-backend/internal/domain"
	"gameshelf-backend/internal/service"
	"gameshelf-backend/internal/utils"
)

// RentalHandler exposes the catalog, quoting, and rental lifecycle commands.
type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

func (h *RentalHandler) ListCatalog(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, catalog.Games())
}

func (h *RentalHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	game, ok := catalog.GameByID(mux.Vars(r)["id"])
	if !ok {
		respondError(w, http.StatusNotFound, "game not found")
		return
	}
	respondJSON(w, http.StatusOK, game)
}

type quoteRequest struct {
	GameIDs []string `json:"game_ids"`
	Days    int      `json:"days"`
}

type quoteResponse struct {
	Total              float64 `json:"total"`
	Subtotal           float64 `json:"subtotal,omitempty"`
	DiscountedSubtotal float64 `json:"discounted_subtotal,omitempty"`
	DepositSum         float64 `json:"deposit_sum,omitempty"`
	DiscountedDeposits float64 `json:"discounted_deposits,omitempty"`
	Bundle             bool    `json:"bundle"`
}

// Quote prices a selection without booking it: one game uses the single
// rental formula, a complete three-game bundle gets the bundle discounts.
func (h *RentalHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Days < domain.MinRentalDays || req.Days > domain.MaxRentalDays {
		respondError(w, http.StatusBadRequest, domain.ErrInvalidDuration.Error())
		return
	}

	games, ok := h.lookupGames(w, req.GameIDs)
	if !ok {
		return
	}

	switch len(games) {
	case 1:
		total := utils.RoundCents(utils.SingleRentalTotal(games[0], req.Days))
		respondJSON(w, http.StatusOK, quoteResponse{Total: total})
	case domain.BundleSize:
		if hasDuplicateIDs(req.GameIDs) {
			respondError(w, http.StatusBadRequest, "a bundle requires 3 distinct games")
			return
		}
		b := utils.BundleBreakdown(games, req.Days)
		respondJSON(w, http.StatusOK, quoteResponse{
			Total:              utils.RoundCents(b.Total),
			Subtotal:           utils.RoundCents(b.Subtotal),
			DiscountedSubtotal: utils.RoundCents(b.DiscountedSubtotal),
			DepositSum:         utils.RoundCents(b.DepositSum),
			DiscountedDeposits: utils.RoundCents(b.DiscountedDeposits),
			Bundle:             true,
		})
	default:
		// An in-between selection is an incomplete bundle, not an error the
		// pricing layer knows about.
		respondError(w, http.StatusBadRequest, "quote requires 1 game or a complete bundle of 3")
	}
}

type createRentalRequest struct {
	GameID string `json:"game_id"`
	Pickup string `json:"pickup"` // RFC 3339
	Days   int    `json:"days"`
}

func (h *RentalHandler) CreateRental(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	game, ok := catalog.GameByID(req.GameID)
	if !ok {
		respondError(w, http.StatusNotFound, "game not found")
		return
	}

	pickup, err := time.Parse(time.RFC3339, req.Pickup)
	if err != nil {
		respondError(w, http.StatusBadRequest, "pickup must be RFC 3339")
		return
	}

	rental, err := h.rentalSvc.CreateRental(r.Context(), game, pickup, req.Days)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDuration) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to create rental")
		return
	}

	respondJSON(w, http.StatusCreated, rental)
}

type createBundleRequest struct {
	GameIDs []string `json:"game_ids"`
	Pickup  string   `json:"pickup"`
	Days    int      `json:"days"`
}

type createBundleResponse struct {
	Rentals []domain.Rental `json:"rentals"`
	// Partial is set when some rentals were created before a failure. The
	// created rentals are not rolled back.
	Partial bool   `json:"partial,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (h *RentalHandler) CreateBundle(w http.ResponseWriter, r *http.Request) {
	var req createBundleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.GameIDs) != domain.BundleSize || hasDuplicateIDs(req.GameIDs) {
		respondError(w, http.StatusBadRequest, "a bundle requires exactly 3 distinct games")
		return
	}

	games, ok := h.lookupGames(w, req.GameIDs)
	if !ok {
		return
	}

	pickup, err := time.Parse(time.RFC3339, req.Pickup)
	if err != nil {
		respondError(w, http.StatusBadRequest, "pickup must be RFC 3339")
		return
	}

	rentals, err := h.rentalSvc.CreateBundleRentals(r.Context(), games, pickup, req.Days)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDuration) && len(rentals) == 0 {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondJSON(w, http.StatusMultiStatus, createBundleResponse{
			Rentals: rentals,
			Partial: true,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, createBundleResponse{Rentals: rentals})
}

func (h *RentalHandler) MarkPickedUp(w http.ResponseWriter, r *http.Request) {
	rental := h.rentalSvc.MarkPickedUp(r.Context(), mux.Vars(r)["id"])
	if rental == nil {
		// A stale UI acting on old state; the operation is a benign no-op.
		respondJSON(w, http.StatusOK, map[string]string{"result": "no-op"})
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) MarkReturned(w http.ResponseWriter, r *http.Request) {
	rental := h.rentalSvc.MarkReturned(r.Context(), mux.Vars(r)["id"])
	if rental == nil {
		respondJSON(w, http.StatusOK, map[string]string{"result": "no-op"})
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.rentalSvc.ActiveRentals())
}

func (h *RentalHandler) ListPast(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.rentalSvc.PastRentals())
}

func hasDuplicateIDs(ids []string) bool {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}

// lookupGames resolves IDs against the catalog, writing the error response
// itself when one is unknown.
func (h *RentalHandler) lookupGames(w http.ResponseWriter, ids []string) ([]domain.BoardGame, bool) {
	games := make([]domain.BoardGame, 0, len(ids))
	for _, id := range ids {
		game, ok := catalog.GameByID(id)
		if !ok {
			respondError(w, http.StatusNotFound, "game not found: "+id)
			return nil, false
		}
		games = append(games, game)
	}
	return games, true
}
