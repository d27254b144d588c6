package utils

import (
	"math"

	"gameshelf-backend/internal/domain"
)

// Bundle discount rates. A bundle is exactly three distinct games: the anchor
// game plus two additional selections. The subtotal (daily price x days,
// summed) is discounted at 15% and the combined deposits at 10%.
const (
	BundleSubtotalDiscount = 0.15
	BundleDepositDiscount  = 0.10
)

// BundlePriceBreakdown provides the intermediate values behind a bundle total.
type BundlePriceBreakdown struct {
	Subtotal           float64
	DiscountedSubtotal float64
	DepositSum         float64
	DiscountedDeposits float64
	Total              float64
}

// RoundCents rounds a monetary amount to 2-digit cent precision for display.
// Internal arithmetic stays in float64; only presentation values are rounded.
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// SingleRentalTotal computes the total charge for renting one game:
// daily price x days + deposit. Days are pre-validated by the caller to be
// within the allowed rental range; this function does not re-check.
func SingleRentalTotal(game domain.BoardGame, days int) float64 {
	return game.DailyPrice*float64(days) + game.Deposit
}

// BundleTotal computes the discounted total for a complete three-game bundle.
// An incomplete selection (fewer than three games) is a caller-side state, not
// an error here; the math simply covers whatever games are passed.
func BundleTotal(games []domain.BoardGame, days int) float64 {
	return BundleBreakdown(games, days).Total
}

// BundleBreakdown computes the full bundle price breakdown.
func BundleBreakdown(games []domain.BoardGame, days int) BundlePriceBreakdown {
	var dailySum, depositSum float64
	for _, g := range games {
		dailySum += g.DailyPrice
		depositSum += g.Deposit
	}

	subtotal := dailySum * float64(days)
	discountedSubtotal := subtotal * (1 - BundleSubtotalDiscount)
	discountedDeposits := depositSum * (1 - BundleDepositDiscount)

	return BundlePriceBreakdown{
		Subtotal:           subtotal,
		DiscountedSubtotal: discountedSubtotal,
		DepositSum:         depositSum,
		DiscountedDeposits: discountedDeposits,
		Total:              discountedSubtotal + discountedDeposits,
	}
}
