package domain

import (
	"errors"
	"time"
)

type RentalStatus string

const (
	RentalStatusBooked   RentalStatus = "BOOKED"
	RentalStatusPickedUp RentalStatus = "PICKED_UP"
	RentalStatusReturned RentalStatus = "RETURNED"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "UNPAID"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

const (
	// Rental duration bounds in days, inclusive.
	MinRentalDays = 1
	MaxRentalDays = 14

	// BundleSize is the number of distinct games a discounted bundle requires.
	BundleSize = 3
)

// ErrInvalidDuration is returned when a rental is requested for a day count
// outside [MinRentalDays, MaxRentalDays].
var ErrInvalidDuration = errors.New("rental duration must be between 1 and 14 days")

type Rental struct {
	ID string `json:"id"`
	// Game snapshot — captured from the catalog at rental creation time.
	// All cost and display values use this snapshot, not live catalog prices.
	Game             BoardGame     `json:"game"`
	PickupDate       time.Time     `json:"pickup_date"`
	ReturnDate       time.Time     `json:"return_date"`
	Days             int           `json:"days"`
	DailyPrice       float64       `json:"daily_price"`
	Deposit          float64       `json:"deposit"`
	TotalPaid        float64       `json:"total_paid"`
	Status           RentalStatus  `json:"status"`
	PaymentStatus    PaymentStatus `json:"payment_status"`
	ConfirmationCode string        `json:"confirmation_code"`
	CreatedOn        time.Time     `json:"created_on"`
}

// RentalState is the durable rental-state record: the in-flight rentals plus
// the archive. A rental ID appears in exactly one of the two lists; a rental
// moves from Active to the front of Past exactly once, on return, and is
// never deleted.
type RentalState struct {
	Active []Rental `json:"active"`
	Past   []Rental `json:"past"`
}
