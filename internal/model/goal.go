// Package model defines the ledger records and derived pacing types.
package model

import "time"

// Currency is an ISO code accepted at goal creation.
type Currency string

const (
	INR Currency = "INR"
	USD Currency = "USD"
)

// DateLayout is the on-disk format of payment dates.
const DateLayout = "2006-01-02"

// Goal is a target amount stored canonically in INR.
type Goal struct {
	ID       int64   `db:"id"`
	Title    string  `db:"title"`
	Amount   float64 `db:"amount"`
	Currency string  `db:"currency"`
	Years    float64 `db:"years"`
}

// GoalRef is the (id, title) pair used by goal pickers.
type GoalRef struct {
	ID    int64  `db:"id"`
	Title string `db:"title"`
}

// NewGoal holds goal creation parameters as entered by the user.
type NewGoal struct {
	Title    string
	Amount   float64
	Currency Currency
	Years    float64
}

// Payment is an append-only record of USD sent toward a goal. INREquiv is
// frozen at the rate in effect when the payment was logged.
type Payment struct {
	ID       int64     `db:"id"`
	GoalID   int64     `db:"goal_id"`
	Date     time.Time `db:"-"`
	USDSent  float64   `db:"usd_sent"`
	INREquiv float64   `db:"inr_equiv"`
}
