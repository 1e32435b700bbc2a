package domain

import (
	"errors"
	"time"
)

// Conventional activity categories. Category is stored as free text; only
// these four values feed the dashboard sums and recommendations.
const (
	CategoryEnergy    = "energy"
	CategoryWater     = "water"
	CategoryTransport = "transport"
	CategoryWaste     = "waste"
)

var ErrActivityNotFound = errors.New("activity not found")

// Activity is a single sustainability action logged by its owner.
type Activity struct {
	ID       int64     `json:"id"`
	UserID   int64     `json:"user_id"`
	Category string    `json:"category"`
	Action   string    `json:"action"`
	Value    float64   `json:"value"`
	Unit     string    `json:"unit"`
	Notes    *string   `json:"notes"`
	Date     time.Time `json:"date"`
}
