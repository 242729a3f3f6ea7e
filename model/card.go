// model/card.go
package model

import "time"

// Card is the user's stored payment instrument. Balance is a plain
// integer ledger value; it never goes below zero.
type Card struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Number      string    `json:"number"`
	ExpiryMonth int       `json:"expiry_month"`
	ExpiryYear  int       `json:"expiry_year"`
	CVV         string    `json:"-"`
	Balance     int64     `json:"balance"`
	CreatedAt   time.Time `json:"created_at"`
}
