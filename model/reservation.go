// model/reservation.go
package model

import "time"

// Reservation is a paid, single-use access key: the holder may claim
// one available car from PackageName for Hours. A user holds at most
// one at a time; it is created by submitOrder and consumed (deleted)
// by pickup, never edited in place.
type Reservation struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	PackageName string    `json:"package_name"`
	Hours       int       `json:"hours"`
	CreatedAt   time.Time `json:"created_at"`
}
