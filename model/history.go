// model/history.go
package model

import "time"

// PlacedOrder is an immutable record of a completed pickup.
// EndTime - StartTime equals the reserved hours.
type PlacedOrder struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	CarID     int64     `json:"car_id"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}
