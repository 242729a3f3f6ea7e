// model/catalog.go
package model

// Package is a rental tier with a fixed hourly price, grouping cars.
// Read-only reference data from the engines' perspective.
type Package struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	PricePerHour int64  `json:"price_per_hour"`
}

type Car struct {
	ID          int64  `json:"id"`
	PackageID   int64  `json:"package_id"`
	PackageName string `json:"package_name"`
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Parameters  string `json:"parameters,omitempty"`
	IsAvailable bool   `json:"is_available"`
}
