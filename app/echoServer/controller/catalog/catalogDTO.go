package catalog

type CreatePackageReq struct {
	Name         string `json:"name" validate:"required"`
	PricePerHour int64  `json:"price_per_hour" validate:"required,gt=0"`
}

type CreateCarReq struct {
	PackageName string `json:"package_name" validate:"required"`
	Brand       string `json:"brand" validate:"required"`
	Model       string `json:"model" validate:"required"`
	Parameters  string `json:"parameters"`
}
