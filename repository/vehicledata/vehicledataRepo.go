package vehicledatarepo

// CarSpec is the subset of API Ninjas /v1/cars fields kept as car
// parameters.
type CarSpec struct {
	Class        string  `json:"class"`
	FuelType     string  `json:"fuel_type"`
	Transmission string  `json:"transmission"`
	Drive        string  `json:"drive"`
	Cylinders    int     `json:"cylinders"`
	Displacement float64 `json:"displacement"`
	Year         int     `json:"year"`
}

type Repo interface {
	LookupSpec(brand, model string) (*CarSpec, error)
}
