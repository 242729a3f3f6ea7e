package vehicledatarepo

import (
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/lucasbrentano/car-rental-project-vev-sub000/util/httpx"
)

const baseURL = "https://api.api-ninjas.com/v1/cars"

var ErrNoSpec = errors.New("no spec data for vehicle")

type httpRepo struct {
	apiKey string
	client *resty.Client
}

func NewHTTP(apiKey string) Repo {
	c := resty.NewWithClient(httpx.Client()).
		SetHeader("Accept", "application/json")
	return &httpRepo{apiKey: apiKey, client: c}
}

func (r *httpRepo) LookupSpec(brand, model string) (*CarSpec, error) {
	if r.apiKey == "" {
		return nil, ErrNoSpec
	}

	var specs []CarSpec
	resp, err := r.client.R().
		SetHeader("X-Api-Key", r.apiKey).
		SetQueryParams(map[string]string{
			"make":  brand,
			"model": model,
		}).
		SetResult(&specs).
		Get(baseURL)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("vehicle spec lookup failed: %s", resp.Status())
	}
	if len(specs) == 0 {
		return nil, ErrNoSpec
	}
	return &specs[0], nil
}
