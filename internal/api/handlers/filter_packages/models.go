package filter_packages

import "github.com/m04kA/SMC-TeeTimeService/internal/domain"

// FilterRequest HTTP request model
type FilterRequest struct {
	TeeTime  string               `json:"teeTime"`
	Packages []domain.RatePackage `json:"packages"`
}

// FilterResponse HTTP response model
type FilterResponse struct {
	TeeTime  string               `json:"teeTime"`
	Packages []domain.RatePackage `json:"packages"`
}
