package network

import (
	"context"

	"github.com/geoattend/geoattend-backend-go/internal/pkg/validator"
)

type UpsertNetworkRequest struct {
	ID          string `json:"-"`
	Name        string `json:"name"`
	SSID        string `json:"ssid"`
	BSSID       string `json:"bssid"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

func (r *UpsertNetworkRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.SSID) {
		errs = append(errs, validator.ValidationError{
			Field:   "ssid",
			Message: "ssid is required",
		})
	}
	if !validator.IsEmpty(r.BSSID) && !validator.IsValidBSSID(r.BSSID) {
		errs = append(errs, validator.ValidationError{
			Field:   "bssid",
			Message: "bssid must be a MAC address like AA:BB:CC:DD:EE:FF",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type NetworkResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	SSID        string `json:"ssid"`
	BSSID       string `json:"bssid"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
}

// NetworkService defines business logic for authorized-network
// administration.
type NetworkService interface {
	Create(ctx context.Context, req UpsertNetworkRequest) (NetworkResponse, error)
	Update(ctx context.Context, req UpsertNetworkRequest) (NetworkResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]NetworkResponse, error)
}
