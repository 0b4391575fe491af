package network

import (
	"context"
	"fmt"

	"github.com/geoattend/geoattend-backend-go/internal/domain/network"
	"github.com/google/uuid"
)

type NetworkServiceImpl struct {
	networkRepo network.NetworkRepository
}

func NewNetworkService(networkRepo network.NetworkRepository) network.NetworkService {
	return &NetworkServiceImpl{networkRepo: networkRepo}
}

// Create implements network.NetworkService.
func (s *NetworkServiceImpl) Create(ctx context.Context, req network.UpsertNetworkRequest) (network.NetworkResponse, error) {
	if err := req.Validate(); err != nil {
		return network.NetworkResponse{}, err
	}

	created, err := s.networkRepo.Create(ctx, network.AuthorizedNetwork{
		ID:          uuid.New().String(),
		Name:        req.Name,
		SSID:        req.SSID,
		BSSID:       network.NormalizeBSSID(req.BSSID),
		Description: req.Description,
		Active:      req.Active,
	})
	if err != nil {
		return network.NetworkResponse{}, err
	}

	return mapNetworkToResponse(created), nil
}

// Update implements network.NetworkService.
func (s *NetworkServiceImpl) Update(ctx context.Context, req network.UpsertNetworkRequest) (network.NetworkResponse, error) {
	if err := req.Validate(); err != nil {
		return network.NetworkResponse{}, err
	}

	existing, err := s.networkRepo.GetByID(ctx, req.ID)
	if err != nil {
		return network.NetworkResponse{}, err
	}

	existing.Name = req.Name
	existing.SSID = req.SSID
	existing.BSSID = network.NormalizeBSSID(req.BSSID)
	existing.Description = req.Description
	existing.Active = req.Active

	if err := s.networkRepo.Update(ctx, existing); err != nil {
		return network.NetworkResponse{}, err
	}

	return mapNetworkToResponse(existing), nil
}

// Delete implements network.NetworkService.
func (s *NetworkServiceImpl) Delete(ctx context.Context, id string) error {
	return s.networkRepo.Delete(ctx, id)
}

// List implements network.NetworkService.
func (s *NetworkServiceImpl) List(ctx context.Context) ([]network.NetworkResponse, error) {
	networks, err := s.networkRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list networks: %w", err)
	}

	responses := make([]network.NetworkResponse, 0, len(networks))
	for _, n := range networks {
		responses = append(responses, mapNetworkToResponse(n))
	}
	return responses, nil
}

func mapNetworkToResponse(n network.AuthorizedNetwork) network.NetworkResponse {
	return network.NetworkResponse{
		ID:          n.ID,
		Name:        n.Name,
		SSID:        n.SSID,
		BSSID:       n.BSSID,
		Description: n.Description,
		Active:      n.Active,
	}
}
