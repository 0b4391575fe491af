package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/geoattend/geoattend-backend-go/internal/domain/network"
	"github.com/geoattend/geoattend-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type NetworkHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type NetworkHandlerImpl struct {
	networkService network.NetworkService
}

func NewNetworkHandler(networkService network.NetworkService) NetworkHandler {
	return &NetworkHandlerImpl{networkService: networkService}
}

// Create implements NetworkHandler.
func (h *NetworkHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req network.UpsertNetworkRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.networkService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create network service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Authorized network created successfully", created)
}

// Update implements NetworkHandler.
func (h *NetworkHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req network.UpsertNetworkRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.networkService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update network service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Authorized network updated successfully", updated)
}

// Delete implements NetworkHandler.
func (h *NetworkHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.networkService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Authorized network deleted successfully", nil)
}

// List implements NetworkHandler.
func (h *NetworkHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	networks, err := h.networkService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, networks)
}
