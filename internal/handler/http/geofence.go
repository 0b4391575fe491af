package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/geoattend/geoattend-backend-go/internal/domain/geofence"
	"github.com/geoattend/geoattend-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type GeofenceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type GeofenceHandlerImpl struct {
	geofenceService geofence.GeofenceService
}

func NewGeofenceHandler(geofenceService geofence.GeofenceService) GeofenceHandler {
	return &GeofenceHandlerImpl{geofenceService: geofenceService}
}

// Create implements GeofenceHandler.
func (h *GeofenceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req geofence.UpsertGeofenceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.geofenceService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create geofence service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Geofence created successfully", created)
}

// Update implements GeofenceHandler.
func (h *GeofenceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req geofence.UpsertGeofenceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.geofenceService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update geofence service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Geofence updated successfully", updated)
}

// Delete implements GeofenceHandler.
func (h *GeofenceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.geofenceService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Geofence deleted successfully", nil)
}

// List implements GeofenceHandler.
func (h *GeofenceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("active") == "true" {
		geofences, err := h.geofenceService.ListActive(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, geofences)
		return
	}

	geofences, err := h.geofenceService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, geofences)
}
