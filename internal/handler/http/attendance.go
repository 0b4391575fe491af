package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/geoattend/geoattend-backend-go/internal/domain/attendance"
	"github.com/geoattend/geoattend-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	TodayStatus(w http.ResponseWriter, r *http.Request)
	MyHistory(w http.ResponseWriter, r *http.Request)
	UserHistory(w http.ResponseWriter, r *http.Request)
	Report(w http.ResponseWriter, r *http.Request)
	ListIncidences(w http.ResponseWriter, r *http.Request)
	CreateJustification(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Register implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req attendance.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	outcome, err := h.attendanceService.Register(r.Context(), req)
	if err != nil {
		slog.Error("Register attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, outcome.Message, outcome)
}

// TodayStatus implements AttendanceHandler.
func (h *AttendanceHandlerImpl) TodayStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.attendanceService.TodayStatus(r.Context())
	if err != nil {
		slog.Error("TodayStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, status)
}

// MyHistory implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MyHistory(w http.ResponseWriter, r *http.Request) {
	events, err := h.attendanceService.History(r.Context(), attendance.HistoryFilter{
		StartDate: optionalQueryParam(r, "start_date"),
		EndDate:   optionalQueryParam(r, "end_date"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, events)
}

// UserHistory implements AttendanceHandler.
func (h *AttendanceHandlerImpl) UserHistory(w http.ResponseWriter, r *http.Request) {
	events, err := h.attendanceService.History(r.Context(), attendance.HistoryFilter{
		UserID:    chi.URLParam(r, "userId"),
		StartDate: optionalQueryParam(r, "start_date"),
		EndDate:   optionalQueryParam(r, "end_date"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, events)
}

// Report implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	report, err := h.attendanceService.Report(r.Context(),
		optionalQueryParam(r, "start_date"),
		optionalQueryParam(r, "end_date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// ListIncidences implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListIncidences(w http.ResponseWriter, r *http.Request) {
	incidences, err := h.attendanceService.ListIncidences(r.Context(), attendance.HistoryFilter{
		UserID:    r.URL.Query().Get("user_id"),
		StartDate: optionalQueryParam(r, "start_date"),
		EndDate:   optionalQueryParam(r, "end_date"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, incidences)
}

// CreateJustification implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CreateJustification(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateJustificationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.attendanceService.CreateJustification(r.Context(), req)
	if err != nil {
		slog.Error("CreateJustification service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Justification recorded successfully", created)
}

// optionalQueryParam returns nil for an absent or empty query value.
func optionalQueryParam(r *http.Request, key string) *string {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	return &v
}
