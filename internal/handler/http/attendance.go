package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	GetMonthlyAttendance(w http.ResponseWriter, r *http.Request)
	RecordCheckIn(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// GetMonthlyAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) GetMonthlyAttendance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	month := r.URL.Query().Get("month")
	year := r.URL.Query().Get("year")
	if month == "" || year == "" {
		response.BadRequest(w, "Query parameters 'month' and 'year' are required", nil)
		return
	}

	results, err := h.attendanceService.GetMonthlyAttendance(r.Context(), id, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// RecordCheckIn implements AttendanceHandler
func (h *attendanceHandlerImpl) RecordCheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordCheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.RecordCheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Check-in recorded successfully", result)
}
