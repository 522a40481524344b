package list_canceled_appointments

import (
	"net/http"
	"time"

	"github.com/m04kA/SLN-BookingService/internal/api/handlers"
	"github.com/m04kA/SLN-BookingService/internal/domain"
	"github.com/m04kA/SLN-BookingService/internal/service/appointments/models"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/admin/canceled_appointments
// Query params: search, date, start_date, end_date (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	serviceReq := &models.ListAppointmentsRequest{}

	if search := q.Get("search"); search != "" {
		serviceReq.Search = &search
	}

	if dateStr := q.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /admin/canceled_appointments - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		serviceReq.Date = &date
	}

	if startDateStr := q.Get("start_date"); startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			h.logger.Warn("GET /admin/canceled_appointments - Invalid start_date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		serviceReq.StartDate = &startDate
	}

	if endDateStr := q.Get("end_date"); endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			h.logger.Warn("GET /admin/canceled_appointments - Invalid end_date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		serviceReq.EndDate = &endDate
	}

	result, err := h.service.ListCanceled(r.Context(), serviceReq)
	if err != nil {
		h.logger.Error("GET /admin/canceled_appointments - Failed to get canceled appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/canceled_appointments - Canceled appointments retrieved successfully: count=%d",
		len(result.CanceledAppointments))
	handlers.RespondJSON(w, http.StatusOK, result.CanceledAppointments)
}
