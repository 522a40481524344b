package list_client_appointments

import (
	"net/http"
	"strings"

	"github.com/m04kA/SLN-BookingService/internal/api/handlers"
	"github.com/m04kA/SLN-BookingService/internal/service/appointments/models"
)

const (
	msgMissingEmail = "email обязателен"
	msgInvalidEmail = "некорректный email"
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

// Handle GET /api/appointments
// Query params: email (required) — записи клиента по точному совпадению email
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		h.logger.Warn("GET /api/appointments - Missing email")
		handlers.RespondBadRequest(w, msgMissingEmail)
		return
	}

	if !strings.Contains(email, "@") {
		h.logger.Warn("GET /api/appointments - Invalid email: %s", email)
		handlers.RespondBadRequest(w, msgInvalidEmail)
		return
	}

	serviceReq := &models.ListAppointmentsRequest{
		ClientEmail: &email,
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		h.logger.Error("GET /api/appointments - Failed to get client appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /api/appointments - Client appointments retrieved successfully: count=%d", len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result.Appointments)
}
