package get_available_times

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SLN-BookingService/internal/api/handlers"
	"github.com/m04kA/SLN-BookingService/internal/domain"
	getAvailableTimes "github.com/m04kA/SLN-BookingService/internal/usecase/get_available_times"
)

const (
	msgMissingEmployeeID = "ID мастера обязателен"
	msgInvalidEmployeeID = "некорректный ID мастера"
	msgMissingDate       = "дата обязательна"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingDuration   = "длительность услуги обязательна"
	msgInvalidDuration   = "некорректная длительность услуги"
)

type Handler struct {
	useCase GetAvailableTimesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/available-times
// Query params: employeeId (required), date (required, YYYY-MM-DD), duration (required, минуты)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем employeeId из query параметров
	employeeIDStr := r.URL.Query().Get("employeeId")
	if employeeIDStr == "" {
		h.logger.Warn("GET /api/available-times - Missing employee ID")
		handlers.RespondBadRequest(w, msgMissingEmployeeID)
		return
	}

	employeeID, err := strconv.ParseInt(employeeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /api/available-times - Invalid employee ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /api/available-times - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /api/available-times - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Извлекаем duration из query параметров
	durationStr := r.URL.Query().Get("duration")
	if durationStr == "" {
		h.logger.Warn("GET /api/available-times - Missing duration")
		handlers.RespondBadRequest(w, msgMissingDuration)
		return
	}

	duration, err := strconv.Atoi(durationStr)
	if err != nil {
		h.logger.Warn("GET /api/available-times - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	req := &getAvailableTimes.Request{
		EmployeeID:      employeeID,
		Date:            date,
		DurationMinutes: duration,
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableTimes.ErrInvalidDuration):
			handlers.RespondBadRequest(w, msgInvalidDuration)
		case errors.Is(err, getAvailableTimes.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		default:
			h.logger.Error("GET /api/available-times - Internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(result))
}
