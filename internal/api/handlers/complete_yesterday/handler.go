package complete_yesterday

import (
	"net/http"

	"github.com/m04kA/SLN-BookingService/internal/api/handlers"
	"github.com/m04kA/SLN-BookingService/internal/worker/dailysweep"
)

const msgCompleted = "записи за прошедшие дни завершены"

// CompleteYesterdayResponse HTTP response model
type CompleteYesterdayResponse struct {
	Message      string  `json:"message"`
	UpdatedCount int     `json:"updatedCount"`
	UpdatedIDs   []int64 `json:"updatedIds"`
}

type Handler struct {
	worker SweepWorker
	logger Logger
}

func NewHandler(worker SweepWorker, logger Logger) *Handler {
	return &Handler{
		worker: worker,
		logger: logger,
	}
}

// Handle PUT /api/admin/appointments/complete-yesterday
// Ручной запуск автозавершения, идемпотентен: повторный вызов вернёт 0 записей.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ids, err := h.worker.RunOnce(r.Context(), dailysweep.TriggerManual)
	if err != nil {
		h.logger.Error("PUT /admin/appointments/complete-yesterday - Sweep failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	if ids == nil {
		ids = []int64{}
	}

	h.logger.Info("PUT /admin/appointments/complete-yesterday - Completed %d appointments", len(ids))
	handlers.RespondJSON(w, http.StatusOK, CompleteYesterdayResponse{
		Message:      msgCompleted,
		UpdatedCount: len(ids),
		UpdatedIDs:   ids,
	})
}
