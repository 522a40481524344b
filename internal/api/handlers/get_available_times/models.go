package get_available_times

import (
	getAvailableTimes "github.com/m04kA/SLN-BookingService/internal/usecase/get_available_times"
)

// TimeSlotResponse свободное окно в ответе API
type TimeSlotResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// toResponse конвертирует ответ usecase в плоский список окон.
// Клиенты ожидают голый JSON-массив, без обёртки.
func toResponse(result *getAvailableTimes.Response) []TimeSlotResponse {
	slots := make([]TimeSlotResponse, 0, len(result.Slots))
	for _, s := range result.Slots {
		slots = append(slots, TimeSlotResponse{
			Start: s.Start.String(),
			End:   s.End.String(),
		})
	}
	return slots
}
