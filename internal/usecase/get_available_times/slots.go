package get_available_times

import (
	"github.com/m04kA/SLN-BookingService/internal/domain"
	"github.com/m04kA/SLN-BookingService/pkg/types"
)

// generateSlots генерирует свободные окна внутри рабочего интервала мастера.
//
// Курсор стартует с начала рабочего дня и двигается с фиксированным шагом
// stepMinutes (шаг сетки не зависит от длительности услуги). Кандидат
// [cursor, cursor+duration) попадает в результат, если он целиком помещается
// в рабочее окно и не пересекается ни с одной существующей записью.
//
// Пересечение проверяется по полуоткрытым интервалам: кандидат, граничащий
// с записью точно по краю (candidate.end == appt.start или
// candidate.start == appt.end), пересечением НЕ считается.
//
// Примеры:
// - Окно 09:00-12:00, запись 10:00-10:30, duration=30 → 09:45-10:15 и
//   10:15-10:45 исключены, 09:30-10:00 и 10:30-11:00 остаются.
func generateSlots(
	workStart, workEnd types.TimeString,
	durationMinutes, stepMinutes int,
	booked []*domain.Appointment,
) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0)

	cursor := workStart
	for {
		candidateEnd, err := cursor.AddMinutes(durationMinutes)
		if err != nil {
			// Кандидат пересёк полночь — дальше окон нет
			break
		}

		// Кандидат должен целиком помещаться в рабочее окно
		if candidateEnd.IsAfter(workEnd) {
			break
		}

		if !overlapsAny(cursor, candidateEnd, booked) {
			slots = append(slots, domain.TimeSlot{
				Start: cursor,
				End:   candidateEnd,
			})
		}

		next, err := cursor.AddMinutes(stepMinutes)
		if err != nil {
			break
		}
		cursor = next
	}

	return slots
}

// overlapsAny проверяет, пересекается ли кандидат [start, end) хотя бы с
// одной записью. Интервалы пересекаются, только если начало записи СТРОГО
// раньше конца кандидата И конец записи СТРОГО позже начала кандидата.
func overlapsAny(start, end types.TimeString, booked []*domain.Appointment) bool {
	for _, appt := range booked {
		if appt.Overlaps(start, end) {
			return true
		}
	}
	return false
}
