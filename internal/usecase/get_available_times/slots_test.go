package get_available_times

import (
	"testing"

	"github.com/m04kA/SLN-BookingService/internal/domain"
	"github.com/m04kA/SLN-BookingService/pkg/types"
)

func ts(t *testing.T, s string) types.TimeString {
	t.Helper()
	v, err := types.NewTimeStringFromString(s)
	if err != nil {
		t.Fatalf("bad time string %q: %v", s, err)
	}
	return v
}

func appt(t *testing.T, start, end string) *domain.Appointment {
	t.Helper()
	return &domain.Appointment{
		StartTime: ts(t, start),
		EndTime:   ts(t, end),
		Status:    domain.StatusConfirmed,
	}
}

func TestGenerateSlots_EmptyDay(t *testing.T) {
	slots := generateSlots(ts(t, "09:00"), ts(t, "12:00"), 30, 15, nil)

	// Старты 09:00, 09:15, ..., 11:30 — последний кандидат 11:30-12:00
	// ровно упирается в конец рабочего дня
	if len(slots) != 11 {
		t.Fatalf("expected 11 slots, got %d", len(slots))
	}
	if slots[0].Start != "09:00" || slots[0].End != "09:30" {
		t.Fatalf("expected first slot 09:00-09:30, got %s-%s", slots[0].Start, slots[0].End)
	}
	if last := slots[len(slots)-1]; last.Start != "11:30" || last.End != "12:00" {
		t.Fatalf("expected last slot 11:30-12:00, got %s-%s", last.Start, last.End)
	}
}

func TestGenerateSlots_ExcludesOverlapping(t *testing.T) {
	booked := []*domain.Appointment{appt(t, "10:00", "10:30")}

	slots := generateSlots(ts(t, "09:00"), ts(t, "12:00"), 30, 15, booked)

	// Исключены старты 09:45, 10:00 и 10:15 — их окна пересекают запись
	if len(slots) != 8 {
		t.Fatalf("expected 8 slots, got %d", len(slots))
	}
	for _, s := range slots {
		if s.Start == "09:45" || s.Start == "10:00" || s.Start == "10:15" {
			t.Fatalf("slot starting at %s must be excluded", s.Start)
		}
	}
}

func TestGenerateSlots_TouchingBoundariesAllowed(t *testing.T) {
	booked := []*domain.Appointment{appt(t, "10:00", "10:30")}

	slots := generateSlots(ts(t, "09:00"), ts(t, "12:00"), 30, 15, booked)

	// Окна, граничащие с записью точно по краю, остаются доступными
	var beforeKept, afterKept bool
	for _, s := range slots {
		if s.Start == "09:30" && s.End == "10:00" {
			beforeKept = true
		}
		if s.Start == "10:30" && s.End == "11:00" {
			afterKept = true
		}
	}
	if !beforeKept {
		t.Fatalf("slot 09:30-10:00 touching appointment start must be kept")
	}
	if !afterKept {
		t.Fatalf("slot 10:30-11:00 touching appointment end must be kept")
	}
}

func TestGenerateSlots_DurationLongerThanWindow(t *testing.T) {
	slots := generateSlots(ts(t, "09:00"), ts(t, "10:00"), 90, 15, nil)

	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %d", len(slots))
	}
}

func TestGenerateSlots_DurationNotMultipleOfStep(t *testing.T) {
	slots := generateSlots(ts(t, "09:00"), ts(t, "10:00"), 45, 15, nil)

	// Шаг сетки не зависит от длительности: старты 09:00 и 09:15
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if slots[1].Start != "09:15" || slots[1].End != "10:00" {
		t.Fatalf("expected second slot 09:15-10:00, got %s-%s", slots[1].Start, slots[1].End)
	}
}

func TestGenerateSlots_BackToBackBookings(t *testing.T) {
	booked := []*domain.Appointment{
		appt(t, "09:00", "10:00"),
		appt(t, "10:00", "11:00"),
	}

	slots := generateSlots(ts(t, "09:00"), ts(t, "12:00"), 60, 15, booked)

	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(slots))
	}
	if slots[0].Start != "11:00" || slots[0].End != "12:00" {
		t.Fatalf("expected slot 11:00-12:00, got %s-%s", slots[0].Start, slots[0].End)
	}
}
