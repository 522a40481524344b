package domain

import "github.com/m04kA/SLN-BookingService/pkg/types"

// TimeSlot represents a candidate booking window of exactly the requested
// service duration, half-open: [Start, End)
type TimeSlot struct {
	Start types.TimeString
	End   types.TimeString
}
