package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrScheduleUnavailable возвращается, когда мастер не работает в этот день
	ErrScheduleUnavailable = errors.New("create_appointment: employee does not work on this day")

	// ErrOutsideWorkingHours возвращается, когда запрошенное окно выходит
	// за пределы рабочего дня мастера
	ErrOutsideWorkingHours = errors.New("create_appointment: time window is outside working hours")

	// ErrSlotNotAvailable возвращается, когда окно пересекается с
	// существующей записью мастера
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInvalidCoupon возвращается, когда сервис купонов отклонил купон
	ErrInvalidCoupon = errors.New("create_appointment: invalid coupon")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
