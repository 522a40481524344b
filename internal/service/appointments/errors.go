package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена.
	// Отменённые записи физически перенесены в архив, поэтому попытка
	// операции над отменённой записью тоже даёт not found.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAlreadyCompleted возвращается при повторном завершении записи
	ErrAlreadyCompleted = errors.New("appointment is already completed")

	// ErrCannotCancel возвращается при попытке отменить завершённую запись
	ErrCannotCancel = errors.New("completed appointment cannot be cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
