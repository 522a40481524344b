package get_available_times

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_times: invalid input data")

	// ErrInvalidDuration возвращается при недопустимой длительности услуги.
	// Нулевая или отрицательная длительность запрещена: обход сетки слотов
	// с таким шагом не завершился бы.
	ErrInvalidDuration = errors.New("get_available_times: invalid service duration")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_times: internal error")
)
