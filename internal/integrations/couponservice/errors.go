package couponservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("couponservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("couponservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation.
	// Указывает, что сервис купонов недоступен: бронирование продолжается
	// с ценами, переданными клиентом, без проверки купона.
	ErrServiceDegraded = errors.New("couponservice unavailable: graceful degradation applied")
)
