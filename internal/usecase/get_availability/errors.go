package get_availability

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("get_availability: salon not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена или принадлежит другому салону
	ErrServiceNotFound = errors.New("get_availability: service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
