package create_appointment

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("create_appointment: salon not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в салоне
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrServiceInactive возвращается, когда услуга отключена владельцем
	ErrServiceInactive = errors.New("create_appointment: service is not active")

	// ErrInvalidDate возвращается, когда дата записи в прошлом
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrInvalidTimeSlot возвращается, когда время начала не лежит на сетке
	// слотов или выходит за рабочие часы салона
	ErrInvalidTimeSlot = errors.New("create_appointment: invalid time slot")

	// ErrTooLateToBook возвращается, когда слот на сегодня уже начался
	ErrTooLateToBook = errors.New("create_appointment: slot is already in the past")

	// ErrSlotNotAvailable возвращается, когда слот пересекается с существующей записью
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
