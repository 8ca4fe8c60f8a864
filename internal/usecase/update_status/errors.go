package update_status

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("update_status: appointment not found")

	// ErrAccessDenied возвращается, когда пользователь не связан с записью:
	// не владелец салона и не гость этой записи
	ErrAccessDenied = errors.New("update_status: access denied")

	// ErrInvalidStatus возвращается, когда целевой статус не существует
	ErrInvalidStatus = errors.New("update_status: invalid status")

	// ErrInvalidTransition возвращается, когда переход запрещен таблицей
	// переходов для роли пользователя
	ErrInvalidTransition = errors.New("update_status: invalid status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_status: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_status: internal error")
)
