package identity

import "errors"

var (
	// ErrTokenRejected возвращается, когда провайдер не подтвердил токен
	ErrTokenRejected = errors.New("identity client: token rejected by provider")

	// ErrUnknownProvider возвращается для неподдерживаемого провайдера
	ErrUnknownProvider = errors.New("identity client: unknown provider")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("identity client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе провайдера
	ErrInvalidResponse = errors.New("identity client: invalid response")
)
