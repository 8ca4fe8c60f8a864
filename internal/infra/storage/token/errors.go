package token

import "errors"

var (
	// ErrTokenNotFound возвращается, когда refresh токен не найден
	ErrTokenNotFound = errors.New("refresh token not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования строки результата
	ErrScanRow = errors.New("failed to scan row")
)
