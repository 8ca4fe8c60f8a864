package auth

import "errors"

var (
	// ErrEmailTaken возвращается, когда email уже зарегистрирован
	ErrEmailTaken = errors.New("email is already taken")

	// ErrInvalidCredentials возвращается при неверном email или пароле.
	// Неизвестный email и неверный пароль неразличимы для клиента.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrFederatedAccount возвращается при попытке входа по паролю
	// в аккаунт, созданный через внешнего провайдера
	ErrFederatedAccount = errors.New("account uses federated login")

	// ErrTokenRejected возвращается, когда внешний провайдер не принял токен
	ErrTokenRejected = errors.New("identity token rejected")

	// ErrUnknownProvider возвращается для неизвестного identity-провайдера
	ErrUnknownProvider = errors.New("unknown identity provider")

	// ErrInvalidRefreshToken возвращается для неизвестного или истекшего
	// refresh токена
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("internal auth error")
)
