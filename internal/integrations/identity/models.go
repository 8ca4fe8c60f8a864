package identity

// Profile профиль пользователя, подтвержденный внешним identity-провайдером
type Profile struct {
	Provider  string `json:"provider"`
	SubjectID string `json:"subject_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
}

// verifyRequest тело запроса на проверку федеративного токена
type verifyRequest struct {
	Provider string `json:"provider"`
	Token    string `json:"token"`
}

// ErrorResponse модель ошибки от identity-провайдера
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
