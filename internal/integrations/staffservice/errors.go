package staffservice

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("staffservice client: salon not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("staffservice client: internal error")

	// ErrInvalidResponse возвращается при неожиданном статусе ответа
	ErrInvalidResponse = errors.New("staffservice client: invalid response")

	// ErrMalformedResponse возвращается, когда тело ответа не проходит валидацию схемы
	ErrMalformedResponse = errors.New("staffservice client: malformed response")
)
