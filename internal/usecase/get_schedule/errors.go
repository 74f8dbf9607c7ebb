package get_schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_schedule: invalid input data")

	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("get_schedule: salon not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_schedule: internal error")
)
