package fixtures

import "errors"

var (
	// ErrInvalidFixture возвращается, когда файл фикстур не проходит валидацию
	ErrInvalidFixture = errors.New("fixtures: invalid fixture")

	// ErrReadFixture возвращается, когда файл фикстур не удалось прочитать или разобрать
	ErrReadFixture = errors.New("fixtures: failed to read fixture")
)
