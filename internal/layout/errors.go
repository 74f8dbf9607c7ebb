package layout

import "errors"

var (
	// ErrInvalidDuration элемент заканчивается не позже, чем начинается.
	// Это предупреждение о качестве данных: элемент исключается из раскладки
	ErrInvalidDuration = errors.New("layout: item end is not after start")

	// ErrInvalidHourRange некорректный диапазон видимых часов
	ErrInvalidHourRange = errors.New("layout: invalid visible hour range")
)
