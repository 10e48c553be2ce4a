package entities

import "errors"

// Корневые виды ошибок. Конкретные ошибки сервисов оборачивают один из них через %w,
// обработчики решают, какой HTTP-код отдать, только по виду.
// Всё, что не оборачивает ни один из них, считается внутренней ошибкой.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidState = errors.New("invalid state")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
)
