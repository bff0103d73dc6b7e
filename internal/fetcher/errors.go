package fetcher

import (
	"errors"
	"fmt"
)

// ErrRetriesExhausted возвращается, когда бюджет попыток исчерпан таймаутами
// (или равен нулю) и ни одна попытка не завершилась иначе.
var ErrRetriesExhausted = errors.New("retries exhausted")

// FailureKind — терминальная категория ошибки запроса.
type FailureKind int

const (
	// KindExhausted: все попытки завершились таймаутом.
	KindExhausted FailureKind = iota + 1
	// KindStatus: сервер ответил статусом вне диапазона 2xx.
	KindStatus
	// KindOther: сетевая ошибка, ошибка декодирования, отмена контекста и т.п.
	KindOther
)

func (k FailureKind) String() string {
	switch k {
	case KindExhausted:
		return "exhausted"
	case KindStatus:
		return "status"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// FetchError оборачивает любую ошибку пути запроса. Возвращается только
// если fallback не задан.
type FetchError struct {
	Kind     FailureKind
	URL      string
	Attempts int
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s failed (%s, attempts=%d): %v", e.URL, e.Kind, e.Attempts, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// StatusError описывает ответ со статусом вне диапазона 2xx.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error %s", e.Status)
}
