package fetcher

import "time"

const (
	DefaultRetries = 2
	DefaultTimeout = 2 * time.Second
)

type options struct {
	retries  int
	timeout  time.Duration
	fallback any
}

// Option переопределяет параметры одного вызова Fetch.
type Option func(*options)

// WithRetries задаёт максимальное число попыток.
func WithRetries(n int) Option {
	return func(o *options) {
		o.retries = n
	}
}

// WithTimeout задаёт таймаут одной попытки.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithFallback задаёт значение, возвращаемое вместо ошибки. nil означает отсутствие fallback.
func WithFallback(v any) Option {
	return func(o *options) {
		o.fallback = v
	}
}
