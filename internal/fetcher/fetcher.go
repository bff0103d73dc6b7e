package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

// outcome — результат одной попытки.
type outcome int

const (
	outcomeOK outcome = iota
	outcomeTimeout
	outcomeStatus
	outcomeOther
)

// Fetcher выполняет GET-запросы с ограниченным числом повторов при таймауте.
type Fetcher struct {
	retries int
	timeout time.Duration
	logger  *logrus.Logger
}

// New создает Fetcher с параметрами по умолчанию для всех вызовов.
// Если logger равен nil, используется logrus.StandardLogger().
func New(retries int, timeout time.Duration, logger *logrus.Logger) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Fetcher{
		retries: retries,
		timeout: timeout,
		logger:  logger,
	}
}

// Fetch запрашивает url и декодирует JSON-ответ.
//
// Таймаут попытки приводит к немедленному повтору, пока есть попытки.
// Статус вне 2xx и прочие ошибки не повторяются. Во всех случаях отказа
// возвращается fallback, если он задан, иначе *FetchError.
func (f *Fetcher) Fetch(ctx context.Context, url string, opts ...Option) (any, error) {
	o := options{retries: f.retries, timeout: f.timeout}
	for _, opt := range opts {
		opt(&o)
	}

	logEntry := f.logger.WithFields(logrus.Fields{
		"url":     url,
		"retries": o.retries,
		"timeout": o.timeout,
	})

	attempts := 0
	for attempts < o.retries {
		attempts++

		value, result, err := f.attempt(ctx, url, o.timeout)
		switch result {
		case outcomeOK:
			return value, nil
		case outcomeTimeout:
			logEntry.WithField("attempt", attempts).Warn("Fetch attempt timed out")
			continue
		case outcomeStatus:
			return f.fail(logEntry, o, &FetchError{Kind: KindStatus, URL: url, Attempts: attempts, Err: err})
		default:
			return f.fail(logEntry, o, &FetchError{Kind: KindOther, URL: url, Attempts: attempts, Err: err})
		}
	}

	return f.fail(logEntry, o, &FetchError{Kind: KindExhausted, URL: url, Attempts: attempts, Err: ErrRetriesExhausted})
}

func (f *Fetcher) fail(logEntry *logrus.Entry, o options, fetchErr *FetchError) (any, error) {
	logEntry = logEntry.WithError(fetchErr).WithField("kind", fetchErr.Kind.String())
	if o.fallback != nil {
		logEntry.Warn("Fetch failed, returning fallback")
		return o.fallback, nil
	}
	logEntry.Error("Fetch failed")
	return nil, fetchErr
}

// attempt выполняет один запрос на собственном клиенте и закрывает его соединения.
func (f *Fetcher) attempt(ctx context.Context, url string, timeout time.Duration) (any, outcome, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	defer transport.CloseIdleConnections()

	client := &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, outcomeOther, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, classify(ctx, err), err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, outcomeStatus, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var value any
	if err := json.NewDecoder(resp.Body).Decode(&value); err != nil {
		return nil, classify(ctx, err), fmt.Errorf("failed to decode response: %w", err)
	}

	return value, outcomeOK, nil
}

// classify отличает таймаут попытки от прочих ошибок. Отмена контекста
// вызывающего не считается таймаутом и не повторяется.
func classify(ctx context.Context, err error) outcome {
	if ctx.Err() != nil {
		return outcomeOther
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return outcomeTimeout
	}
	return outcomeOther
}
