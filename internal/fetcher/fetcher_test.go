package fetcher_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"user-service/internal/fetcher"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTimeout = 50 * time.Millisecond

func newTestFetcher() *fetcher.Fetcher {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return fetcher.New(fetcher.DefaultRetries, testTimeout, logger)
}

// hang блокирует обработчик, пока клиент не оборвет соединение по таймауту.
func hang(r *http.Request) {
	select {
	case <-r.Context().Done():
	case <-time.After(5 * time.Second):
	}
}

func newServer(t *testing.T, handler func(attempt int32, w http.ResponseWriter, r *http.Request)) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler(calls.Add(1), w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func requireFetchError(t *testing.T, err error, kind fetcher.FailureKind) *fetcher.FetchError {
	t.Helper()
	var fetchErr *fetcher.FetchError
	require.True(t, errors.As(err, &fetchErr), "expected *FetchError, got %v", err)
	assert.Equal(t, kind, fetchErr.Kind)
	return fetchErr
}

func TestFetch_Success(t *testing.T) {
	srv, calls := newServer(t, func(_ int32, w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"id": 1, "name": "Ivan"}`)
	})

	result, err := newTestFetcher().Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	body, ok := result.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "Ivan", body["name"])
	assert.Equal(t, int32(1), calls.Load())
}

func TestNew_NilLoggerUsesStandardLogger(t *testing.T) {
	srv, _ := newServer(t, func(_ int32, w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusBadGateway, `{}`)
	})
	f := fetcher.New(1, testTimeout, nil)

	var (
		result any
		err    error
	)
	require.NotPanics(t, func() {
		result, err = f.Fetch(context.Background(), srv.URL, fetcher.WithFallback("fallback"))
	})

	require.NoError(t, err)
	assert.Equal(t, "fallback", result)
}

func TestFetch_TransientTimeoutThenSuccess(t *testing.T) {
	srv, calls := newServer(t, func(attempt int32, w http.ResponseWriter, r *http.Request) {
		if attempt == 1 {
			hang(r)
			return
		}
		writeJSON(w, http.StatusOK, `{"id": 1}`)
	})

	result, err := newTestFetcher().Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": float64(1)}, result)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetch_PermanentTimeout(t *testing.T) {
	for _, retries := range []int{1, 2, 3} {
		t.Run(fmt.Sprintf("retries=%d without fallback", retries), func(t *testing.T) {
			srv, calls := newServer(t, func(_ int32, _ http.ResponseWriter, r *http.Request) {
				hang(r)
			})

			result, err := newTestFetcher().Fetch(context.Background(), srv.URL, fetcher.WithRetries(retries))

			assert.Nil(t, result)
			fetchErr := requireFetchError(t, err, fetcher.KindExhausted)
			assert.ErrorIs(t, err, fetcher.ErrRetriesExhausted)
			assert.Equal(t, retries, fetchErr.Attempts)
			assert.Equal(t, int32(retries), calls.Load())
		})

		t.Run(fmt.Sprintf("retries=%d with fallback", retries), func(t *testing.T) {
			srv, calls := newServer(t, func(_ int32, _ http.ResponseWriter, r *http.Request) {
				hang(r)
			})

			result, err := newTestFetcher().Fetch(context.Background(), srv.URL,
				fetcher.WithRetries(retries),
				fetcher.WithFallback("cached"),
			)

			require.NoError(t, err)
			assert.Equal(t, "cached", result)
			assert.Equal(t, int32(retries), calls.Load())
		})
	}
}

func TestFetch_StatusError(t *testing.T) {
	srv, calls := newServer(t, func(_ int32, w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusInternalServerError, `{"error": "server"}`)
	})

	result, err := newTestFetcher().Fetch(context.Background(), srv.URL)

	assert.Nil(t, result)
	fetchErr := requireFetchError(t, err, fetcher.KindStatus)
	assert.Equal(t, 1, fetchErr.Attempts)

	var statusErr *fetcher.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetch_StatusErrorWithFallback(t *testing.T) {
	srv, calls := newServer(t, func(_ int32, w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, `{}`)
	})
	fallback := map[string]any{"id": 0}

	result, err := newTestFetcher().Fetch(context.Background(), srv.URL,
		fetcher.WithRetries(3),
		fetcher.WithFallback(fallback),
	)

	require.NoError(t, err)
	assert.Equal(t, fallback, result)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetch_DecodeError(t *testing.T) {
	srv, calls := newServer(t, func(_ int32, w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"id": `)
	})

	_, err := newTestFetcher().Fetch(context.Background(), srv.URL, fetcher.WithRetries(3))

	requireFetchError(t, err, fetcher.KindOther)
	assert.Equal(t, int32(1), calls.Load())

	result, err := newTestFetcher().Fetch(context.Background(), srv.URL, fetcher.WithFallback(42))

	require.NoError(t, err)
	assert.Equal(t, 42, result)
}

func TestFetch_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestFetcher().Fetch(context.Background(), url)

	fetchErr := requireFetchError(t, err, fetcher.KindOther)
	assert.Equal(t, 1, fetchErr.Attempts)
}

func TestFetch_InvalidURL(t *testing.T) {
	_, err := newTestFetcher().Fetch(context.Background(), "://bad-url")

	requireFetchError(t, err, fetcher.KindOther)
}

func TestFetch_ZeroRetries(t *testing.T) {
	srv, calls := newServer(t, func(_ int32, w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{}`)
	})

	_, err := newTestFetcher().Fetch(context.Background(), srv.URL, fetcher.WithRetries(0))

	fetchErr := requireFetchError(t, err, fetcher.KindExhausted)
	assert.Equal(t, 0, fetchErr.Attempts)
	assert.Equal(t, int32(0), calls.Load())
}

func TestFetch_CanceledContextIsNotRetried(t *testing.T) {
	srv, _ := newServer(t, func(_ int32, w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{}`)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestFetcher().Fetch(ctx, srv.URL, fetcher.WithRetries(3))

	fetchErr := requireFetchError(t, err, fetcher.KindOther)
	assert.Equal(t, 1, fetchErr.Attempts)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFailureKind_String(t *testing.T) {
	assert.Equal(t, "exhausted", fetcher.KindExhausted.String())
	assert.Equal(t, "status", fetcher.KindStatus.String())
	assert.Equal(t, "other", fetcher.KindOther.String())
	assert.Equal(t, "unknown", fetcher.FailureKind(0).String())
}
