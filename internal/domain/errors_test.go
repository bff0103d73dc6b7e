package domain_test

import (
	"fmt"
	"net/http"
	"testing"

	"user-service/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestToHTTPError(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
		wantFound  bool
	}{
		{name: "Not found", err: domain.ErrUserNotFound, wantCode: "NOT_FOUND", wantStatus: http.StatusNotFound, wantFound: true},
		{name: "Wrapped validation", err: fmt.Errorf("create: %w", domain.ErrInvalidCity), wantCode: "INVALID_REQUEST", wantStatus: http.StatusBadRequest, wantFound: true},
		{name: "Fetch failure", err: fmt.Errorf("%w: boom", domain.ErrRemoteFetchFailed), wantCode: "FETCH_FAILED", wantStatus: http.StatusBadGateway, wantFound: true},
		{name: "Unknown", err: assert.AnError, wantFound: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			httpErr, found := domain.ToHTTPError(tc.err)

			assert.Equal(t, tc.wantFound, found)
			assert.Equal(t, tc.wantCode, httpErr.Code)
			assert.Equal(t, tc.wantStatus, httpErr.Status)
		})
	}
}
