package license

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylelink/backend/internal/domain/plm"
)

func serverReturning(result int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"result":%d}`, result)
	}))
}

func TestValidateResultCodes(t *testing.T) {
	tests := []struct {
		name       string
		result     int
		wantErr    bool
		wantStatus int
	}{
		{"valid", 1, false, 0},
		{"already active", 2, false, 0},
		{"invalid", 0, true, http.StatusUnauthorized},
		{"not found", 3, true, http.StatusUnauthorized},
		{"expired", 4, true, http.StatusUnauthorized},
		{"seat limit", 5, true, http.StatusForbidden},
		{"server error", 101, true, http.StatusBadGateway},
		{"server error alt", 102, true, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := serverReturning(tt.result)
			defer server.Close()

			client := NewClient(server.URL, 5*time.Second, nil)
			err := client.Validate(context.Background(), "jdoe")

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var statusErr *plm.StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tt.wantStatus, statusErr.StatusCode)
		})
	}
}

func TestLogoutSwallowsFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nil)
	assert.NoError(t, client.Logout(context.Background(), "jdoe"))
}

func TestNoopChecker(t *testing.T) {
	var checker Checker = NoopChecker{}
	assert.NoError(t, checker.Validate(context.Background(), "jdoe"))
	assert.NoError(t, checker.Logout(context.Background(), "jdoe"))
}
