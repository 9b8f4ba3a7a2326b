package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMiddleware(t *testing.T) {
	jwtService := NewJWTService("test-secret")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, _ := r.Context().Value(SubjectKey).(string)
		w.Header().Set("X-Subject", subject)
		w.WriteHeader(http.StatusOK)
	})
	protected := Middleware(jwtService)(next)

	tests := []struct {
		name            string
		authHeader      func() string
		expectedCode    int
		expectedSubject string
	}{
		{
			name: "Valid Bearer token",
			authHeader: func() string {
				token, _ := jwtService.GenerateJWT("admin", time.Now().Add(time.Hour))
				return "Bearer " + token
			},
			expectedCode:    http.StatusOK,
			expectedSubject: "admin",
		},
		{
			name:         "Missing header",
			authHeader:   func() string { return "" },
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Wrong scheme",
			authHeader:   func() string { return "Basic abc" },
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Garbage token",
			authHeader:   func() string { return "Bearer not.a.token" },
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "Expired token",
			authHeader: func() string {
				token, _ := jwtService.GenerateJWT("admin", time.Now().Add(-time.Hour))
				return "Bearer " + token
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/admin/sync", nil)
			if header := tt.authHeader(); header != "" {
				r.Header.Set("Authorization", header)
			}
			w := httptest.NewRecorder()

			protected.ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, tt.expectedSubject, w.Header().Get("X-Subject"))
			}
		})
	}
}
