package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func corsRequest(t *testing.T, cors *CORSMiddleware, method, origin string) *httptest.ResponseRecorder {
	t.Helper()

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(method, "/climbers/", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	recorder := httptest.NewRecorder()
	cors.Handler(next).ServeHTTP(recorder, req)

	if method == http.MethodOptions {
		assert.False(t, called, "preflight must not reach the next handler")
	} else {
		assert.True(t, called, "request must reach the next handler")
	}
	return recorder
}

func TestCORSAllowedOrigin(t *testing.T) {
	cors := NewCORSMiddleware([]string{"http://localhost:4200"})

	recorder := corsRequest(t, cors, http.MethodGet, "http://localhost:4200")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "http://localhost:4200", recorder.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", recorder.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, recorder.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestCORSDisallowedOrigin(t *testing.T) {
	cors := NewCORSMiddleware([]string{"http://localhost:4200"})

	recorder := corsRequest(t, cors, http.MethodGet, "http://evil.example")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflight(t *testing.T) {
	cors := NewCORSMiddleware([]string{"http://localhost:4200"})

	recorder := corsRequest(t, cors, http.MethodOptions, "http://localhost:4200")
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "http://localhost:4200", recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSWildcard(t *testing.T) {
	cors := NewCORSMiddleware([]string{"*"})

	recorder := corsRequest(t, cors, http.MethodGet, "http://anywhere.example")
	assert.Equal(t, "http://anywhere.example", recorder.Header().Get("Access-Control-Allow-Origin"))
}
