package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/commute-stats/internal/middleware"
)

// echoHandler reads the whole body and reports a read failure as 500.
var echoHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	if _, err := io.ReadAll(r.Body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
})

// TestMaxBodySize_underLimitPasses verifies that a request within the limit
// reaches the downstream handler untouched.
func TestMaxBodySize_underLimitPasses(t *testing.T) {
	h := middleware.NewMaxBodySizeHandler(64)(echoHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader("[]"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

// TestMaxBodySize_overLimitRejected verifies that a declared Content-Length
// above the limit is rejected with 413 before the handler runs.
func TestMaxBodySize_overLimitRejected(t *testing.T) {
	h := middleware.NewMaxBodySizeHandler(8)(echoHandler)

	// httptest.NewRequest sets Content-Length from the strings.Reader size.
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(strings.Repeat("x", 64)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
