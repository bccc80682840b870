package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBody(contentType, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.Write([]byte(body))
	})
}

func TestCompression(t *testing.T) {
	t.Run("html is gzipped", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Accept-Encoding", "br, gzip")
		w := httptest.NewRecorder()

		Compression(writeBody("text/html; charset=utf-8", "<p>report</p>")).ServeHTTP(w, req)

		assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
		assert.Contains(t, w.Header().Values("Vary"), "Accept-Encoding")
		gz, err := gzip.NewReader(w.Body)
		require.NoError(t, err)
		body, err := io.ReadAll(gz)
		require.NoError(t, err)
		assert.Equal(t, "<p>report</p>", string(body))
	})

	t.Run("binary content passes through", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		w := httptest.NewRecorder()

		Compression(writeBody("image/png", "\x89PNG")).ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Content-Encoding"))
		assert.Equal(t, "\x89PNG", w.Body.String())
	})

	t.Run("already encoded content passes through", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		w := httptest.NewRecorder()
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain")
			w.Header().Set("Content-Encoding", "br")
			w.Write([]byte("x"))
		})

		Compression(handler).ServeHTTP(w, req)

		assert.Equal(t, "br", w.Header().Get("Content-Encoding"))
		assert.Equal(t, "x", w.Body.String())
	})

	t.Run("client without gzip gets plain body", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Accept-Encoding", "gzip;q=0, identity")
		w := httptest.NewRecorder()

		Compression(writeBody("text/html", "<p>report</p>")).ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Content-Encoding"))
		assert.Equal(t, "<p>report</p>", w.Body.String())
	})
}

func TestCORSMiddleware(t *testing.T) {
	origins := []string{"https://portal.example.com"}

	t.Run("listed origin is echoed", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/sites/S1/inspection-report", nil)
		req.Header.Set("Origin", "https://portal.example.com")
		w := httptest.NewRecorder()

		CORSMiddleware(origins)(writeBody("text/html", "ok")).ServeHTTP(w, req)

		assert.Equal(t, "https://portal.example.com", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "X-Report-Id")
		assert.Equal(t, "ok", w.Body.String())
	})

	t.Run("unlisted origin gets no headers but is still served", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/sites/S1/inspection-report", nil)
		req.Header.Set("Origin", "https://elsewhere.example.com")
		w := httptest.NewRecorder()

		CORSMiddleware(origins)(writeBody("text/html", "ok")).ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("preflight from unlisted origin is refused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/sites/S1/inspection-report", nil)
		req.Header.Set("Origin", "https://elsewhere.example.com")
		w := httptest.NewRecorder()

		CORSMiddleware(origins)(writeBody("text/html", "ok")).ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("preflight lists actor headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/sites/S1/inspection-report", nil)
		req.Header.Set("Origin", "https://portal.example.com")
		w := httptest.NewRecorder()

		CORSMiddleware(origins)(writeBody("text/html", "ok")).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "X-Actor-Role")
		assert.Equal(t, "GET, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	})
}

func TestLoggingMiddleware_CapturesStatus(t *testing.T) {
	var captured *loggingResponseWriter
	handler := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = w.(*loggingResponseWriter)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"service unavailable"}`))
	}))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, httptest.NewRequest("GET", "/ready", nil))

	require.NotNil(t, captured)
	assert.Equal(t, http.StatusServiceUnavailable, captured.statusCode)
	assert.Equal(t, len(`{"error":"service unavailable"}`), captured.bytes)
}
