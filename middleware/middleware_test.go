package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(buf *bytes.Buffer) (*gin.Engine, *string) {
	var seen string
	r := gin.New()
	r.Use(RequestLogger(slog.New(slog.NewJSONHandler(buf, nil))))
	r.GET("/ping", func(c *gin.Context) {
		seen = RequestID(c)
		c.Status(http.StatusNoContent)
	})
	return r, &seen
}

func TestRequestLoggerAssignsID(t *testing.T) {
	var buf bytes.Buffer
	r, seen := newRouter(&buf)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NotEmpty(t, *seen)
	assert.Equal(t, *seen, w.Header().Get(RequestIDHeader))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request completed", entry["msg"])
	assert.Equal(t, *seen, entry["request_id"])
	assert.Equal(t, "/ping", entry["path"])
	assert.EqualValues(t, http.StatusNoContent, entry["status"])
}

func TestRequestLoggerKeepsCallerID(t *testing.T) {
	var buf bytes.Buffer
	r, seen := newRouter(&buf)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", *seen)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name    string
		origins []string
		origin  string
		want    string
	}{
		{"any origin", nil, "http://pos.local", "*"},
		{"listed origin", []string{"http://pos.local"}, "http://pos.local", "http://pos.local"},
		{"unlisted origin", []string{"http://pos.local"}, "http://evil.local", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(CORS(tt.origins))
			r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/ping", nil)
			req.Header.Set("Origin", tt.origin)
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
