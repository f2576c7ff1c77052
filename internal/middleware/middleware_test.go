package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/SergeyBogomolovv/order-tracker/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	testCases := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "ok", status: http.StatusOK, wantLevel: "level=INFO"},
		{name: "client error", status: http.StatusNotFound, wantLevel: "level=WARN"},
		{name: "server error", status: http.StatusInternalServerError, wantLevel: "level=ERROR"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			r := chi.NewRouter()
			r.Use(chimw.RequestID)
			r.Use(middleware.Logger(logger))
			r.Use(middleware.Metrics)
			r.Get("/api/orders/{id}", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte("{}"))
			})

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/orders/5?x=1", nil))

			assert.Equal(t, tc.status, rr.Code)
			out := buf.String()
			assert.Contains(t, out, tc.wantLevel)
			assert.Contains(t, out, "path=/api/orders/5")
			assert.Contains(t, out, "status="+strconv.Itoa(tc.status))
			assert.Contains(t, out, "bytes=2")
			assert.Contains(t, out, "request_id=")
		})
	}
}
