package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"milkman/pkg/apperr"
)

func TestErrorHandler(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		kind   string
		msg    string
	}{
		{"validation", apperr.Validation("name is required"), 400, "validation", "name is required"},
		{"store", apperr.Store("insert customer", errors.New("disk full")), 500, "store", "insert customer failed: disk full"},
		{"route", echo.ErrNotFound, 404, "not_found", "Not Found"},
		{"method", echo.ErrMethodNotAllowed, 405, "validation", "Method Not Allowed"},
		{"plain", errors.New("boom"), 500, "internal", "internal error"},
	}

	e := echo.New()
	h := ErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), rec)
		h(tc.err, c)

		if rec.Code != tc.status {
			t.Fatalf("%s: status=%d want %d", tc.name, rec.Code, tc.status)
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: body not json: %v", tc.name, err)
		}
		if body["kind"] != tc.kind || body["error"] != tc.msg {
			t.Fatalf("%s: body=%v", tc.name, body)
		}
	}
}

func TestErrorHandlerHead(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodHead, "/x", nil), rec)
	ErrorHandler(nil)(apperr.Validation("bad"), c)
	if rec.Code != 400 || rec.Body.Len() != 0 {
		t.Fatalf("HEAD: status=%d body=%q", rec.Code, rec.Body.String())
	}
}
