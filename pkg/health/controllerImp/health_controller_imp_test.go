package controllerImp

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"

	"milkman/database"
)

func serve(h *HealthCtrl) *httptest.ResponseRecorder {
	e := echo.New()
	h.Register(e)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	return rec
}

func TestHealthOK(t *testing.T) {
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "h.db"), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer database.Close(db)

	rec := serve(NewHealthCtrl(db))
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	var body struct {
		Checks struct {
			Database check `json:"database"`
		} `json:"checks"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !body.Checks.Database.OK {
		t.Fatalf("database check not ok: %+v", body)
	}
}

func TestHealthUnavailable(t *testing.T) {
	if rec := serve(NewHealthCtrl(nil)); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("nil db: status=%d", rec.Code)
	}

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "h.db"), nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	database.Close(db)
	if rec := serve(NewHealthCtrl(db)); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("closed db: status=%d", rec.Code)
	}
}
