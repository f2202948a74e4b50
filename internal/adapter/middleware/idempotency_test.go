package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// helper: new Echo with the middleware and a simple route
func setupEcho(rdb *redis.Client, ttl time.Duration, handler echo.HandlerFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(Idempotency(rdb, ttl, nil))
	e.POST("/employees", handler)
	e.GET("/employees", handler) // for non-mutating bypass test
	return e
}

func mkJSONBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return bytes.NewReader(b)
}

func doReq(t *testing.T, e *echo.Echo, method, path string, body io.Reader, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func newMiniredisClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, rdb
}

func okCreatedHandler(c echo.Context) error {
	return c.JSON(http.StatusCreated, map[string]any{"ok": true})
}

func Test_BypassOnGET(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 30*time.Second, func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "get ok"})
	})
	rec := doReq(t, e, http.MethodGet, "/employees", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func Test_BypassWithoutHeader(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	calls := 0
	e := setupEcho(rdb, 30*time.Second, func(c echo.Context) error {
		calls++
		return okCreatedHandler(c)
	})

	// no Idempotency-Key: every request reaches the handler
	for i := 0; i < 2; i++ {
		rec := doReq(t, e, http.MethodPost, "/employees", mkJSONBody(t, map[string]int{"x": 1}), nil)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
	}
	if calls != 2 {
		t.Fatalf("handler calls = %d, want 2", calls)
	}
}

func Test_InvalidKeyFormat(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 30*time.Second, okCreatedHandler)

	rec := doReq(t, e, http.MethodPost, "/employees", mkJSONBody(t, map[string]int{"x": 1}),
		map[string]string{"Idempotency-Key": "NOT-VALID"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid key => want 400, got %d", rec.Code)
	}
}

func Test_ReplaysCompletedResponse(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	calls := 0
	e := setupEcho(rdb, 30*time.Second, func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusCreated, map[string]any{"id": "42"})
	})

	hdr := map[string]string{"Idempotency-Key": strings.Repeat("a", 32)}
	body := map[string]string{"name": "Jane"}

	first := doReq(t, e, http.MethodPost, "/employees", mkJSONBody(t, body), hdr)
	if first.Code != http.StatusCreated {
		t.Fatalf("first: expected 201, got %d", first.Code)
	}
	second := doReq(t, e, http.MethodPost, "/employees", mkJSONBody(t, body), hdr)
	if second.Code != http.StatusCreated {
		t.Fatalf("replay: expected 201, got %d", second.Code)
	}
	if calls != 1 {
		t.Fatalf("handler calls = %d, want 1 (second must replay)", calls)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatalf("replayed body differs:\n%s\n%s", first.Body.String(), second.Body.String())
	}
}

func Test_ReplaysBodylessDelete(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	calls := 0
	e := echo.New()
	e.HideBanner = true
	e.Use(Idempotency(rdb, 30*time.Second, nil))
	e.DELETE("/employees/:id", func(c echo.Context) error {
		calls++
		return c.NoContent(http.StatusNoContent)
	})

	hdr := map[string]string{"Idempotency-Key": strings.Repeat("d", 32)}
	first := doReq(t, e, http.MethodDelete, "/employees/3", nil, hdr)
	if first.Code != http.StatusNoContent {
		t.Fatalf("first: expected 204, got %d", first.Code)
	}

	// the retry replays the stored 204 instead of reporting a conflict
	second := doReq(t, e, http.MethodDelete, "/employees/3", nil, hdr)
	if second.Code != http.StatusNoContent {
		t.Fatalf("replay: expected 204, got %d (%s)", second.Code, second.Body.String())
	}
	if calls != 1 {
		t.Fatalf("handler calls = %d, want 1 (second must replay)", calls)
	}
	if second.Body.Len() != 0 {
		t.Fatalf("replayed 204 must have no body, got %q", second.Body.String())
	}
}

func Test_ConflictOnBodyMismatch(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 30*time.Second, okCreatedHandler)

	hdr := map[string]string{"Idempotency-Key": strings.Repeat("b", 32)}
	if rec := doReq(t, e, http.MethodPost, "/employees", mkJSONBody(t, map[string]int{"x": 1}), hdr); rec.Code != http.StatusCreated {
		t.Fatalf("first: expected 201, got %d", rec.Code)
	}
	rec := doReq(t, e, http.MethodPost, "/employees", mkJSONBody(t, map[string]int{"x": 2}), hdr)
	if rec.Code != http.StatusConflict {
		t.Fatalf("body mismatch => want 409, got %d", rec.Code)
	}
}

func Test_StoreUnavailable(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	mr.Close() // kill the store up-front
	e := setupEcho(rdb, 30*time.Second, okCreatedHandler)

	rec := doReq(t, e, http.MethodPost, "/employees", mkJSONBody(t, map[string]int{"x": 1}),
		map[string]string{"Idempotency-Key": strings.Repeat("c", 32)})
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("want 503, got %d", rec.Code)
	}
}
