package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/trivial-mood-tracker/internal/api"
	"github.com/Tiliavir/trivial-mood-tracker/internal/model"
	"github.com/Tiliavir/trivial-mood-tracker/internal/moodlog"
	"github.com/Tiliavir/trivial-mood-tracker/internal/store"
)

var now = time.Date(2025, 9, 30, 9, 0, 0, 0, time.UTC)

func newServer(t *testing.T) (*api.Server, *moodlog.Engine) {
	t.Helper()
	e := moodlog.New(store.New(),
		moodlog.WithLocation(time.UTC),
		moodlog.WithClock(func() time.Time { return now }))
	return api.NewServer(api.Config{Addr: ":0"}, e, nil), e
}

func do(t *testing.T, srv *api.Server, method, path, body string) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := srv.App().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	}
	return resp.StatusCode, out
}

func TestHealthz(t *testing.T) {
	srv, _ := newServer(t)
	code, body := do(t, srv, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
}

func TestListMoods(t *testing.T) {
	srv, _ := newServer(t)
	code, body := do(t, srv, http.MethodGet, "/api/v1/moods", "")
	require.Equal(t, http.StatusOK, code)
	items := body["data"].([]any)
	assert.Len(t, items, 9)
	assert.Equal(t, "happy", items[0].(map[string]any)["mood"])
}

func TestCreateAndQueryDay(t *testing.T) {
	srv, e := newServer(t)

	code, body := do(t, srv, http.MethodPost, "/api/v1/entries", `{"mood":"happy"}`)
	require.Equal(t, http.StatusCreated, code)
	created := body["data"].(map[string]any)
	assert.Equal(t, "happy", created["mood"])
	assert.Equal(t, "2025-09-30T09:00:00Z", created["captured_at"])

	code, _ = do(t, srv, http.MethodPost, "/api/v1/entries", `{"mood":"😢"}`)
	require.Equal(t, http.StatusCreated, code)
	require.Len(t, e.All(), 2)

	code, body = do(t, srv, http.MethodGet, "/api/v1/days/2025-09-30/entries", "")
	require.Equal(t, http.StatusOK, code)
	items := body["data"].([]any)
	require.Len(t, items, 2)
	assert.Equal(t, created["id"], items[0].(map[string]any)["id"])
	assert.Equal(t, "sad", items[1].(map[string]any)["mood"])

	code, body = do(t, srv, http.MethodGet, "/api/v1/days/2025-09-30/summary", "")
	require.Equal(t, http.StatusOK, code)
	doc := body["data"].(map[string]any)
	assert.EqualValues(t, 2, doc["total"])
	assert.Equal(t, map[string]any{"happy": float64(1), "sad": float64(1)}, doc["counts"])
	rows := doc["rows"].([]any)
	require.Len(t, rows, 2)
	assert.EqualValues(t, 50, rows[0].(map[string]any)["percent"])
}

func TestEmptyDay(t *testing.T) {
	srv, _ := newServer(t)

	code, body := do(t, srv, http.MethodGet, "/api/v1/days/2025-12-24/entries", "")
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, body["data"])
	assert.NotNil(t, body["data"])

	code, body = do(t, srv, http.MethodGet, "/api/v1/days/2025-12-24/summary", "")
	require.Equal(t, http.StatusOK, code)
	doc := body["data"].(map[string]any)
	assert.EqualValues(t, 0, doc["total"])
	assert.Empty(t, doc["counts"])
}

func TestCreateInvalid(t *testing.T) {
	srv, e := newServer(t)

	code, body := do(t, srv, http.MethodPost, "/api/v1/entries", `{"mood":"grumpy"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body["error"], "grumpy")

	code, _ = do(t, srv, http.MethodPost, "/api/v1/entries", `{bad`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Empty(t, e.All())
}

func TestBadDate(t *testing.T) {
	srv, _ := newServer(t)
	code, body := do(t, srv, http.MethodGet, "/api/v1/days/yesterday/entries", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body["error"], "invalid date")
}

func TestEditEntry(t *testing.T) {
	srv, e := newServer(t)
	entry, err := e.LogMood(model.Happy)
	require.NoError(t, err)

	code, body := do(t, srv, http.MethodPatch, "/api/v1/entries/"+entry.ID(), `{"mood":"loving"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "loving", body["data"].(map[string]any)["mood"])
	assert.Equal(t, model.Loving, entry.Mood())
	assert.Equal(t, now, entry.CapturedAt())

	code, _ = do(t, srv, http.MethodPatch, "/api/v1/entries/"+entry.ID(), `{"mood":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, model.Loving, entry.Mood())

	code, _ = do(t, srv, http.MethodPatch, "/api/v1/entries/unknown", `{"mood":"sad"}`)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestDeleteEntry(t *testing.T) {
	srv, e := newServer(t)
	entry, err := e.LogMood(model.Happy)
	require.NoError(t, err)

	code, _ := do(t, srv, http.MethodDelete, "/api/v1/entries/"+entry.ID(), "")
	assert.Equal(t, http.StatusNoContent, code)
	assert.Empty(t, e.All())

	code, _ = do(t, srv, http.MethodDelete, "/api/v1/entries/"+entry.ID(), "")
	assert.Equal(t, http.StatusNotFound, code)
}
