package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lucianoaf8/InnSight/internal/auth"
	"github.com/lucianoaf8/InnSight/internal/model"
	"github.com/lucianoaf8/InnSight/internal/store/sqlite"
	"github.com/lucianoaf8/InnSight/pkg/journal"
)

const testToken = "tok-test"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	st, err := sqlite.New(filepath.Join(t.TempDir(), "innsight.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	az := auth.NewStaticAuthorizer(map[string]string{testToken: "user-1"}, false)
	srv := httptest.NewServer(NewRouter(st, az, 2))
	t.Cleanup(srv.Close)
	return srv
}

func doRequest(t *testing.T, method, url, token string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestPingIsUnauthenticated(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(t, "GET", srv.URL+"/api/ping", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	require.Equal(t, "pong", body["message"])
}

func TestMissingTokenIs401(t *testing.T) {
	srv := newTestServer(t)

	for _, ep := range []struct{ method, path string }{
		{"GET", "/api/entries"},
		{"POST", "/api/log-mood"},
		{"GET", "/api/dashboard"},
		{"GET", "/api/intention/today"},
		{"POST", "/api/save-intention"},
	} {
		resp := doRequest(t, ep.method, srv.URL+ep.path, "", map[string]string{})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode, "%s %s", ep.method, ep.path)
		resp.Body.Close()
	}
}

func TestBadTokenIs403(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(t, "GET", srv.URL+"/api/entries", "wrong-token", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestLogMoodAndList(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(t, "POST", srv.URL+"/api/log-mood", testToken, map[string]string{
		"date":    "2025-03-10",
		"time":    "09:30",
		"emojis":  "😊,😎",
		"journal": "good morning",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	require.Equal(t, "Mood logged", body["message"])

	resp = doRequest(t, "GET", srv.URL+"/api/entries", testToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var entries []journal.Entry
	decodeBody(t, resp, &entries)
	require.Len(t, entries, 1)
	require.Equal(t, "😊,😎", entries[0].Emojis)
	// period derived from the 09:30 time
	require.Equal(t, journal.PeriodMorning, entries[0].Period)
}

func TestLogMoodDefaultsDateAndTime(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(t, "POST", srv.URL+"/api/log-mood", testToken, map[string]string{
		"journal": "stamped now",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, "GET", srv.URL+"/api/entries", testToken, nil)
	var entries []journal.Entry
	decodeBody(t, resp, &entries)
	require.Len(t, entries, 1)
	require.Equal(t, journal.Today(), entries[0].Date)
	require.NotEmpty(t, entries[0].Time)
	require.True(t, entries[0].Period.Valid())
}

func TestLogMoodValidation(t *testing.T) {
	srv := newTestServer(t)

	cases := []map[string]string{
		{"date": "not-a-date"},
		{"time": "25:99"},
		{"period": "night"},
		{"emojis": "😊,😎,🤔,😮"},
	}
	for _, payload := range cases {
		resp := doRequest(t, "POST", srv.URL+"/api/log-mood", testToken, payload)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, "payload %v", payload)
		resp.Body.Close()
	}
}

func TestEntriesEmptyIsJSONArray(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(t, "GET", srv.URL+"/api/entries", testToken, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var raw json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	require.Equal(t, "[", string(raw[:1]), "empty history must serialize as [], got %s", raw)
}

func TestDashboard(t *testing.T) {
	srv := newTestServer(t)

	// three consecutive days, two entries on the latest
	for _, e := range []map[string]string{
		{"date": "2025-03-08", "time": "09:00"},
		{"date": "2025-03-09", "time": "09:00"},
		{"date": "2025-03-10", "time": "09:00"},
		{"date": "2025-03-10", "time": "21:00"},
	} {
		resp := doRequest(t, "POST", srv.URL+"/api/log-mood", testToken, e)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := doRequest(t, "GET", srv.URL+"/api/dashboard", testToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var dash model.DashboardSummary
	decodeBody(t, resp, &dash)
	require.Equal(t, 3, dash.Streak)
	// default history policy is two days
	require.Len(t, dash.Days, 2)
	require.Equal(t, "2025-03-10", dash.Days[0].Date)
	require.Len(t, dash.Days[0].Entries, 2)
	require.Equal(t, "21:00", dash.Days[0].Entries[0].Time)

	// ?all=true lifts the limit, streak unchanged
	resp = doRequest(t, "GET", srv.URL+"/api/dashboard?all=true", testToken, nil)
	decodeBody(t, resp, &dash)
	require.Equal(t, 3, dash.Streak)
	require.Len(t, dash.Days, 3)

	// ?days=1 narrows it
	resp = doRequest(t, "GET", srv.URL+"/api/dashboard?days=1", testToken, nil)
	decodeBody(t, resp, &dash)
	require.Len(t, dash.Days, 1)

	// invalid days is rejected
	resp = doRequest(t, "GET", srv.URL+"/api/dashboard?days=-1", testToken, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestIntentionRoundtrip(t *testing.T) {
	srv := newTestServer(t)

	// unset day reads as empty string
	resp := doRequest(t, "GET", srv.URL+"/api/intention/today", testToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	decodeBody(t, resp, &body)
	require.Equal(t, "", body["intention"])

	resp = doRequest(t, "POST", srv.URL+"/api/save-intention", testToken, map[string]string{"intention": "be present"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &body)
	require.Equal(t, "Saved", body["message"])

	// saving again overwrites
	resp = doRequest(t, "POST", srv.URL+"/api/save-intention", testToken, map[string]string{"intention": "drink water"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, "GET", srv.URL+"/api/intention/today", testToken, nil)
	decodeBody(t, resp, &body)
	require.Equal(t, "drink water", body["intention"])
}

func TestSaveIntentionTooLong(t *testing.T) {
	srv := newTestServer(t)

	long := make([]byte, 256)
	for i := range long {
		long[i] = 'a'
	}
	resp := doRequest(t, "POST", srv.URL+"/api/save-intention", testToken, map[string]string{"intention": string(long)})
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUsersAreIsolated(t *testing.T) {
	st, err := sqlite.New(filepath.Join(t.TempDir(), "innsight.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	az := auth.NewStaticAuthorizer(map[string]string{
		"tok-a": "user-a",
		"tok-b": "user-b",
	}, false)
	srv := httptest.NewServer(NewRouter(st, az, 2))
	t.Cleanup(srv.Close)

	resp := doRequest(t, "POST", srv.URL+"/api/log-mood", "tok-a", map[string]string{
		"date": "2025-03-10", "time": "09:00", "journal": "mine",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, "GET", srv.URL+"/api/entries", "tok-b", nil)
	var entries []journal.Entry
	decodeBody(t, resp, &entries)
	require.Empty(t, entries)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(t, "GET", srv.URL+"/api/health", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	decodeBody(t, resp, &body)
	require.Equal(t, "healthy", body["status"])
}

func TestInvalidJSONBody(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest("POST", srv.URL+"/api/log-mood", bytes.NewBufferString("{not json"))
	require.NoError(t, err)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", testToken))
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
