package adapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFinder struct {
	got []string
}

func (f *stubFinder) Find(tokens []string) ([]string, []string, error) {
	f.got = tokens
	for _, token := range tokens {
		if token == "H" {
			return nil, nil, errors.New(`unrecognized note "H"`)
		}
	}

	return []string{"C", "E", "G"}, []string{"MC", "mA"}, nil
}

func TestHTTPServer_GetKeys(t *testing.T) {
	finder := &stubFinder{}
	srv := NewHTTPServer(finder, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/keys?notes=C,E%20G", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"C", "E", "G"}, finder.got)

	var body keysResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, []string{"MC", "mA"}, body.Keys)
}

func TestHTTPServer_PostKeys(t *testing.T) {
	finder := &stubFinder{}
	srv := NewHTTPServer(finder, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/keys", strings.NewReader(`{"notes":["C#","Db"]}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"C#", "Db"}, finder.got)
}

func TestHTTPServer_BadRequests(t *testing.T) {
	srv := NewHTTPServer(&stubFinder{}, nil)

	t.Run("unrecognized note", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/keys?notes=H", nil))

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body errorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Contains(t, body.Error, "unrecognized note")
	})

	t.Run("invalid body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/keys", strings.NewReader("{")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHTTPServer_HealthAndCORS(t *testing.T) {
	srv := NewHTTPServer(&stubFinder{}, []string{"https://example.com"})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://example.com")

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}
