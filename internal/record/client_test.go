package record

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mids/internal/model"
)

func newGBIFServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/occurrence/{id}", func(w http.ResponseWriter, r *http.Request) {
		switch r.PathValue("id") {
		case "42":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"key": 42, "occurrenceID": "urn:catalog:X:42", "decimalLatitude": 52.1}`))
		case "500":
			http.Error(w, "boom", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	})
	mux.HandleFunc("GET /record.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"catalogNumber": "RMNH.1"}`))
	})
	mux.HandleFunc("GET /list.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func TestFetchGBIF(t *testing.T) {
	srv := newGBIFServer(t)
	client := NewClient(WithHTTPClient(srv.Client()), WithGBIFBaseURL(srv.URL+"/v1/"))

	rec, err := client.FetchGBIF(t.Context(), 42)
	require.NoError(t, err)
	assert.Equal(t, "urn:catalog:X:42", rec["occurrenceID"])
	assert.Equal(t, json.Number("52.1"), rec["decimalLatitude"])

	_, err = client.FetchGBIF(t.Context(), 7)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "no GBIF occurrence with ID 7")

	_, err = client.FetchGBIF(t.Context(), 500)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "500")
}

func TestFetchURL(t *testing.T) {
	srv := newGBIFServer(t)
	client := NewClient(WithHTTPClient(srv.Client()))

	rec, err := client.FetchURL(t.Context(), srv.URL+"/record.json")
	require.NoError(t, err)
	assert.Equal(t, model.Record{"catalogNumber": "RMNH.1"}, rec)

	_, err = client.FetchURL(t.Context(), srv.URL+"/list.json")
	assert.ErrorIs(t, err, ErrNotObject)

	_, err = client.FetchURL(t.Context(), srv.URL+"/nothing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = client.FetchURL(t.Context(), "ftp://example.org/record.json")
	assert.ErrorContains(t, err, "unsupported scheme")
}

func TestFetchCancelled(t *testing.T) {
	srv := newGBIFServer(t)
	client := NewClient(WithHTTPClient(srv.Client()))

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := client.FetchURL(ctx, srv.URL+"/record.json")
	assert.ErrorIs(t, err, context.Canceled)
}
