package report

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fetchFrom(t *testing.T, handler http.HandlerFunc) ([]Row, error) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL, 2*time.Second)
	return c.Fetch(context.Background())
}

func TestFetchEnvelope(t *testing.T) {
	t.Parallel()

	rows, err := fetchFrom(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write([]byte(`{"totalRecords":1,"data":[{"Number":"17096","CustomerName":"MasTec, Inc."}]}`))
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "17096", rows[0].Str("Number"))
}

func TestFetchBareArray(t *testing.T) {
	t.Parallel()

	rows, err := fetchFrom(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[{"Number":"1"},{"Number":"2"}]`))
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func TestFetchUnexpectedShapeIsEmpty(t *testing.T) {
	t.Parallel()

	rows, err := fetchFrom(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"message":"nothing here"}`))
	})
	require.NoError(t, err)
	require.Empty(t, rows)

	rows, err = fetchFrom(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`"just a string"`))
	})
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestFetchStatusClassification(t *testing.T) {
	t.Parallel()

	cases := []struct {
		status int
		class  FetchClass
	}{
		{http.StatusInternalServerError, FetchServerError},
		{http.StatusBadGateway, FetchServerError},
		{http.StatusNotFound, FetchNotFound},
		{http.StatusUnauthorized, FetchUnauthorized},
		{http.StatusForbidden, FetchUnauthorized},
		{http.StatusTeapot, FetchBadStatus},
	}
	for _, tc := range cases {
		_, err := fetchFrom(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
		})
		require.Error(t, err)
		fe, ok := err.(*FetchError)
		require.True(t, ok)
		require.Equal(t, tc.class, fe.Class, "status %d", tc.status)
		require.Equal(t, tc.status, fe.Status)
		require.NotEmpty(t, fe.Message())
	}
}

func TestFetchMalformedJSON(t *testing.T) {
	t.Parallel()

	_, err := fetchFrom(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data": [`))
	})
	fe, ok := err.(*FetchError)
	require.True(t, ok)
	require.Equal(t, FetchDecode, fe.Class)
}

func TestFetchTransportFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL, time.Second)
	_, err := c.Fetch(context.Background())
	fe, ok := err.(*FetchError)
	require.True(t, ok)
	require.Equal(t, FetchTransport, fe.Class)
}
