package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkarwowski/regcheck"
	regchttp "github.com/tkarwowski/regcheck/http"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>rules</body></html>"))
	}))
	t.Cleanup(srv.Close)

	f := regchttp.NewFetcher()
	t.Cleanup(func() { _ = f.Close() })

	html, err := f.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Contains(t, html, "rules")
}

func TestFetcher_Fetch_NonOKStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	f := regchttp.NewFetcher()

	_, err := f.Fetch(context.Background(), srv.URL)

	require.Error(t, err)
	assert.Equal(t, regcheck.EUNPROCESSABLE, regcheck.ErrorCode(err))
	assert.Contains(t, regcheck.ErrorMessage(err), "HTTP 404")
}

func TestFetcher_Fetch_ContextCanceled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	f := regchttp.NewFetcher()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Fetch(ctx, srv.URL)

	require.Error(t, err)
}
