package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MikeRez0/storykiosk/internal/adapter/config"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestFetcher_Fetch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ok.pdf", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("%PDF-1.4 story"))
	})
	mux.HandleFunc("/big.pdf", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 64)))
	})
	mux.HandleFunc("/empty.pdf", func(w http.ResponseWriter, r *http.Request) {})
	mux.HandleFunc("/slow.pdf", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	f, err := NewFetcher(&config.Content{MaxBytes: 32}, srv.Client(), zap.NewNop())
	assert.NoError(t, err)

	data, err := f.Fetch(context.Background(), srv.URL+"/ok.pdf")
	assert.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 story"), data)

	_, err = f.Fetch(context.Background(), srv.URL+"/missing.pdf")
	assert.Error(t, err)

	_, err = f.Fetch(context.Background(), srv.URL+"/big.pdf")
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = f.Fetch(context.Background(), srv.URL+"/empty.pdf")
	assert.Error(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = f.Fetch(ctx, srv.URL+"/slow.pdf")
	assert.Error(t, err)

	_, err = f.Fetch(context.Background(), "::not a url")
	assert.Error(t, err)
}

func TestNewFetcher_BadLimit(t *testing.T) {
	_, err := NewFetcher(&config.Content{}, http.DefaultClient, zap.NewNop())
	assert.Error(t, err)
}
