package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MikeRez0/storykiosk/internal/adapter/config"
	"go.uber.org/zap"
)

var ErrTooLarge = errors.New("content exceeds size limit")

// Fetcher downloads delivery references that are direct HTTP(S) links.
type Fetcher struct {
	http     *http.Client
	maxBytes int64
	logger   *zap.Logger
}

func NewFetcher(conf *config.Content, httpClient *http.Client, log *zap.Logger) (*Fetcher, error) {
	if conf.MaxBytes <= 0 {
		return nil, fmt.Errorf("content size limit must be positive, got %d", conf.MaxBytes)
	}
	return &Fetcher{http: httpClient, maxBytes: conf.MaxBytes, logger: log}, nil
}

func (f *Fetcher) Fetch(ctx context.Context, deliveryRef string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, deliveryRef, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("error on %s: %w", deliveryRef, err)
	}

	f.logger.Debug("Fetching content", zap.String("ref", deliveryRef))
	resp, err := f.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request error %s: %w", deliveryRef, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad response %d for %s", resp.StatusCode, deliveryRef)
	}
	if resp.ContentLength > f.maxBytes {
		return nil, ErrTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", deliveryRef, err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, ErrTooLarge
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty content at %s", deliveryRef)
	}
	return data, nil
}
