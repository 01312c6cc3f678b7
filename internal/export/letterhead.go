package export

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tasatop/schedule-engine/internal/repository"
	customError "github.com/tasatop/schedule-engine/pkg/errors"
)

// Remote logos should never be this large; anything bigger is refused.
const maxLetterheadBytes = 5 << 20

// LetterheadFetcher resolves the letterhead image for exported
// documents. Lookup order: in-process copy, asset cache, remote fetch.
// Failure at every level is non-fatal: exports degrade to a text-only
// letterhead.
type LetterheadFetcher struct {
	url    string
	client *http.Client
	assets repository.AssetCache
	logger *zap.Logger

	mu     sync.Mutex
	cached []byte
}

func NewLetterheadFetcher(url string, timeout time.Duration, assets repository.AssetCache, logger *zap.Logger) *LetterheadFetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LetterheadFetcher{
		url:    url,
		client: &http.Client{Timeout: timeout},
		assets: assets,
		logger: logger,
	}
}

// Fetch returns the letterhead image bytes, fetching remotely only when
// no cached copy exists.
func (f *LetterheadFetcher) Fetch(ctx context.Context) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.cached) > 0 {
		return f.cached, nil
	}

	if f.assets != nil {
		if data, ok := f.assets.GetLetterhead(ctx); ok {
			f.cached = data
			return data, nil
		}
	}

	return f.refreshLocked(ctx)
}

// Refresh fetches the remote image unconditionally and rewrites both
// cache levels. The warm-up scheduler calls this on a cron.
func (f *LetterheadFetcher) Refresh(ctx context.Context) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.refreshLocked(ctx)
}

func (f *LetterheadFetcher) refreshLocked(ctx context.Context) ([]byte, error) {
	if f.url == "" {
		return nil, customError.WrapLetterheadUnavailable(customError.ErrLetterheadUnavailable)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, customError.WrapLetterheadUnavailable(err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, customError.WrapLetterheadUnavailable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, customError.WrapLetterheadUnavailable(fmt.Errorf("HTTP %d", resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxLetterheadBytes+1))
	if err != nil {
		return nil, customError.WrapLetterheadUnavailable(err)
	}
	if len(data) == 0 || len(data) > maxLetterheadBytes {
		return nil, customError.WrapLetterheadUnavailable(fmt.Errorf("unusable letterhead size %d", len(data)))
	}

	f.cached = data
	if f.assets != nil {
		if err := f.assets.SetLetterhead(ctx, data); err != nil {
			f.logger.Warn("letterhead cache write failed", zap.Error(err))
		}
	}

	f.logger.Info("letterhead refreshed", zap.Int("bytes", len(data)))
	return data, nil
}
