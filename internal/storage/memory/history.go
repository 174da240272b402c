package memory

import (
	"context"
	"sync"

	"github.com/sandevgo/brandgen/internal/core"
)

// History keeps generated assets in process memory. Records are append-only
// and live for the lifetime of the process.
type History struct {
	mu     sync.Mutex
	assets []core.Asset
}

func NewHistory() *History {
	return &History{}
}

func (h *History) AddAsset(ctx context.Context, asset core.Asset) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.assets = append(h.assets, asset)
	return nil
}

func (h *History) ListAssets(ctx context.Context, sessionID string, limit int) ([]core.Asset, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var out []core.Asset
	for i := len(h.assets) - 1; i >= 0; i-- {
		if h.assets[i].SessionID != sessionID {
			continue
		}
		out = append(out, h.assets[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (h *History) GetAsset(ctx context.Context, sessionID, assetID string) (core.Asset, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, a := range h.assets {
		if a.SessionID == sessionID && a.ID == assetID {
			return a, nil
		}
	}
	return core.Asset{}, core.ErrAssetNotFound
}
