package memory

import (
	"context"
	"sync"

	"github.com/sandevgo/brandgen/internal/core"
)

// Kits holds one brand kit per session.
type Kits struct {
	mu   sync.Mutex
	kits map[string]core.BrandKit
}

func NewKits() *Kits {
	return &Kits{kits: make(map[string]core.BrandKit)}
}

func (k *Kits) SaveKit(ctx context.Context, sessionID string, kit core.BrandKit) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.kits[sessionID] = kit
	return nil
}

func (k *Kits) GetKit(ctx context.Context, sessionID string) (core.BrandKit, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.kits[sessionID], nil
}
