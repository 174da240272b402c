package core

import "context"

type AssetRepository interface {
	AddAsset(ctx context.Context, asset Asset) error
	// ListAssets returns up to limit records for the session, newest first.
	ListAssets(ctx context.Context, sessionID string, limit int) ([]Asset, error)
	GetAsset(ctx context.Context, sessionID, assetID string) (Asset, error)
}

// KitRepository keeps per-session brand kits. GetKit returns a zero kit
// for a session that has not uploaded anything yet.
type KitRepository interface {
	SaveKit(ctx context.Context, sessionID string, kit BrandKit) error
	GetKit(ctx context.Context, sessionID string) (BrandKit, error)
}
