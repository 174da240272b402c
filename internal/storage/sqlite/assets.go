package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sandevgo/brandgen/internal/core"
	"github.com/sandevgo/brandgen/pkg/log"
)

// Assets is the durable asset history.
type Assets struct {
	db *sql.DB
}

func NewAssets(db *sql.DB) *Assets {
	return &Assets{db: db}
}

func (a *Assets) AddAsset(ctx context.Context, asset core.Asset) error {
	query := `INSERT INTO assets (id, session_id, kind, prompt, content, blob, mime, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := a.db.ExecContext(ctx, query,
		asset.ID, asset.SessionID, string(asset.Kind), asset.Prompt, asset.Content, asset.Blob, asset.MIME, asset.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert asset: %w", err)
	}
	return nil
}

func (a *Assets) ListAssets(ctx context.Context, sessionID string, limit int) ([]core.Asset, error) {
	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}
	query := `SELECT id, kind, prompt, content, blob, mime, created_at FROM assets WHERE session_id = ? ORDER BY created_at DESC, rowid DESC LIMIT ?`

	rows, err := a.db.QueryContext(ctx, query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	var assets []core.Asset
	for rows.Next() {
		asset := core.Asset{SessionID: sessionID}
		var kind string
		var content, mime sql.NullString

		if err := rows.Scan(&asset.ID, &kind, &asset.Prompt, &content, &asset.Blob, &mime, &asset.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		asset.Kind = core.AssetKind(kind)
		asset.Content = content.String
		asset.MIME = mime.String

		assets = append(assets, asset)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.FromCtx(ctx).Debug().Int("count", len(assets)).Msg("loaded asset history")
	return assets, nil
}

func (a *Assets) GetAsset(ctx context.Context, sessionID, assetID string) (core.Asset, error) {
	query := `SELECT id, kind, prompt, content, blob, mime, created_at FROM assets WHERE session_id = ? AND id = ?`

	asset := core.Asset{SessionID: sessionID}
	var kind string
	var content, mime sql.NullString

	err := a.db.QueryRowContext(ctx, query, sessionID, assetID).
		Scan(&asset.ID, &kind, &asset.Prompt, &content, &asset.Blob, &mime, &asset.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Asset{}, core.ErrAssetNotFound
	}
	if err != nil {
		return core.Asset{}, fmt.Errorf("failed to query asset: %w", err)
	}

	asset.Kind = core.AssetKind(kind)
	asset.Content = content.String
	asset.MIME = mime.String
	return asset, nil
}
