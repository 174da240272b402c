package sqlite

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/sandevgo/brandgen/internal/core"
)

func newTestRepo(t *testing.T) *Assets {
	t.Helper()
	ctx := context.Background()

	db, err := NewDB(ctx, filepath.Join(t.TempDir(), "brandgen.db"))
	if err != nil {
		t.Fatalf("NewDB failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return NewAssets(db)
}

func TestAssets_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	asset := core.Asset{
		ID:        "a1",
		SessionID: "s1",
		Kind:      core.AssetVisual,
		Prompt:    "Summer sale poster",
		Blob:      []byte("pngbytes"),
		MIME:      "image/png",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	if err := repo.AddAsset(ctx, asset); err != nil {
		t.Fatalf("AddAsset failed: %v", err)
	}

	got, err := repo.GetAsset(ctx, "s1", "a1")
	if err != nil {
		t.Fatalf("GetAsset failed: %v", err)
	}
	if got.Kind != core.AssetVisual || got.Prompt != asset.Prompt || string(got.Blob) != "pngbytes" || got.MIME != "image/png" {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestAssets_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	base := time.Now().UTC()
	for i := 0; i < 3; i++ {
		err := repo.AddAsset(ctx, core.Asset{
			ID:        fmt.Sprintf("a%d", i),
			SessionID: "s1",
			Kind:      core.AssetCopy,
			Prompt:    fmt.Sprintf("brief %d", i),
			Content:   "copy",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("AddAsset failed: %v", err)
		}
	}

	assets, err := repo.ListAssets(ctx, "s1", 2)
	if err != nil {
		t.Fatalf("ListAssets failed: %v", err)
	}
	if len(assets) != 2 {
		t.Fatalf("expected 2 assets, got %d", len(assets))
	}
	if assets[0].ID != "a2" || assets[1].ID != "a1" {
		t.Errorf("expected newest first, got %s, %s", assets[0].ID, assets[1].ID)
	}
}

func TestAssets_SessionIsolation(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	_ = repo.AddAsset(ctx, core.Asset{ID: "a1", SessionID: "s1", Kind: core.AssetCopy, Prompt: "p", CreatedAt: time.Now()})
	_ = repo.AddAsset(ctx, core.Asset{ID: "a2", SessionID: "s2", Kind: core.AssetCopy, Prompt: "p", CreatedAt: time.Now()})

	assets, err := repo.ListAssets(ctx, "s1", 0)
	if err != nil {
		t.Fatalf("ListAssets failed: %v", err)
	}
	if len(assets) != 1 || assets[0].ID != "a1" {
		t.Errorf("unexpected assets: %+v", assets)
	}

	if _, err := repo.GetAsset(ctx, "s2", "a1"); !errors.Is(err, core.ErrAssetNotFound) {
		t.Errorf("expected ErrAssetNotFound, got %v", err)
	}
}
