package studio

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sandevgo/brandgen/internal/core"
	"github.com/sandevgo/brandgen/internal/service/brand"
	"github.com/sandevgo/brandgen/pkg/log"
)

// Studio turns campaign briefs into on-brand copy and visuals and keeps the
// session history of everything it produced.
type Studio struct {
	writer   core.CopyWriter
	renderer core.ImageRenderer
	brand    *brand.Service
	history  core.AssetRepository
}

func New(
	writer core.CopyWriter,
	renderer core.ImageRenderer,
	brandSvc *brand.Service,
	history core.AssetRepository,
) *Studio {
	return &Studio{
		writer:   writer,
		renderer: renderer,
		brand:    brandSvc,
		history:  history,
	}
}

// GenerateCopy writes marketing copy for the brief, grounded on the
// session's guidelines excerpt.
func (s *Studio) GenerateCopy(ctx context.Context, sessionID, brief string) (core.Asset, error) {
	logger := log.FromCtx(ctx)

	brief = strings.TrimSpace(brief)
	if brief == "" {
		return core.Asset{}, core.ErrEmptyBrief
	}

	kit, err := s.brand.Kit(ctx, sessionID)
	if err != nil {
		return core.Asset{}, err
	}

	instruction := BuildSystemInstruction(kit.Guidelines)
	logger.Debug().Int("tokens", countTokens(instruction)).Msg("composed system instruction")

	content, err := s.writer.Complete(ctx, []core.Message{
		{Role: core.RoleSystem, Content: instruction},
		{Role: core.RoleUser, Content: brief},
	})
	if err != nil {
		return core.Asset{}, fmt.Errorf("copy generation: %w", err)
	}

	asset := core.Asset{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Kind:      core.AssetCopy,
		Prompt:    brief,
		Content:   content,
		CreatedAt: time.Now(),
	}
	// The returned ID must stay fetchable through the history endpoints
	if err := s.history.AddAsset(ctx, asset); err != nil {
		return core.Asset{}, fmt.Errorf("save copy asset: %w", err)
	}
	return asset, nil
}

// GenerateVisual renders a campaign visual from the brief and the session's
// style description.
func (s *Studio) GenerateVisual(ctx context.Context, sessionID, brief string) (core.Asset, error) {
	logger := log.FromCtx(ctx)

	brief = strings.TrimSpace(brief)
	if brief == "" {
		return core.Asset{}, core.ErrEmptyBrief
	}

	kit, err := s.brand.Kit(ctx, sessionID)
	if err != nil {
		return core.Asset{}, err
	}

	prompt := BuildImagePrompt(brief, kit.Style())
	logger.Info().Str("session", sessionID).Str("prompt", prompt).Msg("rendering campaign visual")

	blob, mime, err := s.renderer.Render(ctx, prompt)
	if err != nil {
		return core.Asset{}, fmt.Errorf("visual generation: %w", err)
	}

	asset := core.Asset{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Kind:      core.AssetVisual,
		Prompt:    brief,
		Blob:      blob,
		MIME:      mime,
		CreatedAt: time.Now(),
	}
	if err := s.history.AddAsset(ctx, asset); err != nil {
		return core.Asset{}, fmt.Errorf("save visual asset: %w", err)
	}
	return asset, nil
}

func (s *Studio) History(ctx context.Context, sessionID string, limit int) ([]core.Asset, error) {
	return s.history.ListAssets(ctx, sessionID, limit)
}

func (s *Studio) Asset(ctx context.Context, sessionID, assetID string) (core.Asset, error) {
	return s.history.GetAsset(ctx, sessionID, assetID)
}
