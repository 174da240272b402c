package studio

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sandevgo/brandgen/internal/core"
	"github.com/sandevgo/brandgen/internal/service/brand"
	"github.com/sandevgo/brandgen/internal/storage/memory"
)

type fakeWriter struct {
	reply    string
	err      error
	messages []core.Message
}

func (f *fakeWriter) Complete(ctx context.Context, messages []core.Message) (string, error) {
	f.messages = messages
	return f.reply, f.err
}

type fakeRenderer struct {
	blob   []byte
	mime   string
	err    error
	prompt string
}

func (f *fakeRenderer) Render(ctx context.Context, prompt string) ([]byte, string, error) {
	f.prompt = prompt
	return f.blob, f.mime, f.err
}

func newTestStudio(writer *fakeWriter, renderer *fakeRenderer) (*Studio, *brand.Service) {
	brandSvc := brand.NewService(memory.NewKits(), nil)
	return New(writer, renderer, brandSvc, memory.NewHistory()), brandSvc
}

func TestGenerateCopy_UsesGuidelinesAndSavesHistory(t *testing.T) {
	ctx := context.Background()
	writer := &fakeWriter{reply: "Fresh roast, fresh start."}
	s, brandSvc := newTestStudio(writer, &fakeRenderer{})

	if err := brandSvc.LoadGuidelinesText(ctx, "s1", "Warm, direct, never salesy."); err != nil {
		t.Fatalf("LoadGuidelinesText failed: %v", err)
	}

	asset, err := s.GenerateCopy(ctx, "s1", "Launch a new organic coffee line")
	if err != nil {
		t.Fatalf("GenerateCopy failed: %v", err)
	}
	if asset.Kind != core.AssetCopy {
		t.Errorf("unexpected kind %q", asset.Kind)
	}
	if asset.Content != "Fresh roast, fresh start." {
		t.Errorf("content not returned verbatim: %q", asset.Content)
	}
	if asset.ID == "" || asset.CreatedAt.IsZero() {
		t.Error("asset missing id or timestamp")
	}

	if len(writer.messages) != 2 {
		t.Fatalf("expected system+user messages, got %d", len(writer.messages))
	}
	if writer.messages[0].Role != core.RoleSystem || !strings.Contains(writer.messages[0].Content, "Warm, direct, never salesy.") {
		t.Errorf("system instruction missing guidelines: %+v", writer.messages[0])
	}
	if writer.messages[1].Role != core.RoleUser || writer.messages[1].Content != "Launch a new organic coffee line" {
		t.Errorf("user brief not passed raw: %+v", writer.messages[1])
	}

	history, err := s.History(ctx, "s1", 0)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 1 || history[0].ID != asset.ID {
		t.Errorf("asset not in history: %+v", history)
	}
}

func TestGenerateCopy_FallbackToneWithoutGuidelines(t *testing.T) {
	ctx := context.Background()
	writer := &fakeWriter{reply: "ok"}
	s, _ := newTestStudio(writer, &fakeRenderer{})

	if _, err := s.GenerateCopy(ctx, "s1", "brief"); err != nil {
		t.Fatalf("GenerateCopy failed: %v", err)
	}
	if !strings.Contains(writer.messages[0].Content, "General professional tone.") {
		t.Errorf("expected fallback guidelines, got %q", writer.messages[0].Content)
	}
}

func TestGenerateCopy_EmptyBrief(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStudio(&fakeWriter{}, &fakeRenderer{})

	if _, err := s.GenerateCopy(ctx, "s1", "   "); !errors.Is(err, core.ErrEmptyBrief) {
		t.Errorf("expected ErrEmptyBrief, got %v", err)
	}
}

func TestGenerateCopy_ProviderErrorLeavesHistoryUntouched(t *testing.T) {
	ctx := context.Background()
	writer := &fakeWriter{err: errors.New("http 500: upstream")}
	s, _ := newTestStudio(writer, &fakeRenderer{})

	if _, err := s.GenerateCopy(ctx, "s1", "brief"); err == nil {
		t.Fatal("expected error")
	}
	history, _ := s.History(ctx, "s1", 0)
	if len(history) != 0 {
		t.Errorf("failed generation must not be recorded: %+v", history)
	}
}

type failingHistory struct{}

func (f *failingHistory) AddAsset(ctx context.Context, asset core.Asset) error {
	return errors.New("disk full")
}

func (f *failingHistory) ListAssets(ctx context.Context, sessionID string, limit int) ([]core.Asset, error) {
	return nil, nil
}

func (f *failingHistory) GetAsset(ctx context.Context, sessionID, assetID string) (core.Asset, error) {
	return core.Asset{}, core.ErrAssetNotFound
}

func TestGenerateCopy_HistoryFailureSurfaced(t *testing.T) {
	ctx := context.Background()
	brandSvc := brand.NewService(memory.NewKits(), nil)
	s := New(&fakeWriter{reply: "copy"}, &fakeRenderer{}, brandSvc, &failingHistory{})

	asset, err := s.GenerateCopy(ctx, "s1", "brief")
	if err == nil {
		t.Fatal("expected error when the asset cannot be recorded")
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("cause not wrapped: %v", err)
	}
	if asset.ID != "" {
		t.Errorf("no asset ID should be handed out for an unfetchable record: %+v", asset)
	}
}

func TestGenerateVisual_HistoryFailureSurfaced(t *testing.T) {
	ctx := context.Background()
	brandSvc := brand.NewService(memory.NewKits(), nil)
	s := New(&fakeWriter{}, &fakeRenderer{blob: []byte("png"), mime: "image/png"}, brandSvc, &failingHistory{})

	asset, err := s.GenerateVisual(ctx, "s1", "poster")
	if err == nil {
		t.Fatal("expected error when the asset cannot be recorded")
	}
	if asset.ID != "" {
		t.Errorf("no asset ID should be handed out for an unfetchable record: %+v", asset)
	}
}

func TestGenerateVisual_EnhancedPromptAndHistory(t *testing.T) {
	ctx := context.Background()
	renderer := &fakeRenderer{blob: []byte("png"), mime: "image/png"}
	s, brandSvc := newTestStudio(&fakeWriter{}, renderer)

	if err := brandSvc.SetStyle(ctx, "s1", "Bold, Neon"); err != nil {
		t.Fatalf("SetStyle failed: %v", err)
	}

	asset, err := s.GenerateVisual(ctx, "s1", "Summer sale poster")
	if err != nil {
		t.Fatalf("GenerateVisual failed: %v", err)
	}
	if renderer.prompt != "Summer sale poster, Bold, Neon" {
		t.Errorf("unexpected enhanced prompt: %q", renderer.prompt)
	}
	if asset.Kind != core.AssetVisual || string(asset.Blob) != "png" || asset.MIME != "image/png" {
		t.Errorf("unexpected asset: %+v", asset)
	}

	got, err := s.Asset(ctx, "s1", asset.ID)
	if err != nil {
		t.Fatalf("Asset failed: %v", err)
	}
	if string(got.Blob) != "png" {
		t.Errorf("stored blob mismatch: %q", got.Blob)
	}
}

func TestGenerateVisual_DefaultStyle(t *testing.T) {
	ctx := context.Background()
	renderer := &fakeRenderer{blob: []byte("png"), mime: "image/png"}
	s, _ := newTestStudio(&fakeWriter{}, renderer)

	if _, err := s.GenerateVisual(ctx, "s1", "poster"); err != nil {
		t.Fatalf("GenerateVisual failed: %v", err)
	}
	want := "poster, " + core.DefaultStyleDescription
	if renderer.prompt != want {
		t.Errorf("got %q, want %q", renderer.prompt, want)
	}
}

func TestGenerateVisual_RendererError(t *testing.T) {
	ctx := context.Background()
	renderer := &fakeRenderer{err: errors.New("http 503: model loading")}
	s, _ := newTestStudio(&fakeWriter{}, renderer)

	if _, err := s.GenerateVisual(ctx, "s1", "poster"); err == nil {
		t.Fatal("expected error")
	}
	history, _ := s.History(ctx, "s1", 0)
	if len(history) != 0 {
		t.Errorf("failed generation must not be recorded: %+v", history)
	}
}
