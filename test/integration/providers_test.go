package integration

import (
	"context"
	"os"
	"testing"

	"github.com/sandevgo/brandgen/internal/config"
	"github.com/sandevgo/brandgen/internal/core"
	"github.com/sandevgo/brandgen/internal/providers/image"
	"github.com/sandevgo/brandgen/internal/providers/llm"
	"github.com/sandevgo/brandgen/pkg/log"
)

// These hit the live provider APIs and are skipped unless the keys are set.

func TestGroqComplete(t *testing.T) {
	if os.Getenv("GROQ_API_KEY") == "" {
		t.Skip("GROQ_API_KEY not set")
	}

	ctx, flushLog := log.NewContextWithLogger(context.Background(), true)
	defer flushLog()

	writer := llm.NewGroq(config.NewGroqConfig(ctx))
	content, err := writer.Complete(ctx, []core.Message{
		{Role: core.RoleSystem, Content: "You are a Senior Brand Strategist."},
		{Role: core.RoleUser, Content: "One short tagline for an organic coffee brand."},
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if content == "" {
		t.Fatal("empty completion")
	}
	t.Log(content)
}

func TestHuggingFaceRender(t *testing.T) {
	if os.Getenv("HF_API_TOKEN") == "" {
		t.Skip("HF_API_TOKEN not set")
	}

	ctx, flushLog := log.NewContextWithLogger(context.Background(), true)
	defer flushLog()

	renderer := image.NewHuggingFace(config.NewHuggingFaceConfig(ctx))
	blob, mime, err := renderer.Render(ctx, "organic coffee poster, Minimalist, High Contrast, Luxury, 4k")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(blob) == 0 {
		t.Fatal("empty image")
	}
	t.Logf("rendered %d bytes (%s)", len(blob), mime)
}
