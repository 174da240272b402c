package brand

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/inbucket/html2text"
	"github.com/sandevgo/brandgen/internal/core"
	"github.com/sandevgo/brandgen/pkg/log"
	"github.com/sandevgo/brandgen/pkg/retry"
)

const (
	maxImportSize        = 1 << 20 // 1MB limit
	defaultImportTimeout = 15 * time.Second
)

// Service manages per-session brand kits: the guidelines text the copy is
// grounded on and the visual style description used for image prompts.
type Service struct {
	kits      core.KitRepository
	captioner core.Captioner // nil when auto-style is disabled
	client    *http.Client
	retrier   *retry.Retrier
}

func NewService(kits core.KitRepository, captioner core.Captioner) *Service {
	return &Service{
		kits:      kits,
		captioner: captioner,
		client: &http.Client{
			Timeout: defaultImportTimeout,
		},
		retrier: retry.NewDefaultRetrier(),
	}
}

func (s *Service) Kit(ctx context.Context, sessionID string) (core.BrandKit, error) {
	kit, err := s.kits.GetKit(ctx, sessionID)
	if err != nil {
		return core.BrandKit{}, fmt.Errorf("load kit: %w", err)
	}
	return kit, nil
}

// LoadGuidelinesPDF extracts the document text and replaces the session's
// guidelines. Returns the number of extracted characters.
func (s *Service) LoadGuidelinesPDF(ctx context.Context, sessionID string, data []byte) (int, error) {
	text, err := ExtractPDFText(data)
	if err != nil {
		return 0, err
	}
	if strings.TrimSpace(text) == "" {
		return 0, fmt.Errorf("pdf contains no extractable text")
	}
	if err := s.setGuidelines(ctx, sessionID, text); err != nil {
		return 0, err
	}

	log.FromCtx(ctx).Info().Str("session", sessionID).Int("chars", len(text)).Msg("brand guidelines loaded from pdf")
	return len(text), nil
}

func (s *Service) LoadGuidelinesText(ctx context.Context, sessionID, text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("guidelines text is empty")
	}
	return s.setGuidelines(ctx, sessionID, text)
}

// ImportGuidelinesURL fetches a web page and keeps its readable text as the
// session's guidelines.
func (s *Service) ImportGuidelinesURL(ctx context.Context, sessionID, url string) (int, error) {
	var body string
	err := s.retrier.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return retry.Permanent(fmt.Errorf("create request: %w", err))
		}
		req.Header.Set("User-Agent", core.BrandGenUserAgent)

		resp, err := s.client.Do(req)
		if err != nil {
			return fmt.Errorf("fetch url: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			return fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
		}

		limited := io.LimitReader(resp.Body, maxImportSize)
		body, err = html2text.FromReader(limited, html2text.Options{TextOnly: true})
		if err != nil {
			return retry.Permanent(fmt.Errorf("convert html: %w", err))
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if strings.TrimSpace(body) == "" {
		return 0, fmt.Errorf("page contains no readable text")
	}
	if err := s.setGuidelines(ctx, sessionID, body); err != nil {
		return 0, err
	}

	log.FromCtx(ctx).Info().Str("session", sessionID).Str("url", url).Int("chars", len(body)).Msg("brand guidelines imported")
	return len(body), nil
}

func (s *Service) SetStyle(ctx context.Context, sessionID, style string) error {
	kit, err := s.kits.GetKit(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("load kit: %w", err)
	}
	kit.StyleDescription = strings.TrimSpace(style)
	kit.UpdatedAt = time.Now()
	return s.kits.SaveKit(ctx, sessionID, kit)
}

// SetReference stores a style-reference image. When a captioner is wired
// and no manual style is set, the caption becomes the style description.
// Returns the effective style description.
func (s *Service) SetReference(ctx context.Context, sessionID string, img []byte, mime string) (string, error) {
	kit, err := s.kits.GetKit(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("load kit: %w", err)
	}

	kit.ReferenceImage = img
	kit.ReferenceMIME = mime
	kit.UpdatedAt = time.Now()

	if s.captioner != nil && kit.StyleDescription == "" {
		caption, err := s.captioner.Caption(ctx, img)
		if err != nil {
			// Caption failure falls back to the default style, not an error
			log.FromCtx(ctx).Warn().Err(err).Str("session", sessionID).Msg("style caption failed")
		} else {
			kit.StyleDescription = caption
			log.FromCtx(ctx).Info().Str("session", sessionID).Str("style", caption).Msg("style derived from reference image")
		}
	}

	if err := s.kits.SaveKit(ctx, sessionID, kit); err != nil {
		return "", err
	}
	return kit.Style(), nil
}

func (s *Service) setGuidelines(ctx context.Context, sessionID, text string) error {
	kit, err := s.kits.GetKit(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("load kit: %w", err)
	}
	kit.Guidelines = text
	kit.UpdatedAt = time.Now()
	return s.kits.SaveKit(ctx, sessionID, kit)
}
