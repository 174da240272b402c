package image

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sandevgo/brandgen/internal/config"
	"github.com/sandevgo/brandgen/pkg/log"
	"github.com/sandevgo/brandgen/pkg/retry"
)

const defaultRenderTimeout = 120 * time.Second

// HuggingFace renders images through the hosted inference route.
//
// A 503 means the model is still loading onto a worker; those are retried
// after a fixed warmup delay. Every other failure is final.
type HuggingFace struct {
	client  *http.Client
	url     string
	token   string
	retrier *retry.Retrier
}

func NewHuggingFace(cfg *config.HuggingFaceConfig) *HuggingFace {
	return NewHuggingFaceWithURL(cfg.DiffusionURL, cfg.APIToken, retry.NewFixedDelayConfig(cfg.WarmupRetries, cfg.WarmupDelay))
}

// NewHuggingFaceWithURL exists so tests can point the client at a local server.
func NewHuggingFaceWithURL(url, token string, retryCfg *retry.Config) *HuggingFace {
	return &HuggingFace{
		client: &http.Client{
			Timeout: defaultRenderTimeout,
		},
		url:     url,
		token:   token,
		retrier: retry.NewRetrier(retryCfg),
	}
}

func (h *HuggingFace) Render(ctx context.Context, prompt string) ([]byte, string, error) {
	payload, err := json.Marshal(map[string]string{"inputs": prompt})
	if err != nil {
		return nil, "", fmt.Errorf("marshal: %w", err)
	}

	var (
		image []byte
		mime  string
	)
	err = h.retrier.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewReader(payload))
		if err != nil {
			return retry.Permanent(fmt.Errorf("create request: %w", err))
		}
		req.Header.Set("Authorization", "Bearer "+h.token)
		req.Header.Set("Content-Type", "application/json")

		resp, err := h.client.Do(req)
		if err != nil {
			return retry.Permanent(fmt.Errorf("request: %w", err))
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			image, err = io.ReadAll(resp.Body)
			if err != nil {
				return retry.Permanent(fmt.Errorf("read body: %w", err))
			}
			mime = resp.Header.Get("Content-Type")
			if mime == "" {
				mime = "image/jpeg"
			}
			return nil
		case resp.StatusCode == http.StatusServiceUnavailable:
			log.FromCtx(ctx).Debug().Msg("diffusion model warming up, will retry")
			return fmt.Errorf("http 503: model loading")
		default:
			body, _ := io.ReadAll(resp.Body)
			return retry.Permanent(fmt.Errorf("http %d: %s", resp.StatusCode, string(body)))
		}
	})
	if err != nil {
		return nil, "", err
	}
	return image, mime, nil
}
