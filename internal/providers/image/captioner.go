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
)

const defaultCaptionTimeout = 60 * time.Second

// BLIPCaptioner produces a one-line description of an uploaded image.
type BLIPCaptioner struct {
	client *http.Client
	url    string
	token  string
}

func NewBLIPCaptioner(cfg *config.HuggingFaceConfig) *BLIPCaptioner {
	return NewBLIPCaptionerWithURL(cfg.CaptionURL, cfg.APIToken)
}

func NewBLIPCaptionerWithURL(url, token string) *BLIPCaptioner {
	return &BLIPCaptioner{
		client: &http.Client{
			Timeout: defaultCaptionTimeout,
		},
		url:   url,
		token: token,
	}
}

func (c *BLIPCaptioner) Caption(ctx context.Context, image []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(image))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("http %d: %s", resp.StatusCode, string(data))
	}

	var result []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	if len(result) == 0 || result[0].GeneratedText == "" {
		return "", fmt.Errorf("empty caption: %s", string(data))
	}
	return result[0].GeneratedText, nil
}
