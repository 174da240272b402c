package core

import "context"

// CopyWriter produces marketing copy from a chat-completion style exchange.
type CopyWriter interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// ImageRenderer turns an enhanced prompt into raw image bytes.
type ImageRenderer interface {
	Render(ctx context.Context, prompt string) ([]byte, string, error)
}

// Captioner describes an uploaded reference image in one line of text.
type Captioner interface {
	Caption(ctx context.Context, image []byte) (string, error)
}
