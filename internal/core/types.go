package core

import "time"

const (
	BrandGenName      = "BrandGen"
	BrandGenUserAgent = "BrandGen/0.1"
	BrandGenVersion   = "0.1.0"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// DefaultStyleDescription is used until the marketer sets or derives one.
const DefaultStyleDescription = "Minimalist, High Contrast, Luxury, 4k"

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AssetKind tags a history record as generated copy or a generated visual.
type AssetKind string

const (
	AssetCopy   AssetKind = "copy"
	AssetVisual AssetKind = "visual"
)

// Asset is one generated result. Records are appended on successful
// generation and never mutated or deleted afterwards.
type Asset struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Kind      AssetKind `json:"kind"`
	Prompt    string    `json:"prompt"`
	Content   string    `json:"content,omitempty"`
	Blob      []byte    `json:"-"`
	MIME      string    `json:"mime,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// BrandKit holds the assets a session generates against.
type BrandKit struct {
	Guidelines       string
	StyleDescription string
	ReferenceImage   []byte
	ReferenceMIME    string
	UpdatedAt        time.Time
}

// Style returns the effective style description for image prompts.
func (k *BrandKit) Style() string {
	if k == nil || k.StyleDescription == "" {
		return DefaultStyleDescription
	}
	return k.StyleDescription
}
