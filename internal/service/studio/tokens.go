package studio

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

var (
	tokenizerOnce sync.Once
	tokenizer     *tiktoken.Tiktoken
)

// countTokens is best-effort prompt accounting; 0 when the encoding
// cannot be loaded.
func countTokens(text string) int {
	tokenizerOnce.Do(func() {
		tk, err := tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			return
		}
		tokenizer = tk
	})
	if tokenizer == nil {
		return 0
	}
	return len(tokenizer.Encode(text, nil, nil))
}
