package prompt

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

var (
	encodingOnce sync.Once
	encoding     *tiktoken.Tiktoken
)

// TokenEstimate reports the approximate token count of a prompt. It is used
// for logging and metrics only; the context window is entry-based, not
// token-based. Falls back to a character heuristic if the encoding cannot be
// loaded.
func TokenEstimate(text string) int {
	encodingOnce.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err == nil {
			encoding = enc
		}
	})
	if encoding == nil {
		return len(text) / 4
	}
	return len(encoding.Encode(text, nil, nil))
}
