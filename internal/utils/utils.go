package utils

import (
	"errors"
	"regexp"
	"strings"

	"github.com/sashabaranov/go-openai"
)

var (
	htmlFence    = regexp.MustCompile("(?s)```html\n(.*?)\n```")
	genericFence = regexp.MustCompile("(?s)```\n(.*?)\n```")
)

// ExtractHTML pulls the document out of a markdown fenced block.
// An html-labelled fence wins over a bare one wherever they appear;
// text with neither is returned unchanged.
func ExtractHTML(text string) string {
	for _, fence := range []*regexp.Regexp{htmlFence, genericFence} {
		if m := fence.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return text
}

// Simple retry check (customize as needed)
func ShouldRetry(err error) bool {
	if err == nil {
		return false
	}
	// Retry on transient errors like rate limits or server errors
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "rate limit") ||
		strings.Contains(errMsg, "500 internal server error") ||
		strings.Contains(errMsg, "502 bad gateway") ||
		strings.Contains(errMsg, "503 service unavailable") ||
		strings.Contains(errMsg, "504 gateway timeout") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "connection reset by peer") ||
		strings.Contains(errMsg, "context deadline exceeded") {
		return true
	}
	var openAIErr *openai.APIError
	if errors.As(err, &openAIErr) {
		if openAIErr.HTTPStatusCode >= 500 || openAIErr.HTTPStatusCode == 429 {
			return true
		}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.HTTPStatusCode >= 500 || reqErr.HTTPStatusCode == 429 {
			return true
		}
	}
	return false
}
