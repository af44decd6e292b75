package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWebsiteSystemPrompt_FromScratch(t *testing.T) {
	got := WebsiteSystemPrompt("")

	assert.True(t, strings.HasSuffix(got, FromScratchDirective))
	assert.NotContains(t, got, ModifyDirective)
	assert.NotContains(t, got, "existing code")
}

func TestWebsiteSystemPrompt_ModifyEmbedsCodeVerbatim(t *testing.T) {
	existing := "<html>\n  <body><h1>Hi %s `x`</h1></body>\n</html>"

	got := WebsiteSystemPrompt(existing)

	assert.Contains(t, got, existing)
	assert.Contains(t, got, ModifyDirective)
	assert.NotContains(t, got, FromScratchDirective)
}

func TestWebsiteSystemPrompt_AlwaysCarriesRules(t *testing.T) {
	rules := []string{
		"semantic elements",
		"CSS Grid and Flexbox",
		"animations and transitions",
		"mobile-responsive",
		"cohesive color scheme",
		"placeholder content",
		"interactive elements",
		"typography",
		"ARIA labels",
	}

	for _, existing := range []string{"", "<p>old</p>"} {
		got := WebsiteSystemPrompt(existing)
		for _, rule := range rules {
			assert.Contains(t, got, rule)
		}
	}
}

func TestWebsiteSystemPrompt_Deterministic(t *testing.T) {
	assert.Equal(t, WebsiteSystemPrompt("<p>a</p>"), WebsiteSystemPrompt("<p>a</p>"))
}

func TestEditRequestPrompt(t *testing.T) {
	got := EditRequestPrompt("A bakery site", "make the header blue")
	assert.Equal(t, "A bakery site\n\nAdditional changes: make the header blue", got)
}
