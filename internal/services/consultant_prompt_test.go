// internal/services/consultant_prompt_test.go
package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeSystemPromptIncludesPersonaAndCatalog(t *testing.T) {
	prompt := ComposeSystemPrompt(snapshotFixture())

	assert.Contains(t, prompt, "You are ARIA")
	assert.Contains(t, prompt, "PSYCHOLOGICAL FRAGRANCE MAPPING")
	assert.Contains(t, prompt, "AVAILABLE PRANAARA PRODUCTS")
	assert.Contains(t, prompt, "CONSULTATION APPROACH")
	assert.Contains(t, prompt, "RECOMMENDATION FORMAT")

	// Catalog is embedded as JSON with exact display names
	assert.Contains(t, prompt, `"name": "Rose Symphony Absolute"`)
	assert.Contains(t, prompt, `"slug": "black-oud-royale"`)
}

func TestComposeSystemPromptEmptySnapshot(t *testing.T) {
	prompt := ComposeSystemPrompt(nil)

	assert.Contains(t, prompt, "You are ARIA")
	assert.Contains(t, prompt, "AVAILABLE PRANAARA PRODUCTS:\n[]")
}

func TestComposeSystemPromptDeterministic(t *testing.T) {
	snapshot := snapshotFixture()

	first := ComposeSystemPrompt(snapshot)
	second := ComposeSystemPrompt(snapshot)

	assert.Equal(t, first, second)
}

func TestComposeSystemPromptCatalogOrderPreserved(t *testing.T) {
	prompt := ComposeSystemPrompt(snapshotFixture())

	rose := strings.Index(prompt, "Rose Symphony Absolute")
	oud := strings.Index(prompt, "Black Oud Royale")
	citrus := strings.Index(prompt, "Citrus Veil")

	assert.True(t, rose < oud && oud < citrus)
}
