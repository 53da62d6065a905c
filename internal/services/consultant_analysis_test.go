// internal/services/consultant_analysis_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySentiment(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{"positive message", "I love this, it's amazing", "positive"},
		{"negative message", "this is terrible and bad", "negative"},
		{"neutral question", "what time do you open", "neutral"},
		{"empty message", "", "neutral"},
		{"tie is neutral", "love hate", "neutral"},
		{"case insensitive", "This Is AMAZING", "positive"},
		{"punctuation blocks a match", "amazing!", "neutral"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifySentiment(tt.message))
		})
	}
}

// The multi-word lexicon entries cannot match single tokens, so negation
// phrases fall through to whatever their other tokens score.
func TestClassifySentimentNegationPhrases(t *testing.T) {
	// "like" is a positive token; "don't" matches nothing
	assert.Equal(t, "positive", ClassifySentiment("I don't like this"))
	// "good" is in neither lexicon
	assert.Equal(t, "neutral", ClassifySentiment("not good at all"))
}

func snapshotFixture() []CatalogSnapshotItem {
	return []CatalogSnapshotItem{
		{ID: "p1", Name: "Rose Symphony Absolute", Slug: "rose-symphony-absolute", Price: 4999, Image: "/images/rose.png"},
		{ID: "p2", Name: "Black Oud Royale", Slug: "black-oud-royale", Price: 8999, Image: "/images/oud.png"},
		{ID: "p3", Name: "Citrus Veil", Slug: "citrus-veil", Price: 2999, Image: "/images/citrus.png"},
	}
}

func TestExtractRecommendationsMatchesMentionedProducts(t *testing.T) {
	reply := "For you I would suggest Rose Symphony Absolute, and perhaps Citrus Veil for daytime."

	recs := ExtractRecommendations(reply, snapshotFixture())

	require.Len(t, recs, 2)
	// Catalog order, not mention order
	assert.Equal(t, "Rose Symphony Absolute", recs[0].Name)
	assert.Equal(t, "Citrus Veil", recs[1].Name)

	for _, rec := range recs {
		assert.Equal(t, "Recommended based on your preferences", rec.Reason)
		assert.GreaterOrEqual(t, rec.Match, 80)
		assert.LessOrEqual(t, rec.Match, 99)
	}
}

func TestExtractRecommendationsCarriesCatalogFields(t *testing.T) {
	reply := "Black Oud Royale is a statement scent."

	recs := ExtractRecommendations(reply, snapshotFixture())

	require.Len(t, recs, 1)
	assert.Equal(t, "p2", recs[0].ID)
	assert.Equal(t, "black-oud-royale", recs[0].Slug)
	assert.Equal(t, 8999.0, recs[0].Price)
	assert.Equal(t, "/images/oud.png", recs[0].Image)
}

func TestExtractRecommendationsIsCaseSensitive(t *testing.T) {
	recs := ExtractRecommendations("try rose symphony absolute", snapshotFixture())
	assert.Empty(t, recs)
}

func TestExtractRecommendationsNoMentions(t *testing.T) {
	recs := ExtractRecommendations("Tell me more about what you enjoy wearing.", snapshotFixture())
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestExtractRecommendationsEmptySnapshot(t *testing.T) {
	recs := ExtractRecommendations("Rose Symphony Absolute", nil)
	assert.Empty(t, recs)
}

func TestExtractRecommendationsMatchScoreRange(t *testing.T) {
	// The score is random; sample enough draws to pin the bounds.
	for i := 0; i < 200; i++ {
		recs := ExtractRecommendations("Citrus Veil", snapshotFixture())
		require.Len(t, recs, 1)
		assert.GreaterOrEqual(t, recs[0].Match, 80)
		assert.LessOrEqual(t, recs[0].Match, 99)
	}
}

func TestExtractRecommendationsCustomMatcher(t *testing.T) {
	matchAll := func(reply, name string) bool { return true }

	recs := extractRecommendations("anything", snapshotFixture(), matchAll)
	assert.Len(t, recs, 3)
}
