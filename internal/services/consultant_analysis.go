// internal/services/consultant_analysis.go
package services

import (
	"math/rand"
	"strings"
)

const recommendationReason = "Recommended based on your preferences"

// Lexicons for the keyword sentiment classifier. Matching is token-exact
// after lowercasing and splitting on single spaces, so multi-word entries
// ("don't like", "not good") never match a single token; they are kept for
// parity with the client-side classifier that shares this list.
var (
	positiveWords = []string{"love", "amazing", "beautiful", "perfect", "wonderful", "excellent", "fantastic", "great", "like", "enjoy"}
	negativeWords = []string{"hate", "terrible", "awful", "bad", "dislike", "don't like", "not good", "poor", "disappointing"}
)

// ClassifySentiment buckets a message as positive, negative, or neutral by
// counting lexicon hits among its tokens. Ties, including the empty message,
// are neutral.
func ClassifySentiment(message string) string {
	words := strings.Split(strings.ToLower(message), " ")

	positiveCount := 0
	negativeCount := 0
	for _, word := range words {
		if containsWord(positiveWords, word) {
			positiveCount++
		}
		if containsWord(negativeWords, word) {
			negativeCount++
		}
	}

	if positiveCount > negativeCount {
		return "positive"
	}
	if negativeCount > positiveCount {
		return "negative"
	}
	return "neutral"
}

func containsWord(lexicon []string, word string) bool {
	for _, entry := range lexicon {
		if entry == word {
			return true
		}
	}
	return false
}

// nameMatcher decides whether a reply mentions a product. The default is a
// case-sensitive substring check on the display name, which means replies
// that paraphrase or re-case a name produce no match.
type nameMatcher func(reply, name string) bool

func containsName(reply, name string) bool {
	return strings.Contains(reply, name)
}

// ExtractRecommendations scans the consultant reply for catalog product
// names and returns a card per mention, in snapshot order. Every match is
// returned uncapped and unranked; the match percentage is decorative.
func ExtractRecommendations(reply string, snapshot []CatalogSnapshotItem) []Recommendation {
	return extractRecommendations(reply, snapshot, containsName)
}

func extractRecommendations(reply string, snapshot []CatalogSnapshotItem, matches nameMatcher) []Recommendation {
	recommendations := make([]Recommendation, 0)

	for _, product := range snapshot {
		if !matches(reply, product.Name) {
			continue
		}
		recommendations = append(recommendations, Recommendation{
			ID:     product.ID,
			Name:   product.Name,
			Slug:   product.Slug,
			Price:  product.Price,
			Image:  product.Image,
			Reason: recommendationReason,
			Match:  rand.Intn(20) + 80,
		})
	}

	return recommendations
}
