// internal/services/consultant_service_test.go
package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranaara/pranaara-backend/internal/config"
)

type stubCatalog struct {
	snapshot []CatalogSnapshotItem
	calls    int
}

func (s *stubCatalog) CatalogSnapshot(ctx context.Context, limit int) []CatalogSnapshotItem {
	s.calls++
	return s.snapshot
}

type stubCompletions struct {
	reply string
	err   error
	calls int

	lastSystemPrompt   string
	lastProfileContext string
	lastHistory        []ChatMessage
}

func (s *stubCompletions) Complete(ctx context.Context, systemPrompt, profileContext string, history []ChatMessage) (string, error) {
	s.calls++
	s.lastSystemPrompt = systemPrompt
	s.lastProfileContext = profileContext
	s.lastHistory = history
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func testConfig() *config.Config {
	return &config.Config{
		OpenAI: config.OpenAIConfig{
			Model:          "gpt-4o",
			RequestTimeout: 30,
			CatalogLimit:   50,
		},
	}
}

func TestConsultNotConfigured(t *testing.T) {
	catalog := &stubCatalog{snapshot: snapshotFixture()}
	svc := NewConsultantService(catalog, nil, testConfig())

	assert.False(t, svc.Configured())

	resp, err := svc.Consult(context.Background(), &ConsultRequest{
		Messages: []ChatMessage{{Role: "user", Content: "hello"}},
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrNotConfigured)
	// No downstream work happens without a credential
	assert.Zero(t, catalog.calls)
}

func TestConsultEmptyConversation(t *testing.T) {
	svc := NewConsultantService(&stubCatalog{}, &stubCompletions{}, testConfig())

	resp, err := svc.Consult(context.Background(), &ConsultRequest{Messages: []ChatMessage{}})

	assert.Nil(t, resp)
	assert.Error(t, err)
}

func TestConsultSuccess(t *testing.T) {
	catalog := &stubCatalog{snapshot: snapshotFixture()}
	completions := &stubCompletions{
		reply: "I recommend Rose Symphony Absolute for your romantic side.",
	}
	svc := NewConsultantService(catalog, completions, testConfig())

	resp, err := svc.Consult(context.Background(), &ConsultRequest{
		Messages: []ChatMessage{
			{Role: "user", Content: "I need a gift"},
			{Role: "assistant", Content: "Tell me about them"},
			{Role: "user", Content: "they love beautiful floral scents"},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, completions.reply, resp.Response)
	assert.Equal(t, "positive", resp.Sentiment)

	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, "Rose Symphony Absolute", resp.Recommendations[0].Name)

	assert.Equal(t, 1, resp.Metadata.RecommendationCount)
	assert.NotEmpty(t, resp.Metadata.Timestamp)
	assert.Equal(t, []string{}, resp.Metadata.UserPersonality)

	assert.Equal(t, 1, catalog.calls)
	assert.Equal(t, 1, completions.calls)
	assert.Contains(t, completions.lastSystemPrompt, "Rose Symphony Absolute")
	assert.Len(t, completions.lastHistory, 3)
	// No profile supplied, so no profile context message
	assert.Empty(t, completions.lastProfileContext)
}

func TestConsultProviderFailureFallsBack(t *testing.T) {
	catalog := &stubCatalog{snapshot: snapshotFixture()}
	completions := &stubCompletions{err: errors.New("upstream timeout")}
	svc := NewConsultantService(catalog, completions, testConfig())

	resp, err := svc.Consult(context.Background(), &ConsultRequest{
		Messages: []ChatMessage{{Role: "user", Content: "this store is terrible"}},
	})

	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, fallbackReply, resp.Response)
	assert.Empty(t, resp.Recommendations)
	// Sentiment is computed before the provider call and survives the failure
	assert.Equal(t, "negative", resp.Sentiment)
	assert.Equal(t, 0, resp.Metadata.RecommendationCount)
}

func TestConsultProfileContext(t *testing.T) {
	completions := &stubCompletions{reply: "Something fresh would suit you."}
	svc := NewConsultantService(&stubCatalog{}, completions, testConfig())

	profile := &UserProfile{
		Personality: []string{"adventurous", "creative"},
		Preferences: []string{"woody"},
		Completed:   true,
	}

	resp, err := svc.Consult(context.Background(), &ConsultRequest{
		Messages:    []ChatMessage{{Role: "user", Content: "I love hiking"}},
		UserProfile: profile,
	})

	require.NoError(t, err)
	assert.Contains(t, completions.lastProfileContext, "My profile:")
	assert.Contains(t, completions.lastProfileContext, "adventurous")
	assert.Contains(t, completions.lastProfileContext, "Current mood/sentiment: positive")
	assert.Equal(t, []string{"adventurous", "creative"}, resp.Metadata.UserPersonality)
}

func TestConsultEmptyCatalogStillConverses(t *testing.T) {
	completions := &stubCompletions{reply: "Tell me more about your taste."}
	svc := NewConsultantService(&stubCatalog{snapshot: []CatalogSnapshotItem{}}, completions, testConfig())

	resp, err := svc.Consult(context.Background(), &ConsultRequest{
		Messages: []ChatMessage{{Role: "user", Content: "hello"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "Tell me more about your taste.", resp.Response)
	assert.Empty(t, resp.Recommendations)
	assert.Contains(t, completions.lastSystemPrompt, "AVAILABLE PRANAARA PRODUCTS:\n[]")
}

func TestBuildProfileContextBoundsTraits(t *testing.T) {
	traits := make([]string, 25)
	for i := range traits {
		traits[i] = "trait"
	}

	ctx := buildProfileContext(&UserProfile{Personality: traits}, "neutral")

	assert.NotEmpty(t, ctx)
	// 10 entries of "trait" survive the bound
	assert.Equal(t, 10, countOccurrences(ctx, `"trait"`))
}

func countOccurrences(s, sub string) int {
	count := 0
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			count++
		}
	}
	return count
}
