// internal/services/consultant_service.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pranaara/pranaara-backend/internal/config"
)

const defaultProductImage = "/images/products/golden-packaging-ornate.png"

// fallbackReply is returned whenever the completion provider fails so the
// chat UI always has something to render.
const fallbackReply = "I apologize, but I'm having trouble connecting right now. Please try again in a moment."

// ErrNotConfigured signals a missing completion-service credential.
var ErrNotConfigured = errors.New("completion service is not configured")

// CatalogSnapshotItem is the denormalized, read-only projection of a product
// that gets serialized into the consultant prompt. Display names should be
// unique across a snapshot: the extractor matches on literal name occurrence
// and cannot disambiguate overlapping names.
type CatalogSnapshotItem struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Slug             string   `json:"slug"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"shortDescription"`
	Price            float64  `json:"price"`
	CompareAtPrice   *float64 `json:"compareAtPrice,omitempty"`
	Category         string   `json:"category"`
	FragranceFamily  string   `json:"fragranceFamily"`
	TopNotes         string   `json:"topNotes"`
	HeartNotes       string   `json:"heartNotes"`
	BaseNotes        string   `json:"baseNotes"`
	Sillage          string   `json:"sillage"`
	Longevity        string   `json:"longevity"`
	Season           string   `json:"season"`
	Occasion         string   `json:"occasion"`
	Gender           string   `json:"gender"`
	Image            string   `json:"image"`
	Rating           float64  `json:"rating"`
	ReviewCount      int      `json:"reviewCount"`
}

// ChatMessage is a role-tagged utterance. Ordering is positional; the caller
// owns the full history and resends it each turn.
type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

// UserProfile is caller-supplied quiz output. The option sets are defined by
// the client UI; contents are treated as untrusted free text and size-bounded
// before prompt embedding.
type UserProfile struct {
	Personality []string `json:"personality"`
	Preferences []string `json:"preferences"`
	Lifestyle   []string `json:"lifestyle"`
	Completed   bool     `json:"completed"`
}

type Recommendation struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Slug  string  `json:"slug"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
	Reason string `json:"reason"`
	Match  int    `json:"match"`
}

type ConsultantMetadata struct {
	Timestamp           string   `json:"timestamp"`
	RecommendationCount int      `json:"recommendationCount"`
	UserPersonality     []string `json:"userPersonality"`
}

type ConsultantResponse struct {
	Response        string             `json:"response"`
	Recommendations []Recommendation   `json:"recommendations"`
	Sentiment       string             `json:"sentiment"`
	Metadata        ConsultantMetadata `json:"metadata"`
}

type ConsultRequest struct {
	Messages    []ChatMessage `json:"messages" validate:"required,min=1,dive"`
	UserProfile *UserProfile  `json:"userProfile,omitempty"`
}

// CatalogReader is the storage-side contract the pipeline consumes. An
// implementation must fail open: a storage error yields an empty snapshot,
// never a request failure.
type CatalogReader interface {
	CatalogSnapshot(ctx context.Context, limit int) []CatalogSnapshotItem
}

// CompletionClient wraps the hosted chat-completion API. One attempt per
// call; implementations enforce their own timeout.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt, profileContext string, history []ChatMessage) (string, error)
}

type ConsultantService struct {
	catalog     CatalogReader
	completions CompletionClient
	cfg         *config.Config
}

func NewConsultantService(catalog CatalogReader, completions CompletionClient, cfg *config.Config) *ConsultantService {
	return &ConsultantService{
		catalog:     catalog,
		completions: completions,
		cfg:         cfg,
	}
}

// Configured reports whether a completion credential was supplied at startup.
// When false the endpoint short-circuits before touching the catalog or the
// provider.
func (s *ConsultantService) Configured() bool {
	return s.completions != nil
}

// Consult runs one stateless consultation turn: snapshot, sentiment, prompt,
// completion, extraction, assembly. Provider failure and internal faults are
// folded into the user-safe fallback shape; the only errors returned are the
// precondition ones (unconfigured service, empty conversation).
func (s *ConsultantService) Consult(ctx context.Context, req *ConsultRequest) (resp *ConsultantResponse, err error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}

	if len(req.Messages) == 0 {
		return nil, errors.New("conversation history is empty")
	}

	snapshot := s.catalog.CatalogSnapshot(ctx, s.cfg.OpenAI.CatalogLimit)

	lastMessage := req.Messages[len(req.Messages)-1]
	sentiment := ClassifySentiment(lastMessage.Content)

	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Error("Consultant pipeline fault")
			resp, err = s.fallbackResponse(sentiment, req.UserProfile), nil
		}
	}()

	systemPrompt := ComposeSystemPrompt(snapshot)
	profileContext := buildProfileContext(req.UserProfile, sentiment)

	reply, err := s.completions.Complete(ctx, systemPrompt, profileContext, req.Messages)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"messages": len(req.Messages),
			"catalog":  len(snapshot),
		}).Error("Completion request failed")
		return s.fallbackResponse(sentiment, req.UserProfile), nil
	}

	recommendations := ExtractRecommendations(reply, snapshot)

	logrus.WithFields(logrus.Fields{
		"timestamp":            time.Now().UTC().Format(time.RFC3339),
		"sentiment":            sentiment,
		"recommendation_count": len(recommendations),
		"response_length":      len(reply),
		"user_personality":     personalityTags(req.UserProfile),
	}).Info("Consultant interaction")

	return &ConsultantResponse{
		Response:        reply,
		Recommendations: recommendations,
		Sentiment:       sentiment,
		Metadata: ConsultantMetadata{
			Timestamp:           time.Now().UTC().Format(time.RFC3339),
			RecommendationCount: len(recommendations),
			UserPersonality:     personalityTags(req.UserProfile),
		},
	}, nil
}

func (s *ConsultantService) fallbackResponse(sentiment string, profile *UserProfile) *ConsultantResponse {
	return &ConsultantResponse{
		Response:        fallbackReply,
		Recommendations: []Recommendation{},
		Sentiment:       sentiment,
		Metadata: ConsultantMetadata{
			Timestamp:           time.Now().UTC().Format(time.RFC3339),
			RecommendationCount: 0,
			UserPersonality:     personalityTags(profile),
		},
	}
}

// maxProfileTraits bounds each caller-supplied trait list before the profile
// is embedded into the prompt; the profile is untrusted input.
const (
	maxProfileTraits      = 10
	maxProfileTraitLength = 80
)

func buildProfileContext(profile *UserProfile, sentiment string) string {
	if profile == nil {
		return ""
	}

	bounded := UserProfile{
		Personality: boundTraits(profile.Personality),
		Preferences: boundTraits(profile.Preferences),
		Lifestyle:   boundTraits(profile.Lifestyle),
		Completed:   profile.Completed,
	}

	encoded, err := json.Marshal(bounded)
	if err != nil {
		return ""
	}

	return fmt.Sprintf("My profile: %s. Current mood/sentiment: %s", encoded, sentiment)
}

func boundTraits(traits []string) []string {
	if len(traits) > maxProfileTraits {
		traits = traits[:maxProfileTraits]
	}
	bounded := make([]string, 0, len(traits))
	for _, trait := range traits {
		if len(trait) > maxProfileTraitLength {
			trait = trait[:maxProfileTraitLength]
		}
		bounded = append(bounded, trait)
	}
	return bounded
}

func personalityTags(profile *UserProfile) []string {
	if profile == nil || profile.Personality == nil {
		return []string{}
	}
	return profile.Personality
}
