// internal/tests/consultant_endpoint_test.go
package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/pranaara/pranaara-backend/internal/config"
	"github.com/pranaara/pranaara-backend/internal/handlers"
	"github.com/pranaara/pranaara-backend/internal/services"
)

type recordingCatalog struct {
	snapshot []services.CatalogSnapshotItem
	calls    int
}

func (c *recordingCatalog) CatalogSnapshot(ctx context.Context, limit int) []services.CatalogSnapshotItem {
	c.calls++
	return c.snapshot
}

type scriptedCompletions struct {
	reply string
	err   error
}

func (s *scriptedCompletions) Complete(ctx context.Context, systemPrompt, profileContext string, history []services.ChatMessage) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

type ConsultantEndpointTestSuite struct {
	suite.Suite
	catalog     *recordingCatalog
	completions *scriptedCompletions
}

func (suite *ConsultantEndpointTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.catalog = &recordingCatalog{
		snapshot: []services.CatalogSnapshotItem{
			{ID: "p1", Name: "Rose Symphony Absolute", Slug: "rose-symphony-absolute", Price: 4999, Image: "/images/rose.png"},
		},
	}
	suite.completions = &scriptedCompletions{reply: "You would adore Rose Symphony Absolute."}
}

func (suite *ConsultantEndpointTestSuite) newRouter(configured bool) *gin.Engine {
	cfg := &config.Config{
		OpenAI: config.OpenAIConfig{Model: "gpt-4o", RequestTimeout: 30, CatalogLimit: 50},
	}

	var client services.CompletionClient
	if configured {
		client = suite.completions
	}

	svc := services.NewConsultantService(suite.catalog, client, cfg)
	handler := handlers.NewConsultantHandler(svc)

	r := gin.New()
	r.POST("/v1/ai-consultant", handler.Consult)
	r.GET("/v1/ai-consultant", handler.Health)
	return r
}

func (suite *ConsultantEndpointTestSuite) postConsult(router *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	jsonData, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", "/v1/ai-consultant", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func (suite *ConsultantEndpointTestSuite) TestConsultSuccess() {
	router := suite.newRouter(true)

	w := suite.postConsult(router, map[string]interface{}{
		"messages": []map[string]string{
			{"role": "user", "content": "I love floral scents"},
		},
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)

	assert.Equal(suite.T(), "You would adore Rose Symphony Absolute.", response["response"])
	assert.Equal(suite.T(), "positive", response["sentiment"])

	recommendations := response["recommendations"].([]interface{})
	assert.Len(suite.T(), recommendations, 1)
	first := recommendations[0].(map[string]interface{})
	assert.Equal(suite.T(), "Rose Symphony Absolute", first["name"])
	assert.Equal(suite.T(), "rose-symphony-absolute", first["slug"])

	metadata := response["metadata"].(map[string]interface{})
	assert.Equal(suite.T(), float64(1), metadata["recommendationCount"])
	assert.NotEmpty(suite.T(), metadata["timestamp"])
}

func (suite *ConsultantEndpointTestSuite) TestConsultNotConfigured() {
	router := suite.newRouter(false)

	w := suite.postConsult(router, map[string]interface{}{
		"messages": []map[string]string{
			{"role": "user", "content": "hello"},
		},
	})

	assert.Equal(suite.T(), http.StatusServiceUnavailable, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), response["error"])

	// The catalog is never consulted without a credential
	assert.Zero(suite.T(), suite.catalog.calls)
}

func (suite *ConsultantEndpointTestSuite) TestConsultProviderFailure() {
	suite.completions.err = assert.AnError
	router := suite.newRouter(true)

	w := suite.postConsult(router, map[string]interface{}{
		"messages": []map[string]string{
			{"role": "user", "content": "what suits a winter evening"},
		},
	})

	// Provider trouble still yields a usable chat turn
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)

	assert.Contains(suite.T(), response["response"], "trouble connecting")
	assert.Empty(suite.T(), response["recommendations"])
	assert.Equal(suite.T(), "neutral", response["sentiment"])
}

func (suite *ConsultantEndpointTestSuite) TestConsultEmptyMessages() {
	router := suite.newRouter(true)

	w := suite.postConsult(router, map[string]interface{}{
		"messages": []map[string]string{},
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), response["error"])
}

func (suite *ConsultantEndpointTestSuite) TestConsultMalformedBody() {
	router := suite.newRouter(true)

	req, _ := http.NewRequest("POST", "/v1/ai-consultant", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ConsultantEndpointTestSuite) TestHealthEndpoint() {
	router := suite.newRouter(false)

	req, _ := http.NewRequest("GET", "/v1/ai-consultant", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)

	assert.Equal(suite.T(), "healthy", response["status"])
	assert.Equal(suite.T(), "AI Consultant", response["service"])
	assert.NotEmpty(suite.T(), response["timestamp"])

	// Liveness never touches dependencies
	assert.Zero(suite.T(), suite.catalog.calls)
}

func TestConsultantEndpointSuite(t *testing.T) {
	suite.Run(t, new(ConsultantEndpointTestSuite))
}
