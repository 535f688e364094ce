package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themobileprof/symptom-checker-be/internal/analysis"
	"github.com/themobileprof/symptom-checker-be/internal/api"
	"github.com/themobileprof/symptom-checker-be/internal/checker"
	"github.com/themobileprof/symptom-checker-be/internal/firstmeasures"
	"github.com/themobileprof/symptom-checker-be/internal/logging"
	"github.com/themobileprof/symptom-checker-be/internal/recommend"
	"github.com/themobileprof/symptom-checker-be/internal/symptoms"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logging.Discard()
	analyzer := analysis.NewAnalyzer(nil, analysis.Config{}, logger)
	advisor := firstmeasures.NewAdvisor(nil, firstmeasures.Config{}, logger)
	chk := checker.New(recommend.NewEngine(), analyzer, advisor, logger)
	h := api.NewSymptomHandler(chk, analyzer, advisor, logger)

	r := gin.New()
	r.POST("/api/analyze-symptoms", h.Analyze)
	r.POST("/api/recommendations", h.Recommend)
	r.POST("/api/check", h.Check)
	r.POST("/api/first-measures", h.FirstMeasures)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func TestClient_AgainstServer(t *testing.T) {
	server := newServer(t)
	c := New(Config{BaseURL: server.URL + "/"})
	ctx := context.Background()

	t.Run("recommendations", func(t *testing.T) {
		got, err := c.Recommendations(ctx, symptoms.Input{QuickSymptoms: []string{"Joint Pain", "Morning Stiffness"}})
		require.NoError(t, err)
		assert.Equal(t, "Rheumatologist", got.PrimaryRecommendation.Specialty)
	})

	t.Run("check falls back to rules", func(t *testing.T) {
		report, err := c.Check(ctx, symptoms.Input{Symptoms: "persistent cough"})
		require.NoError(t, err)
		assert.Equal(t, checker.SourceRules, report.Source)
		assert.Equal(t, "not_configured", report.AIError)
		assert.NotEmpty(t, report.FirstMeasures.Text)
	})

	t.Run("first measures fallback", func(t *testing.T) {
		res, err := c.FirstMeasures(ctx, "fever", nil)
		require.NoError(t, err)
		assert.Equal(t, firstmeasures.SourceFallback, res.Source)
	})

	t.Run("analysis not configured", func(t *testing.T) {
		_, err := c.AnalyzeSymptoms(ctx, symptoms.Input{Symptoms: "headache"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrServiceUnavailable))

		var apiErr *Error
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "not_configured", apiErr.Details)
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := c.Recommendations(ctx, symptoms.Input{Age: 500})
		assert.True(t, errors.Is(err, ErrBadRequest))
	})
}

func TestError_StatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusTooManyRequests, ErrRateLimited},
		{http.StatusPaymentRequired, ErrCreditsExhausted},
		{http.StatusGatewayTimeout, ErrTimeout},
		{http.StatusBadGateway, ErrAnalysisFailed},
		{http.StatusTeapot, ErrUnexpectedResponse},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "secret", r.Header.Get("apikey"))
				w.WriteHeader(tt.status)
				w.Write([]byte("plain text failure"))
			}))
			defer server.Close()

			c := New(Config{BaseURL: server.URL, APIKey: "secret"})
			_, err := c.AnalyzeSymptoms(context.Background(), symptoms.Input{})

			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			var apiErr *Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, "plain text failure", apiErr.Message)
		})
	}
}
