package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/themobileprof/symptom-checker-be/internal/analysis"
)

type analysisFailure struct {
	err     error
	status  int
	message string
}

var analysisFailures = []analysisFailure{
	{analysis.ErrNotConfigured, http.StatusServiceUnavailable, "AI analysis is not configured on this server"},
	{analysis.ErrUnavailable, http.StatusServiceUnavailable, "AI analysis is temporarily unavailable. Please try again shortly."},
	{analysis.ErrRateLimited, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later."},
	{analysis.ErrCreditsExhausted, http.StatusPaymentRequired, "AI credits exhausted. Please contact support."},
	{analysis.ErrTimeout, http.StatusGatewayTimeout, "AI analysis timed out. Please try again."},
	{analysis.ErrInvalidAPIKey, http.StatusBadGateway, "AI provider rejected the server credentials"},
	{analysis.ErrMalformedResponse, http.StatusBadGateway, "AI provider returned an empty response"},
}

// abortWithAnalysisError writes {error, details} for an Analyze failure
func abortWithAnalysisError(c *gin.Context, err error) {
	status, message := http.StatusBadGateway, "AI analysis failed"
	for _, f := range analysisFailures {
		if errors.Is(err, f.err) {
			status, message = f.status, f.message
			break
		}
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, gin.H{
		"error":   message,
		"details": analysis.Reason(err),
	})
}

func abortWithBadRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"error":   "Invalid request body",
		"details": err.Error(),
	})
}
