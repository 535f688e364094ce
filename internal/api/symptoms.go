// Package api exposes the symptom checker over HTTP.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/themobileprof/symptom-checker-be/internal/api/middleware"
	"github.com/themobileprof/symptom-checker-be/internal/checker"
	"github.com/themobileprof/symptom-checker-be/internal/privacy"
	"github.com/themobileprof/symptom-checker-be/internal/symptoms"
)

const maxBodyBytes = 64 << 10

// SymptomHandler handles the symptom analysis endpoints
type SymptomHandler struct {
	checker  *checker.Checker
	analyzer checker.Analyzer
	advisor  checker.Advisor
	logger   *logrus.Logger
}

// NewSymptomHandler creates a new symptom handler
func NewSymptomHandler(chk *checker.Checker, analyzer checker.Analyzer, advisor checker.Advisor, logger *logrus.Logger) *SymptomHandler {
	return &SymptomHandler{
		checker:  chk,
		analyzer: analyzer,
		advisor:  advisor,
		logger:   logger,
	}
}

// FirstMeasuresRequest is the body of POST /api/first-measures
type FirstMeasuresRequest struct {
	SymptomsText  string   `json:"symptomsText"`
	QuickSymptoms []string `json:"quickSymptoms"`
}

func bindInput(c *gin.Context) (symptoms.Input, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	var in symptoms.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		abortWithBadRequest(c, err)
		return in, false
	}
	if err := in.Validate(); err != nil {
		abortWithBadRequest(c, err)
		return in, false
	}
	return in, true
}

// Analyze runs the AI analysis only
// POST /api/analyze-symptoms
func (h *SymptomHandler) Analyze(c *gin.Context) {
	in, ok := bindInput(c)
	if !ok {
		return
	}

	h.logger.WithFields(logrus.Fields{
		"request_id": middleware.GetRequestID(c),
		"symptoms":   privacy.SanitizeForLogging(in.Symptoms),
		"quick":      len(in.QuickSymptoms),
		"age":        in.Age,
	}).Debug("Analysis requested")

	result, err := h.analyzer.Analyze(c.Request.Context(), in)
	if err != nil {
		abortWithAnalysisError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Recommend runs the rule engine only
// POST /api/recommendations
func (h *SymptomHandler) Recommend(c *gin.Context) {
	in, ok := bindInput(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.checker.Recommend(in))
}

// Check runs the rule engine, AI analysis and first measures together
// POST /api/check
func (h *SymptomHandler) Check(c *gin.Context) {
	in, ok := bindInput(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.checker.Check(c.Request.Context(), in))
}

// FirstMeasures returns home-care tips
// POST /api/first-measures
func (h *SymptomHandler) FirstMeasures(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	var req FirstMeasuresRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBadRequest(c, err)
		return
	}
	in := symptoms.Input{Symptoms: req.SymptomsText, QuickSymptoms: req.QuickSymptoms}
	if err := in.Validate(); err != nil {
		abortWithBadRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, h.advisor.Advise(c.Request.Context(), req.SymptomsText, req.QuickSymptoms))
}
