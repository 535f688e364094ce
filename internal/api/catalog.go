package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/themobileprof/symptom-checker-be/internal/catalog"
	"github.com/themobileprof/symptom-checker-be/internal/db"
)

// CatalogHandler serves the specialist and scheme reference data
type CatalogHandler struct {
	schemes db.SchemeStore
	logger  *logrus.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(schemes db.SchemeStore, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{
		schemes: schemes,
		logger:  logger,
	}
}

// ListSpecialists returns every specialist in catalog order
// GET /api/specialists
func (h *CatalogHandler) ListSpecialists(c *gin.Context) {
	specialists := catalog.Specialists()
	c.JSON(http.StatusOK, gin.H{
		"specialists": specialists,
		"count":       len(specialists),
	})
}

// SpecialistSchemes returns the national schemes covering a specialist
// GET /api/specialists/:key/schemes
func (h *CatalogHandler) SpecialistSchemes(c *gin.Context) {
	key := c.Param("key")
	if _, ok := catalog.Lookup(key); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown specialist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"specialist": key,
		"schemes":    catalog.SchemesForSpecialist(key),
	})
}

// ListSchemes returns national schemes plus those of a state or city
// GET /api/schemes?state=Kerala
func (h *CatalogHandler) ListSchemes(c *gin.Context) {
	location := c.Query("state")

	schemes, err := h.schemes.SchemesForLocation(c.Request.Context(), location)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load schemes")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve schemes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":   catalog.ResolveState(location),
		"schemes": schemes,
		"count":   len(schemes),
	})
}

// ListStates returns the states with state-specific schemes
// GET /api/schemes/states
func (h *CatalogHandler) ListStates(c *gin.Context) {
	states, err := h.schemes.States(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to load states")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve states"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"states": states})
}

// GetScheme returns one scheme
// GET /api/schemes/:id
func (h *CatalogHandler) GetScheme(c *gin.Context) {
	scheme, err := h.schemes.Scheme(c.Request.Context(), c.Param("id"))
	if errors.Is(err, db.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Scheme not found"})
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to load scheme")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve scheme"})
		return
	}

	c.JSON(http.StatusOK, scheme)
}

// Portability explains scheme coverage when moving between states
// GET /api/schemes/portability?from=Rajasthan&to=Kerala
func (h *CatalogHandler) Portability(c *gin.Context) {
	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both from and to are required"})
		return
	}

	from, to = catalog.ResolveState(from), catalog.ResolveState(to)
	c.JSON(http.StatusOK, gin.H{
		"from": from,
		"to":   to,
		"info": catalog.PortabilityInfo(from, to),
	})
}
