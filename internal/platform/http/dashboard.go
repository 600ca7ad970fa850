package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gearlane/recon-tracker/internal/business/inspection"
	"github.com/gearlane/recon-tracker/internal/repository"
)

// getDashboard returns the summary tile counts plus, when a section is named,
// that section's per-status breakdown. Counts run the same predicate as the
// vehicle list so the tiles always agree with what clicking them shows.
func (r *Router) getDashboard(c *gin.Context) {
	agg, err := r.loadAggregator(c, r.dealershipID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	q := inspection.Query{
		Locations: splitParam(c.Query("location")),
		Search:    c.Query("q"),
	}

	resp := gin.H{
		"counts": agg.CountBuckets(q),
		"stats":  inspection.AggregateDashboardStats(agg),
	}
	if section := c.Query("section"); section != "" {
		resp["sectionCounts"] = agg.CountSection(section, q)
	}
	c.JSON(http.StatusOK, resp)
}

// getStats serves the persisted stats snapshot. A dealership with no snapshot
// yet gets an empty document, not an error.
func (r *Router) getStats(c *gin.Context) {
	stats, err := r.deps.Stats.GetDashboardStats(c.Request.Context(), r.dealershipID(c))
	if err != nil && err != repository.ErrNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (r *Router) refreshStats(c *gin.Context) {
	stats, err := r.deps.Refresher.Refresh(c.Request.Context(), r.dealershipID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
