package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gearlane/recon-tracker/internal/repository"
)

// startImport accepts a raw CSV feed in the request body, kicks off the import
// asynchronously, and returns the run ID for status polling.
func (r *Router) startImport(c *gin.Context) {
	runID, err := r.deps.Importer.Start(c.Request.Context(), r.dealershipID(c), c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"runId": runID, "status": "running"})
}

func (r *Router) getImportStatus(c *gin.Context) {
	runID := c.Query("runId")
	if runID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "runId is required"})
		return
	}
	run, err := r.deps.Runs.GetRun(c.Request.Context(), r.dealershipID(c), runID)
	if err != nil {
		if err == repository.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, run)
}

func (r *Router) listImportRuns(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	runs, err := r.deps.Runs.ListRuns(c.Request.Context(), r.dealershipID(c), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": runs})
}
