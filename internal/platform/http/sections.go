package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gearlane/recon-tracker/internal/business/inspection"
	"github.com/gearlane/recon-tracker/pkg/model"
)

func (r *Router) listSections(c *gin.Context) {
	sections, err := r.deps.Sections.ListSections(c.Request.Context(), r.dealershipID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(sections) == 0 {
		sections = inspection.DefaultSections()
	}
	inspection.SortSections(sections)
	c.JSON(http.StatusOK, gin.H{"items": sections})
}

func (r *Router) replaceSections(c *gin.Context) {
	var req struct {
		Items []model.InspectionSection `json:"items"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	keys := make(map[string]bool, len(req.Items))
	for _, s := range req.Items {
		if s.Key == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "section key is required"})
			return
		}
		if keys[s.Key] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duplicate section key: " + s.Key})
			return
		}
		keys[s.Key] = true
	}

	if err := r.deps.Sections.ReplaceSections(c.Request.Context(), r.dealershipID(c), req.Items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": req.Items})
}

func (r *Router) resetSections(c *gin.Context) {
	defaults := inspection.DefaultSections()
	if err := r.deps.Sections.ReplaceSections(c.Request.Context(), r.dealershipID(c), defaults); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": defaults})
}
