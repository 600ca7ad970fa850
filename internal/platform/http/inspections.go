package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gearlane/recon-tracker/internal/business/inspection"
	"github.com/gearlane/recon-tracker/pkg/model"
)

func (r *Router) getInspection(c *gin.Context) {
	insp, err := r.deps.Inspections.GetInspection(
		c.Request.Context(), r.dealershipID(c), c.Param("id"), c.Query("inspectorId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, insp)
}

func (r *Router) putInspection(c *gin.Context) {
	var insp model.VehicleInspection
	if err := c.BindJSON(&insp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	insp.VehicleID = c.Param("id")
	if insp.InspectorID == "" {
		insp.InspectorID = c.Query("inspectorId")
	}
	if err := r.deps.Inspections.SaveInspection(c.Request.Context(), r.dealershipID(c), insp); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, insp)
}

type rateItemReq struct {
	Rating    model.Rating `json:"rating"`
	Label     string       `json:"label"`
	UpdatedBy string       `json:"updatedBy"`
}

// rateItem applies one rating change and responds with the statuses derived
// from the updated data, so clients can render from the response instead of
// waiting for a round-trip re-read. A persistence failure is reported as a
// save error while the response still carries the intended state.
func (r *Router) rateItem(c *gin.Context) {
	var req rateItemReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	ctx := c.Request.Context()
	dealership := r.dealershipID(c)
	vehicleID := c.Param("id")
	sectionKey := c.Param("section")

	item := model.InspectionItem{
		ID:        c.Param("item"),
		Label:     req.Label,
		Rating:    inspection.NormalizeRating(req.Rating),
		UpdatedBy: req.UpdatedBy,
	}

	insp, err := r.deps.Inspections.UpsertItem(ctx, dealership, vehicleID, c.Query("inspectorId"), sectionKey, item)
	saveFailed := err != nil
	if saveFailed {
		r.deps.Log.Error().Err(err).Str("vehicleId", vehicleID).Str("section", sectionKey).Msg("rating save failed")
	}

	sections, serr := r.deps.Sections.ListSections(ctx, dealership)
	if serr != nil || len(sections) == 0 {
		sections = inspection.DefaultSections()
	}

	var sectionStatus inspection.SectionStatus = inspection.StatusNotStarted
	for _, def := range sections {
		if def.Key == sectionKey {
			sectionStatus = inspection.EvaluateSectionStatus(insp.Sections[sectionKey], def)
			break
		}
	}

	status := http.StatusOK
	if saveFailed {
		status = http.StatusAccepted
	}
	c.JSON(status, gin.H{
		"inspection":    insp,
		"sectionStatus": sectionStatus,
		"saveError":     saveFailed,
	})
}
