package http

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/gearlane/recon-tracker/internal/business/inspection"
	"github.com/gearlane/recon-tracker/internal/repository"
	"github.com/gearlane/recon-tracker/pkg/model"
)

type reportItem struct {
	Label  string       `json:"label"`
	Rating model.Rating `json:"rating"`
}

type reportSection struct {
	Key    string                   `json:"key"`
	Label  string                   `json:"label"`
	Color  string                   `json:"color,omitempty"`
	Status inspection.SectionStatus `json:"status"`
	Items  []reportItem             `json:"items"`
}

// getVehicleReport builds the customer-facing condition report. Only sections
// flagged customer-visible appear; checklist labels come from the section
// definition so renamed items stay consistent with recorded ratings.
func (r *Router) getVehicleReport(c *gin.Context) {
	ctx := c.Request.Context()
	dealership := r.dealershipID(c)

	v, err := r.deps.Vehicles.GetVehicle(ctx, dealership, c.Param("id"))
	if err != nil {
		if err == repository.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sections, err := r.deps.Sections.ListSections(ctx, dealership)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(sections) == 0 {
		sections = inspection.DefaultSections()
	}
	inspection.SortSections(sections)

	insp, err := r.deps.Inspections.GetInspection(ctx, dealership, v.ID, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var visible []reportSection
	for _, def := range sections {
		if !def.IsActive || !def.IsCustomerVisible {
			continue
		}

		recorded := make(map[string]model.InspectionItem, len(insp.Sections[def.Key]))
		for _, item := range insp.Sections[def.Key] {
			recorded[item.ID] = item
		}

		defs := append([]model.InspectionItemDefinition(nil), def.Items...)
		sort.SliceStable(defs, func(i, j int) bool { return defs[i].Order < defs[j].Order })

		items := make([]reportItem, 0, len(defs))
		for _, d := range defs {
			if !d.IsActive {
				continue
			}
			rating := model.RatingNotChecked
			if rec, ok := recorded[d.ID]; ok {
				rating = inspection.NormalizeRating(rec.Rating)
			}
			items = append(items, reportItem{Label: d.Label, Rating: rating})
		}

		visible = append(visible, reportSection{
			Key:    def.Key,
			Label:  def.Label,
			Color:  def.Color,
			Status: inspection.EvaluateSectionStatus(insp.Sections[def.Key], def),
			Items:  items,
		})
	}

	statuses := inspection.SectionStatuses(insp, sections)
	active := 0
	for _, s := range sections {
		if s.IsActive {
			active++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"vehicle": gin.H{
			"year":        v.Year,
			"make":        v.Make,
			"model":       v.Model,
			"trim":        v.Trim,
			"vin":         v.VIN,
			"stockNumber": v.StockNumber,
			"mileage":     v.Mileage,
			"color":       v.Color,
		},
		"sections":     visible,
		"progress":     inspection.CalculateProgress(statuses, active),
		"readyForSale": inspection.ReadyForSale(insp, sections),
	})
}
